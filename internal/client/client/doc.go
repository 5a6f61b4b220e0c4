// Package client contains the benchmark drivers for both transports.
//
// # Overview
//
//  1. GRPCClient talks to PayrollService, EmployeeService and the gRPC
//     health service. It injects an access token through interceptors,
//     optionally compresses calls with LZ4 and counts wire bytes with a
//     stats handler.
//  2. RESTClient reads the paginated listing and the Server-Sent Events
//     stream of the REST controller, and downloads payroll files either
//     directly or through a presigned object URL.
//  3. InitDatabase opens and migrates the local SQLite report database.
//
// Every driver makes a single attempt per call: there is no retry, backoff
// or reconnect.
//
// # Error Handling
//
// gRPC status codes are mapped to sentinel errors that callers match with
// errors.Is: ErrNotFound, ErrUnauthorized, ErrUnavailable,
// ErrInvalidArgument. Download ordering violations yield ErrProtocol and
// rejected uploads ErrUploadRejected.
package client
