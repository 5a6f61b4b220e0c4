// Package config loads runtime configuration for the transferbench client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional YAML or JSON file selected with --config.
//  3. Environment variables prefixed with TRANSFERBENCH_, e.g.
//     TRANSFERBENCH_GRPC_ADDR or TRANSFERBENCH_TOKEN.
//  4. Command-line flags, which override everything else.
//
// Supported keys
//
//	grpc-addr      host:port of the gRPC endpoint
//	http-addr      host:port (or URL) of the REST endpoint
//	token          access token sent with payroll RPCs
//	compress       gRPC compressor name ("lz4" or empty)
//	downloads-dir  where downloaded files are written
//	reports-db     SQLite file keeping benchmark reports ("" disables)
//	timeout        per-command deadline, e.g. "30s" (0 means none)
//	progress       show a progress bar when stderr is a terminal
//	repeat         number of runs per benchmarked call
//
// Example file:
//
//	grpc-addr: 127.0.0.1:50051
//	http-addr: 127.0.0.1:8080
//	compress: lz4
//	timeout: 1m
package config
