// Package cli implements the transferbench client commands.
//
// Every transfer command runs exactly one call against the server, prints a
// benchmark report and, unless --reports-db is empty, stores it locally so
// "report list" can compare runs later.
package cli
