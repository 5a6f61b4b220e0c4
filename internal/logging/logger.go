// Package logging holds the structured logger shared by the servers, the
// chat hub and the employee service.
package logging

import "context"

// Logger takes a message plus alternating key/value args:
//
//	log.Info(ctx, "upload stored", "file", name, "bytes", n)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a logger that adds args to every record.
	With(args ...any) Logger
}
