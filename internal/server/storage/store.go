// Package storage keeps payroll files received over the upload stream and
// serves them back to downloads. Two backends exist: a local directory and an
// S3-compatible bucket.
package storage

import (
	"context"
	"io"
	"time"
)

// FileInfo describes a stored file.
type FileInfo struct {
	Name string
	Size int64
}

// Writer receives the bytes of one upload. Nothing is visible under the final
// name until Commit succeeds; Abort discards everything written so far.
// Calling Abort after Commit is a no-op.
type Writer interface {
	io.Writer
	Commit() error
	Abort() error
}

// Store is the file backend used by the payroll handlers. Names are validated
// with filex.SafeName; a missing file is reported as common.ErrorNotFound.
type Store interface {
	Create(ctx context.Context, name string) (Writer, error)
	Open(ctx context.Context, name string) (io.ReadCloser, FileInfo, error)
}

// Presigner is implemented by stores that can hand out direct download URLs.
type Presigner interface {
	PresignGet(ctx context.Context, name string, ttl time.Duration) (string, error)
}
