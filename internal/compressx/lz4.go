// Package compressx registers an LZ4 compressor with gRPC. Importing the
// package is enough for a server to accept "lz4" encoded messages; clients
// opt in per call with grpc.UseCompressor(compressx.Name).
package compressx

import (
	"io"

	"github.com/pierrec/lz4"
	"google.golang.org/grpc/encoding"
)

// Name is the grpc-encoding value of the compressor.
const Name = "lz4"

type compressor struct {
	level int
}

func (c compressor) Compress(w io.Writer) (io.WriteCloser, error) {
	zw := lz4.NewWriter(w)
	zw.Header.CompressionLevel = c.level
	return zw, nil
}

func (compressor) Decompress(r io.Reader) (io.Reader, error) {
	return lz4.NewReader(r), nil
}

func (compressor) Name() string {
	return Name
}

func init() {
	encoding.RegisterCompressor(compressor{})
}

// Supported reports whether name is a compressor known to this build.
// An empty name means "no compression" and is always supported.
func Supported(name string) bool {
	return name == "" || name == "identity" || encoding.GetCompressor(name) != nil
}
