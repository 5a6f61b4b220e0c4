package grpc

import (
	"context"
	"errors"
	"io"

	"github.com/dmitrijs2005/transferbench/internal/logging"
	pb "github.com/dmitrijs2005/transferbench/internal/proto"
	"github.com/dmitrijs2005/transferbench/internal/server/storage"
	"google.golang.org/grpc"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

// ---- upload stream fake ----

type fakeUploadStream struct {
	grpc.ServerStream
	ctx    context.Context
	chunks []*pb.Chunk
	// errAfter, when set, is returned once all chunks were consumed.
	errAfter error
	i        int
	reply    *pb.UploadStatus
}

func (f *fakeUploadStream) Context() context.Context { return f.ctx }

func (f *fakeUploadStream) Recv() (*pb.Chunk, error) {
	if f.i < len(f.chunks) {
		c := f.chunks[f.i]
		f.i++
		return c, nil
	}
	if f.errAfter != nil {
		return nil, f.errAfter
	}
	return nil, io.EOF
}

func (f *fakeUploadStream) SendAndClose(s *pb.UploadStatus) error {
	f.reply = s
	return nil
}

// ---- download stream fake ----

type fakeDownloadStream struct {
	grpc.ServerStream
	ctx  context.Context
	sent []*pb.DownloadResponse
	// onSend runs after each message is recorded.
	onSend  func(n int)
	sendErr error
}

func (f *fakeDownloadStream) Context() context.Context { return f.ctx }

func (f *fakeDownloadStream) Send(m *pb.DownloadResponse) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	// the handler reuses its buffer between sends
	if c, ok := m.Payload.(*pb.DownloadResponse_Chunk); ok {
		m = pb.NewChunkResponse(append([]byte(nil), c.Chunk...))
	}
	f.sent = append(f.sent, m)
	if f.onSend != nil {
		f.onSend(len(f.sent))
	}
	return nil
}

// ---- generic server stream fake ----

type fakeSendStream[T any] struct {
	grpc.ServerStream
	ctx     context.Context
	sent    []*T
	sendErr error
}

func (f *fakeSendStream[T]) Context() context.Context { return f.ctx }

func (f *fakeSendStream[T]) Send(m *T) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, m)
	return nil
}

// ---- store fakes ----

type failingWriter struct {
	aborted bool
}

func (w *failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }
func (w *failingWriter) Commit() error             { return errors.New("disk full") }
func (w *failingWriter) Abort() error {
	w.aborted = true
	return nil
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, errors.New("io failure") }
func (brokenReader) Close() error             { return nil }

type fakeStore struct {
	writer  storage.Writer
	openErr error
	reader  io.ReadCloser
	info    storage.FileInfo
}

func (s *fakeStore) Create(context.Context, string) (storage.Writer, error) {
	return s.writer, nil
}

func (s *fakeStore) Open(context.Context, string) (io.ReadCloser, storage.FileInfo, error) {
	if s.openErr != nil {
		return nil, storage.FileInfo{}, s.openErr
	}
	return s.reader, s.info, nil
}
