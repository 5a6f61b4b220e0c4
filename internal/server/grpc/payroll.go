package grpc

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/dmitrijs2005/transferbench/internal/common"
	"github.com/dmitrijs2005/transferbench/internal/cryptox"
	"github.com/dmitrijs2005/transferbench/internal/filex"
	pb "github.com/dmitrijs2005/transferbench/internal/proto"
	"github.com/dmitrijs2005/transferbench/internal/server/storage"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// UploadPayroll receives a file as a sequence of chunks. The first chunk with
// a file name opens the destination; payloads seen before that are held in
// memory and flushed into it once it exists.
func (s *GRPCServer) UploadPayroll(stream grpc.ClientStreamingServer[pb.Chunk, pb.UploadStatus]) error {
	ctx := stream.Context()

	var (
		w        storage.Writer
		name     string
		pending  bytes.Buffer
		received int64
		digest   = cryptox.NewDigest()
	)

	fail := func(msg string) error {
		if w != nil {
			_ = w.Abort()
		}
		return stream.SendAndClose(&pb.UploadStatus{Success: false, Message: msg, BytesReceived: received})
	}

	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if isCancelled(ctx, err) {
				s.logger.Info(ctx, "upload cancelled", "file", name, "bytes", received)
				// the client is gone, the reply is best effort
				_ = fail(common.MsgUploadCancelled)
				return nil
			}
			s.logger.Error(ctx, "upload receive failed", "file", name, "error", err)
			return fail(common.MsgServerError)
		}

		if w == nil && chunk.GetFileName() != "" {
			name, err = filex.SafeName(chunk.GetFileName())
			if err != nil {
				s.logger.Warn(ctx, "upload rejected", "file", chunk.GetFileName(), "error", err)
				return fail(common.MsgInvalidFileName)
			}

			w, err = s.store.Create(ctx, name)
			if err != nil {
				s.logger.Error(ctx, "upload create failed", "file", name, "error", err)
				return fail(common.MsgServerError)
			}

			if pending.Len() > 0 {
				if _, err := pending.WriteTo(w); err != nil {
					s.logger.Error(ctx, "upload write failed", "file", name, "error", err)
					return fail(common.MsgServerError)
				}
			}
		}

		data := chunk.GetContent()
		received += int64(len(data))
		_, _ = digest.Write(data)

		if w == nil {
			pending.Write(data)
			continue
		}
		if _, err := w.Write(data); err != nil {
			s.logger.Error(ctx, "upload write failed", "file", name, "error", err)
			return fail(common.MsgServerError)
		}
	}

	if w == nil {
		s.logger.Warn(ctx, "upload without file name", "bytes", received)
		return stream.SendAndClose(&pb.UploadStatus{Success: false, Message: common.MsgNoDataReceived})
	}

	if err := w.Commit(); err != nil {
		s.logger.Error(ctx, "upload commit failed", "file", name, "error", err)
		return fail(common.MsgServerError)
	}

	sum := digest.Sum()
	s.logger.Info(ctx, "upload complete", "file", name, "bytes", received, "checksum", sum)

	return stream.SendAndClose(&pb.UploadStatus{
		Success:       true,
		Message:       common.MsgUploadComplete,
		BytesReceived: received,
		Checksum:      sum,
	})
}

// DownloadPayroll sends the file metadata followed by ChunkSize chunks.
func (s *GRPCServer) DownloadPayroll(req *pb.DownloadRequest, stream grpc.ServerStreamingServer[pb.DownloadResponse]) error {
	ctx := stream.Context()

	rc, info, err := s.store.Open(ctx, req.GetFileName())
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorInvalidFileName):
			return status.Error(codes.InvalidArgument, "invalid file name")
		case errors.Is(err, common.ErrorNotFound):
			return status.Error(codes.NotFound, "file not found")
		}
		s.logger.Error(ctx, "download open failed", "file", req.GetFileName(), "error", err)
		return status.Error(codes.Internal, "internal error")
	}
	defer rc.Close()

	if err := stream.Send(pb.NewMetadataResponse(info.Name, info.Size)); err != nil {
		return s.downloadSendError(ctx, info.Name, 0, err)
	}

	buf := make([]byte, common.ChunkSize)
	var sent int64
	for {
		if ctx.Err() != nil {
			s.logger.Info(ctx, "download cancelled", "file", info.Name, "bytes", sent)
			return nil
		}

		n, err := io.ReadFull(rc, buf)
		if n > 0 {
			if err := stream.Send(pb.NewChunkResponse(buf[:n])); err != nil {
				return s.downloadSendError(ctx, info.Name, sent, err)
			}
			sent += int64(n)
		}
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}
		if err != nil {
			if ctx.Err() != nil {
				s.logger.Info(ctx, "download cancelled", "file", info.Name, "bytes", sent)
				return nil
			}
			s.logger.Error(ctx, "download read failed", "file", info.Name, "error", err)
			return status.Error(codes.Internal, "internal error")
		}
	}

	s.logger.Info(ctx, "download complete", "file", info.Name, "bytes", sent)
	return nil
}

func (s *GRPCServer) downloadSendError(ctx context.Context, name string, sent int64, err error) error {
	if isCancelled(ctx, err) {
		s.logger.Info(ctx, "download cancelled", "file", name, "bytes", sent)
		return nil
	}
	s.logger.Error(ctx, "download send failed", "file", name, "error", err)
	return err
}

func isCancelled(ctx context.Context, err error) bool {
	if ctx.Err() != nil || errors.Is(err, context.Canceled) {
		return true
	}
	c := status.Code(err)
	return c == codes.Canceled || c == codes.DeadlineExceeded
}
