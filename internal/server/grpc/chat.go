package grpc

import (
	"errors"
	"io"
	"time"

	pb "github.com/dmitrijs2005/transferbench/internal/proto"
	"github.com/dmitrijs2005/transferbench/internal/server/chat"
	"google.golang.org/grpc"
)

// Chat joins the caller to the hub. Incoming messages are broadcast to
// every session; a dedicated goroutine writes the session's queue back to
// the caller and is drained before the handler returns.
func (s *GRPCServer) Chat(stream grpc.BidiStreamingServer[pb.ChatMessage, pb.ChatMessage]) error {
	ctx := stream.Context()
	sess := s.hub.Join(ctx)

	sendErr := make(chan error, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for m := range sess.Messages() {
			err := stream.Send(&pb.ChatMessage{Sender: m.Sender, Text: m.Text, SentAtUnixNano: m.SentAt.UnixNano()})
			if err != nil {
				sendErr <- err
				return
			}
		}
	}()

	recvErr := s.relay(stream, sess)

	s.hub.Leave(ctx, sess)
	<-done

	if recvErr != nil {
		return recvErr
	}
	select {
	case err := <-sendErr:
		if !isCancelled(ctx, err) {
			return err
		}
	default:
	}
	return nil
}

func (s *GRPCServer) relay(stream grpc.BidiStreamingServer[pb.ChatMessage, pb.ChatMessage], sess *chat.Session) error {
	ctx := stream.Context()
	client := clientFromContext(ctx)

	for {
		in, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			if isCancelled(ctx, err) {
				s.logger.Info(ctx, "chat session cancelled", "session", sess.ID())
				return nil
			}
			s.logger.Error(ctx, "chat receive failed", "session", sess.ID(), "error", err)
			return err
		}

		msg := chat.Message{Sender: in.GetSender(), Text: in.GetText()}
		if msg.Sender == "" {
			msg.Sender = client
		}
		if ns := in.GetSentAtUnixNano(); ns != 0 {
			msg.SentAt = time.Unix(0, ns)
		}
		s.hub.Broadcast(sess, msg)
	}
}
