package client

import (
	"context"
	"sync/atomic"

	"google.golang.org/grpc/stats"
)

// byteCounter tallies payload bytes as they cross the wire.
type byteCounter struct {
	in  atomic.Int64
	out atomic.Int64
}

func (c *byteCounter) TagRPC(ctx context.Context, _ *stats.RPCTagInfo) context.Context {
	return ctx
}

func (c *byteCounter) HandleRPC(_ context.Context, s stats.RPCStats) {
	switch p := s.(type) {
	case *stats.InPayload:
		c.in.Add(int64(p.WireLength))
	case *stats.OutPayload:
		c.out.Add(int64(p.WireLength))
	}
}

func (c *byteCounter) TagConn(ctx context.Context, _ *stats.ConnTagInfo) context.Context {
	return ctx
}

func (c *byteCounter) HandleConn(context.Context, stats.ConnStats) {}
