package grpc

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dmitrijs2005/transferbench/internal/common"
	pb "github.com/dmitrijs2005/transferbench/internal/proto"
	"github.com/dmitrijs2005/transferbench/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const clientKey ctxKey = "client"

// clientFromContext returns the authenticated client name, if any.
func clientFromContext(ctx context.Context) string {
	v, _ := ctx.Value(clientKey).(string)
	return v
}

var payrollMethodPrefix = "/" + pb.PayrollService_ServiceDesc.ServiceName + "/"

func (s *GRPCServer) loggingUnaryInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	s.logger.Info(ctx, "rpc", "method", info.FullMethod, "code", status.Code(err).String(), "duration", time.Since(start))
	return resp, err
}

func (s *GRPCServer) loggingStreamInterceptor(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	start := time.Now()
	err := handler(srv, ss)
	s.logger.Info(ss.Context(), "stream", "method", info.FullMethod, "code", status.Code(err).String(), "duration", time.Since(start))
	return err
}

// accessTokenStreamInterceptor guards payroll streams when a secret key is
// configured.
func (s *GRPCServer) accessTokenStreamInterceptor(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	if len(s.jwtSecret) == 0 || !strings.HasPrefix(info.FullMethod, payrollMethodPrefix) {
		return handler(srv, ss)
	}

	ctx, err := s.authorize(ss.Context())
	if err != nil {
		return err
	}

	return handler(srv, &authenticatedStream{ServerStream: ss, ctx: ctx})
}

func (s *GRPCServer) authorize(ctx context.Context) (context.Context, error) {
	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	client, err := auth.ClientFromToken(accessToken, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, "token expired")
		}
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	return context.WithValue(ctx, clientKey, client), nil
}

type authenticatedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (w *authenticatedStream) Context() context.Context {
	return w.ctx
}
