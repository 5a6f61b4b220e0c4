package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/transferbench/internal/logging"
	pb "github.com/dmitrijs2005/transferbench/internal/proto"
	"github.com/dmitrijs2005/transferbench/internal/server/chat"
	"github.com/dmitrijs2005/transferbench/internal/server/employees"
	"github.com/dmitrijs2005/transferbench/internal/server/storage"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	_ "github.com/dmitrijs2005/transferbench/internal/compressx"
)

// EmployeeSource is the part of employees.Service the RPCs need.
type EmployeeSource interface {
	Stream(ctx context.Context, max int, fn func(employees.Employee) error) (int, error)
	StreamBatches(ctx context.Context, max, batchSize int, fn func([]employees.Employee) error) (int, error)
	Page(ctx context.Context, page, pageSize int) (*employees.Page, error)
}

type GRPCServer struct {
	pb.UnimplementedPayrollServiceServer
	pb.UnimplementedEmployeeServiceServer
	address   string
	store     storage.Store
	employees EmployeeSource
	hub       *chat.Hub
	health    *health.Server
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, store storage.Store, es EmployeeSource, hub *chat.Hub, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		store:     store,
		employees: es,
		hub:       hub,
		health:    health.NewServer(),
		jwtSecret: []byte(secretKey),
	}
}

// newServer creates the gRPC server with interceptors and every service
// registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(
		pb.ServerCodec(),
		grpc.ChainUnaryInterceptor(s.loggingUnaryInterceptor),
		grpc.ChainStreamInterceptor(s.loggingStreamInterceptor, s.accessTokenStreamInterceptor),
	)

	pb.RegisterPayrollServiceServer(srv, s)
	pb.RegisterEmployeeServiceServer(srv, s)
	healthpb.RegisterHealthServer(srv, s.health)

	for _, name := range []string{"", pb.PayrollService_ServiceDesc.ServiceName, pb.EmployeeService_ServiceDesc.ServiceName} {
		s.health.SetServingStatus(name, healthpb.HealthCheckResponse_SERVING)
	}

	return srv
}

// Serve accepts connections on listen until ctx is cancelled.
func (s *GRPCServer) Serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	return srv.Serve(listen)
}

func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}
