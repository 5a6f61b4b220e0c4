package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const _ = grpc.SupportPackageIsVersion9

const (
	PayrollService_UploadPayroll_FullMethodName   = "/transferbench.PayrollService/UploadPayroll"
	PayrollService_DownloadPayroll_FullMethodName = "/transferbench.PayrollService/DownloadPayroll"
	PayrollService_Chat_FullMethodName            = "/transferbench.PayrollService/Chat"
)

// PayrollServiceClient is the client API for PayrollService.
type PayrollServiceClient interface {
	UploadPayroll(ctx context.Context, opts ...grpc.CallOption) (grpc.ClientStreamingClient[Chunk, UploadStatus], error)
	DownloadPayroll(ctx context.Context, in *DownloadRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[DownloadResponse], error)
	Chat(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[ChatMessage, ChatMessage], error)
}

type payrollServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPayrollServiceClient(cc grpc.ClientConnInterface) PayrollServiceClient {
	return &payrollServiceClient{cc}
}

func (c *payrollServiceClient) UploadPayroll(ctx context.Context, opts ...grpc.CallOption) (grpc.ClientStreamingClient[Chunk, UploadStatus], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &PayrollService_ServiceDesc.Streams[0], PayrollService_UploadPayroll_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	return &grpc.GenericClientStream[Chunk, UploadStatus]{ClientStream: stream}, nil
}

func (c *payrollServiceClient) DownloadPayroll(ctx context.Context, in *DownloadRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[DownloadResponse], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &PayrollService_ServiceDesc.Streams[1], PayrollService_DownloadPayroll_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[DownloadRequest, DownloadResponse]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

func (c *payrollServiceClient) Chat(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[ChatMessage, ChatMessage], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &PayrollService_ServiceDesc.Streams[2], PayrollService_Chat_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	return &grpc.GenericClientStream[ChatMessage, ChatMessage]{ClientStream: stream}, nil
}

// PayrollServiceServer is the server API for PayrollService.
// Implementations must embed UnimplementedPayrollServiceServer.
type PayrollServiceServer interface {
	UploadPayroll(grpc.ClientStreamingServer[Chunk, UploadStatus]) error
	DownloadPayroll(*DownloadRequest, grpc.ServerStreamingServer[DownloadResponse]) error
	Chat(grpc.BidiStreamingServer[ChatMessage, ChatMessage]) error
	mustEmbedUnimplementedPayrollServiceServer()
}

type UnimplementedPayrollServiceServer struct{}

func (UnimplementedPayrollServiceServer) UploadPayroll(grpc.ClientStreamingServer[Chunk, UploadStatus]) error {
	return status.Errorf(codes.Unimplemented, "method UploadPayroll not implemented")
}

func (UnimplementedPayrollServiceServer) DownloadPayroll(*DownloadRequest, grpc.ServerStreamingServer[DownloadResponse]) error {
	return status.Errorf(codes.Unimplemented, "method DownloadPayroll not implemented")
}

func (UnimplementedPayrollServiceServer) Chat(grpc.BidiStreamingServer[ChatMessage, ChatMessage]) error {
	return status.Errorf(codes.Unimplemented, "method Chat not implemented")
}

func (UnimplementedPayrollServiceServer) mustEmbedUnimplementedPayrollServiceServer() {}

func RegisterPayrollServiceServer(s grpc.ServiceRegistrar, srv PayrollServiceServer) {
	s.RegisterService(&PayrollService_ServiceDesc, srv)
}

func _PayrollService_UploadPayroll_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(PayrollServiceServer).UploadPayroll(&grpc.GenericServerStream[Chunk, UploadStatus]{ServerStream: stream})
}

func _PayrollService_DownloadPayroll_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(DownloadRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(PayrollServiceServer).DownloadPayroll(m, &grpc.GenericServerStream[DownloadRequest, DownloadResponse]{ServerStream: stream})
}

func _PayrollService_Chat_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(PayrollServiceServer).Chat(&grpc.GenericServerStream[ChatMessage, ChatMessage]{ServerStream: stream})
}

// PayrollService_ServiceDesc is the grpc.ServiceDesc for PayrollService.
var PayrollService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "transferbench.PayrollService",
	HandlerType: (*PayrollServiceServer)(nil),
	Methods:     []grpc.MethodDesc{},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "UploadPayroll",
			Handler:       _PayrollService_UploadPayroll_Handler,
			ClientStreams: true,
		},
		{
			StreamName:    "DownloadPayroll",
			Handler:       _PayrollService_DownloadPayroll_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "Chat",
			Handler:       _PayrollService_Chat_Handler,
			ServerStreams: true,
			ClientStreams: true,
		},
	},
	Metadata: "transferbench.proto",
}
