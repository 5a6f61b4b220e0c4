package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	EmployeeService_StreamEmployees_FullMethodName       = "/transferbench.EmployeeService/StreamEmployees"
	EmployeeService_StreamEmployeeBatches_FullMethodName = "/transferbench.EmployeeService/StreamEmployeeBatches"
	EmployeeService_ListEmployees_FullMethodName         = "/transferbench.EmployeeService/ListEmployees"
)

// EmployeeServiceClient is the client API for EmployeeService.
type EmployeeServiceClient interface {
	StreamEmployees(ctx context.Context, in *EmployeeStreamRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Employee], error)
	StreamEmployeeBatches(ctx context.Context, in *EmployeeStreamRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[EmployeeBatch], error)
	ListEmployees(ctx context.Context, in *EmployeePageRequest, opts ...grpc.CallOption) (*EmployeePage, error)
}

type employeeServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewEmployeeServiceClient(cc grpc.ClientConnInterface) EmployeeServiceClient {
	return &employeeServiceClient{cc}
}

func (c *employeeServiceClient) StreamEmployees(ctx context.Context, in *EmployeeStreamRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Employee], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &EmployeeService_ServiceDesc.Streams[0], EmployeeService_StreamEmployees_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[EmployeeStreamRequest, Employee]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

func (c *employeeServiceClient) StreamEmployeeBatches(ctx context.Context, in *EmployeeStreamRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[EmployeeBatch], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &EmployeeService_ServiceDesc.Streams[1], EmployeeService_StreamEmployeeBatches_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[EmployeeStreamRequest, EmployeeBatch]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

func (c *employeeServiceClient) ListEmployees(ctx context.Context, in *EmployeePageRequest, opts ...grpc.CallOption) (*EmployeePage, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(EmployeePage)
	err := c.cc.Invoke(ctx, EmployeeService_ListEmployees_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// EmployeeServiceServer is the server API for EmployeeService.
// Implementations must embed UnimplementedEmployeeServiceServer.
type EmployeeServiceServer interface {
	StreamEmployees(*EmployeeStreamRequest, grpc.ServerStreamingServer[Employee]) error
	StreamEmployeeBatches(*EmployeeStreamRequest, grpc.ServerStreamingServer[EmployeeBatch]) error
	ListEmployees(context.Context, *EmployeePageRequest) (*EmployeePage, error)
	mustEmbedUnimplementedEmployeeServiceServer()
}

type UnimplementedEmployeeServiceServer struct{}

func (UnimplementedEmployeeServiceServer) StreamEmployees(*EmployeeStreamRequest, grpc.ServerStreamingServer[Employee]) error {
	return status.Errorf(codes.Unimplemented, "method StreamEmployees not implemented")
}

func (UnimplementedEmployeeServiceServer) StreamEmployeeBatches(*EmployeeStreamRequest, grpc.ServerStreamingServer[EmployeeBatch]) error {
	return status.Errorf(codes.Unimplemented, "method StreamEmployeeBatches not implemented")
}

func (UnimplementedEmployeeServiceServer) ListEmployees(context.Context, *EmployeePageRequest) (*EmployeePage, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListEmployees not implemented")
}

func (UnimplementedEmployeeServiceServer) mustEmbedUnimplementedEmployeeServiceServer() {}

func RegisterEmployeeServiceServer(s grpc.ServiceRegistrar, srv EmployeeServiceServer) {
	s.RegisterService(&EmployeeService_ServiceDesc, srv)
}

func _EmployeeService_StreamEmployees_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(EmployeeStreamRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(EmployeeServiceServer).StreamEmployees(m, &grpc.GenericServerStream[EmployeeStreamRequest, Employee]{ServerStream: stream})
}

func _EmployeeService_StreamEmployeeBatches_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(EmployeeStreamRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(EmployeeServiceServer).StreamEmployeeBatches(m, &grpc.GenericServerStream[EmployeeStreamRequest, EmployeeBatch]{ServerStream: stream})
}

func _EmployeeService_ListEmployees_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EmployeePageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EmployeeServiceServer).ListEmployees(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EmployeeService_ListEmployees_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EmployeeServiceServer).ListEmployees(ctx, req.(*EmployeePageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// EmployeeService_ServiceDesc is the grpc.ServiceDesc for EmployeeService.
var EmployeeService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "transferbench.EmployeeService",
	HandlerType: (*EmployeeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListEmployees",
			Handler:    _EmployeeService_ListEmployees_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "StreamEmployees",
			Handler:       _EmployeeService_StreamEmployees_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "StreamEmployeeBatches",
			Handler:       _EmployeeService_StreamEmployeeBatches_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "transferbench.proto",
}
