package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/transferbench/internal/common"
	pb "github.com/dmitrijs2005/transferbench/internal/proto"
	"github.com/dmitrijs2005/transferbench/internal/server/employees"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func toProtoEmployee(e employees.Employee) *pb.Employee {
	return &pb.Employee{
		Id:          e.ID,
		Name:        e.Name,
		Department:  e.Department,
		Salary:      e.Salary,
		DateOfBirth: e.DateOfBirth,
	}
}

func toProtoEmployees(es []employees.Employee) []*pb.Employee {
	out := make([]*pb.Employee, len(es))
	for i, e := range es {
		out[i] = toProtoEmployee(e)
	}
	return out
}

func (s *GRPCServer) StreamEmployees(req *pb.EmployeeStreamRequest, stream grpc.ServerStreamingServer[pb.Employee]) error {
	ctx := stream.Context()

	n, err := s.employees.Stream(ctx, int(req.GetMaxCount()), func(e employees.Employee) error {
		return stream.Send(toProtoEmployee(e))
	})

	return s.finishEmployeeStream(ctx, "employee stream", n, err)
}

func (s *GRPCServer) StreamEmployeeBatches(req *pb.EmployeeStreamRequest, stream grpc.ServerStreamingServer[pb.EmployeeBatch]) error {
	ctx := stream.Context()

	n, err := s.employees.StreamBatches(ctx, int(req.GetMaxCount()), int(req.GetBatchSize()), func(batch []employees.Employee) error {
		return stream.Send(&pb.EmployeeBatch{Employees: toProtoEmployees(batch)})
	})

	return s.finishEmployeeStream(ctx, "employee batch stream", n, err)
}

func (s *GRPCServer) finishEmployeeStream(ctx context.Context, what string, n int, err error) error {
	if err == nil {
		s.logger.Debug(ctx, what+" complete", "rows", n)
		return nil
	}
	if isCancelled(ctx, err) {
		s.logger.Info(ctx, what+" cancelled", "rows", n)
		return nil
	}
	s.logger.Error(ctx, what+" failed", "rows", n, "error", err)
	return status.Error(codes.Internal, "internal error")
}

// ListEmployees is the unary baseline. Zero page or page size fall back to
// the defaults.
func (s *GRPCServer) ListEmployees(ctx context.Context, req *pb.EmployeePageRequest) (*pb.EmployeePage, error) {
	page, size := int(req.GetPage()), int(req.GetPageSize())
	if page == 0 {
		page = 1
	}
	if size == 0 {
		size = employees.DefaultPageSize
	}

	p, err := s.employees.Page(ctx, page, size)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidPage) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		s.logger.Error(ctx, "list employees failed", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.EmployeePage{
		Employees:  toProtoEmployees(p.Items),
		TotalCount: p.TotalCount,
		Page:       int32(p.Page),
		PageSize:   int32(p.PageSize),
		TotalPages: int32(p.TotalPages),
	}, nil
}
