package grpc

import (
	"context"
	"errors"
	"testing"

	pb "github.com/dmitrijs2005/transferbench/internal/proto"
	"github.com/dmitrijs2005/transferbench/internal/server/chat"
	"github.com/dmitrijs2005/transferbench/internal/server/employees"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type brokenSource struct{ err error }

func (b brokenSource) Stream(context.Context, int, func(employees.Employee) error) (int, error) {
	return 0, b.err
}

func (b brokenSource) StreamBatches(context.Context, int, int, func([]employees.Employee) error) (int, error) {
	return 0, b.err
}

func (b brokenSource) Page(context.Context, int, int) (*employees.Page, error) {
	return nil, b.err
}

func TestStreamEmployees(t *testing.T) {
	s := newServer(t, nil)

	stream := &fakeSendStream[pb.Employee]{ctx: context.Background()}
	require.NoError(t, s.StreamEmployees(&pb.EmployeeStreamRequest{MaxCount: 10}, stream))

	require.Len(t, stream.sent, 10)
	want := employees.Row(1)
	assert.Equal(t, &pb.Employee{Id: 1, Name: want.Name, Department: want.Department, Salary: want.Salary, DateOfBirth: want.DateOfBirth}, stream.sent[0])
	assert.Equal(t, int64(10), stream.sent[9].Id)
}

func TestStreamEmployees_Unbounded(t *testing.T) {
	s := newServer(t, nil)

	stream := &fakeSendStream[pb.Employee]{ctx: context.Background()}
	require.NoError(t, s.StreamEmployees(&pb.EmployeeStreamRequest{}, stream))
	assert.Len(t, stream.sent, 100)
}

func TestStreamEmployees_CancelledIsNotAnError(t *testing.T) {
	s := newServer(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stream := &fakeSendStream[pb.Employee]{ctx: ctx}
	require.NoError(t, s.StreamEmployees(&pb.EmployeeStreamRequest{}, stream))
	assert.Empty(t, stream.sent)
}

func TestStreamEmployees_SourceError(t *testing.T) {
	s := NewGRPCServer("", nopLogger{}, nil, brokenSource{err: errors.New("db down")}, chat.NewHub(1, nopLogger{}), "")

	err := s.StreamEmployees(&pb.EmployeeStreamRequest{}, &fakeSendStream[pb.Employee]{ctx: context.Background()})
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestStreamEmployeeBatches(t *testing.T) {
	s := newServer(t, nil)

	stream := &fakeSendStream[pb.EmployeeBatch]{ctx: context.Background()}
	require.NoError(t, s.StreamEmployeeBatches(&pb.EmployeeStreamRequest{MaxCount: 95, BatchSize: 30}, stream))

	var sizes []int
	for _, b := range stream.sent {
		sizes = append(sizes, len(b.Employees))
	}
	assert.Equal(t, []int{30, 30, 30, 5}, sizes)
	assert.Equal(t, int64(95), stream.sent[3].Employees[4].Id)
}

func TestListEmployees(t *testing.T) {
	s := newServer(t, nil)

	page, err := s.ListEmployees(context.Background(), &pb.EmployeePageRequest{})
	require.NoError(t, err)
	assert.Equal(t, int32(1), page.Page)
	assert.Equal(t, int32(employees.DefaultPageSize), page.PageSize)
	assert.Equal(t, int64(100), page.TotalCount)
	assert.Equal(t, int32(2), page.TotalPages)
	assert.Len(t, page.Employees, 50)

	page, err = s.ListEmployees(context.Background(), &pb.EmployeePageRequest{Page: 4, PageSize: 30})
	require.NoError(t, err)
	assert.Len(t, page.Employees, 10)
	assert.Equal(t, int64(91), page.Employees[0].Id)
}

func TestListEmployees_Invalid(t *testing.T) {
	s := newServer(t, nil)

	_, err := s.ListEmployees(context.Background(), &pb.EmployeePageRequest{Page: -1})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.ListEmployees(context.Background(), &pb.EmployeePageRequest{PageSize: employees.MaxPageSize + 1})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestListEmployees_SourceError(t *testing.T) {
	s := NewGRPCServer("", nopLogger{}, nil, brokenSource{err: errors.New("db down")}, chat.NewHub(1, nopLogger{}), "")

	_, err := s.ListEmployees(context.Background(), &pb.EmployeePageRequest{})
	assert.Equal(t, codes.Internal, status.Code(err))
	assert.Equal(t, "internal error", status.Convert(err).Message())
}
