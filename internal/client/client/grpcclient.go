package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dmitrijs2005/transferbench/internal/common"
	"github.com/dmitrijs2005/transferbench/internal/compressx"
	"github.com/dmitrijs2005/transferbench/internal/filex"
	pb "github.com/dmitrijs2005/transferbench/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL  string
	conn         *grpc.ClientConn
	payroll      pb.PayrollServiceClient
	employees    pb.EmployeeServiceClient
	health       healthpb.HealthClient
	accessToken  string
	compressor   string
	downloadsDir string
	progress     Progress
	counter      *byteCounter
	dialOptions  []grpc.DialOption
}

type Option func(*GRPCClient)

func WithAccessToken(token string) Option {
	return func(c *GRPCClient) { c.accessToken = token }
}

// WithCompressor enables a registered gRPC compressor, e.g. compressx.Name.
func WithCompressor(name string) Option {
	return func(c *GRPCClient) { c.compressor = name }
}

func WithDownloadsDir(dir string) Option {
	return func(c *GRPCClient) { c.downloadsDir = dir }
}

func WithProgress(p Progress) Option {
	return func(c *GRPCClient) { c.progress = p }
}

// WithDialOptions appends raw dial options, e.g. an in-memory dialer.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(c *GRPCClient) { c.dialOptions = append(c.dialOptions, opts...) }
}

func NewGRPCClient(endpointURL string, opts ...Option) (*GRPCClient, error) {
	c := &GRPCClient{
		endpointURL:  endpointURL,
		downloadsDir: common.DownloadsDir,
		progress:     nopProgress{},
		counter:      &byteCounter{},
	}
	for _, o := range opts {
		o(c)
	}

	if c.compressor != "" && !compressx.Supported(c.compressor) {
		return nil, fmt.Errorf("unknown compressor %q", c.compressor)
	}

	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *GRPCClient) InitGRPCClient() error {
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		pb.ClientCodec(),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
		grpc.WithStreamInterceptor(c.accessTokenStreamInterceptor),
		grpc.WithStatsHandler(c.counter),
	}
	if c.compressor != "" {
		opts = append(opts, grpc.WithDefaultCallOptions(grpc.UseCompressor(c.compressor)))
	}
	opts = append(opts, c.dialOptions...)

	conn, err := grpc.NewClient(c.endpointURL, opts...)
	if err != nil {
		return err
	}

	c.conn = conn
	c.payroll = pb.NewPayrollServiceClient(conn)
	c.employees = pb.NewEmployeeServiceClient(conn)
	c.health = healthpb.NewHealthClient(conn)
	return nil
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

// BytesReceived and BytesSent report wire bytes since the client was created.
func (c *GRPCClient) BytesReceived() int64 {
	return c.counter.in.Load()
}

func (c *GRPCClient) BytesSent() int64 {
	return c.counter.out.Load()
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (c *GRPCClient) accessTokenInterceptor(ctx context.Context, method string, req, reply interface{},
	cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
	if c.accessToken != "" {
		ctx = withAccessToken(ctx, c.accessToken)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func (c *GRPCClient) accessTokenStreamInterceptor(ctx context.Context, desc *grpc.StreamDesc, cc *grpc.ClientConn,
	method string, streamer grpc.Streamer, opts ...grpc.CallOption) (grpc.ClientStream, error) {
	if c.accessToken != "" {
		ctx = withAccessToken(ctx, c.accessToken)
	}
	return streamer(ctx, desc, cc, method, opts...)
}

func (c *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.NotFound:
		return ErrNotFound
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidArgument, st.Message())
	case codes.Canceled:
		return context.Canceled
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func (c *GRPCClient) Ping(ctx context.Context) error {
	resp, err := c.health.Check(ctx, &healthpb.HealthCheckRequest{})
	if err != nil {
		return c.mapError(err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return ErrUnavailable
	}
	return nil
}

type UploadResult struct {
	Name          string
	BytesSent     int64
	Chunks        int
	BytesReceived int64
	Checksum      string
	Message       string
}

// Upload sends the file at path in ChunkSize chunks. The first chunk carries
// the base name, so an empty file still produces one named chunk.
func (c *GRPCClient) Upload(ctx context.Context, path string) (*UploadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	res := &UploadResult{Name: filepath.Base(path)}

	stream, err := c.payroll.UploadPayroll(ctx)
	if err != nil {
		return nil, c.mapError(err)
	}

	c.progress.Start(res.Name, fi.Size())
	defer c.progress.Done()

	buf := make([]byte, common.ChunkSize)
	for {
		n, rerr := io.ReadFull(f, buf)
		if n > 0 || res.Chunks == 0 {
			chunk := &pb.Chunk{Content: buf[:n]}
			if res.Chunks == 0 {
				chunk.FileName = res.Name
			}
			if err := stream.Send(chunk); err != nil {
				// io.EOF means the server already replied; the status comes from CloseAndRecv
				if errors.Is(err, io.EOF) {
					break
				}
				return res, c.mapError(err)
			}
			res.Chunks++
			res.BytesSent += int64(n)
			c.progress.Advance(n)
		}
		if errors.Is(rerr, io.EOF) || errors.Is(rerr, io.ErrUnexpectedEOF) {
			break
		}
		if rerr != nil {
			return res, fmt.Errorf("read %s: %w", path, rerr)
		}
	}

	reply, err := stream.CloseAndRecv()
	if err != nil {
		return res, c.mapError(err)
	}

	res.BytesReceived = reply.GetBytesReceived()
	res.Checksum = reply.GetChecksum()
	res.Message = reply.GetMessage()

	if !reply.GetSuccess() {
		return res, fmt.Errorf("%w: %s", ErrUploadRejected, reply.GetMessage())
	}
	return res, nil
}

type DownloadResult struct {
	Name   string
	Path   string
	Size   int64
	Bytes  int64
	Chunks int
}

// Download reconstructs name under the downloads directory. The output file
// is created only once the metadata arrived and every chunk is written as
// soon as it is received, so a cancelled download keeps exactly the chunks
// received before the cancellation.
func (c *GRPCClient) Download(ctx context.Context, name string) (*DownloadResult, error) {
	stream, err := c.payroll.DownloadPayroll(ctx, &pb.DownloadRequest{FileName: name})
	if err != nil {
		return nil, c.mapError(err)
	}

	first, err := stream.Recv()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty response", ErrProtocol)
		}
		return nil, c.mapError(err)
	}

	var md *pb.FileMetadata
	switch p := first.GetPayload().(type) {
	case *pb.DownloadResponse_Metadata:
		md = p.Metadata
	case *pb.DownloadResponse_Chunk:
		return nil, fmt.Errorf("%w: chunk before metadata", ErrProtocol)
	default:
		return nil, fmt.Errorf("%w: empty payload", ErrProtocol)
	}

	local, err := filex.SafeName(md.GetFileName())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProtocol, err)
	}
	dir, err := filex.EnsureDir(c.downloadsDir)
	if err != nil {
		return nil, err
	}

	res := &DownloadResult{Name: local, Path: filepath.Join(dir, local), Size: md.GetSize()}

	f, err := os.Create(res.Path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", res.Path, err)
	}
	defer f.Close()

	c.progress.Start(local, res.Size)
	defer c.progress.Done()

	for {
		msg, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return res, c.mapError(err)
		}
		if err := ctx.Err(); err != nil {
			return res, err
		}

		switch p := msg.GetPayload().(type) {
		case *pb.DownloadResponse_Chunk:
			if _, err := f.Write(p.Chunk); err != nil {
				return res, fmt.Errorf("write %s: %w", res.Path, err)
			}
			res.Chunks++
			res.Bytes += int64(len(p.Chunk))
			c.progress.Advance(len(p.Chunk))
		case *pb.DownloadResponse_Metadata:
			return res, fmt.Errorf("%w: repeated metadata", ErrProtocol)
		default:
			return res, fmt.Errorf("%w: empty payload", ErrProtocol)
		}
	}

	if res.Bytes != res.Size {
		return res, fmt.Errorf("%w: expected %d bytes, got %d", ErrProtocol, res.Size, res.Bytes)
	}
	return res, nil
}

// StreamEmployees reads the row stream; fn may be nil. It returns the number
// of rows received.
func (c *GRPCClient) StreamEmployees(ctx context.Context, max int32, fn func(*pb.Employee)) (int, error) {
	stream, err := c.employees.StreamEmployees(ctx, &pb.EmployeeStreamRequest{MaxCount: max})
	if err != nil {
		return 0, c.mapError(err)
	}

	n := 0
	for {
		e, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, c.mapError(err)
		}
		n++
		if fn != nil {
			fn(e)
		}
	}
}

// StreamEmployeeBatches is StreamEmployees over the batched RPC.
func (c *GRPCClient) StreamEmployeeBatches(ctx context.Context, max, batchSize int32, fn func(*pb.Employee)) (int, error) {
	stream, err := c.employees.StreamEmployeeBatches(ctx, &pb.EmployeeStreamRequest{MaxCount: max, BatchSize: batchSize})
	if err != nil {
		return 0, c.mapError(err)
	}

	n := 0
	for {
		b, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, c.mapError(err)
		}
		for _, e := range b.GetEmployees() {
			n++
			if fn != nil {
				fn(e)
			}
		}
	}
}

func (c *GRPCClient) ListEmployees(ctx context.Context, page, pageSize int32) (*pb.EmployeePage, error) {
	resp, err := c.employees.ListEmployees(ctx, &pb.EmployeePageRequest{Page: page, PageSize: pageSize})
	if err != nil {
		return nil, c.mapError(err)
	}
	return resp, nil
}

// Chat sends every line read from in as a message from sender and hands
// each relayed message to out. It returns once in is exhausted and the
// server closed the stream.
func (c *GRPCClient) Chat(ctx context.Context, sender string, in io.Reader, out func(*pb.ChatMessage)) error {
	stream, err := c.payroll.Chat(ctx)
	if err != nil {
		return c.mapError(err)
	}

	var (
		wg      sync.WaitGroup
		recvErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			m, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				recvErr = err
				return
			}
			if out != nil {
				out(m)
			}
		}
	}()

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		msg := &pb.ChatMessage{Sender: sender, Text: sc.Text(), SentAtUnixNano: time.Now().UnixNano()}
		if err := stream.Send(msg); err != nil {
			break
		}
	}
	scanErr := sc.Err()

	_ = stream.CloseSend()
	wg.Wait()

	if recvErr != nil {
		return c.mapError(recvErr)
	}
	if scanErr != nil {
		return fmt.Errorf("read input: %w", scanErr)
	}
	return nil
}
