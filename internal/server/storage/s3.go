package storage

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/dmitrijs2005/transferbench/internal/common"
	"github.com/dmitrijs2005/transferbench/internal/filex"
)

// loadDefaultAWSConfig is a seam for tests.
var loadDefaultAWSConfig = config.LoadDefaultConfig

// S3Config holds connection settings for an S3-compatible backend (MinIO in
// development).
type S3Config struct {
	Bucket       string
	Region       string
	AccessKey    string
	SecretKey    string
	BaseEndpoint string
	// Prefix is prepended to every object key.
	Prefix string
}

// S3Store keeps payroll files as objects in one bucket.
type S3Store struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
	prefix  string
}

func NewS3Store(ctx context.Context, c S3Config) (*S3Store, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(c.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(c.AccessKey, c.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if c.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(c.BaseEndpoint)
		}
		o.UsePathStyle = true
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
		o.ResponseChecksumValidation = aws.ResponseChecksumValidationWhenRequired
	})

	return &S3Store{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  c.Bucket,
		prefix:  c.Prefix,
	}, nil
}

func (s *S3Store) key(name string) string {
	return s.prefix + name
}

// Create spools the upload into a local temporary file; Commit sends it with a
// single PutObject so a cancelled upload never produces a partial object.
func (s *S3Store) Create(ctx context.Context, name string) (Writer, error) {
	name, err := filex.SafeName(name)
	if err != nil {
		return nil, err
	}

	f, err := os.CreateTemp("", "transferbench-s3-*")
	if err != nil {
		return nil, fmt.Errorf("create spool file: %w", err)
	}

	return &s3Writer{
		ctx:   ctx,
		store: s,
		key:   s.key(name),
		f:     f,
		buf:   bufio.NewWriterSize(f, common.ChunkSize),
	}, nil
}

func (s *S3Store) Open(ctx context.Context, name string) (io.ReadCloser, FileInfo, error) {
	name, err := filex.SafeName(name)
	if err != nil {
		return nil, FileInfo{}, err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, FileInfo{}, fmt.Errorf("%s: %w", name, common.ErrorNotFound)
		}
		return nil, FileInfo{}, fmt.Errorf("get object %s: %w", name, err)
	}

	return out.Body, FileInfo{Name: name, Size: aws.ToInt64(out.ContentLength)}, nil
}

func (s *S3Store) PresignGet(ctx context.Context, name string, ttl time.Duration) (string, error) {
	name, err := filex.SafeName(name)
	if err != nil {
		return "", err
	}

	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", name, err)
	}
	return req.URL, nil
}

func isNotFound(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return true
	}
	var ae smithy.APIError
	if errors.As(err, &ae) && (ae.ErrorCode() == "NoSuchKey" || ae.ErrorCode() == "NotFound") {
		return true
	}
	var re interface{ HTTPStatusCode() int }
	return errors.As(err, &re) && re.HTTPStatusCode() == http.StatusNotFound
}

type s3Writer struct {
	ctx   context.Context
	store *S3Store
	key   string
	f     *os.File
	buf   *bufio.Writer
	size  int64
	done  bool
}

func (w *s3Writer) Write(p []byte) (int, error) {
	n, err := w.buf.Write(p)
	w.size += int64(n)
	return n, err
}

func (w *s3Writer) Commit() error {
	if w.done {
		return errors.New("writer already finished")
	}
	w.done = true
	defer w.cleanup()

	if err := w.buf.Flush(); err != nil {
		return fmt.Errorf("flush spool: %w", err)
	}
	if _, err := w.f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind spool: %w", err)
	}

	_, err := w.store.client.PutObject(w.ctx, &s3.PutObjectInput{
		Bucket:        aws.String(w.store.bucket),
		Key:           aws.String(w.key),
		Body:          w.f,
		ContentLength: aws.Int64(w.size),
		ContentType:   aws.String("application/octet-stream"),
	})
	if err != nil {
		return fmt.Errorf("put object: %w", err)
	}
	return nil
}

func (w *s3Writer) Abort() error {
	if w.done {
		return nil
	}
	w.done = true
	w.cleanup()
	return nil
}

func (w *s3Writer) cleanup() {
	_ = w.f.Close()
	_ = os.Remove(w.f.Name())
}
