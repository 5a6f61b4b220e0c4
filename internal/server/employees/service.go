// Package employees serves the read-only employee data set to the gRPC and
// REST transports.
package employees

import (
	"context"
	"fmt"
	"math"

	"github.com/dmitrijs2005/transferbench/internal/common"
	"github.com/dmitrijs2005/transferbench/internal/logging"
)

// Cache stores JSON-encodable values by key. A miss is (false, nil).
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any) error
}

type Service struct {
	repo   Repository
	cache  Cache
	logger logging.Logger
}

// NewService builds the service; cache may be nil.
func NewService(repo Repository, cache Cache, logger logging.Logger) *Service {
	return &Service{repo: repo, cache: cache, logger: logger.With("module", "employees")}
}

// Stream emits rows one by one until the source is exhausted or max rows
// were sent (max <= 0 means all). It returns the number of rows emitted.
func (s *Service) Stream(ctx context.Context, max int, fn func(Employee) error) (int, error) {
	n := 0
	err := s.repo.Each(ctx, max, func(e Employee) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(e); err != nil {
			return err
		}
		n++
		return nil
	})
	return n, err
}

// StreamBatches is Stream with rows grouped into batches of batchSize
// (DefaultBatchSize when batchSize <= 0). The last batch may be short.
func (s *Service) StreamBatches(ctx context.Context, max, batchSize int, fn func([]Employee) error) (int, error) {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	n := 0
	batch := make([]Employee, 0, batchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(batch); err != nil {
			return err
		}
		n += len(batch)
		batch = make([]Employee, 0, batchSize)
		return nil
	}

	err := s.repo.Each(ctx, max, func(e Employee) error {
		batch = append(batch, e)
		if len(batch) == batchSize {
			return flush()
		}
		return nil
	})
	if err != nil {
		return n, err
	}
	return n, flush()
}

// Page returns one page of rows. page starts at 1 and pageSize must be in
// [1, MaxPageSize]; anything else, including a page whose row offset does
// not fit in an int, is common.ErrorInvalidPage.
func (s *Service) Page(ctx context.Context, page, pageSize int) (*Page, error) {
	if page < 1 || pageSize < 1 || pageSize > MaxPageSize || page-1 > math.MaxInt/pageSize {
		return nil, fmt.Errorf("page %d size %d: %w", page, pageSize, common.ErrorInvalidPage)
	}

	key := fmt.Sprintf("employees:page:%d:%d", page, pageSize)
	if s.cache != nil {
		var cached Page
		ok, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			s.logger.Warn(ctx, "page cache read failed", "key", key, "error", err)
		} else if ok {
			return &cached, nil
		}
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.List(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}

	p := &Page{
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int((total + int64(pageSize) - 1) / int64(pageSize)),
		Items:      items,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, p); err != nil {
			s.logger.Warn(ctx, "page cache write failed", "key", key, "error", err)
		}
	}

	return p, nil
}
