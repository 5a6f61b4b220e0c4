package employees

import "context"

// Repository is a read-only source of employee rows ordered by id.
type Repository interface {
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, offset, limit int) ([]Employee, error)
	// Each calls fn for every row in id order, at most limit rows when
	// limit > 0. Iteration stops at the first error returned by fn.
	Each(ctx context.Context, limit int, fn func(Employee) error) error
}
