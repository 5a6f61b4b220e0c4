package reports

import (
	"context"

	"github.com/dmitrijs2005/transferbench/internal/client/models"
)

// Repository stores reports. List returns the newest first; limit <= 0
// means no limit.
type Repository interface {
	Save(ctx context.Context, r *models.Report) error
	List(ctx context.Context, scenario string, limit int) ([]models.Report, error)
	Clear(ctx context.Context) error
}
