package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/transferbench/internal/client/models"
	"github.com/dmitrijs2005/transferbench/internal/dbx"
	"github.com/google/uuid"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Save inserts r, assigning an Id when it has none.
func (r *SQLiteRepository) Save(ctx context.Context, rep *models.Report) error {
	if rep.Id == "" {
		rep.Id = uuid.NewString()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO reports (id, scenario, transport, records, bytes, elapsed_ns, alloc_bytes, num_gc, error, started_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rep.Id, rep.Scenario, rep.Transport, rep.Records, rep.Bytes, int64(rep.Elapsed),
		int64(rep.AllocBytes), int64(rep.NumGC), rep.Error, rep.StartedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to insert report: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context, scenario string, limit int) ([]models.Report, error) {
	query := `SELECT id, scenario, transport, records, bytes, elapsed_ns, alloc_bytes, num_gc, error, started_at
		FROM reports`
	var args []any
	if scenario != "" {
		query += ` WHERE scenario = ?`
		args = append(args, scenario)
	}
	query += ` ORDER BY started_at DESC, id`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select reports: %w", err)
	}
	defer rows.Close()

	var result []models.Report
	for rows.Next() {
		var (
			item              models.Report
			elapsed, started  int64
			allocBytes, numGC int64
		)
		if err := rows.Scan(&item.Id, &item.Scenario, &item.Transport, &item.Records, &item.Bytes,
			&elapsed, &allocBytes, &numGC, &item.Error, &started); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		item.Elapsed = time.Duration(elapsed)
		item.AllocBytes = uint64(allocBytes)
		item.NumGC = uint32(numGC)
		item.StartedAt = time.Unix(0, started).UTC()
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate report rows: %w", err)
	}

	return result, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM reports`)
	if err != nil {
		return fmt.Errorf("failed to clear reports: %w", err)
	}
	return nil
}
