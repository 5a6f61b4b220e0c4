package employees

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/transferbench/internal/common"
)

var (
	firstNames  = []string{"Alice", "Bob", "Carol", "Dave", "Erin", "Frank", "Grace", "Heidi", "Ivan", "Judy"}
	lastNames   = []string{"Smith", "Jones", "Brown", "Taylor", "Wilson", "Davies", "Evans", "Thomas"}
	departments = []string{"Engineering", "Finance", "Sales", "Marketing", "Support", "Operations"}
	epoch       = time.Date(1960, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// Synthetic generates a deterministic data set in memory. Row i (1-based)
// is identical to the one seeded into Postgres by the migrations.
type Synthetic struct {
	rows int
}

func NewSynthetic(rows int) *Synthetic {
	if rows < 0 {
		rows = 0
	}
	return &Synthetic{rows: rows}
}

// Row builds the employee with the given id.
func Row(id int64) Employee {
	return Employee{
		ID:          id,
		Name:        firstNames[id%10] + " " + lastNames[(id/10)%8],
		Department:  departments[id%6],
		Salary:      float64(40000 + (id*7919)%60000),
		DateOfBirth: epoch.AddDate(0, 0, int((id*37)%14000)).Format(time.DateOnly),
	}
}

func (s *Synthetic) Count(ctx context.Context) (int64, error) {
	return int64(s.rows), nil
}

func (s *Synthetic) List(ctx context.Context, offset, limit int) ([]Employee, error) {
	if offset < 0 || limit < 0 {
		return nil, fmt.Errorf("offset %d limit %d: %w", offset, limit, common.ErrorInvalidPage)
	}
	if offset >= s.rows {
		return []Employee{}, nil
	}
	end := offset + min(limit, s.rows-offset)

	out := make([]Employee, 0, end-offset)
	for id := offset + 1; id <= end; id++ {
		out = append(out, Row(int64(id)))
	}
	return out, nil
}

func (s *Synthetic) Each(ctx context.Context, limit int, fn func(Employee) error) error {
	n := s.rows
	if limit > 0 && limit < n {
		n = limit
	}
	for id := 1; id <= n; id++ {
		if err := fn(Row(int64(id))); err != nil {
			return err
		}
	}
	return nil
}
