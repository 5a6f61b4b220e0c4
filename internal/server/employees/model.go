package employees

// Employee is a flat read-only row of the demo data set.
type Employee struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Department  string  `json:"department"`
	Salary      float64 `json:"salary"`
	DateOfBirth string  `json:"dateOfBirth"`
}

// Page is one page of employees plus totals for the whole data set.
type Page struct {
	TotalCount int64      `json:"totalCount"`
	Page       int        `json:"page"`
	PageSize   int        `json:"pageSize"`
	TotalPages int        `json:"totalPages"`
	Items      []Employee `json:"items"`
}

const (
	DefaultPageSize      = 50
	MaxPageSize          = 1000
	DefaultBatchSize     = 100
	DefaultSyntheticRows = 10000
)
