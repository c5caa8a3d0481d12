package evaluations

import "context"

// Repo defines persistence operations for evaluations.
type Repo interface {
	Create(ctx context.Context, evaluation Evaluation) error
	GetByID(ctx context.Context, id string) (Evaluation, error)
	List(ctx context.Context, limit, offset int) ([]Evaluation, error)
}

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// ClampPage bounds limit to 1..100 (0 or less means 20) and offset to >= 0.
func ClampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
