package evaluations

import (
	"time"

	"placement-backend/internal/assessment"
)

// Evaluation is a stored evaluation: the submitted request and the
// assembled response.
type Evaluation struct {
	ID          string              `json:"id"`
	Status      assessment.Status   `json:"status"`
	Score       int                 `json:"score"`
	Source      string              `json:"source"`
	Fingerprint string              `json:"fingerprint"`
	Request     assessment.Request  `json:"request"`
	Result      assessment.Response `json:"result"`
	CreatedAt   time.Time           `json:"createdAt"`
}

// Page is a window of evaluation history with the bounds actually applied.
type Page struct {
	Items  []Evaluation
	Limit  int
	Offset int
}

// Summary is the list view of an Evaluation.
type Summary struct {
	ID        string            `json:"id"`
	Status    assessment.Status `json:"status"`
	Score     int               `json:"score"`
	CreatedAt time.Time         `json:"createdAt"`
}

// Summary returns the list view of e.
func (e Evaluation) Summary() Summary {
	return Summary{ID: e.ID, Status: e.Status, Score: e.Score, CreatedAt: e.CreatedAt}
}
