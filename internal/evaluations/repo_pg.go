package evaluations

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"placement-backend/internal/assessment"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const selectColumns = `id, status, source, fingerprint, score, request, result, created_at`

// Create inserts a new evaluation.
func (r *PGRepo) Create(ctx context.Context, evaluation Evaluation) error {
	const query = `
INSERT INTO evaluations (id, status, source, fingerprint, score, request, result, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	requestPayload, err := json.Marshal(evaluation.Request)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	resultPayload, err := json.Marshal(evaluation.Result)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	_, err = r.DB.ExecContext(ctx, query,
		evaluation.ID,
		string(evaluation.Status),
		evaluation.Source,
		evaluation.Fingerprint,
		evaluation.Score,
		requestPayload,
		resultPayload,
		evaluation.CreatedAt,
	)
	return err
}

// GetByID returns an evaluation by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Evaluation, error) {
	query := `SELECT ` + selectColumns + ` FROM evaluations WHERE id = $1 LIMIT 1`
	evaluation, err := scanEvaluation(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Evaluation{}, ErrNotFound
		}
		return Evaluation{}, err
	}
	return evaluation, nil
}

// List returns evaluations newest first.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Evaluation, error) {
	limit, offset = ClampPage(limit, offset)
	query := `SELECT ` + selectColumns + `
FROM evaluations
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Evaluation{}
	for rows.Next() {
		evaluation, err := scanEvaluation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, evaluation)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvaluation(row rowScanner) (Evaluation, error) {
	var e Evaluation
	var status string
	var requestRaw, resultRaw []byte
	if err := row.Scan(
		&e.ID,
		&status,
		&e.Source,
		&e.Fingerprint,
		&e.Score,
		&requestRaw,
		&resultRaw,
		&e.CreatedAt,
	); err != nil {
		return Evaluation{}, err
	}
	e.Status = assessment.Status(status)
	if err := json.Unmarshal(requestRaw, &e.Request); err != nil {
		return Evaluation{}, fmt.Errorf("decode request for %s: %w", e.ID, err)
	}
	if err := json.Unmarshal(resultRaw, &e.Result); err != nil {
		return Evaluation{}, fmt.Errorf("decode result for %s: %w", e.ID, err)
	}
	return e, nil
}
