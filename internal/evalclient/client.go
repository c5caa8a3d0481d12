package evalclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"placement-backend/internal/assessment"
)

const maxErrorBody = 512

// Client calls the remote evaluation service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a Client. A zero timeout leaves the runtime default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Evaluate submits scores and feedback to POST /api/evaluate.
func (c *Client) Evaluate(ctx context.Context, req assessment.Request) (assessment.Response, error) {
	var out assessment.Response
	payload, err := json.Marshal(req)
	if err != nil {
		return out, fmt.Errorf("encode evaluation request: %w", err)
	}
	err = c.do(ctx, "evaluate", http.MethodPost, "/api/evaluate", payload, &out)
	return out, err
}

// Requirements fetches the role catalog from GET /api/requirements.
func (c *Client) Requirements(ctx context.Context) ([]assessment.RoleRequirement, error) {
	var out []assessment.RoleRequirement
	err := c.do(ctx, "requirements", http.MethodGet, "/api/requirements", nil, &out)
	return out, err
}

// SkillWeights fetches GET /api/skill-weights.
func (c *Client) SkillWeights(ctx context.Context) (map[string]float64, error) {
	var out struct {
		Success bool               `json:"success"`
		Weights map[string]float64 `json:"skill_weights"`
	}
	if err := c.do(ctx, "skill-weights", http.MethodGet, "/api/skill-weights", nil, &out); err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, &ServiceError{Op: "skill-weights", Err: errors.New("service reported failure")}
	}
	return out.Weights, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, payload []byte, dst any) error {
	if c.baseURL == "" {
		return &ServiceError{Op: op, Err: errNoService}
	}
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &ServiceError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &ServiceError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &ServiceError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        errors.New(strings.TrimSpace(string(snippet))),
		}
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return &ServiceError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
