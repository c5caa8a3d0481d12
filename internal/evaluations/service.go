package evaluations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"placement-backend/internal/assessment"
	"placement-backend/internal/shared/cache"
	"placement-backend/internal/shared/metrics"
	"placement-backend/internal/shared/telemetry"
	"placement-backend/internal/shared/util"
)

const cacheKeyPrefix = "evaluation:"

// Cache stores evaluations by request fingerprint. *cache.Redis satisfies it.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) error
	SetJSON(ctx context.Context, key string, value any) error
}

// Service contains business logic for evaluations.
type Service struct {
	Repo  Repo
	Cache Cache
	Roles []assessment.RoleRequirement
	Now   func() time.Time
}

// NewService constructs a Service. A nil repo keeps history in memory and nil
// roles use the built-in catalog.
func NewService(repo Repo, c Cache, roles []assessment.RoleRequirement) *Service {
	if repo == nil {
		repo = NewMemoryRepo()
	}
	if len(roles) == 0 {
		roles = assessment.MockRoleRequirements()
	}
	return &Service{Repo: repo, Cache: c, Roles: roles}
}

// Fingerprint identifies a request independently of feedback whitespace.
func Fingerprint(req assessment.Request) (string, error) {
	req.Feedback = util.NormalizeText(req.Feedback)
	return util.HashJSON(req)
}

// Evaluate validates req, assembles the response and records it. An identical
// earlier request is answered from the cache when one is configured.
func (s *Service) Evaluate(ctx context.Context, req assessment.Request) (Evaluation, error) {
	start := time.Now()
	metrics.IncEvaluationStarted()

	if err := req.Validate(); err != nil {
		metrics.IncEvaluationFailed("validation")
		return Evaluation{}, err
	}

	fp, err := Fingerprint(req)
	if err != nil {
		metrics.IncEvaluationFailed("fingerprint")
		return Evaluation{}, fmt.Errorf("fingerprint request: %w", err)
	}

	if cached, ok := s.lookup(ctx, fp); ok && s.ensureStored(ctx, cached) {
		cached.Source = metrics.SourceCache
		metrics.IncEvaluationCompleted(metrics.SourceCache, string(cached.Status))
		metrics.ObserveEvaluationDuration(metrics.SourceCache, start)
		telemetry.Info("evaluation.cache_hit", map[string]any{"evaluation_id": cached.ID, "fingerprint": fp})
		return cached, nil
	}

	resp := assessment.Assemble(req, s.Roles)
	evaluation := Evaluation{
		ID:          uuid.NewString(),
		Status:      resp.Readiness.Status,
		Score:       resp.Readiness.Score,
		Source:      metrics.SourceService,
		Fingerprint: fp,
		Request:     req,
		Result:      resp,
		CreatedAt:   s.now(),
	}

	if err := s.Repo.Create(ctx, evaluation); err != nil {
		metrics.IncEvaluationFailed("storage")
		telemetry.Error("evaluation.persist_failed", map[string]any{"evaluation_id": evaluation.ID, "err": err})
		return Evaluation{}, fmt.Errorf("store evaluation: %w", err)
	}

	if s.Cache != nil {
		if err := s.Cache.SetJSON(ctx, cacheKeyPrefix+fp, evaluation); err != nil {
			telemetry.Warn("evaluation.cache_store_failed", map[string]any{"evaluation_id": evaluation.ID, "err": err})
		}
	}

	metrics.IncEvaluationCompleted(metrics.SourceService, string(evaluation.Status))
	metrics.ObserveEvaluationDuration(metrics.SourceService, start)
	telemetry.Info("evaluation.completed", map[string]any{
		"evaluation_id": evaluation.ID,
		"status":        evaluation.Status,
		"score":         evaluation.Score,
		"feedback":      util.Truncate(req.Feedback, 60),
		"duration_ms":   time.Since(start).Milliseconds(),
	})
	return evaluation, nil
}

func (s *Service) lookup(ctx context.Context, fp string) (Evaluation, bool) {
	if s.Cache == nil {
		return Evaluation{}, false
	}
	var cached Evaluation
	err := s.Cache.GetJSON(ctx, cacheKeyPrefix+fp, &cached)
	switch {
	case err == nil:
		metrics.ObserveCacheLookup(true)
		return cached, true
	case errors.Is(err, cache.ErrMiss):
		metrics.ObserveCacheLookup(false)
	default:
		metrics.ObserveCacheLookup(false)
		telemetry.Warn("evaluation.cache_lookup_failed", map[string]any{"fingerprint": fp, "err": err})
	}
	return Evaluation{}, false
}

// ensureStored makes a cached evaluation resolvable by ID. The cache can
// outlive the repo (memory repo across restarts), so a missing record is
// written back. It reports false when the record cannot be restored and the
// hit must be treated as a miss.
func (s *Service) ensureStored(ctx context.Context, cached Evaluation) bool {
	_, err := s.Repo.GetByID(ctx, cached.ID)
	if err == nil {
		return true
	}
	if errors.Is(err, ErrNotFound) {
		if err = s.Repo.Create(ctx, cached); err == nil {
			telemetry.Info("evaluation.cache_restored", map[string]any{"evaluation_id": cached.ID})
			return true
		}
	}
	telemetry.Warn("evaluation.cache_restore_failed", map[string]any{"evaluation_id": cached.ID, "err": err})
	return false
}

// Get returns a stored evaluation.
func (s *Service) Get(ctx context.Context, id string) (Evaluation, error) {
	return s.Repo.GetByID(ctx, id)
}

// List returns stored evaluations newest first. The returned page carries the
// clamped limit and offset.
func (s *Service) List(ctx context.Context, limit, offset int) (Page, error) {
	limit, offset = ClampPage(limit, offset)
	items, err := s.Repo.List(ctx, limit, offset)
	if err != nil {
		return Page{}, err
	}
	return Page{Items: items, Limit: limit, Offset: offset}, nil
}

// Requirements returns the role catalog evaluations are matched against.
func (s *Service) Requirements() []assessment.RoleRequirement {
	out := make([]assessment.RoleRequirement, len(s.Roles))
	copy(out, s.Roles)
	return out
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}
