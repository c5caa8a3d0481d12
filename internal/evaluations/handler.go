package evaluations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"placement-backend/internal/assessment"
	"placement-backend/internal/shared/server/respond"
)

// EvaluationIDHeader carries the stored evaluation id on POST /evaluate.
const EvaluationIDHeader = "X-Evaluation-Id"

// Handler wires HTTP handlers to the evaluations service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches evaluation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/evaluate", h.evaluate)
	rg.GET("/requirements", h.requirements)
	rg.GET("/skill-weights", h.skillWeights)
	rg.POST("/plans/complete", h.completePlan)
	rg.GET("/evaluations", h.listEvaluations)
	rg.GET("/evaluations/:id", h.getEvaluation)
}

func (h *Handler) evaluate(c *gin.Context) {
	var req assessment.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_json", "request body must be a JSON evaluation request", nil)
		return
	}

	evaluation, err := h.Svc.Evaluate(c.Request.Context(), req)
	if err != nil {
		var verr *assessment.ValidationError
		if errors.As(err, &verr) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid evaluation request", verr.Fields)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to evaluate candidate", nil)
		return
	}

	c.Set("evaluationId", evaluation.ID)
	c.Header(EvaluationIDHeader, evaluation.ID)
	respond.OK(c, evaluation.Result)
}

func (h *Handler) requirements(c *gin.Context) {
	respond.OK(c, h.Svc.Requirements())
}

func (h *Handler) skillWeights(c *gin.Context) {
	respond.OK(c, gin.H{"success": true, "skill_weights": assessment.SkillWeights()})
}

func (h *Handler) completePlan(c *gin.Context) {
	var days []assessment.PreparationDay
	if err := c.ShouldBindJSON(&days); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_json", "request body must be a JSON array of plan days", nil)
		return
	}
	respond.OK(c, assessment.CompletePlan(days))
}

func (h *Handler) getEvaluation(c *gin.Context) {
	evaluation, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "evaluation not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load evaluation", nil)
		return
	}
	respond.OK(c, evaluation)
}

func (h *Handler) listEvaluations(c *gin.Context) {
	limit, err := queryInt(c, "limit", 20)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "limit must be an integer", []map[string]string{
			{"field": "limit", "issue": "must be an integer"},
		})
		return
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "offset must be an integer", []map[string]string{
			{"field": "offset", "issue": "must be an integer"},
		})
		return
	}

	page, err := h.Svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list evaluations", nil)
		return
	}
	summaries := make([]Summary, 0, len(page.Items))
	for _, e := range page.Items {
		summaries = append(summaries, e.Summary())
	}
	respond.OK(c, gin.H{"items": summaries, "limit": page.Limit, "offset": page.Offset})
}

func queryInt(c *gin.Context, key string, fallback int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
