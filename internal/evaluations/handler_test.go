package evaluations

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"placement-backend/internal/assessment"
	"placement-backend/internal/shared/server/respond"
)

func setupEvaluationRouter() (*gin.Engine, *Service) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	svc := NewService(NewMemoryRepo(), nil, nil)
	NewHandler(svc).RegisterRoutes(router.Group("/api"))
	return router, svc
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestEvaluateHandlerReturnsResponse(t *testing.T) {
	router, _ := setupEvaluationRouter()

	resp := postJSON(router, "/api/evaluate", sampleRequest())

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if resp.Header().Get(EvaluationIDHeader) == "" {
		t.Fatalf("expected %s header", EvaluationIDHeader)
	}
	var got assessment.Response
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Readiness.Score != 61 {
		t.Fatalf("expected score 61, got %d", got.Readiness.Score)
	}
	if len(got.PreparationPlan) != assessment.PlanDays {
		t.Fatalf("expected %d plan days, got %d", assessment.PlanDays, len(got.PreparationPlan))
	}
}

func TestEvaluateHandlerValidationError(t *testing.T) {
	router, _ := setupEvaluationRouter()

	resp := postJSON(router, "/api/evaluate", map[string]any{
		"excel": 65, "sql": 101, "python": 55, "stats": 60, "ml": 45, "bi": 72,
		"feedback": "too short",
	})

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	var body struct {
		Error struct {
			Code    string                  `json:"code"`
			Details []assessment.FieldError `json:"details"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Error.Code != "validation_error" {
		t.Fatalf("expected validation_error, got %q", body.Error.Code)
	}
	fields := map[string]bool{}
	for _, d := range body.Error.Details {
		fields[d.Field] = true
	}
	if !fields["sql"] || !fields["feedback"] {
		t.Fatalf("expected sql and feedback details, got %+v", body.Error.Details)
	}
}

func TestEvaluateHandlerRejectsMalformedJSON(t *testing.T) {
	router, _ := setupEvaluationRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/evaluate", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	var body respond.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Error.Code != "invalid_json" {
		t.Fatalf("expected invalid_json, got %q", body.Error.Code)
	}
}

func TestSkillWeightsHandler(t *testing.T) {
	router, _ := setupEvaluationRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/skill-weights", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	var body struct {
		Success      bool               `json:"success"`
		SkillWeights map[string]float64 `json:"skill_weights"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.Success || body.SkillWeights["SQL"] != 0.2 || len(body.SkillWeights) != 6 {
		t.Fatalf("unexpected weights %+v", body)
	}
}

func TestRequirementsHandler(t *testing.T) {
	router, _ := setupEvaluationRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/requirements", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	var roles []assessment.RoleRequirement
	if err := json.NewDecoder(resp.Body).Decode(&roles); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(roles) != 4 {
		t.Fatalf("expected 4 roles, got %d", len(roles))
	}
}

func TestCompletePlanHandler(t *testing.T) {
	router, _ := setupEvaluationRouter()

	resp := postJSON(router, "/api/plans/complete", []assessment.PreparationDay{
		{Day: 3, Focus: "Custom SQL", Activities: []string{"Window functions"}},
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var days []assessment.PreparationDay
	if err := json.NewDecoder(resp.Body).Decode(&days); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(days) != assessment.PlanDays {
		t.Fatalf("expected %d days, got %d", assessment.PlanDays, len(days))
	}
	if days[2].Focus != "Custom SQL" {
		t.Fatalf("expected supplied day 3, got %q", days[2].Focus)
	}
}

func TestEvaluationHistoryHandlers(t *testing.T) {
	router, _ := setupEvaluationRouter()
	created := postJSON(router, "/api/evaluate", sampleRequest())
	id := created.Header().Get(EvaluationIDHeader)

	req := httptest.NewRequest(http.MethodGet, "/api/evaluations/"+id, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var got Evaluation
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ID != id || got.Request.BI != 72 {
		t.Fatalf("unexpected evaluation %+v", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/evaluations?limit=5", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	var list struct {
		Items []Summary `json:"items"`
		Limit int       `json:"limit"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(list.Items) != 1 || list.Items[0].ID != id || list.Limit != 5 {
		t.Fatalf("unexpected list %+v", list)
	}
}

func TestListEvaluationsReportsClampedPage(t *testing.T) {
	router, _ := setupEvaluationRouter()
	postJSON(router, "/api/evaluate", sampleRequest())

	cases := []struct {
		query      string
		wantLimit  int
		wantOffset int
	}{
		{query: "limit=1000", wantLimit: 100, wantOffset: 0},
		{query: "limit=0", wantLimit: 20, wantOffset: 0},
		{query: "limit=-5&offset=-3", wantLimit: 20, wantOffset: 0},
		{query: "limit=7&offset=2", wantLimit: 7, wantOffset: 2},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/api/evaluations?"+tc.query, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected status 200, got %d", tc.query, resp.Code)
		}
		var list struct {
			Items  []Summary `json:"items"`
			Limit  int       `json:"limit"`
			Offset int       `json:"offset"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
			t.Fatalf("%s: decode response: %v", tc.query, err)
		}
		if list.Limit != tc.wantLimit || list.Offset != tc.wantOffset {
			t.Fatalf("%s: expected limit=%d offset=%d, got limit=%d offset=%d",
				tc.query, tc.wantLimit, tc.wantOffset, list.Limit, list.Offset)
		}
	}
}

func TestEvaluationHandlersErrors(t *testing.T) {
	router, _ := setupEvaluationRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/evaluations/unknown", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/evaluations?limit=abc", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}
