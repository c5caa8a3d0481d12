package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"placement-backend/internal/assessment"
	"placement-backend/internal/evalclient"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	chdir(t, t.TempDir())
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

var scoreArgs = []string{
	"--excel", "65", "--sql", "70", "--python", "55", "--stats", "60", "--ml", "45", "--bi", "72",
	"--feedback", "Explains SQL well but needs more practice with ML models.",
}

func TestEvaluateLocal(t *testing.T) {
	out, err := runCLI(t, "", append([]string{"evaluate", "--local"}, scoreArgs...)...)

	require.NoError(t, err)
	assert.Contains(t, out, "Readiness: Almost Ready (61/100)")
	assert.Contains(t, out, "Day 7:")
	assert.NotContains(t, out, "NOTE:")
}

func TestEvaluateFallsBackWhenServiceFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	args := append([]string{"evaluate", "--service", srv.URL, "--mock-delay", "0s"}, scoreArgs...)
	out, err := runCLI(t, "", args...)

	require.NoError(t, err)
	assert.Contains(t, out, evalclient.SimulatedNotice)
	assert.Contains(t, out, "Readiness: Almost Ready (61/100)")
}

func TestEvaluateUsesServiceResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req assessment.Request
		_ = json.NewDecoder(r.Body).Decode(&req)
		_ = json.NewEncoder(w).Encode(assessment.Assemble(req, assessment.MockRoleRequirements()))
	}))
	defer srv.Close()

	args := append([]string{"evaluate", "--service", srv.URL, "--output-json"}, scoreArgs...)
	out, err := runCLI(t, "", args...)

	require.NoError(t, err)
	var resp assessment.Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 61, resp.Readiness.Score)
	assert.NotEmpty(t, resp.GapAnalysis)
}

func TestEvaluateRejectsInvalidScores(t *testing.T) {
	_, err := runCLI(t, "", "evaluate", "--local", "--sql", "120", "--feedback", "too short")

	var verr *assessment.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestRoadmapCommand(t *testing.T) {
	out, err := runCLI(t, "", "roadmap", "Build GitHub portfolio")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "GitHub Portfolio Development"), out)

	out, err = runCLI(t, "", "roadmap", "--day", "11", "Gardening")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Day 11: Gardening - Complete Roadmap"), out)
}

func TestPlanCommandFillsMissingDays(t *testing.T) {
	out, err := runCLI(t, `[{"day":2,"focus":"Window functions","activities":["LAG/LEAD"]}]`, "plan")
	require.NoError(t, err)

	var days []assessment.PreparationDay
	require.NoError(t, json.Unmarshal([]byte(out), &days))
	require.Len(t, days, assessment.PlanDays)
	assert.Equal(t, "Window functions", days[1].Focus)
}

func TestRequirementsCommandFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	out, err := runCLI(t, "", "requirements", "--service", srv.URL)

	require.NoError(t, err)
	assert.Contains(t, out, evalclient.SimulatedNotice)
	assert.Contains(t, out, "Data Analyst")
}

func TestRequirementsCommandPrintsServiceWeights(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/requirements":
			_ = json.NewEncoder(w).Encode(assessment.MockRoleRequirements())
		case "/api/skill-weights":
			_, _ = w.Write([]byte(`{"success":true,"skill_weights":{"SQL":0.5}}`))
		}
	}))
	defer srv.Close()

	out, err := runCLI(t, "", "requirements", "--service", srv.URL, "--weights")

	require.NoError(t, err)
	assert.NotContains(t, out, "NOTE:")
	assert.Contains(t, out, "Skill weights:")
	assert.Contains(t, out, "0.50")
}

func TestPromptValidators(t *testing.T) {
	assert.NoError(t, validateScore(" 70 "))
	assert.Error(t, validateScore("abc"))
	assert.Error(t, validateScore("101"))
	assert.NoError(t, validateFeedback("Explains SQL well but needs practice"))
	assert.Error(t, validateFeedback("short"))
}
