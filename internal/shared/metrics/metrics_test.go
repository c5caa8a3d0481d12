package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(EvaluationsCompleted.WithLabelValues(SourceMock, "Ready"))
	IncEvaluationCompleted(SourceMock, "Ready")
	assert.Equal(t, before+1, testutil.ToFloat64(EvaluationsCompleted.WithLabelValues(SourceMock, "Ready")))

	hits := testutil.ToFloat64(CacheLookups.WithLabelValues("hit"))
	ObserveCacheLookup(true)
	assert.Equal(t, hits+1, testutil.ToFloat64(CacheLookups.WithLabelValues("hit")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	IncEvaluationStarted()
	ObserveEvaluationDuration(SourceService, time.Now())

	router := gin.New()
	router.GET("/metrics", Handler())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	body := resp.Body.String()
	for _, name := range []string{"placement_evaluations_started_total", "placement_evaluation_duration_seconds_bucket"} {
		if !strings.Contains(body, name) {
			t.Fatalf("expected %s in metrics output", name)
		}
	}
}
