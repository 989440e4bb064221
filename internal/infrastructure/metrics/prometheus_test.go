package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kondate-api/internal/application/ports"
)

func TestPrometheus_Counters(t *testing.T) {
	p := New()

	p.MenuGenerated(ports.MenuResultStructured)
	p.MenuGenerated(ports.MenuResultStructured)
	p.MenuGenerated(ports.MenuResultFallback)
	p.SettlementApplied(2, 1)
	p.LedgerMutated("add")

	assert.Equal(t, 2.0, testutil.ToFloat64(p.menus.WithLabelValues(ports.MenuResultStructured)))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.menus.WithLabelValues(ports.MenuResultFallback)))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.settlements))
	assert.Equal(t, 2.0, testutil.ToFloat64(p.settlementLines.WithLabelValues("applied")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.settlementLines.WithLabelValues("skipped")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.ledgerMutations.WithLabelValues("add")))
}

func TestPrometheus_Handler(t *testing.T) {
	p := New()
	p.ObserveRequest(http.MethodGet, "/api/ingredients", 200, 15*time.Millisecond)

	rec := httptest.NewRecorder()
	p.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `kondate_http_requests_total{method="GET",route="/api/ingredients",status="200"} 1`))
	assert.Contains(t, body, "kondate_http_request_duration_seconds")
}
