package prometheus

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	scorematch "github.com/scorematch/scorematch"
)

type fakeSource struct {
	snapshot scorematch.MetricsSnapshot
	dropped  uint64
}

func (f fakeSource) MetricsSnapshot() scorematch.MetricsSnapshot { return f.snapshot }
func (f fakeSource) AuditDropped() uint64                        { return f.dropped }

func TestRenderEmptyWhenMetricsDisabled(t *testing.T) {
	exp := NewPrometheusExporterFromSource(fakeSource{
		snapshot: scorematch.MetricsSnapshot{
			Counters: map[scorematch.MetricID]uint64{},
		},
		dropped: 0,
	})

	if got := exp.Render(); got != "" {
		t.Fatalf("expected empty output for disabled metrics, got:\n%s", got)
	}
}

func TestRenderIncludesCountersAndDropped(t *testing.T) {
	exp := NewPrometheusExporterFromSource(fakeSource{
		snapshot: scorematch.MetricsSnapshot{
			Counters: map[scorematch.MetricID]uint64{
				scorematch.MetricLoginSuccess: 7,
				scorematch.MetricOTPFailed:    3,
			},
		},
		dropped: 2,
	})

	out := exp.Render()
	if !strings.Contains(out, "scorematch_login_success_total 7") {
		t.Fatalf("expected login_success counter in output, got:\n%s", out)
	}
	if !strings.Contains(out, "scorematch_otp_failed_total 3") {
		t.Fatalf("expected otp_failed counter in output, got:\n%s", out)
	}
	if !strings.Contains(out, "# TYPE scorematch_login_success_total counter") {
		t.Fatalf("expected TYPE line in output, got:\n%s", out)
	}
	if !strings.Contains(out, "scorematch_audit_dropped_total 2") {
		t.Fatalf("expected audit dropped counter in output, got:\n%s", out)
	}
}

func TestHandlerServesTextExposition(t *testing.T) {
	exp := NewPrometheusExporterFromSource(fakeSource{
		snapshot: scorematch.MetricsSnapshot{
			Counters: map[scorematch.MetricID]uint64{
				scorematch.MetricLogout: 1,
			},
		},
	})

	rec := httptest.NewRecorder()
	exp.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("content type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "scorematch_logout_total 1") {
		t.Fatalf("expected logout counter in body, got:\n%s", rec.Body.String())
	}
}
