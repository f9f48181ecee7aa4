package metrics

import (
	"strings"
	"testing"
)

func TestRenderExposesCounters(t *testing.T) {
	IncUploadStarted()
	IncUploadFailed()
	IncAnalysisFailed()
	IncCleanupFailed()
	IncUploadCompleted()
	ObserveUploadDurationMs(120)

	out := Render()
	for _, name := range []string{
		"resume_upload_started_total",
		"resume_upload_completed_total",
		"resume_upload_failed_total",
		"resume_analysis_failed_total",
		"resume_cleanup_failed_total",
		"resume_upload_duration_ms_bucket",
		"resume_upload_duration_ms_sum",
		"resume_upload_duration_ms_count",
	} {
		if !strings.Contains(out, name) {
			t.Fatalf("expected %s in output:\n%s", name, out)
		}
	}
	if !strings.Contains(out, `le="+Inf"`) {
		t.Fatalf("expected +Inf bucket")
	}
}

func TestHistogramBucketsAreCumulative(t *testing.T) {
	h := newHistogram([]float64{10, 100, 1000})
	h.Observe(5)
	h.Observe(50)
	h.Observe(5000)

	snap := h.Snapshot()
	if snap.count != 3 {
		t.Fatalf("expected count 3, got %d", snap.count)
	}
	// Per-bucket counts: one sample each in le=10 and le=100, one over all bounds.
	if snap.counts[0] != 1 || snap.counts[1] != 1 || snap.counts[2] != 0 {
		t.Fatalf("unexpected bucket counts %v", snap.counts)
	}

	out := Render()
	if !strings.Contains(out, "resume_upload_duration_ms") {
		t.Fatalf("expected histogram in output")
	}
}
