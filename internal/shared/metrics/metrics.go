package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	uploadStartedTotal   atomic.Uint64
	uploadCompletedTotal atomic.Uint64
	uploadFailedTotal    atomic.Uint64
	analysisFailedTotal  atomic.Uint64
	cleanupFailedTotal   atomic.Uint64

	uploadDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000})
)

// IncUploadStarted increments the started counter.
func IncUploadStarted() {
	uploadStartedTotal.Add(1)
}

// IncUploadCompleted increments the completed counter.
func IncUploadCompleted() {
	uploadCompletedTotal.Add(1)
}

// IncUploadFailed increments the failed counter.
func IncUploadFailed() {
	uploadFailedTotal.Add(1)
}

// IncAnalysisFailed increments the analysis failure counter.
func IncAnalysisFailed() {
	analysisFailedTotal.Add(1)
}

// IncCleanupFailed increments the compensating-delete failure counter.
func IncCleanupFailed() {
	cleanupFailedTotal.Add(1)
}

// ObserveUploadDurationMs records an upload pipeline duration in milliseconds.
func ObserveUploadDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	uploadDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "resume_upload_started_total", "Total resume uploads started", uploadStartedTotal.Load())
	writeCounter(&buf, "resume_upload_completed_total", "Total resume uploads completed", uploadCompletedTotal.Load())
	writeCounter(&buf, "resume_upload_failed_total", "Total resume uploads failed", uploadFailedTotal.Load())
	writeCounter(&buf, "resume_analysis_failed_total", "Total resume analysis calls failed", analysisFailedTotal.Load())
	writeCounter(&buf, "resume_cleanup_failed_total", "Total compensating object deletes failed", cleanupFailedTotal.Load())
	writeHistogram(&buf, "resume_upload_duration_ms", "Resume upload pipeline duration in milliseconds", uploadDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	// counts are per-bucket; rendering accumulates them into le buckets.
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
