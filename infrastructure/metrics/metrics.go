package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ytu_http_requests_total",
			Help: "Total number of local API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ytu_http_request_duration_seconds",
			Help:    "Local API request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Upload Metrics
	VideoUploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ytu_video_uploads_total",
			Help: "Total number of video uploads by outcome",
		},
		[]string{"status"},
	)

	VideoUploadSizeBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ytu_video_upload_size_bytes",
			Help:    "Size of uploaded videos in bytes",
			Buckets: prometheus.ExponentialBuckets(1024*1024, 2, 15), // 1MB to 16GB
		},
	)

	VideoUploadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ytu_video_upload_duration_seconds",
			Help:    "Wall time of a single video upload",
			Buckets: prometheus.ExponentialBuckets(1, 2, 14), // 1s to ~4.5 hours
		},
	)

	UploadsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ytu_uploads_in_progress",
			Help: "Number of uploads currently transferring",
		},
	)

	// Auth Metrics
	AuthFlowsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ytu_auth_flows_total",
			Help: "Interactive authorization flows by final state",
		},
		[]string{"state"},
	)

	StoreOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ytu_store_operations_total",
			Help: "Channel and preset store operations",
		},
		[]string{"store", "operation", "status"},
	)

	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ytu_errors_total",
			Help: "Errors by component and kind",
		},
		[]string{"component", "kind"},
	)
)

func RecordHTTPRequest(method, endpoint, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration)
}

// RecordUpload counts a finished upload. Size and duration are only observed
// for successful ones.
func RecordUpload(success bool, sizeBytes int64, duration float64) {
	if !success {
		VideoUploadsTotal.WithLabelValues("error").Inc()
		return
	}
	VideoUploadsTotal.WithLabelValues("success").Inc()
	VideoUploadSizeBytes.Observe(float64(sizeBytes))
	VideoUploadDuration.Observe(duration)
}

func RecordAuthFlow(state string) {
	AuthFlowsTotal.WithLabelValues(state).Inc()
}

func RecordStoreOperation(store, operation string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	StoreOperationsTotal.WithLabelValues(store, operation, status).Inc()
}

func RecordError(component, kind string) {
	ErrorsTotal.WithLabelValues(component, kind).Inc()
}
