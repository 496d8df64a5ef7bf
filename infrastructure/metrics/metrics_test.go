package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("GET", "/api/channels", "200", 0.05)

	assert.Equal(t, 1.0, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/channels", "200")))
}

func TestRecordUpload(t *testing.T) {
	VideoUploadsTotal.Reset()

	RecordUpload(true, 10*1024*1024, 12)
	RecordUpload(false, 0, 0)
	RecordUpload(false, 0, 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(VideoUploadsTotal.WithLabelValues("success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(VideoUploadsTotal.WithLabelValues("error")))
}

func TestRecordAuthFlow(t *testing.T) {
	AuthFlowsTotal.Reset()

	RecordAuthFlow("completed")
	RecordAuthFlow("timed_out")
	RecordAuthFlow("completed")

	assert.Equal(t, 2.0, testutil.ToFloat64(AuthFlowsTotal.WithLabelValues("completed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(AuthFlowsTotal.WithLabelValues("timed_out")))
}

func TestRecordStoreOperation(t *testing.T) {
	StoreOperationsTotal.Reset()

	RecordStoreOperation("preset", "create", nil)
	RecordStoreOperation("preset", "create", errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(StoreOperationsTotal.WithLabelValues("preset", "create", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(StoreOperationsTotal.WithLabelValues("preset", "create", "error")))
}
