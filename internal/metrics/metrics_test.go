package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordDBQuery(t *testing.T) {
	before := testutil.ToFloat64(DBQueryErrors.WithLabelValues("create", "metrics_test"))

	RecordDBQuery("create", "metrics_test", 10*time.Millisecond, nil)
	assert.Equal(t, before, testutil.ToFloat64(DBQueryErrors.WithLabelValues("create", "metrics_test")))

	RecordDBQuery("create", "metrics_test", 10*time.Millisecond, errors.New("boom"))
	assert.Equal(t, before+1, testutil.ToFloat64(DBQueryErrors.WithLabelValues("create", "metrics_test")))
}

func TestRecordAPIRequest(t *testing.T) {
	counter := APIRequestsTotal.WithLabelValues("GET", "/metrics-test", "404")
	before := testutil.ToFloat64(counter)

	RecordAPIRequest("GET", "/metrics-test", 404, time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	assert.Equal(t, before+1, testutil.ToFloat64(APIActiveRequests))

	TrackActiveRequest(false)
	assert.Equal(t, before, testutil.ToFloat64(APIActiveRequests))
}

func TestRecordConnectAttempt(t *testing.T) {
	failures := DBConnectAttempts.WithLabelValues("failure")
	successes := DBConnectAttempts.WithLabelValues("success")
	f0, s0 := testutil.ToFloat64(failures), testutil.ToFloat64(successes)

	RecordConnectAttempt(errors.New("refused"))
	RecordConnectAttempt(nil)

	assert.Equal(t, f0+1, testutil.ToFloat64(failures))
	assert.Equal(t, s0+1, testutil.ToFloat64(successes))
}

func TestRecordRateLimitHit(t *testing.T) {
	counter := APIRateLimitHits.WithLabelValues("/metrics-test")
	before := testutil.ToFloat64(counter)

	RecordRateLimitHit("/metrics-test")

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
