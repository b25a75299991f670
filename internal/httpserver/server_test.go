package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinytelemetry/doseorb/internal/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) (*Server, *Publisher, http.Handler) {
	t.Helper()
	pub := NewPublisher()
	srv := NewServer("", pub)
	srv.startTime = time.Now()
	return srv, pub, srv.Handler()
}

func get(t *testing.T, h http.Handler, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "unmarshal %s", path)
	return w, body
}

func TestHealthEndpoint(t *testing.T) {
	_, pub, h := newTestServer(t)
	pub.Publish(model.IndicatorStatus{})
	pub.Publish(model.IndicatorStatus{})

	w, body := get(t, h, "/api/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(2), body["frames"])
}

func TestIndicatorEndpoint_BeforeFirstFrame(t *testing.T) {
	_, _, h := newTestServer(t)

	w, body := get(t, h, "/api/indicator")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotNil(t, body["error"], "expected error message")
}

func TestIndicatorEndpoint(t *testing.T) {
	_, pub, h := newTestServer(t)
	pub.Publish(model.IndicatorStatus{
		Eligible:       true,
		RingDrawn:      true,
		Recommendation: "super restore",
		Phase:          0.5,
		Color:          "#005c5c",
		Countdown:      "8:45",
		Current:        60,
		Max:            99,
		DrainRate:      12,
		Bonus:          15,
	})

	w, body := get(t, h, "/api/indicator")
	require.Equal(t, http.StatusOK, w.Code)
	ind, ok := body["indicator"].(map[string]interface{})
	require.True(t, ok, "indicator missing: %v", body)

	assert.Equal(t, true, ind["eligible"])
	assert.Equal(t, "8:45", ind["countdown"])
	assert.Equal(t, "super restore", ind["recommendation"])
	assert.Equal(t, float64(60), ind["current"])
	assert.Equal(t, "#005c5c", ind["color"])
	assert.NotContains(t, ind, "tooltip", "empty tooltip should be omitted")
	assert.NotEmpty(t, body["updated_at"])
}

func TestIndicatorEndpoint_WrongMethod(t *testing.T) {
	_, _, h := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/indicator", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Contains(t, []int{http.StatusMethodNotAllowed, http.StatusNotFound}, w.Code)
}

func TestStartStop(t *testing.T) {
	srv := NewServer("127.0.0.1:0", NewPublisher())
	require.NoError(t, srv.Start())
	assert.NoError(t, srv.Stop())
}
