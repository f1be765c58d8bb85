package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"tourbot/internal/corpus"
	"tourbot/internal/engine"
	"tourbot/internal/flight"
	"tourbot/internal/llm"
	"tourbot/internal/location"
	"tourbot/internal/session"
)

type stubGenerator struct {
	reply string
	err   error
}

func (s *stubGenerator) Generate(context.Context, string, string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func newTestServer(t *testing.T, gen llm.Generator) *httptest.Server {
	t.Helper()

	snap := corpus.NewSnapshot(
		[]corpus.Destination{{City: "Đà Nẵng"}},
		[]corpus.Food{{City: "Đà Nẵng", DishName: "Mì Quảng"}},
		nil, nil, nil,
		corpus.DefaultMatchThreshold,
	)
	flights := flight.NewTable([]flight.Estimate{{
		RouteCode: "SGN-DAD", From: "TP.HCM", To: "Đà Nẵng", Currency: "VND",
		OneWayLow: 800000, OneWayHigh: 1500000,
		RoundTripLow: 1500000, RoundTripHigh: 2800000,
		Note: "Ngày thường rẻ hơn.",
	}})

	eng := engine.New(
		engine.DefaultConfig(),
		corpus.NewLibrary(snap),
		flights,
		location.NewResolver(location.DefaultTable(), location.HardTypos, 0),
		session.NewMemoryStore(),
		gen,
		zaptest.NewLogger(t),
	)

	ts := httptest.NewServer(New(eng, flights, zaptest.NewLogger(t)).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postChat(t *testing.T, ts *httptest.Server, body string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Post(ts.URL+"/api/chat", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func TestChatEndpoint(t *testing.T) {
	ts := newTestServer(t, &stubGenerator{reply: "Chào bạn, mình gợi ý Mì Quảng nhé!"})

	resp, body := postChat(t, ts, `{"message":"ăn gì ở Đà Nẵng","sessionId":"s1"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Chào bạn, mình gợi ý Mì Quảng nhé!", body["reply"])
	assert.Equal(t, "s1", body["sessionId"])
	assert.Equal(t, "food", body["intent"])
	assert.Equal(t, "Đà Nẵng", body["activeLocation"])
}

func TestChatEndpointMissingMessage(t *testing.T) {
	ts := newTestServer(t, &stubGenerator{reply: "ok"})

	resp, body := postChat(t, ts, `{"sessionId":"s1"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Thiếu message", body["error"])
}

func TestChatEndpointRateLimit(t *testing.T) {
	ts := newTestServer(t, &stubGenerator{err: &llm.APIError{Class: llm.ClassRateLimit, StatusCode: 429}})

	resp, body := postChat(t, ts, `{"message":"xin chào"}`)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Contains(t, body["error"], "quota")
}

func TestChatEndpointAuthError(t *testing.T) {
	ts := newTestServer(t, &stubGenerator{err: &llm.APIError{Class: llm.ClassAuth, StatusCode: 401}})

	resp, body := postChat(t, ts, `{"message":"xin chào"}`)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, body["error"], "xác thực")
}

func TestChatEndpointMissingAPIKey(t *testing.T) {
	ts := newTestServer(t, &stubGenerator{err: llm.ErrMissingAPIKey})

	resp, body := postChat(t, ts, `{"message":"xin chào"}`)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, body["error"], "API key")
}

func getJSON(t *testing.T, url string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func TestFlightEstimateEndpoint(t *testing.T) {
	ts := newTestServer(t, &stubGenerator{reply: "ok"})

	resp, body := getJSON(t, ts.URL+"/api/flights/estimate-local?origin=SGN&destination=DAD&tripType=oneway")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "SGN-DAD", body["route"])
	assert.Equal(t, "oneway", body["type"])
	assert.Equal(t, float64(800000), body["low"])
	assert.Equal(t, float64(1500000), body["high"])
	assert.Contains(t, body["note"], "giá tham khảo")
}

func TestFlightEstimateEndpointMissingParams(t *testing.T) {
	ts := newTestServer(t, &stubGenerator{reply: "ok"})

	resp, body := getJSON(t, ts.URL+"/api/flights/estimate-local?origin=SGN")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["error"], "origin hoặc destination")
}

func TestFlightEstimateEndpointUnknownRoute(t *testing.T) {
	ts := newTestServer(t, &stubGenerator{reply: "ok"})

	resp, body := getJSON(t, ts.URL+"/api/flights/estimate-local?origin=SGN&destination=HPH")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "SGN-HPH", body["route"])
	assert.Nil(t, body["estimates"])
	assert.Contains(t, body["note"], "Chưa có dữ liệu")
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t, &stubGenerator{reply: "ok"})

	resp, body := getJSON(t, ts.URL+"/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t, &stubGenerator{reply: "ok"})

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
