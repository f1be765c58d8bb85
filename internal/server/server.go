// Package server is the HTTP face of the assistant: the chat endpoint, the
// local airfare estimate endpoint and the operational endpoints. The wire
// shapes mirror what the frontend already speaks.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"tourbot/internal/engine"
	"tourbot/internal/flight"
	"tourbot/internal/llm"
)

// Server holds the handler dependencies.
type Server struct {
	engine  *engine.Engine
	flights *flight.Table
	logger  *zap.Logger
}

// New builds a Server. flights may be nil; the estimate endpoint then always
// answers "no data".
func New(eng *engine.Engine, flights *flight.Table, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{engine: eng, flights: flights, logger: logger}
}

// Handler returns the routed http.Handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/chat", s.handleChat)
	mux.HandleFunc("/api/flights/estimate-local", s.handleFlightEstimate)
	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

type chatRequest struct {
	Message     string `json:"message"`
	SessionID   string `json:"sessionId"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	TripType    string `json:"tripType"`
}

type chatResponse struct {
	Reply          string `json:"reply"`
	SessionID      string `json:"sessionId"`
	Intent         string `json:"intent"`
	ActiveLocation string `json:"activeLocation,omitempty"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Thiếu message")
		return
	}

	resp, err := s.engine.Chat(r.Context(), engine.ChatRequest{
		Text:        req.Message,
		SessionID:   req.SessionID,
		Origin:      req.Origin,
		Destination: req.Destination,
		TripType:    req.TripType,
	})
	if err != nil {
		s.writeChatError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Reply:          resp.Reply,
		SessionID:      resp.SessionID,
		Intent:         string(resp.Intent),
		ActiveLocation: resp.ActiveLocation,
	})
}

// writeChatError maps engine failures to wire responses: bad input is the
// caller's fault, rate limits pass through as 429 so the client can back
// off, everything else is a 500 with a user-facing Vietnamese message.
func (s *Server) writeChatError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, engine.ErrEmptyMessage):
		writeError(w, http.StatusBadRequest, "Thiếu message")
		return
	case errors.Is(err, llm.ErrMissingAPIKey):
		s.logger.Error("chat failed: generator credentials missing")
		writeError(w, http.StatusInternalServerError, "Chưa cấu hình LLM API key.")
		return
	}

	var apiErr *llm.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Class {
		case llm.ClassAuth:
			s.logger.Error("chat failed: generator auth error", zap.Error(err))
			writeError(w, http.StatusInternalServerError,
				"Lỗi xác thực với LLM API (kiểm tra lại API key).")
			return
		case llm.ClassRateLimit:
			s.logger.Warn("chat failed: generator rate limited", zap.Error(err))
			writeError(w, http.StatusTooManyRequests,
				"LLM API đang báo hết quota / giới hạn lượt gọi. Kiểm tra lại gói sử dụng hoặc thử lại sau.")
			return
		}
	}

	s.logger.Error("chat failed", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "Lỗi server khi xử lý chat.")
}

type flightEstimateResponse struct {
	Route     string  `json:"route"`
	From      string  `json:"from,omitempty"`
	To        string  `json:"to,omitempty"`
	Currency  string  `json:"currency,omitempty"`
	Type      string  `json:"type,omitempty"`
	Low       int     `json:"low,omitempty"`
	High      int     `json:"high,omitempty"`
	Estimates *string `json:"estimates,omitempty"`
	Note      string  `json:"note"`
}

func (s *Server) handleFlightEstimate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	origin := r.URL.Query().Get("origin")
	destination := r.URL.Query().Get("destination")
	if origin == "" || destination == "" {
		writeError(w, http.StatusBadRequest,
			"Thiếu origin hoặc destination (ví dụ origin=SGN&destination=DAD)")
		return
	}

	var est flight.Estimate
	found := false
	if s.flights != nil {
		est, found = s.flights.Find(origin, destination)
	}
	if !found {
		writeJSON(w, http.StatusOK, flightEstimateResponse{
			Route: strings.ToUpper(origin) + "-" + strings.ToUpper(destination),
			Note:  "Chưa có dữ liệu ước lượng cho chặng bay này. Vui lòng kiểm tra trực tiếp trên các ứng dụng đặt vé (Traveloka, Skyscanner, v.v.).",
		})
		return
	}

	tripType := flight.ParseTripType(r.URL.Query().Get("tripType"))
	low, high := est.Range(tripType)
	writeJSON(w, http.StatusOK, flightEstimateResponse{
		Route:    est.RouteCode,
		From:     est.From,
		To:       est.To,
		Currency: est.Currency,
		Type:     string(tripType),
		Low:      low,
		High:     high,
		Note: strings.TrimSpace(est.Note +
			" Đây chỉ là giá tham khảo, giá thực tế có thể thay đổi theo thời điểm đặt vé, hãng bay và khuyến mãi."),
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
