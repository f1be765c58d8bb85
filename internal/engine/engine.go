// Package engine ties the retrieval pieces together: one Chat call per user
// turn classifies intent, resolves the location, updates the session, pulls
// bounded context from every corpus and hands the rendered payload to the
// generator.
package engine

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tourbot/internal/corpus"
	"tourbot/internal/flight"
	"tourbot/internal/intent"
	"tourbot/internal/llm"
	"tourbot/internal/location"
	"tourbot/internal/metrics"
	"tourbot/internal/prompt"
	"tourbot/internal/session"
)

// ErrEmptyMessage rejects turns with no usable text before any state is
// touched.
var ErrEmptyMessage = errors.New("engine: empty message")

// Config bounds the assembled payload. Zero values fall back to the tuned
// defaults via DefaultConfig.
type Config struct {
	Destinations int
	Foods        int
	Tours        int
	Policies     int
	Tips         int

	HistoryLimit    int
	RecentUserTurns int
}

// DefaultConfig returns the per-corpus caps and history bounds the assistant
// was tuned with.
func DefaultConfig() Config {
	return Config{
		Destinations:    5,
		Foods:           6,
		Tours:           4,
		Policies:        3,
		Tips:            4,
		HistoryLimit:    session.DefaultHistoryLimit,
		RecentUserTurns: 1,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Destinations <= 0 {
		c.Destinations = d.Destinations
	}
	if c.Foods <= 0 {
		c.Foods = d.Foods
	}
	if c.Tours <= 0 {
		c.Tours = d.Tours
	}
	if c.Policies <= 0 {
		c.Policies = d.Policies
	}
	if c.Tips <= 0 {
		c.Tips = d.Tips
	}
	if c.HistoryLimit <= 0 {
		c.HistoryLimit = d.HistoryLimit
	}
	if c.RecentUserTurns <= 0 {
		c.RecentUserTurns = d.RecentUserTurns
	}
	return c
}

// ChatRequest is one inbound user turn. Origin/Destination/TripType are the
// optional airfare parameters.
type ChatRequest struct {
	Text        string
	SessionID   string
	Origin      string
	Destination string
	TripType    string
}

// ChatResponse is what the caller turns into a wire response.
type ChatResponse struct {
	Reply          string
	SessionID      string
	Intent         intent.Intent
	ActiveLocation string
}

// Engine is the conversational core. Safe for concurrent use; turns on the
// same session id are serialized, turns on different sessions are not.
type Engine struct {
	cfg      Config
	library  *corpus.Library
	flights  *flight.Table
	resolver *location.Resolver
	store    session.Store
	gen      llm.Generator
	logger   *zap.Logger
	locks    *sessionLocks
}

// New wires an Engine. flights may be nil when no estimate table is loaded.
func New(cfg Config, library *corpus.Library, flights *flight.Table, resolver *location.Resolver, store session.Store, gen llm.Generator, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		cfg:      cfg.withDefaults(),
		library:  library,
		flights:  flights,
		resolver: resolver,
		store:    store,
		gen:      gen,
		logger:   logger,
		locks:    newSessionLocks(),
	}
}

// Chat runs one full turn. The session mutation (location, user turn) commits
// before the generator call; a cancellation between the two leaves the turn
// recorded without a reply, which is an accepted inconsistency window.
func (e *Engine) Chat(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	if strings.TrimSpace(req.Text) == "" {
		return ChatResponse{}, ErrEmptyMessage
	}

	sid := req.SessionID
	if sid == "" {
		sid = uuid.NewString()
	}

	e.locks.lock(sid)
	defer e.locks.unlock(sid)

	sess, err := e.store.GetOrCreate(ctx, sid)
	if err != nil {
		return ChatResponse{}, err
	}

	snap := e.library.Snapshot()
	turnIntent := intent.Classify(req.Text)
	metrics.ChatRequests.WithLabelValues(string(turnIntent)).Inc()

	if detected := e.resolver.Resolve(req.Text, snap.Destinations); detected != "" {
		e.logger.Debug("location detected",
			zap.String("session", sid), zap.String("location", detected))
		sess.SetLocation(detected)
	}

	previous := sess.RecentUserTurns(e.cfg.RecentUserTurns)

	start := time.Now()
	payload := e.assemble(ctx, snap, sess, turnIntent, previous, req)
	metrics.RetrievalDuration.Observe(time.Since(start).Seconds())

	// Commit the turn before generating, so the recency window is right even
	// when the generator fails.
	sess.AppendTurn(session.RoleUser, req.Text, e.cfg.HistoryLimit)
	if err := e.store.Save(ctx, sess); err != nil {
		return ChatResponse{}, err
	}

	reply, err := e.gen.Generate(ctx, prompt.SystemInstruction, prompt.Render(payload))
	if err != nil {
		if class, ok := llm.Classify(err); ok {
			metrics.GeneratorFailures.WithLabelValues(string(class)).Inc()
		}
		return ChatResponse{}, err
	}

	sess.AppendTurn(session.RoleAssistant, reply, e.cfg.HistoryLimit)
	if err := e.store.Save(ctx, sess); err != nil {
		return ChatResponse{}, err
	}

	return ChatResponse{
		Reply:          reply,
		SessionID:      sid,
		Intent:         turnIntent,
		ActiveLocation: sess.LastLocation,
	}, nil
}

// ActiveLocation reports the sticky location of a session, empty when the
// session is unknown or has never asserted one.
func (e *Engine) ActiveLocation(ctx context.Context, sessionID string) (string, error) {
	sess, err := e.store.GetOrCreate(ctx, sessionID)
	if err != nil {
		return "", err
	}
	return sess.LastLocation, nil
}
