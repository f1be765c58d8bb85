// Package session keeps per-conversation state: the active location and a
// bounded window of recent turns. Sessions are created on first use and live
// for the process lifetime; transcript persistence beyond that window is a
// collaborator concern, not handled here.
package session

// DefaultHistoryLimit bounds the per-session turn window.
const DefaultHistoryLimit = 10

// Role identifies who authored a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one utterance in a conversation.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Session is the mutable conversational state for one session id.
//
// LastLocation is sticky: once set it persists across turns until a new
// location is positively detected. It is never cleared by an absence of
// detection — that is the whole point of the field.
type Session struct {
	ID           string `json:"id"`
	LastLocation string `json:"lastLocation,omitempty"`
	History      []Turn `json:"history,omitempty"`
}

// SetLocation records a newly detected location. An empty detection is a
// no-op so the previous location survives turns that name no place.
func (s *Session) SetLocation(detected string) {
	if detected != "" {
		s.LastLocation = detected
	}
}

// AppendTurn appends to the history and evicts the oldest turns so that at
// most limit remain (FIFO truncation). limit <= 0 uses DefaultHistoryLimit.
func (s *Session) AppendTurn(role Role, content string, limit int) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	s.History = append(s.History, Turn{Role: role, Content: content})
	if over := len(s.History) - limit; over > 0 {
		s.History = append([]Turn(nil), s.History[over:]...)
	}
}

// RecentUserTurns returns up to n of the most recent user-authored turn
// contents, oldest first. Used to build the recency-window retrieval query.
func (s *Session) RecentUserTurns(n int) []string {
	if n <= 0 {
		return nil
	}
	var out []string
	for i := len(s.History) - 1; i >= 0 && len(out) < n; i-- {
		if s.History[i].Role == RoleUser {
			out = append(out, s.History[i].Content)
		}
	}
	// Collected newest-first; flip to conversation order.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Clone returns a deep copy, so stores can hand out snapshots without
// sharing the history slice.
func (s *Session) Clone() *Session {
	cp := *s
	cp.History = append([]Turn(nil), s.History...)
	return &cp
}
