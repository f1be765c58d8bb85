package session

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendTurnBoundsHistory(t *testing.T) {
	s := &Session{ID: "s1"}
	for i := 0; i < 15; i++ {
		s.AppendTurn(RoleUser, fmt.Sprintf("turn %d", i), DefaultHistoryLimit)
	}

	require.Len(t, s.History, DefaultHistoryLimit)
	// Exactly the 10 most recent turns, in order.
	for i, turn := range s.History {
		assert.Equal(t, fmt.Sprintf("turn %d", i+5), turn.Content)
	}
}

func TestSetLocationSticky(t *testing.T) {
	s := &Session{ID: "s1"}
	s.SetLocation("An Giang")
	s.SetLocation("") // absence of detection must not clear it
	assert.Equal(t, "An Giang", s.LastLocation)

	s.SetLocation("Cần Thơ") // a positive detection supersedes
	assert.Equal(t, "Cần Thơ", s.LastLocation)
}

func TestRecentUserTurns(t *testing.T) {
	s := &Session{ID: "s1"}
	s.AppendTurn(RoleUser, "first", 0)
	s.AppendTurn(RoleAssistant, "reply one", 0)
	s.AppendTurn(RoleUser, "second", 0)
	s.AppendTurn(RoleAssistant, "reply two", 0)
	s.AppendTurn(RoleUser, "third", 0)

	assert.Equal(t, []string{"second", "third"}, s.RecentUserTurns(2))
	assert.Equal(t, []string{"first", "second", "third"}, s.RecentUserTurns(10))
	assert.Empty(t, s.RecentUserTurns(0))
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	s, err := store.GetOrCreate(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", s.ID)
	assert.Empty(t, s.History)

	s.SetLocation("Đà Nẵng")
	s.AppendTurn(RoleUser, "hello", 0)
	require.NoError(t, store.Save(ctx, s))

	// Mutating the snapshot after Save must not leak into the store.
	s.AppendTurn(RoleUser, "leak?", 0)

	again, err := store.GetOrCreate(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "Đà Nẵng", again.LastLocation)
	require.Len(t, again.History, 1)
	assert.Equal(t, "hello", again.History[0].Content)

	assert.Equal(t, 1, store.Len())
}
