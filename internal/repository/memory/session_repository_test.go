package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-assistant-be/pkg/store"
)

func TestGetOrCreateReturnsSameInstanceUnderRace(t *testing.T) {
	repo := NewSessionRepository()

	const goroutines = 32
	sessions := make([]*store.Session, goroutines)

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer wg.Done()
			sessions[i] = repo.GetOrCreate("same-id")
		}(i)
	}
	wg.Wait()

	require.NotNil(t, sessions[0])
	for i := 1; i < goroutines; i++ {
		assert.Same(t, sessions[0], sessions[i])
	}
	assert.Equal(t, 1, repo.Count())
}

func TestGetOrCreateDefaults(t *testing.T) {
	repo := NewSessionRepository()

	session := repo.GetOrCreate("s1")

	assert.Equal(t, "s1", session.ID)
	assert.Equal(t, 0, session.LeadScore)
	assert.Equal(t, store.StageGreeting, session.Stage)
	assert.NotNil(t, session.ConversationHistory)
	assert.NotNil(t, session.QualificationSignals)
}

func TestGetMissesUnknownId(t *testing.T) {
	repo := NewSessionRepository()

	_, ok := repo.Get("nope")
	assert.False(t, ok)
}

func TestDeleteRemovesSession(t *testing.T) {
	repo := NewSessionRepository()
	repo.GetOrCreate("s1")

	repo.Delete("s1")

	_, ok := repo.Get("s1")
	assert.False(t, ok)
	assert.Equal(t, 0, repo.Count())
}

func TestSessionLockSerializesTurnUpdates(t *testing.T) {
	repo := NewSessionRepository()
	session := repo.GetOrCreate("s1")

	const turns = 50
	var wg sync.WaitGroup
	wg.Add(turns)
	for i := 0; i < turns; i++ {
		go func() {
			defer wg.Done()
			session.Lock()
			defer session.Unlock()
			session.LeadScore += 10
			session.TouchCount++
			session.AppendMessage(store.RoleUser, "next step please")
		}()
	}
	wg.Wait()

	assert.Equal(t, turns*10, session.LeadScore)
	assert.Equal(t, turns, session.TouchCount)
	assert.Len(t, session.ConversationHistory, turns)
}
