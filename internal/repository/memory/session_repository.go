package memory

import (
	"sync"
	"time"

	"sales-assistant-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository holds conversation sessions in memory. Sessions expire an
// hour after their last save, which bounds the otherwise unbounded growth of
// abandoned conversations.
type SessionRepository struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Default expiration of 1 hour, purge sweep every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

// GetOrCreate returns the session for the id, creating it with defaults on
// first reference. Creation is serialized so concurrent first requests for
// the same id observe a single session.
func (r *SessionRepository) GetOrCreate(sessionID string) *store.Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session)
	}

	session := store.NewSession(sessionID)
	r.cache.Set(sessionID, session, cache.DefaultExpiration)
	return session
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session), true
	}
	return nil, false
}

// Save refreshes the session's expiration window.
func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}

func (r *SessionRepository) Count() int {
	return r.cache.ItemCount()
}
