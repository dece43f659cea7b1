package session

import (
	"context"
	"sync"
	"time"
)

// record is the single session record shape shared by all registry
// variants. The non-expiring variant simply never consults CreatedAt.
type record struct {
	userID    int64
	createdAt time.Time
}

// memoryRegistry is the in-memory implementation of [Registry]. The map is
// guarded by an RWMutex so each operation is atomic with respect to
// concurrent request handlers; no cross-call transaction exists.
//
// Expired records are not deleted on lookup. This is a memory-growth caveat
// callers accept; mitigation (e.g. a periodic sweep) is external.
type memoryRegistry struct {
	mu       sync.RWMutex
	sessions map[string]record

	ids      IDGenerator
	duration time.Duration
	now      func() time.Time
}

// NewMemoryRegistry constructs the base in-memory registry: process-lifetime
// sessions that never expire.
func NewMemoryRegistry(ids IDGenerator) Registry {
	return newMemoryRegistry(ids, 0)
}

// NewExpiringMemoryRegistry constructs an in-memory registry whose sessions
// expire duration after creation, evaluated lazily at Resolve. A duration
// <= 0 behaves exactly like NewMemoryRegistry.
func NewExpiringMemoryRegistry(ids IDGenerator, duration time.Duration) Registry {
	return newMemoryRegistry(ids, duration)
}

func newMemoryRegistry(ids IDGenerator, duration time.Duration) *memoryRegistry {
	return &memoryRegistry{
		sessions: make(map[string]record),
		ids:      ids,
		duration: duration,
		now:      time.Now,
	}
}

// Create implements [Registry]. It always succeeds for a valid user id and
// does not check whether the user exists.
func (r *memoryRegistry) Create(_ context.Context, userID int64) (string, error) {
	if userID <= 0 {
		return "", ErrInvalidUserID
	}

	sessionID := r.ids.Generate()

	r.mu.Lock()
	r.sessions[sessionID] = record{userID: userID, createdAt: r.now()}
	r.mu.Unlock()

	return sessionID, nil
}

// Resolve implements [Registry].
func (r *memoryRegistry) Resolve(_ context.Context, sessionID string) (int64, error) {
	if sessionID == "" {
		return 0, ErrSessionNotFound
	}

	r.mu.RLock()
	rec, ok := r.sessions[sessionID]
	r.mu.RUnlock()

	if !ok {
		return 0, ErrSessionNotFound
	}

	if expired(rec.createdAt, r.now(), r.duration) {
		// the stale entry stays in the map; lazy expiry only reports it
		return 0, ErrSessionExpired
	}

	return rec.userID, nil
}

// Destroy implements [Registry].
func (r *memoryRegistry) Destroy(_ context.Context, sessionID string) (bool, error) {
	if sessionID == "" {
		return false, nil
	}

	r.mu.Lock()
	_, ok := r.sessions[sessionID]
	delete(r.sessions, sessionID)
	r.mu.Unlock()

	return ok, nil
}
