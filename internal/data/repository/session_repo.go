package repository

import (
	"context"
	"fmt"
	"sync"

	"organic-store/internal/data/entity"

	"go.uber.org/zap"
)

type SessionRepository interface {
	Create(ctx context.Context, session entity.Session) error
	Find(ctx context.Context, token string) (entity.Session, bool)
	Delete(ctx context.Context, token string)
}

// memorySessionRepository keeps live sessions in a process-local map.
// Sessions have no server-side expiry, they end on logout or restart.
type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]entity.Session
	log      *zap.Logger
}

func NewMemorySessionRepository(log *zap.Logger) SessionRepository {
	return &memorySessionRepository{
		sessions: make(map[string]entity.Session),
		log:      log.With(zap.String("repository", "session")),
	}
}

func (r *memorySessionRepository) Create(ctx context.Context, session entity.Session) error {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	// Token uniqueness is an invariant; a duplicate means the generator
	// collided and the caller must treat it as fatal, not retry silently.
	if _, exists := r.sessions[session.Token]; exists {
		r.log.Error("Session token collision", zap.String("kind", string(session.Kind)))
		return fmt.Errorf("session token collision")
	}

	r.sessions[session.Token] = session
	return nil
}

func (r *memorySessionRepository) Find(ctx context.Context, token string) (entity.Session, bool) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[token]
	return session, ok
}

func (r *memorySessionRepository) Delete(ctx context.Context, token string) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, token)
}
