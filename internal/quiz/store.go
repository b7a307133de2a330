package quiz

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/neurobridge-lambda/internal/cache"
)

const SessionTTL = 2 * time.Hour

var ErrSessionNotFound = errors.New("quiz session not found")

type SessionStore struct {
	cache cache.Store
	ttl   time.Duration
}

func NewSessionStore(c cache.Store) *SessionStore {
	return &SessionStore{cache: c, ttl: SessionTTL}
}

func sessionKey(id uuid.UUID) string {
	return "quiz:session:" + id.String()
}

func (s *SessionStore) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	var sess Session
	ok, err := s.cache.Get(ctx, sessionKey(id), &sess)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &sess, nil
}

func (s *SessionStore) Save(ctx context.Context, sess *Session) error {
	return s.cache.Set(ctx, sessionKey(sess.ID), sess, s.ttl)
}
