package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/singleflight"

	"profileimage/internal/domain"
	"profileimage/internal/repository"
)

var ErrUnauthenticated = errors.New("unauthenticated")

type SessionService struct {
	repo   SessionRepository
	cache  SessionCache
	lookup singleflight.Group
}

func NewSessionService(repo SessionRepository, cache SessionCache) *SessionService {
	return &SessionService{
		repo:  repo,
		cache: cache,
	}
}

func (s *SessionService) Resolve(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	if user, ok := s.cache.Get(token); ok {
		return &user, nil
	}

	// Concurrent misses for one token share a single database lookup.
	v, err, _ := s.lookup.Do(token, func() (any, error) {
		user, err := s.repo.FindUserBySessionToken(ctx, token)
		if err != nil {
			return nil, err
		}
		s.cache.Set(token, *user)
		return *user, nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}

	user := v.(domain.User)
	return &user, nil
}
