package store

import (
	"context"
	"sync"

	"business-buddy/internal/data/entity"
	"business-buddy/pkg/utils"

	"go.uber.org/zap"
)

// memoryUserStore keeps users in an append-only slice for the lifetime of the
// process. The mutex stands in for the single-event-loop atomicity the demo
// design assumes; there is no transactional guard against two creates racing
// on the same email.
type memoryUserStore struct {
	mu    sync.RWMutex
	users []entity.User
	log   *zap.Logger
}

func NewMemoryUserStore(log *zap.Logger) UserStore {
	return &memoryUserStore{
		log: log.With(zap.String("store", "user"), zap.String("driver", "memory")),
	}
}

func (s *memoryUserStore) Create(_ context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = append(s.users, *user)

	s.log.Debug("User stored", zap.String("user_id", user.ID), zap.Int("total", len(s.users)))
	return nil
}

func (s *memoryUserStore) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	needle := utils.NormalizeEmail(email)

	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].Email == needle {
			user := s.users[i]
			return &user, nil
		}
	}

	return nil, nil
}

func (s *memoryUserStore) FindAll(_ context.Context) ([]*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Insertion order preserved
	users := make([]*entity.User, 0, len(s.users))
	for i := range s.users {
		user := s.users[i]
		users = append(users, &user)
	}

	return users, nil
}
