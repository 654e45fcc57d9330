package users

import (
	"context"
	"healthportal-service/internal/app/contracts"
	"healthportal-service/internal/app/models"
	"healthportal-service/internal/pkg/exceptions"
	"sort"
	"strings"
	"sync"
)

type userMemoryRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewUserMemoryRepository(seed []models.User) contracts.UserRepository {
	repo := &userMemoryRepository{
		users: make(map[string]models.User, len(seed)),
	}
	for _, user := range seed {
		user.Email = strings.ToLower(user.Email)
		if user.CreatedAt.IsZero() {
			user.SetCreatedAtUpdatedAt()
		}
		repo.users[user.Email] = user
	}
	return repo
}

func (r *userMemoryRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *userMemoryRepository) Insert(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := strings.ToLower(user.Email)
	if _, exists := r.users[email]; exists {
		return exceptions.ErrUserAlreadyExists(nil)
	}
	user.Email = email
	r.users[email] = *user
	return nil
}

func (r *userMemoryRepository) List(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.User, 0, len(r.users))
	for _, user := range r.users {
		result = append(result, user)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result, nil
}
