package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/vacancyhq/jobdesk-api/internal/domain"
	"github.com/vacancyhq/jobdesk-api/internal/store"
)

// UserStore implements store.UserStore for testing.
type UserStore struct {
	// Function fields for customizable behavior
	CreateFn     func(ctx context.Context, user *domain.User) error
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	ListFn       func(ctx context.Context, limit, offset int) ([]domain.User, error)
	UpdateFn     func(ctx context.Context, user *domain.User) error

	// Data for the default in-memory implementation, keyed by email.
	Users map[string]*domain.User
}

// Ensure UserStore implements store.UserStore
var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates a new mock store with initialized defaults.
func NewUserStore() *UserStore {
	return &UserStore{
		Users: make(map[string]*domain.User),
	}
}

// Create implements the store.UserStore interface.
func (m *UserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	if _, exists := m.Users[user.Email]; exists {
		return store.ErrEmailExists
	}

	m.Users[user.Email] = user
	return nil
}

// GetByID implements the store.UserStore interface.
func (m *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	for _, user := range m.Users {
		if user.ID == id {
			return user, nil
		}
	}

	return nil, store.ErrUserNotFound
}

// GetByEmail implements the store.UserStore interface.
func (m *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}

	user, exists := m.Users[email]
	if !exists {
		return nil, store.ErrUserNotFound
	}

	return user, nil
}

// List implements the store.UserStore interface.
func (m *UserStore) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, limit, offset)
	}

	users := make([]domain.User, 0, len(m.Users))
	for _, user := range m.Users {
		users = append(users, *user)
	}

	if offset >= len(users) {
		return []domain.User{}, nil
	}
	users = users[offset:]
	if limit < len(users) {
		users = users[:limit]
	}

	return users, nil
}

// Update implements the store.UserStore interface.
func (m *UserStore) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, user)
	}

	for email, existing := range m.Users {
		if existing.ID == user.ID {
			if email != user.Email {
				if _, exists := m.Users[user.Email]; exists {
					return store.ErrEmailExists
				}
				delete(m.Users, email)
			}
			m.Users[user.Email] = user
			return nil
		}
	}

	return store.ErrUserNotFound
}

// WithTx implements the store.UserStore interface. The mock has no real
// transactions, so it returns itself.
func (m *UserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}
