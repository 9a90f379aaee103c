package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/vacancyhq/jobdesk-api/internal/domain"
	"github.com/vacancyhq/jobdesk-api/internal/service/auth"
	"github.com/vacancyhq/jobdesk-api/internal/store"
)

// UserDraft carries the caller-supplied fields for registration.
type UserDraft struct {
	Email     string
	Name      string
	Password  string
	IsCompany bool
}

// UserUpdate carries the fields a user may change on their own profile.
// Empty fields are left unchanged. Role and credentials are deliberately
// absent: IsCompany is immutable and the update path never touches the
// stored password hash.
type UserUpdate struct {
	Email string
	Name  string
}

// UserService provides account registration, lookup and self-service updates.
type UserService interface {
	// Create registers a new user, hashing the plaintext password before
	// anything is persisted. Returns store.ErrEmailExists if the email is
	// already taken.
	Create(ctx context.Context, draft UserDraft) (*domain.User, error)

	// GetByID retrieves a user by ID. Returns store.ErrUserNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by email, used by the auth flow to resolve
	// a token subject. Returns store.ErrUserNotFound if absent.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List returns a page of users. Listing is public.
	List(ctx context.Context, limit, offset int) ([]domain.User, error)

	// Update applies a self-service profile update. The target user must be
	// the authenticated user (matched by email), otherwise
	// ErrUpdateOtherUser is returned. The stored password hash and role are
	// always preserved.
	Update(ctx context.Context, userID uuid.UUID, authUserEmail string, update UserUpdate) (*domain.User, error)
}

// UserServiceImpl implements the UserService interface.
type UserServiceImpl struct {
	userStore store.UserStore
	hasher    auth.PasswordHasher
	db        *sql.DB
	logger    *slog.Logger
}

// Ensure UserServiceImpl implements UserService
var _ UserService = (*UserServiceImpl)(nil)

// NewUserService creates a new UserService.
func NewUserService(
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	db *sql.DB,
	logger *slog.Logger,
) *UserServiceImpl {
	return &UserServiceImpl{
		userStore: userStore,
		hasher:    hasher,
		db:        db,
		logger:    logger.With("component", "user_service"),
	}
}

// Create implements UserService.Create
func (s *UserServiceImpl) Create(ctx context.Context, draft UserDraft) (*domain.User, error) {
	user, err := domain.NewUser(draft.Email, draft.Name, draft.Password, draft.IsCompany)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	hashed, err := s.hasher.Hash(user.Password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	err = runInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.Debug("attempted to create user with existing email",
				"email", draft.Email)
		} else {
			s.logger.Error("failed to save user",
				"error", err,
				"email", draft.Email)
		}
		return nil, err
	}

	s.logger.Info("user registered",
		"user_id", user.ID,
		"is_company", user.IsCompany)

	return user, nil
}

// GetByID implements UserService.GetByID
func (s *UserServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.userStore.GetByID(ctx, id)
}

// GetByEmail implements UserService.GetByEmail
func (s *UserServiceImpl) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userStore.GetByEmail(ctx, email)
}

// List implements UserService.List
func (s *UserServiceImpl) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	return s.userStore.List(ctx, normalizeLimit(limit), normalizeOffset(offset))
}

// Update implements UserService.Update
func (s *UserServiceImpl) Update(
	ctx context.Context,
	userID uuid.UUID,
	authUserEmail string,
	update UserUpdate,
) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Email != authUserEmail {
		s.logger.Debug("rejected cross-user profile update",
			"target_user_id", userID)
		return nil, ErrUpdateOtherUser
	}

	if update.Email != "" {
		user.Email = update.Email
	}
	if update.Name != "" {
		user.Name = update.Name
	}
	user.UpdatedAt = time.Now().UTC()

	// The update draft never carries credentials; user keeps the hash it was
	// loaded with.
	if err := s.userStore.Update(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.Debug("profile update collided with existing email",
				"user_id", userID)
		} else {
			s.logger.Error("failed to update user",
				"error", err,
				"user_id", userID)
		}
		return nil, err
	}

	return user, nil
}

// runInTransaction is a seam over store.RunInTransaction so tests can run
// the create path against mock stores without a live database.
var runInTransaction = store.RunInTransaction

// Pagination defaults for public listings.
const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}

func normalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
