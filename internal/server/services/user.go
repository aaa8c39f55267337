// Package services contains server-side business logic. UserService handles
// signup and credential verification; TranslateService forwards text to the
// translation gateway.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/wordbridge/internal/common"
	"github.com/dmitrijs2005/wordbridge/internal/logging"
	"github.com/dmitrijs2005/wordbridge/internal/server/auth"
	"github.com/dmitrijs2005/wordbridge/internal/server/models"
	"github.com/dmitrijs2005/wordbridge/internal/server/repositories/users"
	"github.com/google/uuid"
)

// UserService registers users and verifies their passwords.
type UserService struct {
	repo         users.Repository
	hasher       auth.PasswordHasher
	storeTimeout time.Duration
	logger       logging.Logger

	now   func() time.Time
	newID func() string
}

// NewUserService constructs a UserService. storeTimeout bounds each store call;
// zero means no extra deadline.
func NewUserService(repo users.Repository, hasher auth.PasswordHasher, storeTimeout time.Duration, logger logging.Logger) *UserService {
	return &UserService{
		repo:         repo,
		hasher:       hasher,
		storeTimeout: storeTimeout,
		logger:       logger.With("module", "users"),
		now:          func() time.Time { return time.Now().UTC() },
		newID:        uuid.NewString,
	}
}

func (s *UserService) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.storeTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.storeTimeout)
}

// Signup stores a new user with a bcrypt hash of password.
//
// It returns common.ErrorAlreadyExists when the email is taken (either by the
// pre-check or by the store's unique index) and common.ErrorNotAcknowledged
// when the store did not confirm the write.
func (s *UserService) Signup(ctx context.Context, email, password string) (*models.User, error) {
	exists, err := s.exists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error checking user: %w", err)
	}
	if exists {
		return nil, common.ErrorAlreadyExists
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           s.newID(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	}

	sctx, cancel := s.storeCtx(ctx)
	defer cancel()

	created, err := s.repo.Create(sctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) || errors.Is(err, common.ErrorNotAcknowledged) {
			s.logger.Warn(ctx, "signup rejected by store", "error", err)
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info(ctx, "user created", "id", created.ID)
	return created, nil
}

func (s *UserService) exists(ctx context.Context, email string) (bool, error) {
	sctx, cancel := s.storeCtx(ctx)
	defer cancel()
	return s.repo.Exists(sctx, email)
}

// Login returns the user whose stored hash matches password.
//
// An unknown email or a record without a hash yields common.ErrorUnauthorized;
// a wrong password yields common.ErrorInvalidPassword.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	sctx, cancel := s.storeCtx(ctx)
	defer cancel()

	user, err := s.repo.GetUserByEmail(sctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	if user.PasswordHash == "" {
		return nil, common.ErrorUnauthorized
	}

	ok, err := s.hasher.Compare(user.PasswordHash, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, common.ErrorInvalidPassword
	}

	return user, nil
}
