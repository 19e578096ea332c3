package service

import (
	"context"
	"errors"

	"github.com/deppfellow/storefront-api/internal/errs"
	"github.com/deppfellow/storefront-api/internal/model"
	"github.com/deppfellow/storefront-api/internal/repository"
	"github.com/rs/zerolog"
)

// PasswordResetMessage is returned for every well-formed reset request.
const PasswordResetMessage = "If an account exists, you will receive password reset instructions."

// UserStore is the slice of the user repository AuthService needs.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindProfileByID(ctx context.Context, id string) (*model.UserProfile, error)
}

type AuthService struct {
	users UserStore
}

func NewAuthService(users UserStore) *AuthService {
	return &AuthService{users: users}
}

// ForgotPassword starts a password reset for email.
//
// The outcome is the same whether or not an account matches, so callers
// cannot probe which emails are registered. Only a failing lookup is
// reported as an error.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	logger := zerolog.Ctx(ctx)

	user, err := s.users.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		logger.Debug().Msg("password reset requested for unknown email")
		return nil
	case err != nil:
		return err
	}

	// TODO: issue a single-use reset token and send it by email once token storage exists.
	logger.Info().Str("user_id", user.ID).Msg("password reset requested")

	return nil
}

// CurrentUser returns the public profile of the user with id.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*model.UserProfile, error) {
	profile, err := s.users.FindProfileByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, errs.NewNotFoundError("User not found")
	}
	if err != nil {
		return nil, err
	}

	return profile, nil
}
