package auth

import (
	"context"
	"errors"

	"github.com/hireloop/scheduler-api/internal/model"
	"github.com/hireloop/scheduler-api/internal/repository"
	"github.com/hireloop/scheduler-api/pkg/auth"
	apperrors "github.com/hireloop/scheduler-api/pkg/errors"
	"github.com/hireloop/scheduler-api/pkg/security"
)

// Service handles registration, login, and identity resolution for the
// access-control gate.
type Service struct {
	users  repository.UserRepository
	hasher security.PasswordHasher
	jwt    auth.JWTService
}

func NewService(users repository.UserRepository, hasher security.PasswordHasher, jwt auth.JWTService) *Service {
	return &Service{
		users:  users,
		hasher: hasher,
		jwt:    jwt,
	}
}

// Register stores a new user with a hashed credential. The role is fixed
// here and gates every subsequent operation.
func (s *Service) Register(ctx context.Context, email, password, role string) (*model.User, error) {
	parsedRole, err := model.ParseRole(role)
	if err != nil {
		return nil, apperrors.InvalidRole(role)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.DuplicateEmail()
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.Internal(err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, apperrors.BadRequest("invalid password", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: hash,
		Role:         parsedRole,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// unique index catches the race between the lookup and the insert
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.DuplicateEmail()
		}
		return nil, apperrors.Internal(err)
	}

	return user, nil
}

// Login verifies the credential and issues a signed identity claim carrying
// id/email/role.
func (s *Service) Login(ctx context.Context, email, password string) (*model.TokenResponse, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.InvalidCredentials()
		}
		return nil, apperrors.Internal(err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, apperrors.InvalidCredentials()
	}

	token, err := s.jwt.Generate(user.ID, user.Email, user.Role.String())
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return &model.TokenResponse{
		Token: token,
		Role:  user.Role,
		Email: user.Email,
	}, nil
}

// Identify resolves a bearer token into a caller identity. Verification
// failures are distinct from a token whose subject no longer exists.
func (s *Service) Identify(ctx context.Context, token string) (*model.Identity, error) {
	claims, err := s.jwt.Validate(token)
	if err != nil {
		return nil, apperrors.InvalidToken(err)
	}

	role, err := model.ParseRole(claims.Role)
	if err != nil {
		return nil, apperrors.InvalidToken(err)
	}

	if _, err := s.users.Get(ctx, claims.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.Unauthenticated("user not found")
		}
		return nil, apperrors.Internal(err)
	}

	return &model.Identity{
		ID:    claims.UserID,
		Email: claims.Email,
		Role:  role,
	}, nil
}

// GetUser returns the stored record behind an identity.
func (s *Service) GetUser(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.users.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("user")
		}
		return nil, apperrors.Internal(err)
	}
	return user, nil
}
