package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/vietanh2810/evote-api/internal/domain"
	"github.com/vietanh2810/evote-api/internal/repository"
)

var (
	ErrUserEmailExists = repository.ErrUserEmailExists
	ErrWrongPassword   = errors.New("wrong password")
)

type AuthUserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

type AuthService struct {
	repo AuthUserRepository
}

func NewAuthService(repo AuthUserRepository) *AuthService {
	return &AuthService{
		repo: repo,
	}
}

// Signup registers user. The plaintext password is hashed by the persistence layer.
func (s *AuthService) Signup(ctx context.Context, user domain.User) (domain.User, error) {
	if err := s.checkEmailExists(ctx, user.Email); err != nil {
		return domain.User{}, err
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrUserEmailExists) {
			return domain.User{}, domain.NewFieldError(fieldEmail, msgEmailTaken)
		}

		return domain.User{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrUserNotFound
		}

		return domain.User{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return domain.User{}, ErrWrongPassword
	}

	return user, nil
}

func (s *AuthService) checkEmailExists(ctx context.Context, email string) error {
	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return domain.NewFieldError(fieldEmail, msgEmailTaken)
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	return nil
}
