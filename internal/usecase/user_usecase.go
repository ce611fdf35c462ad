package usecase

import (
	"context"
	"errors"
	"strings"

	"carmasters/internal/domain/entities"
	"carmasters/internal/usecase/interfaces"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrCredentialsRequired = errors.New("username and password required")
	ErrUsernameTaken       = errors.New("username already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)

// IUserUseCase handles admin-panel account registration and login.
type IUserUseCase interface {
	Register(ctx context.Context, username, password, name string) (entities.User, error)
	Login(ctx context.Context, username, password string) (string, error)
}

type UserUseCase struct {
	repo   interfaces.IUserRepository
	tokens interfaces.ITokenManager
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository, tokens interfaces.ITokenManager) *UserUseCase {
	return &UserUseCase{repo: repo, tokens: tokens}
}

func (u *UserUseCase) Register(ctx context.Context, username, password, name string) (entities.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return entities.User{}, ErrCredentialsRequired
	}

	existing, err := u.repo.GetByUsername(ctx, username)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID != 0 {
		return entities.User{}, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, err
	}
	return u.repo.Create(ctx, username, string(hash), name)
}

func (u *UserUseCase) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", ErrCredentialsRequired
	}

	user, err := u.repo.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if user.ID == 0 {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return u.tokens.Sign(user)
}
