package services

import (
	"errors"
	"strings"

	"github.com/lspdigital/sertifikasi_service/internal/domain"
	"github.com/lspdigital/sertifikasi_service/internal/helper"
	"github.com/lspdigital/sertifikasi_service/internal/repository"
)

type AuthService interface {
	Login(email, password string) (*domain.User, string, error)
	GetUser(userID uint) (*domain.User, error)
}

type authService struct {
	users repository.UserRepository
	auth  helper.Auth
}

func NewAuthService(users repository.UserRepository, auth helper.Auth) AuthService {
	return &authService{users: users, auth: auth}
}

func (s *authService) Login(email, password string) (*domain.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	password = strings.TrimSpace(password)

	if email == "" || password == "" {
		return nil, "", errors.New("invalid email or password")
	}

	user, err := s.users.FindUserByEmail(email)
	if err != nil {
		return nil, "", errors.New("invalid email or password")
	}
	if user.Status != "active" {
		return nil, "", errors.New("account is not active")
	}
	if err := s.auth.VerifyPassword(password, user.PasswordHash); err != nil {
		return nil, "", errors.New("invalid email or password")
	}

	token, err := s.auth.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) GetUser(userID uint) (*domain.User, error) {
	if userID == 0 {
		return nil, domain.ErrNotFound
	}
	return s.users.FindUserById(userID)
}
