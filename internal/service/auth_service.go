package service

import (
	"go-order-tracker/internal/model"
	"go-order-tracker/pkg/jwt"
)

type AuthService interface {
	Login(username, password string) (*LoginResponse, error)
}

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

type authService struct {
	operator model.Operator
	signer   *jwt.Signer
}

func NewAuthService(operator model.Operator, signer *jwt.Signer) AuthService {
	return &authService{operator: operator, signer: signer}
}

func (s *authService) Login(username, password string) (*LoginResponse, error) {
	// 1. Username harus cocok dengan operator yang dikonfigurasi
	if username != s.operator.Username {
		return nil, ErrInvalidCredentials
	}

	// 2. Verify password
	if !s.operator.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	// 3. Generate JWT token
	token, err := s.signer.GenerateToken(s.operator.Username)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{Token: token, Username: s.operator.Username}, nil
}
