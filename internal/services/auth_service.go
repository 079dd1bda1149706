package services

import (
	"errors"

	"ventapos/internal/domain"
	"ventapos/internal/repos"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrBadCreds = errors.New("invalid email or password")

type AuthService struct {
	Users *repos.UserRepo
}

// Login checks credentials and issues an opaque bearer token. The catalog
// front end stores the token and sends it on every API call.
func (s *AuthService) Login(email, password string) (string, *domain.User, error) {
	u, err := s.Users.ByEmail(email)
	if err != nil {
		return "", nil, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return "", nil, ErrBadCreds
	}
	token := uuid.NewString()
	if err := s.Users.BindSession(token, u.ID); err != nil {
		return "", nil, err
	}
	return token, u, nil
}

func (s *AuthService) Logout(token string) error {
	return s.Users.UnbindSession(token)
}

func (s *AuthService) TokenUser(token string) (*domain.User, error) {
	return s.Users.SessionUser(token)
}
