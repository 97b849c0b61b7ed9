package user

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both an unknown email and a wrong
// password, so a caller cannot probe which accounts exist.
var ErrInvalidCredentials = errors.New("invalid credentials")

type ServiceInterface interface {
	Login(email, password string) (*User, error)
}

type Service struct {
	Repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repo: repo}
}

// Login verifies a plaintext password against the stored bcrypt digest
// (hashed at cost 10 when the record is provisioned). The credential
// store is read-only here; users are created by the seed script.
func (s *Service) Login(email, password string) (*User, error) {
	u, err := s.Repo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}
