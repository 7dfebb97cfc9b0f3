package service

import (
	"context"
	"fmt"

	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/config"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/session"

	"golang.org/x/crypto/bcrypt"
)

// AuthService gates the dashboard behind one shared employee password and
// issues signed session tokens.
type AuthService interface {
	Login(ctx context.Context, password string) (string, error)
	Verify(token string) session.Status
}

type authService struct {
	hash   []byte
	signer *session.Signer
}

// NewAuthService uses EMPLOYEE_PASSWORD_HASH when set, otherwise it hashes
// the plain EMPLOYEE_PASSWORD once at startup.
func NewAuthService(cfg *config.Config, signer *session.Signer) (AuthService, error) {
	hash := []byte(cfg.EmployeePasswordHash)
	if len(hash) == 0 {
		if cfg.EmployeePassword == "" {
			return nil, fmt.Errorf("auth: no employee password configured")
		}
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(cfg.EmployeePassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("auth: hash employee password: %w", err)
		}
	} else if _, err := bcrypt.Cost(hash); err != nil {
		return nil, fmt.Errorf("auth: EMPLOYEE_PASSWORD_HASH is not a bcrypt hash: %w", err)
	}
	return &authService{hash: hash, signer: signer}, nil
}

func (s *authService) Login(_ context.Context, password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(s.hash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.signer.Issue()
}

func (s *authService) Verify(token string) session.Status {
	return s.signer.Verify(token)
}
