package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/repairworks/backoffice/internal/core/domain"
	"github.com/repairworks/backoffice/internal/core/ports"
)

// AuthService verifies credentials against stored bcrypt hashes and manages
// the server-side session behind the cookie token.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionStore
	log      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, sessions: sessions, log: log}
}

// Login checks the credentials and, on success, issues a session holding the
// principal projection of the user. Every failure path that stems from the
// caller's input collapses into ErrInvalidCredentials so the response never
// reveals whether the login or the password was wrong.
func (s *AuthService) Login(ctx context.Context, login, password string) (string, *domain.Principal, error) {
	if login == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	principal := domain.PrincipalOf(user)
	token, err := s.sessions.Issue(ctx, principal)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("login", user.Login).Bool("is_admin", user.IsAdmin).Msg("user logged in")
	return token, &principal, nil
}

// Logout destroys the session behind the token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Revoke(ctx, token)
}

// HashPassword produces a salted bcrypt hash of the plaintext.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether the plaintext matches the stored hash.
// Malformed hashes are treated as a non-match, never an error.
func VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
