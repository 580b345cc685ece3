package service

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/softcrates/fieldsync/internal/domain/repository"
	"github.com/softcrates/fieldsync/internal/infrastructure/remote"
	"github.com/softcrates/fieldsync/pkg/apperror"
	"github.com/softcrates/fieldsync/pkg/connectivity"
	"github.com/softcrates/fieldsync/pkg/utils"
)

// AuthService handles login, remote-first with an offline fallback against
// the mirrored user table. An offline session carries no bearer token;
// remote calls made during it fail and the proxies answer from local data
// until the next online login.
type AuthService struct {
	oracle   connectivity.Oracle
	remote   *remote.Client
	userRepo repository.UserRepository
	tokens   *utils.TokenStore
}

// NewAuthService creates a new auth service
func NewAuthService(oracle connectivity.Oracle, remoteClient *remote.Client, userRepo repository.UserRepository, tokens *utils.TokenStore) *AuthService {
	return &AuthService{oracle: oracle, remote: remoteClient, userRepo: userRepo, tokens: tokens}
}

// Session represents an authenticated session on the device
type Session struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	Token    string `json:"token,omitempty"`
	Offline  bool   `json:"offline"`
}

// Login authenticates the user. Online, the backend issues a token that is
// kept for subsequent calls; offline, the credentials are checked against
// the mirrored user table and the session is flagged as offline.
func (s *AuthService) Login(ctx context.Context, username, password string) (*Session, error) {
	if s.oracle.IsConnected() {
		resp, err := s.remote.Login(ctx, username, password)
		if err == nil {
			return &Session{Username: resp.Username, IsAdmin: resp.IsAdmin, Token: resp.Token}, nil
		}
		if remoteErr, ok := err.(*apperror.RemoteError); ok && remoteErr.Status == 401 {
			return nil, apperror.ErrInvalidCredentials
		}
		log.Printf("[AUTH] remote login failed, trying offline: %v", err)
	}
	return s.loginOffline(ctx, username, password)
}

func (s *AuthService) loginOffline(ctx context.Context, username, password string) (*Session, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}
	if user.Inactive {
		return nil, apperror.ErrUserInactive
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	log.Printf("[AUTH] offline login for %s", user.Name)
	return &Session{Username: user.Name, IsAdmin: user.IsAdmin, Offline: true}, nil
}

// Logout discards the stored bearer token.
func (s *AuthService) Logout() {
	s.tokens.Clear()
}
