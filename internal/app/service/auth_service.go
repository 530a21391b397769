package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"holiday_tracker/internal/common"
	"holiday_tracker/internal/common/security"
	"holiday_tracker/internal/domain/model"
	"holiday_tracker/internal/domain/repository"
	"holiday_tracker/internal/platform/config"
	"holiday_tracker/internal/platform/session"

	"github.com/google/uuid"
)

const seedAdminUsername = "admin"

type AuthService struct {
	userRepo repository.UserRepository
	sessions session.Store
}

func NewAuthService(userRepo repository.UserRepository, sessions session.Store) *AuthService {
	return &AuthService{userRepo: userRepo, sessions: sessions}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Login verifies credentials and establishes a server-side session. No session
// is created unless the password check passes.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, common.ErrBadRequest
	}

	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized // Generic message for security
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !security.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, common.ErrUnauthorized
	}

	sid := uuid.NewString()
	sess := session.Session{UserID: user.ID, Role: user.Role}
	if err := s.sessions.Create(ctx, sid, sess, config.AppConfig.SessionTTL); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	token, err := security.GenerateSessionToken(user.ID, user.Role, sid)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	user.PasswordHash = "" // Clear password before returning
	return &AuthResponse{User: user, Token: token}, nil
}

// Logout drops the session record. Logging out an already-dead session is not
// an error.
func (s *AuthService) Logout(ctx context.Context, sid string) error {
	if err := s.sessions.Delete(ctx, sid); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// EnsureAdmin seeds the bootstrap admin account on first run. Idempotent: it
// does nothing when the account exists, including when another instance
// created it concurrently.
func (s *AuthService) EnsureAdmin(ctx context.Context) error {
	_, err := s.userRepo.FindByUsername(ctx, seedAdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}

	hash, err := security.HashPassword(config.AppConfig.SeedAdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	admin := &model.User{
		ID:           uuid.NewString(),
		Username:     seedAdminUsername,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	}

	if err := s.userRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil // Lost the race to another instance
		}
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Printf("Seeded bootstrap admin user %q", seedAdminUsername)
	return nil
}
