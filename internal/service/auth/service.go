// internal/service/auth/service.go
package auth

import (
	"context"
	"fmt"
	"time"

	"farepass-service/internal/domain/auth"
	xerrors "farepass-service/internal/pkg/errors"
	"farepass-service/internal/pkg/jwt"
	"farepass-service/internal/pkg/session"
	"farepass-service/internal/repository/postgres"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	authRepo       *postgres.AuthRepository
	jwtManager     *jwt.Manager
	sessionManager *session.Manager
	logger         *zap.Logger
}

func NewAuthService(authRepo *postgres.AuthRepository, jwtManager *jwt.Manager, sessionManager *session.Manager, logger *zap.Logger) *AuthService {
	return &AuthService{
		authRepo:       authRepo,
		jwtManager:     jwtManager,
		sessionManager: sessionManager,
		logger:         logger,
	}
}

// Login verifies credentials and opens a session. Wrong email and wrong
// password return the same error.
func (s *AuthService) Login(ctx context.Context, req *auth.LoginRequest, userAgent, ip string) (*auth.LoginResponse, error) {
	admin, err := s.authRepo.FindAdminByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", xerrors.ErrUnauthorized)
	}
	if !admin.IsActive {
		return nil, fmt.Errorf("%w: account disabled", xerrors.ErrForbidden)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", xerrors.ErrUnauthorized)
	}

	token, jti, err := s.jwtManager.Generate(admin.ID, admin.Email, admin.Roles)
	if err != nil {
		s.logger.Error("failed to generate token", zap.Error(err))
		return nil, xerrors.ErrInternal
	}

	now := time.Now()
	if err := s.sessionManager.CreateSession(ctx, &session.SessionData{
		AdminID:   admin.ID,
		JTI:       jti,
		Email:     admin.Email,
		Roles:     admin.Roles,
		UserAgent: userAgent,
		IP:        ip,
		CreatedAt: now,
		ExpiresAt: now.Add(s.jwtManager.TTL()),
	}); err != nil {
		s.logger.Error("failed to create session", zap.Error(err))
		return nil, xerrors.ErrInternal
	}

	if err := s.authRepo.UpdateLastLogin(ctx, admin.ID); err != nil {
		s.logger.Warn("failed to record last login", zap.Error(err))
	}

	s.logger.Info("admin logged in",
		zap.Int64("admin_id", admin.ID),
		zap.String("email", admin.Email),
	)

	admin.PasswordHash = ""
	return &auth.LoginResponse{Token: token, Admin: admin}, nil
}

// Logout closes the session and revokes the token.
func (s *AuthService) Logout(ctx context.Context, adminID int64, jti string) error {
	if err := s.sessionManager.DeleteSession(ctx, adminID, jti); err != nil {
		return err
	}
	s.logger.Info("admin logged out", zap.Int64("admin_id", adminID))
	return nil
}

// ChangePassword verifies the current password before rehashing.
func (s *AuthService) ChangePassword(ctx context.Context, adminID int64, req *auth.ChangePasswordRequest) error {
	admin, err := s.authRepo.FindAdminByID(ctx, adminID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return fmt.Errorf("%w: current password is incorrect", xerrors.ErrUnauthorized)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.authRepo.UpdatePassword(ctx, adminID, string(hash)); err != nil {
		return err
	}

	s.logger.Info("admin password changed", zap.Int64("admin_id", adminID))
	return nil
}

// ValidateToken verifies a token's signature, blacklist state and session.
func (s *AuthService) ValidateToken(ctx context.Context, token string) (*jwt.Claims, error) {
	claims, err := s.jwtManager.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", xerrors.ErrUnauthorized, err)
	}

	blacklisted, err := s.sessionManager.IsTokenBlacklisted(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if blacklisted {
		return nil, fmt.Errorf("%w: token revoked", xerrors.ErrUnauthorized)
	}

	if _, err := s.sessionManager.GetSession(ctx, claims.AdminID, claims.ID); err != nil {
		return nil, err
	}

	return claims, nil
}

// GetAdmin returns the admin record without the password hash.
func (s *AuthService) GetAdmin(ctx context.Context, adminID int64) (*auth.AdminUser, error) {
	admin, err := s.authRepo.FindAdminByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	admin.PasswordHash = ""
	return admin, nil
}
