package identity

import (
	"context"
	"crypto/subtle"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/auth"
	"github.com/storefront/backend/internal/infrastructure/config"
)

// AdminRole is the only role the storefront backend issues
const AdminRole = "admin"

// LoginRequest carries admin panel credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResult is a successful authentication
type LoginResult struct {
	Role      string `json:"role"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

// AuthService authenticates the shop operator against the configured
// credential and issues session tokens. There is no user store; the admin
// account lives in configuration.
type AuthService struct {
	admin      config.AdminConfig
	jwtService *auth.JWTService
	logger     *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(admin config.AdminConfig, jwtService *auth.JWTService, logger *zap.Logger) *AuthService {
	return &AuthService{
		admin:      admin,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login verifies the operator credential and returns a signed session token.
// Username and password failures are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	usernameOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.admin.Username)) == 1
	passwordOK := s.verifyPassword(req.Password)

	if !usernameOK || !passwordOK {
		s.logger.Warn("failed login attempt", zap.String("username", req.Username))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
	}

	token, err := s.jwtService.GenerateToken(s.admin.Username, AdminRole)
	if err != nil {
		return nil, err
	}

	s.logger.Info("operator logged in", zap.String("username", s.admin.Username))

	return &LoginResult{
		Role:      AdminRole,
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt.Unix(),
	}, nil
}

// verifyPassword checks against the bcrypt hash when one is configured and
// falls back to a constant-time plain comparison otherwise
func (s *AuthService) verifyPassword(password string) bool {
	if s.admin.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(password)) == nil
	}
	if s.admin.Password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.admin.Password)) == 1
}
