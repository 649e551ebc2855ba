// Package service provides application-level services that orchestrate
// domain services and repositories behind the HTTP surface.
package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/healthpredict/healthpredict/internal/application/dto"
	"github.com/healthpredict/healthpredict/internal/config"
	"github.com/healthpredict/healthpredict/internal/domain/models"
	"github.com/healthpredict/healthpredict/internal/domain/repository"
	"github.com/healthpredict/healthpredict/pkg/constants"
	"github.com/healthpredict/healthpredict/pkg/errors"
	"github.com/healthpredict/healthpredict/pkg/logger"
	"github.com/healthpredict/healthpredict/pkg/utils"
)

// AuthAppService handles account registration, login and token validation.
type AuthAppService interface {
	// Register creates an account and issues its first token.
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)

	// Login verifies credentials and issues a token.
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)

	// ValidateToken parses and verifies a bearer token, returning its
	// identity claims.
	ValidateToken(ctx context.Context, tokenString string) (*IdentityClaims, error)
}

// IdentityClaims is the verified identity carried by an access token.
type IdentityClaims struct {
	UserID   string
	Email    string
	FullName string
	IsAdmin  bool
}

var _ AuthAppService = (*authAppServiceImpl)(nil)

type authAppServiceImpl struct {
	users  repository.UserRepository
	jwtCfg *config.JWTConfig
	logger logger.Logger
}

// NewAuthAppService creates the authentication application service.
func NewAuthAppService(users repository.UserRepository, jwtCfg *config.JWTConfig, log logger.Logger) AuthAppService {
	return &authAppServiceImpl{
		users:  users,
		jwtCfg: jwtCfg,
		logger: log,
	}
}

// Register creates a new account. The email is normalized before the
// uniqueness check so "User@Example.com" and "user@example.com" are the
// same identity. Duplicate registration is a client error.
func (s *authAppServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	email := utils.NormalizeEmail(req.Email)

	existing, err := s.users.FindByEmailCI(ctx, email)
	if err != nil {
		s.logger.Error(ctx, "account lookup failed", err, logger.Fields{"email": email})
		return nil, errors.ErrInternal("account lookup failed").WithCause(err)
	}
	if existing != nil {
		return nil, errors.ErrConflict("an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error(ctx, "password hashing failed", err)
		return nil, errors.ErrInternal("password hashing failed").WithCause(err)
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
	}
	if err := s.users.Save(ctx, user); err != nil {
		s.logger.Error(ctx, "account creation failed", err, logger.Fields{"email": email})
		return nil, errors.ErrInternal("account creation failed").WithCause(err)
	}

	s.logger.Info(ctx, "account registered", logger.Fields{"user_id": user.ID})
	return s.issueToken(ctx, user)
}

// Login verifies credentials against the stored bcrypt hash. Unknown
// email and wrong password produce the same error so the endpoint does
// not leak which accounts exist.
func (s *authAppServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	email := utils.NormalizeEmail(req.Email)

	user, err := s.users.FindByEmailCI(ctx, email)
	if err != nil {
		s.logger.Error(ctx, "account lookup failed", err, logger.Fields{"email": email})
		return nil, errors.ErrInternal("account lookup failed").WithCause(err)
	}
	if user == nil {
		return nil, errors.ErrUnauthorized("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.ErrUnauthorized("invalid email or password")
	}

	s.logger.Info(ctx, "login succeeded", logger.Fields{"user_id": user.ID})
	return s.issueToken(ctx, user)
}

// ValidateToken verifies the signature and expiry of a bearer token and
// extracts its identity claims. Only HMAC-signed tokens are accepted.
func (s *authAppServiceImpl) ValidateToken(_ context.Context, tokenString string) (*IdentityClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.ErrUnauthorized("unexpected token signing method")
		}
		return []byte(s.jwtCfg.Secret), nil
	}, jwt.WithIssuer(s.jwtCfg.Issuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.ErrUnauthorized("invalid or expired token").WithCause(err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.ErrUnauthorized("invalid token claims")
	}

	userID, _ := claims["sub"].(string)
	if userID == "" {
		return nil, errors.ErrUnauthorized("token is missing its subject")
	}
	email, _ := claims["email"].(string)
	fullName, _ := claims["fullname"].(string)
	isAdmin, _ := claims["is_admin"].(bool)

	return &IdentityClaims{
		UserID:   userID,
		Email:    email,
		FullName: fullName,
		IsAdmin:  isAdmin,
	}, nil
}

func (s *authAppServiceImpl) issueToken(ctx context.Context, user *models.User) (*dto.AuthResponse, error) {
	ttl := s.jwtCfg.AccessTokenTTLDuration()
	if ttl <= 0 {
		ttl = constants.DefaultAccessTokenTTL
	}
	now := time.Now()

	claims := jwt.MapClaims{
		"sub":      user.ID,
		"email":    user.Email,
		"fullname": user.FullName,
		"is_admin": user.IsAdmin,
		"iss":      s.jwtCfg.Issuer,
		"iat":      now.Unix(),
		"exp":      now.Add(ttl).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtCfg.Secret))
	if err != nil {
		s.logger.Error(ctx, "token signing failed", err, logger.Fields{"user_id": user.ID})
		return nil, errors.ErrInternal("token signing failed").WithCause(err)
	}

	return &dto.AuthResponse{
		AccessToken: signed,
		TokenType:   constants.TokenTypeBearer,
		ExpiresIn:   int64(ttl.Seconds()),
		User:        dto.NewUserDTO(user),
	}, nil
}
