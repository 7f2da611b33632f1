package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"healthvault-api/internal/domain"
	"healthvault-api/internal/domain/dtos"
	"healthvault-api/internal/domain/entities"
	"healthvault-api/internal/domain/repositories"
)

const tokenIssuer = "healthvault-api"

var _ AuthServiceContract = (*AuthServiceImpl)(nil)

// AuthServiceImpl implements AuthServiceContract with bcrypt password
// hashing and HS256 signed tokens.
type AuthServiceImpl struct {
	userRepo  repositories.UserRepositoryContract
	secretKey []byte
	tokenTTL  time.Duration
	logger    *slog.Logger
}

// NewAuthService creates a new instance of AuthServiceImpl.
func NewAuthService(
	userRepo repositories.UserRepositoryContract,
	secret string,
	tokenTTL time.Duration,
	logger *slog.Logger,
) AuthServiceContract {
	if secret == "" {
		secret = "insecure-dev-secret"
		logger.Warn("JWT_SECRET not set, using development default")
	}
	return &AuthServiceImpl{
		userRepo:  userRepo,
		secretKey: []byte(secret),
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, req dtos.RegisterRequest) (*dtos.AuthResponse, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		return nil, fmt.Errorf("%w: name and email are required", domain.ErrValidation)
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", domain.ErrValidation)
	}

	_, err := s.userRepo.GetByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: email already registered", domain.ErrValidation)
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%w: hashing password: %v", domain.ErrStorage, err)
	}

	user := &entities.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return &dtos.AuthResponse{Token: token, User: dtos.NewUserDTO(user)}, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, req dtos.LoginRequest) (*dtos.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Same outcome as a wrong password so login failures do
			// not reveal which accounts exist.
			return nil, fmt.Errorf("%w: invalid credentials", domain.ErrUnauthenticated)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", domain.ErrUnauthenticated)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return &dtos.AuthResponse{Token: token, User: dtos.NewUserDTO(user)}, nil
}

func (s *AuthServiceImpl) VerifyToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, fmt.Errorf("%w: invalid or expired token", domain.ErrUnauthenticated)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return uuid.Nil, fmt.Errorf("%w: malformed token claims", domain.ErrUnauthenticated)
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: malformed token subject", domain.ErrUnauthenticated)
	}
	return userID, nil
}

func (s *AuthServiceImpl) issueToken(user *entities.User) (string, error) {
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		Issuer:    tokenIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("%w: signing token: %v", domain.ErrStorage, err)
	}
	return signed, nil
}
