package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/paintconnect/storefront/internal/hash"
	"github.com/paintconnect/storefront/internal/models"
	"github.com/paintconnect/storefront/internal/repo"
)

var (
	ErrValidation         = errors.New("validation")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid refresh token")
)

type AuthService struct {
	Repo          *repo.GormRepo
	JWTSecret     []byte
	RefreshSecret []byte
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (s *AuthService) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("username and password are required: %w", ErrValidation)
	}

	passwordHash, err := hash.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{Username: username, PasswordHash: passwordHash, Role: "user"}
	return s.Repo.CreateUser(ctx, &user)
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required: %w", ErrValidation)
	}

	user, err := s.Repo.GetUserByUsername(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user.ID, user.Role)
}

// Refresh rotates a refresh token: the presented token is revoked and a fresh
// pair comes back. A revoked or expired token is rejected outright.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := RefreshClaimsFromToken(refreshToken, s.RefreshSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	stored, err := s.Repo.GetRefreshToken(ctx, Sha256Hex(refreshToken))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidToken
	}
	if err != nil {
		return nil, err
	}
	if stored.Revoked || time.Now().Unix() > stored.ExpiresAt {
		return nil, ErrInvalidToken
	}

	if err := s.Repo.RevokeRefreshToken(ctx, stored.Token); err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return s.issueTokens(ctx, userID, claims.Role)
}

func (s *AuthService) Logout(ctx context.Context, userID uuid.UUID) error {
	return s.Repo.RevokeUserRefreshTokens(ctx, userID)
}

func (s *AuthService) issueTokens(ctx context.Context, userID uuid.UUID, role string) (*TokenPair, error) {
	access, err := SignAccessToken(userID, role, s.JWTSecret)
	if err != nil {
		return nil, err
	}

	refresh, err := SignRefreshToken(userID, role, s.RefreshSecret)
	if err != nil {
		return nil, err
	}

	claims, err := RefreshClaimsFromToken(refresh, s.RefreshSecret)
	if err != nil {
		return nil, err
	}

	stored := models.RefreshToken{
		Token:     Sha256Hex(refresh),
		UserID:    userID,
		ExpiresAt: claims.ExpiresAt.Time.Unix(),
	}
	if err := s.Repo.SaveRefreshToken(ctx, &stored); err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
