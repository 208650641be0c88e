package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	initdata "github.com/telegram-mini-apps/init-data-golang"
	"golang.org/x/crypto/bcrypt"

	apperrors "raffle-manager-backend/internal/common/errors"
	"raffle-manager-backend/internal/common/logger"
)

const issuer = "raffle-manager"

type Config struct {
	JWTSecret     string
	TokenTTL      time.Duration
	AdminUsername string
	// AdminPasswordHash wins over AdminPassword when both are set.
	AdminPassword     string
	AdminPasswordHash string

	BotToken    string
	AdminIDs    []int64
	InitDataTTL time.Duration
}

type TokenResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (*TokenResponse, error)
	ValidateToken(token string) (*jwt.RegisteredClaims, error)
	// Authenticate returns the admin identity behind a bearer token or
	// Telegram init data.
	Authenticate(bearerToken, initData string) (string, error)
}

type authService struct {
	cfg          Config
	passwordHash []byte
	adminIDs     map[int64]struct{}
	now          func() time.Time
}

func NewAuthService(cfg Config) (AuthService, error) {
	s := &authService{
		cfg:      cfg,
		adminIDs: make(map[int64]struct{}, len(cfg.AdminIDs)),
		now:      time.Now,
	}
	for _, id := range cfg.AdminIDs {
		s.adminIDs[id] = struct{}{}
	}

	switch {
	case cfg.AdminPasswordHash != "":
		s.passwordHash = []byte(cfg.AdminPasswordHash)
	case cfg.AdminPassword != "":
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash admin password: %w", err)
		}
		s.passwordHash = hash
	}

	if cfg.TokenTTL <= 0 {
		s.cfg.TokenTTL = 12 * time.Hour
	}
	return s, nil
}

func (s *authService) Login(_ context.Context, username, password string) (*TokenResponse, error) {
	if s.cfg.JWTSecret == "" || len(s.passwordHash) == 0 {
		return nil, apperrors.NewForbiddenError("password login is disabled")
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUsername)) == 1
	passErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))
	if !userOK || passErr != nil {
		logger.Warn().Str("username", username).Msg("Failed admin login")
		return nil, apperrors.NewUnauthorizedError("invalid credentials")
	}

	now := s.now()
	expiresAt := now.Add(s.cfg.TokenTTL)
	claims := jwt.RegisteredClaims{
		Subject:   username,
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to sign token")
	}

	logger.Info().Str("username", username).Time("expires_at", expiresAt).Msg("Admin logged in")
	return &TokenResponse{Token: token, TokenType: "Bearer", ExpiresAt: expiresAt}, nil
}

func (s *authService) ValidateToken(tokenString string) (*jwt.RegisteredClaims, error) {
	if s.cfg.JWTSecret == "" {
		return nil, apperrors.NewUnauthorizedError("token authentication is disabled")
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.NewUnauthorizedError("token expired")
		}
		return nil, apperrors.NewUnauthorizedError("invalid token")
	}
	if !token.Valid {
		return nil, apperrors.NewUnauthorizedError("invalid token")
	}
	return claims, nil
}

func (s *authService) Authenticate(bearerToken, initData string) (string, error) {
	switch {
	case bearerToken != "":
		claims, err := s.ValidateToken(bearerToken)
		if err != nil {
			return "", err
		}
		return claims.Subject, nil
	case initData != "":
		return s.authenticateTelegram(initData)
	default:
		return "", apperrors.NewUnauthorizedError("admin credentials required")
	}
}

func (s *authService) authenticateTelegram(raw string) (string, error) {
	if s.cfg.BotToken == "" {
		return "", apperrors.NewUnauthorizedError("telegram authentication is disabled")
	}

	if err := initdata.Validate(raw, s.cfg.BotToken, s.cfg.InitDataTTL); err != nil {
		return "", apperrors.NewUnauthorizedError("invalid init data").WithDetail("cause", err.Error())
	}

	data, err := initdata.Parse(raw)
	if err != nil {
		return "", apperrors.NewUnauthorizedError("malformed init data")
	}

	if _, ok := s.adminIDs[data.User.ID]; !ok {
		logger.Warn().Int64("telegram_id", data.User.ID).Msg("Non-admin telegram user tried a protected endpoint")
		return "", apperrors.NewForbiddenError("admin access required")
	}
	return "telegram:" + strconv.FormatInt(data.User.ID, 10), nil
}
