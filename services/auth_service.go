package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"triviaquest/models"
)

const (
	accessTokenTTL  = time.Hour
	refreshTokenTTL = 24 * time.Hour

	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"

	refreshKeyPrefix = "refresh:"
)

// ErrInvalidCredentials covers every authentication failure: unknown user,
// wrong password, expired or revoked token. Callers get no more detail.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService issues and validates the JWT tokens used by the admin API.
// Refresh tokens are held in Redis for their lifetime; a refresh token that is
// no longer stored (expired, revoked or superseded) is rejected.
type AuthService struct {
	users  UserRepository
	redis  *redis.Client
	secret []byte
}

func NewAuthService(users UserRepository, redisClient *redis.Client, jwtSecret string) *AuthService {
	return &AuthService{
		users:  users,
		redis:  redisClient,
		secret: []byte(jwtSecret),
	}
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Login verifies the credentials and issues a fresh token pair. The refresh
// token replaces any previously stored one for the user.
func (s *AuthService) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	user, err := s.users.FindByUsername(username)
	if errors.Is(err, models.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user.Username)
}

// Refresh exchanges a live refresh token for a new access token. The refresh
// token stays valid until it expires in Redis.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if refreshToken == "" {
		return nil, fmt.Errorf("refresh token must be defined: %w", models.ErrInvalidRequest)
	}

	username, err := s.parseToken(refreshToken, tokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	stored, err := s.redis.Get(ctx, refreshKeyPrefix+username).Result()
	if err == redis.Nil || (err == nil && stored != refreshToken) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	accessToken, err := s.signToken(username, tokenTypeAccess, accessTokenTTL)
	if err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// ValidateAccessToken checks a bearer token and returns the username it was
// issued for.
func (s *AuthService) ValidateAccessToken(token string) (string, error) {
	return s.parseToken(token, tokenTypeAccess)
}

// EnsureUser creates the user with a bcrypt-hashed password if it does not
// exist yet. Used to seed the admin account at startup.
func (s *AuthService) EnsureUser(username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("username and password must be defined: %w", models.ErrInvalidRequest)
	}

	_, err := s.users.FindByUsername(username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.users.Save(&models.User{Username: username, Password: string(hash)})
}

func (s *AuthService) issueTokens(ctx context.Context, username string) (*TokenPair, error) {
	accessToken, err := s.signToken(username, tokenTypeAccess, accessTokenTTL)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.signToken(username, tokenTypeRefresh, refreshTokenTTL)
	if err != nil {
		return nil, err
	}

	if err := s.redis.Set(ctx, refreshKeyPrefix+username, refreshToken, refreshTokenTTL).Err(); err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *AuthService) signToken(username, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  username,
		"type": tokenType,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// parseToken validates signature, expiry and token type, returning the
// subject username.
func (s *AuthService) parseToken(tokenString, wantType string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidCredentials
	}
	if tokenType, _ := claims["type"].(string); tokenType != wantType {
		return "", ErrInvalidCredentials
	}
	username, _ := claims["sub"].(string)
	if username == "" {
		return "", ErrInvalidCredentials
	}

	return username, nil
}
