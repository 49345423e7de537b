package services

import (
	"context"
	"errors"
	"time"

	"careconnect-api/config"
	"careconnect-api/internal/domain/account"
	"careconnect-api/internal/repository"
	careconnect_errors "careconnect-api/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	accounts   repository.AccountRepository
	jwtSecret  []byte
	tokenTTL   time.Duration
	bcryptCost int
}

func NewAuthService(accounts repository.AccountRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		accounts:   accounts,
		jwtSecret:  []byte(cfg.JWTSecret),
		tokenTTL:   time.Duration(cfg.TokenTTLMin) * time.Minute,
		bcryptCost: cfg.BcryptCost,
	}
}

type SignupInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token string
	Name  string
	Role  string
}

type SessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Signup validates the input, hashes the password and persists a new
// account. The repository's unique index is the authoritative duplicate
// signal; the prior existence check only gives the common case a cheaper
// round trip.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) error {
	if err := validateSignup(in); err != nil {
		return err
	}

	exists, err := s.accounts.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return err
	}
	if exists {
		return careconnect_errors.ErrAlreadyExists
	}

	hash, err := s.hashPassword(in.Password)
	if err != nil {
		return err
	}

	return s.accounts.Create(ctx, &account.Account{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
		CreatedAt:    time.Now(),
	})
}

// Login verifies the credentials and issues a session token. Absent
// account and wrong password collapse into the same ErrUnauthorized so
// the response does not reveal which one happened.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (LoginResult, error) {
	a, err := s.accounts.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, careconnect_errors.ErrNotFound) {
			return LoginResult{}, careconnect_errors.ErrUnauthorized
		}
		return LoginResult{}, err
	}

	if err := comparePassword(a.PasswordHash, in.Password); err != nil {
		return LoginResult{}, careconnect_errors.ErrUnauthorized
	}

	token, err := s.newSessionToken(a)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{
		Token: token,
		Name:  a.Name,
		Role:  a.Role,
	}, nil
}

// ParseToken verifies a session token and returns its claims.
func (s *AuthService) ParseToken(tokenString string) (SessionClaims, error) {
	if tokenString == "" {
		return SessionClaims{}, careconnect_errors.ErrUnauthorized
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, careconnect_errors.ErrUnauthorized
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return SessionClaims{}, careconnect_errors.ErrUnauthorized
	}

	claims, ok := parsed.Claims.(*SessionClaims)
	if !ok || !parsed.Valid {
		return SessionClaims{}, careconnect_errors.ErrUnauthorized
	}

	return *claims, nil
}

func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, careconnect_errors.ErrInvalidInput):
		return 400
	case errors.Is(err, careconnect_errors.ErrUnauthorized):
		return 401
	case errors.Is(err, careconnect_errors.ErrForbidden):
		return 403
	case errors.Is(err, careconnect_errors.ErrNotFound):
		return 404
	case errors.Is(err, careconnect_errors.ErrAlreadyExists), errors.Is(err, careconnect_errors.ErrConflict):
		return 409
	case errors.Is(err, careconnect_errors.ErrRateLimited):
		return 429
	default:
		return 500
	}
}

func (s *AuthService) newSessionToken(a account.Account) (string, error) {
	now := time.Now()

	claims := SessionClaims{
		Role: a.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   a.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func validateSignup(in SignupInput) error {
	if in.Name == "" || in.Email == "" || in.Password == "" || in.Role == "" {
		return careconnect_errors.ErrInvalidInput
	}
	return nil
}

func (s *AuthService) hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
