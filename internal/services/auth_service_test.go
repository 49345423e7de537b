package services

import (
	"context"
	"testing"
	"time"

	"careconnect-api/config"
	"careconnect-api/internal/domain/account"
	careconnect_errors "careconnect-api/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeAccountRepo struct {
	accounts    map[string]account.Account
	createCalls int
	existsCalls int
	// forceConflict makes Create fail with ErrAlreadyExists even when
	// the existence check passed, like a concurrent insert would.
	forceConflict bool
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[string]account.Account{}}
}

func (f *fakeAccountRepo) Create(ctx context.Context, a *account.Account) error {
	f.createCalls++
	if f.forceConflict {
		return careconnect_errors.ErrAlreadyExists
	}
	if _, ok := f.accounts[a.Email]; ok {
		return careconnect_errors.ErrAlreadyExists
	}
	f.accounts[a.Email] = *a
	return nil
}

func (f *fakeAccountRepo) GetByEmail(ctx context.Context, email string) (account.Account, error) {
	a, ok := f.accounts[email]
	if !ok {
		return account.Account{}, careconnect_errors.ErrNotFound
	}
	return a, nil
}

func (f *fakeAccountRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	f.existsCalls++
	_, ok := f.accounts[email]
	return ok, nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:   "test-secret",
		TokenTTLMin: 60,
		BcryptCost:  bcrypt.MinCost,
	}
}

func validSignup() SignupInput {
	return SignupInput{Name: "Ann", Email: "a@x.com", Password: "secret1", Role: "patient"}
}

func TestSignupStoresHashedPassword(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAuthService(repo, testConfig())

	require.NoError(t, svc.Signup(context.Background(), validSignup()))

	stored := repo.accounts["a@x.com"]
	assert.Equal(t, "Ann", stored.Name)
	assert.Equal(t, "patient", stored.Role)
	assert.NotEmpty(t, stored.ID)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")))
}

func TestSignupDuplicateEmail(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAuthService(repo, testConfig())

	require.NoError(t, svc.Signup(context.Background(), validSignup()))
	err := svc.Signup(context.Background(), validSignup())
	assert.ErrorIs(t, err, careconnect_errors.ErrAlreadyExists)
	assert.Equal(t, 1, repo.createCalls)
}

func TestSignupConcurrentInsertConflict(t *testing.T) {
	repo := newFakeAccountRepo()
	repo.forceConflict = true
	svc := NewAuthService(repo, testConfig())

	err := svc.Signup(context.Background(), validSignup())
	assert.ErrorIs(t, err, careconnect_errors.ErrAlreadyExists)
}

func TestSignupValidation(t *testing.T) {
	tests := []struct {
		name  string
		input SignupInput
	}{
		{"missing name", SignupInput{Email: "a@x.com", Password: "secret1", Role: "patient"}},
		{"missing email", SignupInput{Name: "Ann", Password: "secret1", Role: "patient"}},
		{"missing password", SignupInput{Name: "Ann", Email: "a@x.com", Role: "patient"}},
		{"missing role", SignupInput{Name: "Ann", Email: "a@x.com", Password: "secret1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeAccountRepo()
			svc := NewAuthService(repo, testConfig())

			err := svc.Signup(context.Background(), tt.input)
			assert.ErrorIs(t, err, careconnect_errors.ErrInvalidInput)
			// validation rejects before any persistence or hashing call
			assert.Zero(t, repo.existsCalls)
			assert.Zero(t, repo.createCalls)
		})
	}
}

func TestLoginIssuesToken(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAuthService(repo, testConfig())
	require.NoError(t, svc.Signup(context.Background(), validSignup()))

	res, err := svc.Login(context.Background(), LoginInput{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "Ann", res.Name)
	assert.Equal(t, "patient", res.Role)
	require.NotEmpty(t, res.Token)

	claims, err := svc.ParseToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, repo.accounts["a@x.com"].ID, claims.Subject)
	assert.Equal(t, "patient", claims.Role)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAuthService(repo, testConfig())
	require.NoError(t, svc.Signup(context.Background(), validSignup()))

	_, unknownErr := svc.Login(context.Background(), LoginInput{Email: "b@x.com", Password: "secret1"})
	_, wrongErr := svc.Login(context.Background(), LoginInput{Email: "a@x.com", Password: "wrong"})

	assert.ErrorIs(t, unknownErr, careconnect_errors.ErrUnauthorized)
	assert.ErrorIs(t, wrongErr, careconnect_errors.ErrUnauthorized)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAuthService(repo, testConfig())
	require.NoError(t, svc.Signup(context.Background(), validSignup()))

	res, err := svc.Login(context.Background(), LoginInput{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	otherCfg := testConfig()
	otherCfg.JWTSecret = "other-secret"
	other := NewAuthService(repo, otherCfg)

	_, err = other.ParseToken(res.Token)
	assert.ErrorIs(t, err, careconnect_errors.ErrUnauthorized)
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{careconnect_errors.ErrInvalidInput, 400},
		{careconnect_errors.ErrUnauthorized, 401},
		{careconnect_errors.ErrForbidden, 403},
		{careconnect_errors.ErrNotFound, 404},
		{careconnect_errors.ErrAlreadyExists, 409},
		{careconnect_errors.ErrConflict, 409},
		{careconnect_errors.ErrRateLimited, 429},
		{assert.AnError, 500},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.status, HTTPStatus(tt.err))
	}
}
