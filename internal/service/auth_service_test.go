package service

import (
	"context"
	"testing"
	"time"

	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/config"
	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/dto"
	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ── In-memory user repo ───────────────────────────────────────────────────────

type memUserRepo struct {
	seq   uint
	users map[uint]*model.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uint]*model.User)}
}

func (r *memUserRepo) Create(_ context.Context, u *model.User) error {
	r.seq++
	u.ID = r.seq
	u.RegisteredAt = time.Now()
	r.users[u.ID] = u
	return nil
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username || u.Email == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) FindByID(_ context.Context, id uint) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *memUserRepo) List(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *memUserRepo) TouchLastConnection(_ context.Context, id uint, at time.Time) error {
	if u, ok := r.users[id]; ok {
		u.LastConnection = &at
	}
	return nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

const testSecret = "test_jwt_secret_32_chars_minimum!"

func newTestCfg() *config.Config {
	return &config.Config{
		JWTSecret:          testSecret,
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
	}
}

func seedUser(t *testing.T, repo *memUserRepo, username, password, role string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &model.User{
		Username:     username,
		Email:        username + "@colegio.edu.pe",
		FullName:     "Usuario de Prueba",
		PasswordHash: string(hash),
		Role:         &model.Role{ID: 1, Name: role},
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

// ── Login ─────────────────────────────────────────────────────────────────────

func TestLoginSuccess(t *testing.T) {
	repo := newMemUserRepo()
	u := seedUser(t, repo, "profesor", "secreto123", model.RoleAdmin)
	svc := NewAuthService(repo, newTestCfg())

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "profesor", Password: "secreto123",
	})
	require.NoError(t, err)

	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 8*3600, resp.ExpiresIn)
	assert.Equal(t, u.ID, resp.User.ID)
	assert.Equal(t, model.RoleAdmin, resp.User.Rol.Nombre)
	assert.NotNil(t, resp.User.UltimaConexion, "login must record last connection")

	// Access token carries the identity claims
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(resp.AccessToken, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)
	assert.Equal(t, float64(u.ID), claims["user_id"])
	assert.Equal(t, "profesor", claims["username"])
	assert.Equal(t, model.RoleAdmin, claims["rol"])
}

func TestLoginAcceptsEmailAsUsername(t *testing.T) {
	repo := newMemUserRepo()
	seedUser(t, repo, "profesor", "secreto123", "Docente")
	svc := NewAuthService(repo, newTestCfg())

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "profesor@colegio.edu.pe", Password: "secreto123",
	})
	assert.NoError(t, err)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	repo := newMemUserRepo()
	seedUser(t, repo, "profesor", "secreto123", "Docente")
	svc := NewAuthService(repo, newTestCfg())
	ctx := context.Background()

	_, err := svc.Login(ctx, dto.LoginRequest{Username: "profesor", Password: "incorrecta"})
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = svc.Login(ctx, dto.LoginRequest{Username: "desconocido", Password: "secreto123"})
	assert.ErrorIs(t, err, ErrInvalid)
}

// ── Refresh ───────────────────────────────────────────────────────────────────

func TestRefreshIssuesNewPair(t *testing.T) {
	repo := newMemUserRepo()
	seedUser(t, repo, "profesor", "secreto123", "Docente")
	svc := NewAuthService(repo, newTestCfg())
	ctx := context.Background()

	login, err := svc.Login(ctx, dto.LoginRequest{Username: "profesor", Password: "secreto123"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, login.User.ID, refreshed.User.ID)
}

func TestRefreshRejectsInvalidToken(t *testing.T) {
	repo := newMemUserRepo()
	seedUser(t, repo, "profesor", "secreto123", "Docente")
	svc := NewAuthService(repo, newTestCfg())
	ctx := context.Background()

	_, err := svc.Refresh(ctx, "no-es-un-jwt")
	assert.ErrorIs(t, err, ErrInvalid)

	// Token signed with a different secret
	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": float64(1),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := foreign.SignedString([]byte("otro-secreto-distinto-e-invalido"))
	require.NoError(t, err)
	_, err = svc.Refresh(ctx, signed)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestRefreshRejectsDeletedUser(t *testing.T) {
	repo := newMemUserRepo()
	u := seedUser(t, repo, "profesor", "secreto123", "Docente")
	svc := NewAuthService(repo, newTestCfg())
	ctx := context.Background()

	login, err := svc.Login(ctx, dto.LoginRequest{Username: "profesor", Password: "secreto123"})
	require.NoError(t, err)

	delete(repo.users, u.ID)
	_, err = svc.Refresh(ctx, login.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalid)
}
