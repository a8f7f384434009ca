//go:build integration

package e2e

// End-to-end tests against real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./tests/e2e/... -v

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/config"
	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/infra"
	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/model"
	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"golang.org/x/crypto/bcrypt"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer, token string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// ── Suite setup ──────────────────────────────────────────────────────────────

type testEnv struct {
	server *httptest.Server
	token  string // bootstrap admin JWT
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("colegio_test"),
		tcPostgres.WithUsername("colegio"),
		tcPostgres.WithPassword("colegio"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:               8000,
		Env:                "test",
		JWTSecret:          "test-secret-key",
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
		DatabaseURL:        pgURL,
		RedisURL:           rdURL,
		WorkerPoolSize:     1,
		BootstrapAdminIDs:  "1",
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	// Seed the admin role and the bootstrap admin (first row gets id 1)
	role := model.Role{Name: model.RoleAdmin}
	require.NoError(t, db.Create(&role).Error)
	hash, err := bcrypt.GenerateFromPassword([]byte("colegio2026"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.User{
		Username:     "admin",
		Email:        "admin@e2e.test",
		FullName:     "Admin E2E",
		PasswordHash: string(hash),
		RoleID:       role.ID,
	}).Error)

	srv := httptest.NewServer(router.New(cfg, db, rdb))
	t.Cleanup(srv.Close)

	loginResp := do(t, srv, "POST", "/v1/auth/login",
		jsonBody(t, map[string]string{"username": "admin", "password": "colegio2026"}), "")
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
	var loginBody struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, loginResp, &loginBody)
	require.NotEmpty(t, loginBody.AccessToken)

	return &testEnv{server: srv, token: loginBody.AccessToken}
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2E_PublicationLifecycle(t *testing.T) {
	env := setupTestEnv(t)

	// Category and tag (admin only)
	catResp := do(t, env.server, "POST", "/v1/categories",
		jsonBody(t, map[string]any{"nombre": "Eventos", "icono": "calendar", "color": "#FFAA00"}),
		env.token)
	require.Equal(t, http.StatusCreated, catResp.StatusCode)
	var cat struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, catResp, &cat)

	tagResp := do(t, env.server, "POST", "/v1/tags",
		jsonBody(t, map[string]any{"nombre": "ciencia"}), env.token)
	require.Equal(t, http.StatusCreated, tagResp.StatusCode)
	var tag struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, tagResp, &tag)

	// Create publication — slug generated, junk status coerced to draft
	pubResp := do(t, env.server, "POST", "/v1/publications",
		jsonBody(t, map[string]any{
			"title":      "Feria de Ciencias 2024",
			"content":    "Resultados de la feria anual de ciencias.",
			"mainImage":  "",
			"status":     "borrador",
			"categoryId": cat.ID,
			"tagIds":     []uint{tag.ID},
		}), env.token)
	require.Equal(t, http.StatusCreated, pubResp.StatusCode)
	var pub struct {
		ID              uint   `json:"id"`
		Slug            string `json:"slug"`
		Estado          string `json:"estado"`
		ImagenPrincipal string `json:"imagen_principal"`
	}
	decodeJSON(t, pubResp, &pub)
	assert.Equal(t, "feria-de-ciencias-2024", pub.Slug)
	assert.Equal(t, "draft", pub.Estado)
	assert.Equal(t, "", pub.ImagenPrincipal)

	// Two anonymous reads → exactly two recorded visits
	for i := 0; i < 2; i++ {
		resp := do(t, env.server, "GET", "/v1/publications/"+pub.Slug, nil, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var detail struct {
			TotalVisitas int64 `json:"total_visitas"`
		}
		decodeJSON(t, resp, &detail)
		assert.Equal(t, int64(i+1), detail.TotalVisitas)
	}

	// Publish and confirm it shows up in the filtered listing
	updResp := do(t, env.server, "PUT", fmt.Sprintf("/v1/publications/%d", pub.ID),
		jsonBody(t, map[string]any{"status": "published", "categoryId": cat.ID}), env.token)
	require.Equal(t, http.StatusOK, updResp.StatusCode)

	listResp := do(t, env.server, "GET", "/v1/publications?status=published", nil, "")
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var list []struct {
		Titulo string `json:"titulo"`
	}
	decodeJSON(t, listResp, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Feria de Ciencias 2024", list[0].Titulo)
}

func TestE2E_CommentModeration(t *testing.T) {
	env := setupTestEnv(t)

	pubResp := do(t, env.server, "POST", "/v1/publications",
		jsonBody(t, map[string]any{
			"title":   "Noticia comentable",
			"content": "Una noticia que recibirá comentarios.",
			"status":  "published",
		}), env.token)
	require.Equal(t, http.StatusCreated, pubResp.StatusCode)
	var pub struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, pubResp, &pub)

	// Anonymous visitor comments — starts unapproved
	cmtResp := do(t, env.server, "POST", fmt.Sprintf("/v1/publications/%d/comments", pub.ID),
		jsonBody(t, map[string]any{"autor": "María", "contenido": "¡Excelente noticia!"}), "")
	require.Equal(t, http.StatusCreated, cmtResp.StatusCode)
	var cmt struct {
		ID       uint `json:"id"`
		Aprobado bool `json:"aprobado"`
	}
	decodeJSON(t, cmtResp, &cmt)
	assert.False(t, cmt.Aprobado)

	// Moderation requires the admin token
	forbidden := do(t, env.server, "GET", "/v1/comments?pending=true", nil, "")
	assert.Equal(t, http.StatusUnauthorized, forbidden.StatusCode)
	forbidden.Body.Close()

	pendResp := do(t, env.server, "GET", "/v1/comments?pending=true", nil, env.token)
	require.Equal(t, http.StatusOK, pendResp.StatusCode)
	var pending []struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, pendResp, &pending)
	require.Len(t, pending, 1)

	appResp := do(t, env.server, "PATCH", fmt.Sprintf("/v1/comments/%d/approve", cmt.ID), jsonBody(t, map[string]any{}), env.token)
	require.Equal(t, http.StatusOK, appResp.StatusCode)
	appResp.Body.Close()

	// Approved comment accepts public reactions and shows on the detail page
	reactResp := do(t, env.server, "POST", fmt.Sprintf("/v1/comments/%d/reactions", cmt.ID),
		jsonBody(t, map[string]any{"emoji": "👍"}), "")
	require.Equal(t, http.StatusCreated, reactResp.StatusCode)
	reactResp.Body.Close()

	detailResp := do(t, env.server, "GET", fmt.Sprintf("/v1/publications/%d", pub.ID), nil, "")
	require.Equal(t, http.StatusOK, detailResp.StatusCode)
	var detail struct {
		Comentarios []struct {
			Autor      string   `json:"autor"`
			Reacciones []string `json:"reacciones"`
		} `json:"comentarios"`
	}
	decodeJSON(t, detailResp, &detail)
	require.Len(t, detail.Comentarios, 1)
	assert.Equal(t, "María", detail.Comentarios[0].Autor)
	assert.Equal(t, []string{"👍"}, detail.Comentarios[0].Reacciones)
}

func TestE2E_ContactAndUserGates(t *testing.T) {
	env := setupTestEnv(t)

	// Public contact submission
	subResp := do(t, env.server, "POST", "/v1/contact",
		jsonBody(t, map[string]any{
			"nombre":  "Juan Pérez",
			"email":   "juan@example.com",
			"asunto":  "Admisión",
			"mensaje": "Quisiera información sobre el proceso de admisión.",
		}), "")
	require.Equal(t, http.StatusCreated, subResp.StatusCode)
	subResp.Body.Close()

	// Inbox is admin-only
	inboxResp := do(t, env.server, "GET", "/v1/contact/messages", nil, env.token)
	require.Equal(t, http.StatusOK, inboxResp.StatusCode)
	var msgs []struct {
		Asunto string `json:"asunto"`
		Leido  bool   `json:"leido"`
	}
	decodeJSON(t, inboxResp, &msgs)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Admisión", msgs[0].Asunto)
	assert.False(t, msgs[0].Leido)

	// Bootstrap admin (id 1) may list users
	usersResp := do(t, env.server, "GET", "/v1/users", nil, env.token)
	require.Equal(t, http.StatusOK, usersResp.StatusCode)
	var users struct {
		Users []struct {
			Username string `json:"username"`
		} `json:"users"`
	}
	decodeJSON(t, usersResp, &users)
	require.Len(t, users.Users, 1)
	assert.Equal(t, "admin", users.Users[0].Username)
}
