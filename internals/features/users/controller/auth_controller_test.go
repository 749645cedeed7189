// file: internals/features/users/controller/auth_controller_test.go
package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"suscriptores_backend/internals/configs"
	database "suscriptores_backend/internals/databases"
	"suscriptores_backend/internals/features/users/model"
	authMiddleware "suscriptores_backend/internals/middlewares/auth"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	app := fiber.New()
	h := NewAuthHandler(db)
	g := app.Group("/auth")
	g.Post("/login", h.Login)
	g.Get("/me", authMiddleware.Required(), h.Me)
	return app, db
}

func setAuthConfig(t *testing.T, secret, username, password string) {
	t.Helper()
	prevSecret, prevUser, prevPass := configs.JWTSecret, configs.AdminUsername, configs.AdminPassword
	configs.JWTSecret = secret
	configs.AdminUsername = username
	configs.AdminPassword = password
	t.Cleanup(func() {
		configs.JWTSecret, configs.AdminUsername, configs.AdminPassword = prevSecret, prevUser, prevPass
	})
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any, headers map[string]string) (*http.Response, map[string]any) {
	t.Helper()
	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &parsed), "body: %s", raw)
	}
	return resp, parsed
}

func TestSeedAdmin(t *testing.T) {
	_, db := newTestApp(t)
	setAuthConfig(t, "test-secret", "admin", "s3cret")

	SeedAdmin(db)

	var cnt int64
	require.NoError(t, db.Model(&model.User{}).Count(&cnt).Error)
	assert.EqualValues(t, 1, cnt)

	// idempotent: a second run must not add another user
	SeedAdmin(db)
	require.NoError(t, db.Model(&model.User{}).Count(&cnt).Error)
	assert.EqualValues(t, 1, cnt)
}

func TestSeedAdmin_SkippedWithoutPassword(t *testing.T) {
	_, db := newTestApp(t)
	setAuthConfig(t, "test-secret", "admin", "")

	SeedAdmin(db)

	var cnt int64
	require.NoError(t, db.Model(&model.User{}).Count(&cnt).Error)
	assert.Zero(t, cnt)
}

func TestLoginAndMe(t *testing.T) {
	app, db := newTestApp(t)
	setAuthConfig(t, "test-secret", "admin", "s3cret")
	SeedAdmin(db)

	resp, body := doJSON(t, app, http.MethodPost, "/auth/login", map[string]any{
		"user_name":     "admin",
		"user_password": "s3cret",
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]any)
	token := data["access_token"].(string)
	require.NotEmpty(t, token)
	assert.Equal(t, "Bearer", data["token_type"])
	assert.Equal(t, "admin", data["user"].(map[string]any)["user_name"])

	resp, body = doJSON(t, app, http.MethodGet, "/auth/me", nil, map[string]string{
		"Authorization": "Bearer " + token,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "admin", body["data"].(map[string]any)["user_name"])
}

func TestLogin_Rejections(t *testing.T) {
	app, db := newTestApp(t)
	setAuthConfig(t, "test-secret", "admin", "s3cret")
	SeedAdmin(db)

	resp, _ := doJSON(t, app, http.MethodPost, "/auth/login", map[string]any{
		"user_name":     "admin",
		"user_password": "wrong",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/auth/login", map[string]any{
		"user_name":     "ghost",
		"user_password": "s3cret",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/auth/login", map[string]any{
		"user_name": "admin",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogin_DisabledWithoutSecret(t *testing.T) {
	app, db := newTestApp(t)
	setAuthConfig(t, "", "admin", "s3cret")
	SeedAdmin(db)

	resp, _ := doJSON(t, app, http.MethodPost, "/auth/login", map[string]any{
		"user_name":     "admin",
		"user_password": "s3cret",
	}, nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestMe_RequiresToken(t *testing.T) {
	app, _ := newTestApp(t)
	setAuthConfig(t, "test-secret", "admin", "s3cret")

	resp, _ := doJSON(t, app, http.MethodGet, "/auth/me", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/auth/me", nil, map[string]string{
		"Authorization": "Bearer not-a-token",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Without a configured secret, a token HMAC-signed with an empty key must not
// verify — auth is simply off.
func TestMe_RejectsEmptyKeyTokenWhenSecretUnset(t *testing.T) {
	app, _ := newTestApp(t)
	setAuthConfig(t, "", "admin", "s3cret")

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "00000000-0000-0000-0000-000000000001",
		"name": "admin",
		"role": "admin",
	}).SignedString([]byte(""))
	require.NoError(t, err)

	resp, _ := doJSON(t, app, http.MethodGet, "/auth/me", nil, map[string]string{
		"Authorization": "Bearer " + token,
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
