package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketboard/pkg/database"
)

func authRouter(t *testing.T, adminEmail string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Open(database.Config{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.MigrateFile(db, "../../docs/schema.sql"))

	h := NewHandler(NewRepo(db), testTokens(), adminEmail)
	router := gin.New()
	h.RegisterRoutes(router.Group("/auth"))
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterAcceptsAdministratorEmail(t *testing.T) {
	router := authRouter(t, "owner@example.com")

	w := postJSON(t, router, "/auth/register", gin.H{
		"username": "owner",
		"email":    "Owner@Example.com",
		"password": "long-enough-pass",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRegisterRejectsOtherEmails(t *testing.T) {
	router := authRouter(t, "owner@example.com")

	w := postJSON(t, router, "/auth/register", gin.H{
		"username": "visitor",
		"email":    "visitor@example.com",
		"password": "long-enough-pass",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRegisterThenLogin(t *testing.T) {
	router := authRouter(t, "owner@example.com")

	w := postJSON(t, router, "/auth/register", gin.H{
		"username": "owner",
		"email":    "owner@example.com",
		"password": "long-enough-pass",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, router, "/auth/login", gin.H{
		"email":    "owner@example.com",
		"password": "long-enough-pass",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
}
