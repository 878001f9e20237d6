package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokens() TokenService {
	return TokenService{Secret: []byte("test-secret"), Issuer: "marketboard", Duration: time.Hour}
}

func adminRouter(t *testing.T, adminEmail string) (*gin.Engine, TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	tokens := testTokens()

	router := gin.New()
	grp := router.Group("/admin")
	grp.Use(AuthMiddleware(tokens, nil), AdminOnly(adminEmail))
	grp.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router, tokens
}

func bearerFor(t *testing.T, tokens TokenService, email string) string {
	t.Helper()
	token, _, err := tokens.Sign(&User{ID: "u1", Username: "admin", Email: email})
	require.NoError(t, err)
	return "Bearer " + token
}

func TestAdminOnlyAllowsConfiguredEmail(t *testing.T) {
	router, tokens := adminRouter(t, "owner@example.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", bearerFor(t, tokens, "owner@example.com"))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminOnlyRejectsOtherAccounts(t *testing.T) {
	router, tokens := adminRouter(t, "owner@example.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", bearerFor(t, tokens, "visitor@example.com"))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminOnlyRejectsMissingToken(t *testing.T) {
	router, _ := adminRouter(t, "owner@example.com")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/ping", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTokenRoundTrip(t *testing.T) {
	tokens := testTokens()
	signed, exp, err := tokens.Sign(&User{ID: "u1", Username: "admin", Email: "owner@example.com", TokenVersion: 3})
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))

	claims, err := tokens.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "owner@example.com", claims.Email)
	assert.Equal(t, 3, claims.TokenVersion)
}
