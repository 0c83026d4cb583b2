package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func init() {
	gin.SetMode(gin.TestMode)
}

func mint(t *testing.T, secret, userID, role string, expires time.Duration) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(expires).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newServer(handlers ...gin.HandlerFunc) *gin.Engine {
	server := gin.New()
	chain := append(handlers, func(ctx *gin.Context) {
		id, _ := UserID(ctx)
		ctx.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	server.GET("/protected", chain...)
	return server
}

func get(server *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth_ValidToken(t *testing.T) {
	server := newServer(RequireAuth(testSecret))

	rec := get(server, "Bearer "+mint(t, testSecret, "user-1", "customer", time.Hour))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user-1")
}

func TestRequireAuth_Rejections(t *testing.T) {
	server := newServer(RequireAuth(testSecret))

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Token abc"},
		{"garbage token", "Bearer not.a.jwt"},
		{"wrong secret", "Bearer " + mint(t, "other-secret", "user-1", "customer", time.Hour)},
		{"expired", "Bearer " + mint(t, testSecret, "user-1", "customer", -time.Hour)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := get(server, tc.header)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	server := newServer(RequireAuth(testSecret), RequireAdmin())

	rec := get(server, "Bearer "+mint(t, testSecret, "admin-1", "admin", time.Hour))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = get(server, "Bearer "+mint(t, testSecret, "user-1", "customer", time.Hour))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAdmin_NoClaimsInContext(t *testing.T) {
	server := newServer(RequireAdmin())

	rec := get(server, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
