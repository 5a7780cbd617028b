package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkeasy/parkeasy-api/internal/utils"
)

const testSecret = "test-secret"

func runJWT(t *testing.T, authHeader string) (*httptest.ResponseRecorder, echo.Context, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	handler := JWTAuth(testSecret)(func(c echo.Context) error {
		nextCalled = true
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec, c, nextCalled
}

func TestJWTAuthMissingToken(t *testing.T) {
	rec, _, nextCalled := runJWT(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"auth_missing"`)
	assert.False(t, nextCalled)
}

func TestJWTAuthMalformedToken(t *testing.T) {
	rec, _, nextCalled := runJWT(t, "Bearer not-a-jwt")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"auth_invalid"`)
	assert.False(t, nextCalled)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 3, "ada@example.com", -1)
	require.NoError(t, err)

	rec, _, nextCalled := runJWT(t, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"auth_invalid"`)
	assert.False(t, nextCalled)
}

func TestJWTAuthWrongSecret(t *testing.T) {
	tok, err := utils.NewAccessToken("other-secret", 3, "ada@example.com", 24)
	require.NoError(t, err)

	rec, _, nextCalled := runJWT(t, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, nextCalled)
}

func TestJWTAuthValidToken(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 3, "ada@example.com", 24)
	require.NoError(t, err)

	rec, c, nextCalled := runJWT(t, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, nextCalled)
	assert.Equal(t, uint64(3), c.Get("user_id"))
	assert.Equal(t, "ada@example.com", c.Get("email"))
}
