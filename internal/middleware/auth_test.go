package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diskusi-dev/diskusi/internal/domain"
	"github.com/diskusi-dev/diskusi/internal/jwt"
)

func newAuthedHandler(t *testing.T) (http.Handler, jwt.TokenService) {
	t.Helper()
	tokens := jwt.New("access-key", "refresh-key", time.Minute)
	auth := NewAuth(tokens)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := GetUserFromContext(r)
		require.NotNil(t, user)
		w.Write([]byte(user.Id))
	})
	return auth.NeedAuth()(inner), tokens
}

func TestNeedAuth(t *testing.T) {
	t.Run("accepts a bearer token", func(t *testing.T) {
		handler, tokens := newAuthedHandler(t)
		token, err := tokens.NewAccessToken(domain.User{Id: "user-123", Username: "dicoding"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user-123", rec.Body.String())
	})

	t.Run("accepts an accessToken cookie", func(t *testing.T) {
		handler, tokens := newAuthedHandler(t)
		token, err := tokens.NewAccessToken(domain.User{Id: "user-123", Username: "dicoding"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user-123", rec.Body.String())
	})

	t.Run("rejects a request without a token", func(t *testing.T) {
		handler, _ := newAuthedHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Missing authentication")
	})

	t.Run("rejects an invalid token", func(t *testing.T) {
		handler, _ := newAuthedHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		handler, _ := newAuthedHandler(t)
		expired := jwt.New("access-key", "refresh-key", -time.Minute)
		token, err := expired.NewAccessToken(domain.User{Id: "user-123", Username: "dicoding"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestGetUserFromContext(t *testing.T) {
	t.Run("returns nil without middleware", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		assert.Nil(t, GetUserFromContext(req))
	})
}
