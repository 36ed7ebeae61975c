package handler

import (
	"net/http"
	"testing"
	"time"

	"Pulse/pkg/jwt"
	"Pulse/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth_Token(t *testing.T) {
	r, st, _ := newTestApp(t)
	seedUser(t, st, 100, "alice", "pass1234")

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/token", "", types.LoginRequest{
		Username: "alice",
		Password: "pass1234",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var tokens types.TokenResponse
	decodeData(t, w, &tokens)
	require.NotEmpty(t, tokens.AccessToken)
	require.NotEmpty(t, tokens.RefreshToken)

	// 下发的 access token 可以直接访问受保护接口
	w = doJSON(t, r, http.MethodGet, "/api/v1/posts", tokens.AccessToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// refresh token 不能当 access token 用
	w = doJSON(t, r, http.MethodGet, "/api/v1/posts", tokens.RefreshToken, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_TokenBadCredentials(t *testing.T) {
	r, st, _ := newTestApp(t)
	seedUser(t, st, 100, "alice", "pass1234")

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/token", "", types.LoginRequest{
		Username: "alice",
		Password: "wrong",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/token", "", types.LoginRequest{
		Username: "nobody",
		Password: "pass1234",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuth_Refresh(t *testing.T) {
	r, st, _ := newTestApp(t)
	seedUser(t, st, 100, "alice", "pass1234")

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/token", "", types.LoginRequest{
		Username: "alice",
		Password: "pass1234",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var tokens types.TokenResponse
	decodeData(t, w, &tokens)

	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/token/refresh", "", types.RefreshRequest{Token: tokens.RefreshToken})
	require.Equal(t, http.StatusOK, w.Code)
	var refreshed types.TokenResponse
	decodeData(t, w, &refreshed)
	assert.NotEmpty(t, refreshed.AccessToken)

	// access token 不能用来刷新
	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/token/refresh", "", types.RefreshRequest{Token: tokens.AccessToken})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/token/refresh", "", types.RefreshRequest{Token: "garbage"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// 临近过期的 access token 会在响应头里收到新 token
func TestAuth_Rotate(t *testing.T) {
	r, st, cfg := newTestApp(t)
	seedUser(t, st, 100, "alice", "pass1234")

	shortLived, err := jwt.GenerateToken([]byte(cfg.Jwt.Secret), 100, jwt.TypeAccess, 10*time.Second)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, "/api/v1/posts", shortLived, nil)
	require.Equal(t, http.StatusOK, w.Code)
	rotated := w.Header().Get("X-New-Access-Token")
	require.NotEmpty(t, rotated)

	w = doJSON(t, r, http.MethodGet, "/api/v1/posts", rotated, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
