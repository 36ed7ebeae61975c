package handler

import (
	"fmt"
	"net/http"
	"testing"

	"Pulse/models"
	"Pulse/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_Register(t *testing.T) {
	r, _, _ := newTestApp(t)

	// 注册不需要登录
	w := doJSON(t, r, http.MethodPost, "/api/v1/users", "", types.RegisterRequest{
		Username: "alice",
		Password: "pass1234",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var user models.Users
	decodeData(t, w, &user)
	assert.Equal(t, "alice", user.Username)
	assert.NotZero(t, user.Id)
	// 密码不回显
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "pass1234")
}

func TestUser_RegisterValidation(t *testing.T) {
	r, _, _ := newTestApp(t)

	// 缺用户名
	w := doJSON(t, r, http.MethodPost, "/api/v1/users", "", map[string]string{
		"password": "pass1234",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 空用户名
	w = doJSON(t, r, http.MethodPost, "/api/v1/users", "", map[string]string{
		"username": "",
		"password": "pass1234",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 密码太短
	w = doJSON(t, r, http.MethodPost, "/api/v1/users", "", map[string]string{
		"username": "alice",
		"password": "abc",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 重复注册
	w = doJSON(t, r, http.MethodPost, "/api/v1/users", "", types.RegisterRequest{Username: "alice", Password: "pass1234"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, r, http.MethodPost, "/api/v1/users", "", types.RegisterRequest{Username: "alice", Password: "other123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUser_ListAndGet(t *testing.T) {
	r, st, cfg := newTestApp(t)
	seedUser(t, st, 100, "alice", "pass1234")
	seedUser(t, st, 200, "bob", "pass1234")
	alice := accessToken(t, cfg, 100)

	// 列表需要登录
	w := doJSON(t, r, http.MethodGet, "/api/v1/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/users", alice, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var users []*models.Users
	decodeData(t, w, &users)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)

	w = doJSON(t, r, http.MethodGet, "/api/v1/users/200", alice, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var user models.Users
	decodeData(t, w, &user)
	assert.Equal(t, "bob", user.Username)

	w = doJSON(t, r, http.MethodGet, "/api/v1/users/999", alice, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUser_UpdateAndDelete(t *testing.T) {
	r, st, cfg := newTestApp(t)
	seedUser(t, st, 100, "alice", "pass1234")
	seedUser(t, st, 200, "bob", "pass1234")
	alice := accessToken(t, cfg, 100)
	bob := accessToken(t, cfg, 200)

	first := "Alice"
	w := doJSON(t, r, http.MethodPatch, "/api/v1/users/100", alice, types.UpdateUserReq{FirstName: &first})
	require.Equal(t, http.StatusOK, w.Code)
	var user models.Users
	decodeData(t, w, &user)
	assert.Equal(t, "Alice", user.FirstName)

	// 他人改不动
	w = doJSON(t, r, http.MethodPut, "/api/v1/users/100", bob, types.UpdateUserReq{FirstName: &first})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// 他人删不掉
	w = doJSON(t, r, http.MethodDelete, "/api/v1/users/100", bob, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// 本人注销
	w = doJSON(t, r, http.MethodDelete, "/api/v1/users/100", alice, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/users/100", bob, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// 注销账号后其帖子与点赞一并清理
func TestUser_DeleteCascade(t *testing.T) {
	r, st, cfg := newTestApp(t)
	seedUser(t, st, 100, "alice", "pass1234")
	seedUser(t, st, 200, "bob", "pass1234")
	alice := accessToken(t, cfg, 100)
	bob := accessToken(t, cfg, 200)

	w := doJSON(t, r, http.MethodPost, "/api/v1/posts", alice, types.CreatePostRequest{Title: "hello"})
	require.Equal(t, http.StatusCreated, w.Code)
	var post types.PostItem
	decodeData(t, w, &post)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/posts/%d/like", post.Id), bob, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/v1/users/100", alice, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/posts/%d", post.Id), bob, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, st.Likes)
}
