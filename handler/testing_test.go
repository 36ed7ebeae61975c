package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"Pulse/config"
	"Pulse/models"
	"Pulse/pkg/encrypt"
	"Pulse/pkg/jwt"
	"Pulse/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// newTestApp 组装一套跑在内存存储上的完整路由
func newTestApp(t *testing.T) (*gin.Engine, *service.MockStore, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Jwt: &config.Jwt{
			Secret:        "test-secret",
			AccessExpire:  3600,
			RefreshExpire: 7200,
		},
	}

	st := service.NewMockStore()
	userSvc := &service.UserService{UsersRepo: st.UserRepo()}
	postSvc := &service.PostService{PostRepo: st.PostRepo(), LikeRepo: st.LikeRepo(), Cache: st.LikeCache()}
	likeSvc := &service.LikeService{PostRepo: st.PostRepo(), LikeRepo: st.LikeRepo(), Cache: st.LikeCache()}

	r := gin.New()
	api := r.Group("/api")
	(&Auth{Config: cfg, UserService: userSvc}).RegisterRouter(api)
	(&User{Config: cfg, UserService: userSvc}).RegisterRouter(api)
	(&Post{Config: cfg, PostService: postSvc, LikeService: likeSvc}).RegisterRouter(api)
	return r, st, cfg
}

func accessToken(t *testing.T, cfg *config.Config, userID int64) string {
	t.Helper()
	token, err := jwt.GenerateToken([]byte(cfg.Jwt.Secret), userID, jwt.TypeAccess, time.Hour)
	require.NoError(t, err)
	return token
}

// doJSON 发送一个 JSON 请求，token 为空则不带 Authorization 头
func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// seedUser 直接写入一个用户，密码为明文入参的 bcrypt 哈希
func seedUser(t *testing.T, st *service.MockStore, id int64, username, password string) {
	t.Helper()
	st.Users[id] = &models.Users{
		Id:       id,
		Username: username,
		Password: encrypt.HashPassword(password),
	}
}

// decodeData 解出响应信封中的 data 字段
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	var env struct {
		Code int             `json:"code"`
		Msg  string          `json:"msg"`
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.Equal(t, w.Code, env.Code)
	if out != nil {
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
}
