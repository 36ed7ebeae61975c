package handler

import (
	"net/http"
	"time"

	"Pulse/config"
	"Pulse/pkg/context"
	"Pulse/pkg/jwt"
	"Pulse/pkg/response"
	"Pulse/service"
	"Pulse/types"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	Config      *config.Config
	UserService service.IUserService
}

func (a *Auth) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/auth")
	g.POST("/token", context.Wrap(a.Token))           // 登录换取 token
	g.POST("/token/refresh", context.Wrap(a.Refresh)) // 刷新 token
}

// Token 账号密码登录，下发 access + refresh token
func (a *Auth) Token(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("参数格式错误: " + err.Error())
	}

	user, err := a.UserService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	tokens, err := a.issueTokens(user.Id)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, "签发 token 失败")
	}
	response.Success(c, tokens)
	return nil
}

// Refresh 用 refresh token 换取新的 token 对
func (a *Auth) Refresh(c *gin.Context) error {
	var req types.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("参数格式错误: " + err.Error())
	}

	claims, err := jwt.ParseToken([]byte(a.Config.Jwt.Secret), jwt.TypeRefresh, req.Token)
	if err != nil {
		return response.Unauthorized("无效的 refresh token")
	}

	tokens, err := a.issueTokens(claims.UserID)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, "签发 token 失败")
	}
	response.Success(c, tokens)
	return nil
}

func (a *Auth) issueTokens(userID int64) (*types.TokenResponse, error) {
	secret := []byte(a.Config.Jwt.Secret)

	access, err := jwt.GenerateToken(secret, userID, jwt.TypeAccess,
		time.Duration(a.Config.Jwt.AccessExpire)*time.Second)
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.GenerateToken(secret, userID, jwt.TypeRefresh,
		time.Duration(a.Config.Jwt.RefreshExpire)*time.Second)
	if err != nil {
		return nil, err
	}

	return &types.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
