package handler

import (
	"net/http"
	"strconv"

	"Pulse/config"
	"Pulse/middleware"
	"Pulse/pkg/context"
	"Pulse/pkg/response"
	"Pulse/service"
	"Pulse/types"

	"github.com/gin-gonic/gin"
)

type User struct {
	Config      *config.Config
	UserService service.IUserService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(u.Config.Jwt.Secret))
	g := r.Group("/v1/users")
	g.POST("", context.Wrap(u.Register)) // 注册对未登录用户开放
	g.GET("", authorize, context.Wrap(u.List))
	g.GET("/:id", authorize, context.Wrap(u.Get))
	g.PUT("/:id", authorize, context.Wrap(u.Update))
	g.PATCH("/:id", authorize, context.Wrap(u.Update))
	g.DELETE("/:id", authorize, context.Wrap(u.Delete))
}

// Register 注册新用户，密码不回显
func (u *User) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("参数格式错误: " + err.Error())
	}

	user, err := u.UserService.Register(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	response.Created(c, user)
	return nil
}

func (u *User) List(c *gin.Context) error {
	users, err := u.UserService.List(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, users)
	return nil
}

func (u *User) Get(c *gin.Context) error {
	targetID, err := parseID(c)
	if err != nil {
		return err
	}

	user, err := u.UserService.Get(c.Request.Context(), targetID)
	if err != nil {
		return err
	}
	response.Success(c, user)
	return nil
}

// Update 更新用户资料，仅本人可操作
func (u *User) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("未登录")
	}

	targetID, err := parseID(c)
	if err != nil {
		return err
	}

	var req types.UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("参数格式错误: " + err.Error())
	}

	user, err := u.UserService.Update(c.Request.Context(), userID, targetID, &req)
	if err != nil {
		return err
	}
	response.Success(c, user)
	return nil
}

// Delete 注销账号，仅本人可操作
func (u *User) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("未登录")
	}

	targetID, err := parseID(c)
	if err != nil {
		return err
	}

	if err := u.UserService.Delete(c.Request.Context(), userID, targetID); err != nil {
		return err
	}
	response.NoContent(c)
	return nil
}

func parseID(c *gin.Context) (int64, error) {
	idParam := c.Param("id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, response.NewError(http.StatusBadRequest, "id 格式错误")
	}
	return id, nil
}
