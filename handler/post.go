package handler

import (
	"Pulse/config"
	"Pulse/middleware"
	"Pulse/pkg/context"
	"Pulse/pkg/response"
	"Pulse/service"
	"Pulse/types"

	"github.com/gin-gonic/gin"
)

type Post struct {
	Config      *config.Config
	PostService service.IPostService
	LikeService service.ILikeService
}

func (p *Post) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(p.Config.Jwt.Secret))
	g := r.Group("/v1/posts")
	g.Use(authorize)
	g.POST("", context.Wrap(p.Create))
	g.GET("", context.Wrap(p.List))
	g.GET("/:id", context.Wrap(p.Get))
	g.PUT("/:id", context.Wrap(p.Update))
	g.PATCH("/:id", context.Wrap(p.Update))
	g.DELETE("/:id", context.Wrap(p.Delete))
	g.POST("/:id/like", context.Wrap(p.Like))
	g.DELETE("/:id/unlike", context.Wrap(p.Unlike))
}

// Create 创建帖子，owner 取当前登录用户
func (p *Post) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("未登录")
	}

	var req types.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("参数格式错误: " + err.Error())
	}

	post, err := p.PostService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Created(c, post)
	return nil
}

// List 帖子列表，按最近更新排序，附带 like_count
func (p *Post) List(c *gin.Context) error {
	posts, err := p.PostService.List(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, posts)
	return nil
}

func (p *Post) Get(c *gin.Context) error {
	postID, err := parseID(c)
	if err != nil {
		return err
	}

	post, err := p.PostService.Get(c.Request.Context(), postID)
	if err != nil {
		return err
	}
	response.Success(c, post)
	return nil
}

// Update 更新帖子，仅 owner 可操作
func (p *Post) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("未登录")
	}

	postID, err := parseID(c)
	if err != nil {
		return err
	}

	var req types.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("参数格式错误: " + err.Error())
	}

	post, err := p.PostService.Update(c.Request.Context(), userID, postID, &req)
	if err != nil {
		return err
	}
	response.Success(c, post)
	return nil
}

// Delete 删除帖子，仅 owner 可操作，点赞记录一并清理
func (p *Post) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("未登录")
	}

	postID, err := parseID(c)
	if err != nil {
		return err
	}

	if err := p.PostService.Delete(c.Request.Context(), userID, postID); err != nil {
		return err
	}
	response.NoContent(c)
	return nil
}

// Like 点赞，幂等，重复点赞同样返回 201
func (p *Post) Like(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("未登录")
	}

	postID, err := parseID(c)
	if err != nil {
		return err
	}

	if err := p.LikeService.Like(c.Request.Context(), userID, postID); err != nil {
		return err
	}
	response.Created(c, gin.H{"liked": true})
	return nil
}

// Unlike 取消点赞，幂等，未点赞过也返回 204
func (p *Post) Unlike(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("未登录")
	}

	postID, err := parseID(c)
	if err != nil {
		return err
	}

	if err := p.LikeService.Unlike(c.Request.Context(), userID, postID); err != nil {
		return err
	}
	response.NoContent(c)
	return nil
}
