package types

import "time"

// CreatePostRequest 创建帖子请求，标题和正文均可为空
// owner 永远取当前登录用户，不接受客户端传入
type CreatePostRequest struct {
	Title string `json:"title" binding:"omitempty,max=128"`
	Body  string `json:"body"`
}

type UpdatePostRequest struct {
	Title *string `json:"title" binding:"omitempty,max=128"`
	Body  *string `json:"body"`
}

// PostItem 帖子响应，like_count 为读取时计算的派生字段
type PostItem struct {
	Id        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	LikeCount int64     `json:"like_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListPostsResponse struct {
	Posts []*PostItem `json:"posts"`
	Total int         `json:"total"`
}
