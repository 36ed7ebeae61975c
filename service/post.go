package service

import (
	"context"
	"errors"

	"Pulse/models"
	"Pulse/pkg/response"
	"Pulse/pkg/snowflake"
	"Pulse/types"

	"gorm.io/gorm"
)

var _ IPostService = (*PostService)(nil)

type IPostService interface {
	Create(ctx context.Context, userID int64, req *types.CreatePostRequest) (*types.PostItem, error)
	List(ctx context.Context) (*types.ListPostsResponse, error)
	Get(ctx context.Context, postID int64) (*types.PostItem, error)
	Update(ctx context.Context, requesterID int64, postID int64, req *types.UpdatePostRequest) (*types.PostItem, error)
	Delete(ctx context.Context, requesterID int64, postID int64) error
}

type PostService struct {
	PostRepo PostRepository
	LikeRepo LikeRepository
	Cache    LikeCountCache
}

// Create 创建帖子，owner 永远是当前登录用户
func (s *PostService) Create(ctx context.Context, userID int64, req *types.CreatePostRequest) (*types.PostItem, error) {
	post := &models.Post{
		Id:     snowflake.GenID(),
		UserID: userID,
		Title:  req.Title,
		Body:   req.Body,
	}

	if err := s.PostRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.toItem(post, 0), nil
}

// List 按最近更新排序返回全部帖子，附带点赞数
func (s *PostService) List(ctx context.Context) (*types.ListPostsResponse, error) {
	posts, err := s.PostRepo.ListByUpdated(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.Id)
	}
	counts, err := s.LikeRepo.CountByPostIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	resp := &types.ListPostsResponse{
		Posts: make([]*types.PostItem, 0, len(posts)),
		Total: len(posts),
	}
	for _, p := range posts {
		resp.Posts = append(resp.Posts, s.toItem(p, counts[p.Id]))
	}
	return resp, nil
}

func (s *PostService) Get(ctx context.Context, postID int64) (*types.PostItem, error) {
	post, err := s.find(ctx, postID)
	if err != nil {
		return nil, err
	}

	count, err := s.likeCount(ctx, post.Id)
	if err != nil {
		return nil, err
	}
	return s.toItem(post, count), nil
}

// Update 更新帖子，仅 owner 可操作，owner 字段不可变
func (s *PostService) Update(ctx context.Context, requesterID int64, postID int64, req *types.UpdatePostRequest) (*types.PostItem, error) {
	post, err := s.find(ctx, postID)
	if err != nil {
		return nil, err
	}

	if !CanModifyPost(requesterID, post) {
		return nil, response.Forbidden("无权限操作他人帖子")
	}

	data := map[string]any{}
	if req.Title != nil {
		data["title"] = *req.Title
	}
	if req.Body != nil {
		data["body"] = *req.Body
	}
	// updated_at 由 gorm 在更新时刷新
	if len(data) > 0 {
		if err := s.PostRepo.UpdateById(ctx, post.Id, data); err != nil {
			return nil, err
		}
		post, err = s.find(ctx, postID)
		if err != nil {
			return nil, err
		}
	}

	count, err := s.likeCount(ctx, post.Id)
	if err != nil {
		return nil, err
	}
	return s.toItem(post, count), nil
}

// Delete 删除帖子并级联清理点赞记录
func (s *PostService) Delete(ctx context.Context, requesterID int64, postID int64) error {
	post, err := s.find(ctx, postID)
	if err != nil {
		return err
	}

	if !CanModifyPost(requesterID, post) {
		return response.Forbidden("无权限操作他人帖子")
	}

	if err := s.PostRepo.DeleteWithLikes(ctx, post.Id); err != nil {
		return err
	}
	_ = s.Cache.Del(ctx, post.Id)
	return nil
}

func (s *PostService) find(ctx context.Context, postID int64) (*models.Post, error) {
	post, err := s.PostRepo.FindById(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("帖子不存在")
		}
		return nil, err
	}
	return post, nil
}

// likeCount 读取点赞数，优先走缓存，未命中回源并填充
func (s *PostService) likeCount(ctx context.Context, postID int64) (int64, error) {
	if count, ok := s.Cache.Get(ctx, postID); ok {
		return count, nil
	}
	count, err := s.LikeRepo.CountByPostID(ctx, postID)
	if err != nil {
		return 0, err
	}
	_ = s.Cache.Set(ctx, postID, count)
	return count, nil
}

func (s *PostService) toItem(post *models.Post, likeCount int64) *types.PostItem {
	return &types.PostItem{
		Id:        post.Id,
		UserID:    post.UserID,
		Title:     post.Title,
		Body:      post.Body,
		LikeCount: likeCount,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}
