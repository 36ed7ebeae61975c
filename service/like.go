package service

import (
	"context"
	"errors"

	"Pulse/pkg/response"

	"gorm.io/gorm"
)

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	Like(ctx context.Context, userID int64, postID int64) error
	Unlike(ctx context.Context, userID int64, postID int64) error
}

type LikeService struct {
	PostRepo PostRepository
	LikeRepo LikeRepository
	Cache    LikeCountCache
}

// Like 点赞，幂等：重复点赞不报错不产生重复记录
func (s *LikeService) Like(ctx context.Context, userID int64, postID int64) error {
	if err := s.checkPost(ctx, postID); err != nil {
		return err
	}

	created, err := s.LikeRepo.InsertIfAbsent(ctx, postID, userID)
	if err != nil {
		return err
	}
	if created {
		_ = s.Cache.Del(ctx, postID)
	}
	return nil
}

// Unlike 取消点赞，幂等：未点赞过也视为成功
func (s *LikeService) Unlike(ctx context.Context, userID int64, postID int64) error {
	if err := s.checkPost(ctx, postID); err != nil {
		return err
	}

	deleted, err := s.LikeRepo.DeleteIfPresent(ctx, postID, userID)
	if err != nil {
		return err
	}
	if deleted {
		_ = s.Cache.Del(ctx, postID)
	}
	return nil
}

func (s *LikeService) checkPost(ctx context.Context, postID int64) error {
	_, err := s.PostRepo.FindById(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound("帖子不存在")
		}
		return err
	}
	return nil
}
