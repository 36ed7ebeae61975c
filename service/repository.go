package service

import (
	"context"

	"Pulse/models"
)

// 仓储接口，由 dao 层实现，测试时用内存实现替换

type UserRepository interface {
	Create(ctx context.Context, user *models.Users) error
	FindById(ctx context.Context, id any) (*models.Users, error)
	FindAll(ctx context.Context, order string) ([]*models.Users, error)
	FindByUsername(ctx context.Context, username string) (*models.Users, error)
	IsUsernameExist(ctx context.Context, username string) bool
	IsEmailExist(ctx context.Context, email string) bool
	UpdateById(ctx context.Context, id int64, data map[string]any) error
	DeleteCascade(ctx context.Context, id int64) error
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	FindById(ctx context.Context, id any) (*models.Post, error)
	ListByUpdated(ctx context.Context) ([]*models.Post, error)
	UpdateById(ctx context.Context, postID int64, data map[string]any) error
	DeleteWithLikes(ctx context.Context, postID int64) error
}

type LikeRepository interface {
	InsertIfAbsent(ctx context.Context, postID, userID int64) (bool, error)
	DeleteIfPresent(ctx context.Context, postID, userID int64) (bool, error)
	CountByPostID(ctx context.Context, postID int64) (int64, error)
	CountByPostIDs(ctx context.Context, postIDs []int64) (map[int64]int64, error)
}

// LikeCountCache 点赞数缓存，由 dao/cache 的 redis 实现提供
type LikeCountCache interface {
	Get(ctx context.Context, postID int64) (int64, bool)
	Set(ctx context.Context, postID int64, count int64) error
	Del(ctx context.Context, postID int64) error
}
