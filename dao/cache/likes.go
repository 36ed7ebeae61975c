package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LikeCountStorage 帖子点赞数缓存
// 点赞/取消点赞/删帖时失效，读取时回源填充
type LikeCountStorage struct {
	redis *redis.Client
}

func NewLikeCountStorage(rds *redis.Client) *LikeCountStorage {
	return &LikeCountStorage{redis: rds}
}

const likeCountTTL = 10 * time.Minute

func (s *LikeCountStorage) Get(ctx context.Context, postID int64) (int64, bool) {
	val, err := s.redis.Get(ctx, s.key(postID)).Int64()
	if err != nil {
		return 0, false
	}
	return val, true
}

func (s *LikeCountStorage) Set(ctx context.Context, postID int64, count int64) error {
	return s.redis.Set(ctx, s.key(postID), count, likeCountTTL).Err()
}

func (s *LikeCountStorage) Del(ctx context.Context, postID int64) error {
	return s.redis.Del(ctx, s.key(postID)).Err()
}

func (s *LikeCountStorage) key(postID int64) string {
	return fmt.Sprintf("post:like_count:%d", postID)
}
