package service

import (
	"context"
	"net/http"
	"testing"

	"Pulse/models"
	"Pulse/pkg/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLikeFixture(t *testing.T) (*MockStore, *LikeService, *PostService) {
	t.Helper()
	st := NewMockStore()
	likeSvc := &LikeService{
		PostRepo: st.PostRepo(),
		LikeRepo: st.LikeRepo(),
		Cache:    st.LikeCache(),
	}
	postSvc := &PostService{
		PostRepo: st.PostRepo(),
		LikeRepo: st.LikeRepo(),
		Cache:    st.LikeCache(),
	}
	return st, likeSvc, postSvc
}

// 重复点赞不产生重复记录，like_count 保持 1
func TestLike_Idempotent(t *testing.T) {
	ctx := context.Background()
	st, likeSvc, postSvc := newLikeFixture(t)
	st.Posts[1] = &models.Post{Id: 1, UserID: 100}

	require.NoError(t, likeSvc.Like(ctx, 200, 1))
	require.NoError(t, likeSvc.Like(ctx, 200, 1))

	item, err := postSvc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), item.LikeCount)
}

// 未点赞时取消点赞不报错，like_count 为 0
func TestUnlike_WithoutLike(t *testing.T) {
	ctx := context.Background()
	st, likeSvc, postSvc := newLikeFixture(t)
	st.Posts[1] = &models.Post{Id: 1, UserID: 100}

	require.NoError(t, likeSvc.Unlike(ctx, 200, 1))

	item, err := postSvc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), item.LikeCount)
}

// 两个不同用户点赞同一帖子，like_count 为 2
func TestLike_TwoUsers(t *testing.T) {
	ctx := context.Background()
	st, likeSvc, postSvc := newLikeFixture(t)
	st.Posts[1] = &models.Post{Id: 1, UserID: 100}

	require.NoError(t, likeSvc.Like(ctx, 100, 1)) // 作者也可以点赞自己的帖子
	require.NoError(t, likeSvc.Like(ctx, 200, 1))

	item, err := postSvc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), item.LikeCount)
}

// 点赞后取消，like_count 回到 0
func TestLike_ThenUnlike(t *testing.T) {
	ctx := context.Background()
	st, likeSvc, postSvc := newLikeFixture(t)
	st.Posts[1] = &models.Post{Id: 1, UserID: 100}

	require.NoError(t, likeSvc.Like(ctx, 200, 1))
	require.NoError(t, likeSvc.Unlike(ctx, 200, 1))

	item, err := postSvc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), item.LikeCount)
}

// 点赞不存在的帖子返回 404
func TestLike_PostNotFound(t *testing.T) {
	ctx := context.Background()
	_, likeSvc, _ := newLikeFixture(t)

	err := likeSvc.Like(ctx, 200, 999)
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, http.StatusNotFound, be.Code)
}

// 点赞/取消点赞后缓存失效，下次读取回源
func TestLike_InvalidatesCache(t *testing.T) {
	ctx := context.Background()
	st, likeSvc, _ := newLikeFixture(t)
	st.Posts[1] = &models.Post{Id: 1, UserID: 100}
	st.Counts[1] = 5 // 预置脏缓存

	require.NoError(t, likeSvc.Like(ctx, 200, 1))

	_, ok := st.Counts[1]
	assert.False(t, ok)
}
