package dao

import (
	"context"
	"errors"

	"Pulse/models"

	"gorm.io/gorm"
)

type LikeDAO struct {
	Repo[models.Like]
}

func NewLikeDAO(db *gorm.DB) *LikeDAO {
	return &LikeDAO{Repo: NewRepo[models.Like](db)}
}

// InsertIfAbsent 幂等插入点赞记录
// 依赖 uk_post_user 唯一键，并发重复插入时冲突视为已点赞
// 返回值表示是否真正新增了记录
func (d *LikeDAO) InsertIfAbsent(ctx context.Context, postID, userID int64) (bool, error) {
	like := &models.Like{PostID: postID, UserID: userID}
	err := d.Db.WithContext(ctx).Create(like).Error
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return false, nil
	}
	return false, err
}

// DeleteIfPresent 幂等删除点赞记录，记录不存在时不报错
// 返回值表示是否真正删除了记录
func (d *LikeDAO) DeleteIfPresent(ctx context.Context, postID, userID int64) (bool, error) {
	result := d.Db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&models.Like{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// CountByPostID 单个帖子的点赞数
func (d *LikeDAO) CountByPostID(ctx context.Context, postID int64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

// CountByPostIDs 批量查询点赞数，按 post_id 分组
func (d *LikeDAO) CountByPostIDs(ctx context.Context, postIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}

	type row struct {
		PostID int64 `gorm:"column:post_id"`
		Cnt    int64 `gorm:"column:cnt"`
	}
	var rows []row
	err := d.Db.WithContext(ctx).
		Model(&models.Like{}).
		Select("post_id, COUNT(*) AS cnt").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		counts[r.PostID] = r.Cnt
	}
	return counts, nil
}
