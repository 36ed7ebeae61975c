package dao

import (
	"context"

	"Pulse/models"

	"gorm.io/gorm"
)

type PostDAO struct {
	Repo[models.Post]
}

func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{Repo: NewRepo[models.Post](db)}
}

// ListByUpdated 按最近更新排序查询全部帖子
// updated_at 相同时按 id 倒序，保证排序稳定
func (d *PostDAO) ListByUpdated(ctx context.Context) ([]*models.Post, error) {
	var posts []*models.Post
	err := d.Db.WithContext(ctx).
		Order("updated_at DESC, id DESC").
		Find(&posts).Error
	return posts, err
}

// UpdateById 更新帖子字段，updated_at 由 gorm 自动刷新
func (d *PostDAO) UpdateById(ctx context.Context, postID int64, data map[string]any) error {
	if len(data) == 0 {
		return nil
	}
	return d.Db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", postID).
		Updates(data).Error
}

// DeleteWithLikes 删除帖子并级联删除其点赞记录
func (d *PostDAO) DeleteWithLikes(ctx context.Context, postID int64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", postID).Delete(&models.Post{}).Error
	})
}
