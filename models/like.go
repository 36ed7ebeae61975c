package models

import "time"

// Like 点赞记录
// 对应表 likes
// 唯一键: post_id + user_id，同一用户对同一帖子至多一条
type Like struct {
	Id        int64     `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	PostID    int64     `gorm:"column:post_id;not null;uniqueIndex:uk_post_user,priority:1" json:"post_id"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:uk_post_user,priority:2" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Like) TableName() string { return "likes" }
