package models

import "time"

type Post struct {
	Id        int64     `gorm:"column:id;primary_key" json:"id"`             // 雪花算法ID
	UserID    int64     `gorm:"column:user_id;not null;index" json:"user_id"` // 作者ID，创建后不可变
	Title     string    `gorm:"column:title;type:varchar(128);default:''" json:"title"`
	Body      string    `gorm:"column:body;type:text" json:"body"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;index:idx_updated_at" json:"updated_at"`
}

func (Post) TableName() string {
	return "posts"
}
