package models

import "time"

type Users struct {
	Id        int64     `gorm:"column:id;primary_key" json:"id"`
	Username  string    `gorm:"column:username;type:varchar(64);not null;uniqueIndex:uk_username" json:"username"`
	Email     string    `gorm:"column:email;type:varchar(255);not null;default:'';index" json:"email"` // 可为空，非空时业务层保证唯一
	Password  string    `gorm:"column:password;type:varchar(255);not null" json:"-"`                   // bcrypt 哈希，永不下发
	FirstName string    `gorm:"column:first_name;type:varchar(64);not null;default:''" json:"first_name"`
	LastName  string    `gorm:"column:last_name;type:varchar(64);not null;default:''" json:"last_name"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Users) TableName() string {
	return "users"
}
