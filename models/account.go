package models

import "time"

// Account 用户账号，ID 由用户注册时指定
type Account struct {
	ID        string    `gorm:"column:id;type:varchar(30);primaryKey" json:"user_id"`
	Username  string    `gorm:"column:username;type:varchar(30);not null;uniqueIndex:uq_accounts_username" json:"username"`
	Email     string    `gorm:"column:email;type:varchar(100);not null;uniqueIndex:uq_accounts_email" json:"email"`
	Password  string    `gorm:"column:password;type:varchar(255);not null" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Account) TableName() string {
	return "accounts"
}
