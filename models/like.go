package models

import "time"

// Like 点赞记录
// 对应表 likes
// 唯一键: post_id + user_id，同一用户对同一帖子最多一条
type Like struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"like_id"`
	PostID    uint64    `gorm:"column:post_id;not null;uniqueIndex:uq_likes_post_user,priority:1;index:ix_likes_post_created,priority:1" json:"post_id"`
	UserID    string    `gorm:"column:user_id;type:varchar(30);not null;uniqueIndex:uq_likes_post_user,priority:2;index:ix_likes_user" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index:ix_likes_post_created,priority:2" json:"created_at"`

	Post    Post    `gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Account Account `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Like) TableName() string {
	return "likes"
}
