package models

import "time"

// Comment 评论，随帖子或作者删除
type Comment struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"comment_id"`
	PostID    uint64    `gorm:"column:post_id;not null;index:ix_comments_post_created,priority:1" json:"post_id"`
	AuthorID  string    `gorm:"column:author_id;type:varchar(30);not null;index:ix_comments_author" json:"author_id"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index:ix_comments_post_created,priority:2" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Post   Post    `gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Author Account `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Comment) TableName() string {
	return "comments"
}

func (c *Comment) OwnerID() string {
	return c.AuthorID
}
