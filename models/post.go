package models

import "time"

type Post struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"post_id"`
	Title     string    `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	AuthorID  string    `gorm:"column:author_id;type:varchar(30);not null;index:ix_posts_author_created,priority:1" json:"author_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index:ix_posts_author_created,priority:2;index:ix_posts_created" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Author Account `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Post) TableName() string {
	return "posts"
}

func (p *Post) OwnerID() string {
	return p.AuthorID
}
