package dao

import (
	"Board/models"
	"context"

	"gorm.io/gorm"
)

type Comments struct {
	Repo[models.Comment]
}

func NewComments(db *gorm.DB) *Comments {
	return &Comments{
		Repo: NewRepo[models.Comment](db),
	}
}

// ListByPost 获取帖子评论(按时间正序)
func (d *Comments) ListByPost(ctx context.Context, postID uint64, offset, limit int) ([]*models.Comment, error) {
	comments := make([]*models.Comment, 0)
	err := d.Db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&comments).Error
	return comments, err
}

// UpdateContent 修改评论内容
func (d *Comments) UpdateContent(ctx context.Context, commentID uint64, content string) error {
	_, err := d.Repo.UpdateById(ctx, commentID, map[string]any{
		"content": content,
	})
	return err
}

// Delete 删除评论
func (d *Comments) Delete(ctx context.Context, commentID uint64) error {
	return d.Db.WithContext(ctx).
		Where("id = ?", commentID).
		Delete(&models.Comment{}).Error
}
