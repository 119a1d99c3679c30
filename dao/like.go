package dao

import (
	"Board/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Likes struct {
	Repo[models.Like]
}

func NewLikes(db *gorm.DB) *Likes {
	return &Likes{Repo: NewRepo[models.Like](db)}
}

// Toggle 在一个事务内切换点赞状态，返回切换后的状态
// 先锁定帖子行，同一帖子的切换串行执行，避免 MySQL 间隙锁导致死锁
// 然后按唯一键删除，删到说明之前已点赞；否则插入，冲突时视为已点赞
// 帖子不存在时返回 gorm.ErrRecordNotFound
func (d *Likes) Toggle(ctx context.Context, postID uint64, userID string) (liked bool, err error) {
	err = d.Transaction(ctx, func(tx *gorm.DB) error {
		var post models.Post
		err := tx.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
			Select("id").
			Where("id = ?", postID).
			Take(&post).Error
		if err != nil {
			return err
		}

		res := tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			liked = false
			return nil
		}

		like := &models.Like{PostID: postID, UserID: userID}
		err = tx.Omit(clause.Associations).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "post_id"}, {Name: "user_id"}},
				DoNothing: true,
			}).
			Create(like).Error
		if err != nil && !IsDuplicateKey(err) {
			return err
		}
		liked = true
		return nil
	})
	return liked, err
}

// CountByPost 帖子点赞数
func (d *Likes) CountByPost(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

// LikedPostIDs 批量查询用户点赞过的帖子
func (d *Likes) LikedPostIDs(ctx context.Context, userID string, postIDs []uint64) (map[uint64]bool, error) {
	result := make(map[uint64]bool)
	if len(postIDs) == 0 {
		return result, nil
	}

	var ids []uint64
	err := d.Db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &ids).Error
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		result[id] = true
	}
	return result, nil
}

// CountByPostUser 同一用户对同一帖子的点赞记录数，正常情况下只会是 0 或 1
func (d *Likes) CountByPostUser(ctx context.Context, postID uint64, userID string) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Like{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	return count, err
}
