package dao

import (
	"Board/models"
	"context"

	"gorm.io/gorm"
)

type Accounts struct {
	Repo[models.Account]
}

func NewAccounts(db *gorm.DB) *Accounts {
	return &Accounts{
		Repo: NewRepo[models.Account](db),
	}
}

// FindByLogin 先按账号ID查询，没有再按用户名查询
func (a *Accounts) FindByLogin(ctx context.Context, login string) (*models.Account, error) {
	account, err := a.Repo.FindById(ctx, login)
	if err == nil || !IsNotFound(err) {
		return account, err
	}
	return a.Repo.FindByWhere(ctx, "username = ?", login)
}

// IsTaken 判断账号ID、用户名、邮箱是否已被占用
// 账号ID 和用户名都可以用来登录，两者之间也不能重复
func (a *Accounts) IsTaken(ctx context.Context, id, username, email string) (bool, error) {
	return a.Repo.IsExist(ctx,
		"id = ? OR username = ? OR email = ? OR username = ? OR id = ?",
		id, username, email, id, username,
	)
}

// DeleteCascade 删除账号及其所有帖子、评论、点赞
func (a *Accounts) DeleteCascade(ctx context.Context, id string) (bool, error) {
	var deleted bool
	err := a.Transaction(ctx, func(tx *gorm.DB) error {
		ownPosts := tx.Model(&models.Post{}).Select("id").Where("author_id = ?", id)

		if err := tx.Where("user_id = ? OR post_id IN (?)", id, ownPosts).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("author_id = ? OR post_id IN (?)", id, ownPosts).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("author_id = ?", id).Delete(&models.Post{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.Account{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}
