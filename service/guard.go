package service

import "Board/models"

// Owned 有作者归属的资源
type Owned interface {
	OwnerID() string
}

var (
	_ Owned = (*models.Post)(nil)
	_ Owned = (*models.Comment)(nil)
)

// AuthorizeOwner 只有作者本人可以修改或删除，资源是否存在由调用方先行判断
func AuthorizeOwner(resource Owned, account *models.Account) error {
	if resource == nil || account == nil {
		return ErrForbidden
	}
	if resource.OwnerID() != account.ID {
		return ErrForbidden
	}
	return nil
}
