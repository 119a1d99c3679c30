package service

import (
	"Board/dao"
	"Board/models"
	"Board/pkg/jwt"
	"Board/pkg/log"
	"Board/pkg/response"
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

var _ IIdentityService = (*IdentityService)(nil)

type IIdentityService interface {
	// Resolve 必须登录，失败返回 401
	Resolve(ctx context.Context, token string) (*models.Account, error)
	// ResolveOptional 可选登录，任何失败都视为匿名访问
	ResolveOptional(ctx context.Context, token string) (*models.Account, bool)
}

type IdentityService struct {
	Issuer      *jwt.Issuer
	AccountsDAO *dao.Accounts
}

func (s *IdentityService) Resolve(ctx context.Context, token string) (*models.Account, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	claims, err := s.Issuer.Verify(token)
	if err != nil {
		return nil, ErrUnauthorized
	}
	if claims.Subject == "" {
		return nil, ErrUnauthorized
	}

	account, err := s.AccountsDAO.FindById(ctx, claims.Subject)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account %s: %w", claims.Subject, err)
	}
	return account, nil
}

func (s *IdentityService) ResolveOptional(ctx context.Context, token string) (*models.Account, bool) {
	if token == "" {
		return nil, false
	}

	account, err := s.Resolve(ctx, token)
	if err != nil {
		// 只记录存储异常，token 无效属于正常的匿名访问
		if response.CodeOf(err) == http.StatusInternalServerError {
			log.L.Warn("resolve optional viewer failed", zap.Error(err))
		}
		return nil, false
	}
	return account, true
}
