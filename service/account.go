package service

import (
	"Board/dao"
	"Board/models"
	"Board/pkg/encrypt"
	"Board/pkg/jwt"
	"Board/pkg/log"
	"Board/types"
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

var _ IAccountService = (*AccountService)(nil)

type IAccountService interface {
	Signup(ctx context.Context, req *types.SignupRequest) (*models.Account, error)
	Login(ctx context.Context, login, password string) (*types.TokenResponse, error)
	GetByID(ctx context.Context, id string) (*models.Account, error)
	Delete(ctx context.Context, id string) error
}

type AccountService struct {
	AccountsDAO *dao.Accounts
	Issuer      *jwt.Issuer
}

func (s *AccountService) Signup(ctx context.Context, req *types.SignupRequest) (*models.Account, error) {
	req.UserID = strings.TrimSpace(req.UserID)
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	taken, err := s.AccountsDAO.IsTaken(ctx, req.UserID, req.Username, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check account: %w", err)
	}
	if taken {
		return nil, ErrAccountExists
	}

	hashed, err := encrypt.HashPassword(req.Password)
	if err != nil {
		return nil, InvalidParam("密码格式不正确")
	}

	account := &models.Account{
		ID:       req.UserID,
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
	}
	// 并发注册时以唯一索引为准
	if err := s.AccountsDAO.Create(ctx, account); err != nil {
		if dao.IsDuplicateKey(err) {
			return nil, ErrAccountExists
		}
		return nil, fmt.Errorf("create account: %w", err)
	}

	log.L.Info("account created", zap.String("user_id", account.ID))
	return account, nil
}

// Login login 可以是账号ID或用户名
func (s *AccountService) Login(ctx context.Context, login, password string) (*types.TokenResponse, error) {
	account, err := s.AccountsDAO.FindByLogin(ctx, strings.TrimSpace(login))
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find account: %w", err)
	}

	if !encrypt.VerifyPassword(account.Password, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.Issuer.IssueDefault(account.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &types.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.Issuer.TTL().Seconds()),
	}, nil
}

func (s *AccountService) GetByID(ctx context.Context, id string) (*models.Account, error) {
	account, err := s.AccountsDAO.FindById(ctx, id)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

// Delete 注销账号，同时删除其帖子、评论和点赞
func (s *AccountService) Delete(ctx context.Context, id string) error {
	deleted, err := s.AccountsDAO.DeleteCascade(ctx, id)
	if err != nil {
		return fmt.Errorf("delete account %s: %w", id, err)
	}
	if !deleted {
		return ErrAccountNotFound
	}

	log.L.Info("account deleted", zap.String("user_id", id))
	return nil
}

// ToUserResponse 去掉密码等敏感字段
func ToUserResponse(account *models.Account) *types.UserResponse {
	return &types.UserResponse{
		UserID:    account.ID,
		Username:  account.Username,
		Email:     account.Email,
		CreatedAt: account.CreatedAt,
	}
}
