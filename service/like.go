package service

import (
	"Board/dao"
	"Board/dao/cache"
	"Board/models"
	"Board/types"
	"context"
	"fmt"
)

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	Toggle(ctx context.Context, account *models.Account, postID uint64) (*types.LikeToggleResponse, error)
}

type LikeService struct {
	LikesDAO *dao.Likes
	Lock     *cache.ToggleLock
}

// Toggle 已点赞则取消，未点赞则点赞
func (s *LikeService) Toggle(ctx context.Context, account *models.Account, postID uint64) (*types.LikeToggleResponse, error) {
	if account == nil {
		return nil, ErrUnauthorized
	}

	release, err := s.Lock.Acquire(ctx, account.ID, postID)
	if err != nil {
		return nil, err
	}
	defer release()

	liked, err := s.LikesDAO.Toggle(ctx, postID, account.ID)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("toggle like post %d: %w", postID, err)
	}

	count, err := s.LikesDAO.CountByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("count likes post %d: %w", postID, err)
	}

	return &types.LikeToggleResponse{
		Liked:      liked,
		LikesCount: count,
	}, nil
}
