package service

import (
	"Board/dao"
	"Board/models"
	"Board/types"
	"context"
	"fmt"
)

var _ ICommentService = (*CommentService)(nil)

type ICommentService interface {
	Create(ctx context.Context, author *models.Account, req *types.CreateCommentRequest) (*types.CommentResponse, error)
	List(ctx context.Context, req *types.ListCommentsRequest) ([]*types.CommentResponse, error)
	Get(ctx context.Context, commentID uint64) (*types.CommentResponse, error)
	Update(ctx context.Context, account *models.Account, commentID uint64, req *types.UpdateCommentRequest) (*types.CommentResponse, error)
	Delete(ctx context.Context, account *models.Account, commentID uint64) error
}

type CommentService struct {
	CommentsDAO *dao.Comments
	PostsDAO    *dao.Posts
}

func (s *CommentService) Create(ctx context.Context, author *models.Account, req *types.CreateCommentRequest) (*types.CommentResponse, error) {
	if author == nil {
		return nil, ErrUnauthorized
	}

	exist, err := s.PostsDAO.IsExist(ctx, "id = ?", req.PostID)
	if err != nil {
		return nil, fmt.Errorf("check post %d: %w", req.PostID, err)
	}
	if !exist {
		return nil, ErrPostNotFound
	}

	comment := &models.Comment{
		PostID:   req.PostID,
		AuthorID: author.ID,
		Content:  req.Content,
	}
	if err := s.CommentsDAO.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return toCommentResponse(comment), nil
}

// List 帖子下的评论，按发布时间正序
func (s *CommentService) List(ctx context.Context, req *types.ListCommentsRequest) ([]*types.CommentResponse, error) {
	if req.PostID == 0 {
		return nil, InvalidParam("post_id 不能为空")
	}
	page := types.Page{Skip: req.Skip, Limit: req.Limit}.Normalize()

	comments, err := s.CommentsDAO.ListByPost(ctx, req.PostID, page.Skip, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("list comments of post %d: %w", req.PostID, err)
	}

	items := make([]*types.CommentResponse, 0, len(comments))
	for _, c := range comments {
		items = append(items, toCommentResponse(c))
	}
	return items, nil
}

func (s *CommentService) Get(ctx context.Context, commentID uint64) (*types.CommentResponse, error) {
	comment, err := s.find(ctx, commentID)
	if err != nil {
		return nil, err
	}
	return toCommentResponse(comment), nil
}

func (s *CommentService) Update(ctx context.Context, account *models.Account, commentID uint64, req *types.UpdateCommentRequest) (*types.CommentResponse, error) {
	comment, err := s.find(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if err := AuthorizeOwner(comment, account); err != nil {
		return nil, err
	}

	if req.Content != nil {
		if err := s.CommentsDAO.UpdateContent(ctx, commentID, *req.Content); err != nil {
			return nil, fmt.Errorf("update comment %d: %w", commentID, err)
		}
	}
	return s.Get(ctx, commentID)
}

func (s *CommentService) Delete(ctx context.Context, account *models.Account, commentID uint64) error {
	comment, err := s.find(ctx, commentID)
	if err != nil {
		return err
	}
	if err := AuthorizeOwner(comment, account); err != nil {
		return err
	}

	if err := s.CommentsDAO.Delete(ctx, commentID); err != nil {
		return fmt.Errorf("delete comment %d: %w", commentID, err)
	}
	return nil
}

func (s *CommentService) find(ctx context.Context, commentID uint64) (*models.Comment, error) {
	comment, err := s.CommentsDAO.FindById(ctx, commentID)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, ErrCommentNotFound
		}
		return nil, fmt.Errorf("find comment %d: %w", commentID, err)
	}
	return comment, nil
}

func toCommentResponse(c *models.Comment) *types.CommentResponse {
	return &types.CommentResponse{
		CommentID: c.ID,
		PostID:    c.PostID,
		AuthorID:  c.AuthorID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
