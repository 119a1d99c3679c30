package service

import (
	"Board/config"
	"Board/dao"
	"Board/models"
	"Board/types"
	"context"
	"fmt"
	"strings"
)

var _ IPostService = (*PostService)(nil)

type IPostService interface {
	Create(ctx context.Context, author *models.Account, req *types.CreatePostRequest) (*types.PostResponse, error)
	List(ctx context.Context, viewer *models.Account, req *types.ListPostsRequest) ([]*types.PostResponse, error)
	Get(ctx context.Context, viewer *models.Account, postID uint64) (*types.PostResponse, error)
	Update(ctx context.Context, account *models.Account, postID uint64, req *types.UpdatePostRequest) (*types.PostResponse, error)
	Delete(ctx context.Context, account *models.Account, postID uint64) error
}

type PostService struct {
	Config   *config.Config
	PostsDAO *dao.Posts
	LikesDAO *dao.Likes
}

func (s *PostService) Create(ctx context.Context, author *models.Account, req *types.CreatePostRequest) (*types.PostResponse, error) {
	if author == nil {
		return nil, ErrUnauthorized
	}

	post := &models.Post{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: author.ID,
	}
	if err := s.PostsDAO.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	// 新帖子点赞数为 0，作者自己也没点过赞
	liked := false
	return &types.PostResponse{
		PostID:   post.ID,
		Title:    post.Title,
		Content:  post.Content,
		AuthorID: author.ID,
		Author: types.AuthorProfile{
			UserID:   author.ID,
			Username: author.Username,
		},
		LikesCount: 0,
		MyLike:     &liked,
		CreatedAt:  post.CreatedAt,
		UpdatedAt:  post.UpdatedAt,
	}, nil
}

// List viewer 为空表示匿名访问，my_like 返回 null
func (s *PostService) List(ctx context.Context, viewer *models.Account, req *types.ListPostsRequest) ([]*types.PostResponse, error) {
	page := types.Page{Skip: req.Skip, Limit: req.Limit}.Normalize()

	rows, err := s.PostsDAO.List(ctx, dao.PostQuery{
		Search:        strings.TrimSpace(req.Q),
		CaseSensitive: s.Config.Board.SearchCaseSensitive,
		Offset:        page.Skip,
		Limit:         page.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	return s.render(ctx, viewer, rows)
}

func (s *PostService) Get(ctx context.Context, viewer *models.Account, postID uint64) (*types.PostResponse, error) {
	row, err := s.PostsDAO.GetRow(ctx, postID)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("get post %d: %w", postID, err)
	}

	items, err := s.render(ctx, viewer, []*dao.PostRow{row})
	if err != nil {
		return nil, err
	}
	return items[0], nil
}

// Update 只修改传入的字段
func (s *PostService) Update(ctx context.Context, account *models.Account, postID uint64, req *types.UpdatePostRequest) (*types.PostResponse, error) {
	post, err := s.find(ctx, postID)
	if err != nil {
		return nil, err
	}
	if err := AuthorizeOwner(post, account); err != nil {
		return nil, err
	}

	data := make(map[string]any)
	if req.Title != nil {
		data["title"] = *req.Title
	}
	if req.Content != nil {
		data["content"] = *req.Content
	}
	if err := s.PostsDAO.UpdateFields(ctx, postID, data); err != nil {
		return nil, fmt.Errorf("update post %d: %w", postID, err)
	}

	return s.Get(ctx, account, postID)
}

// Delete 删除帖子，评论和点赞一并删除
func (s *PostService) Delete(ctx context.Context, account *models.Account, postID uint64) error {
	post, err := s.find(ctx, postID)
	if err != nil {
		return err
	}
	if err := AuthorizeOwner(post, account); err != nil {
		return err
	}

	if err := s.PostsDAO.DeleteCascade(ctx, postID); err != nil {
		return fmt.Errorf("delete post %d: %w", postID, err)
	}
	return nil
}

func (s *PostService) find(ctx context.Context, postID uint64) (*models.Post, error) {
	post, err := s.PostsDAO.FindById(ctx, postID)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("find post %d: %w", postID, err)
	}
	return post, nil
}

// render 组装返回结果，登录用户批量查询点赞状态
func (s *PostService) render(ctx context.Context, viewer *models.Account, rows []*dao.PostRow) ([]*types.PostResponse, error) {
	var liked map[uint64]bool
	if viewer != nil && len(rows) > 0 {
		ids := make([]uint64, 0, len(rows))
		for _, row := range rows {
			ids = append(ids, row.ID)
		}

		var err error
		liked, err = s.LikesDAO.LikedPostIDs(ctx, viewer.ID, ids)
		if err != nil {
			return nil, fmt.Errorf("query liked posts: %w", err)
		}
	}

	items := make([]*types.PostResponse, 0, len(rows))
	for _, row := range rows {
		item := &types.PostResponse{
			PostID:   row.ID,
			Title:    row.Title,
			Content:  row.Content,
			AuthorID: row.AuthorID,
			Author: types.AuthorProfile{
				UserID:   row.AuthorID,
				Username: row.AuthorUsername,
			},
			LikesCount: row.LikesCount,
			CreatedAt:  row.CreatedAt,
			UpdatedAt:  row.UpdatedAt,
		}
		if viewer != nil {
			myLike := liked[row.ID]
			item.MyLike = &myLike
		}
		items = append(items, item)
	}
	return items, nil
}
