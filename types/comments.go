package types

import "time"

// 创建评论请求
type CreateCommentRequest struct {
	PostID  uint64 `json:"post_id" binding:"required,min=1"`
	Content string `json:"content" binding:"required,min=1"`
}

// 修改评论请求
type UpdateCommentRequest struct {
	Content *string `json:"content" binding:"omitempty,min=1"`
}

type ListCommentsRequest struct {
	PostID uint64 `form:"post_id" binding:"required,min=1"`
	Skip   int    `form:"skip,default=0"`
	Limit  int    `form:"limit,default=20"`
}

type CommentResponse struct {
	CommentID uint64    `json:"comment_id"`
	PostID    uint64    `json:"post_id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
