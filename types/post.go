package types

import "time"

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

type CreatePostRequest struct {
	Title   string `json:"title" binding:"required,min=1,max=200"`
	Content string `json:"content" binding:"required,min=1"`
}

// UpdatePostRequest 部分修改，只更新传入的字段
type UpdatePostRequest struct {
	Title   *string `json:"title" binding:"omitempty,min=1,max=200"`
	Content *string `json:"content" binding:"omitempty,min=1"`
}

type ListPostsRequest struct {
	Q     string `form:"q"`
	Skip  int    `form:"skip,default=0"`
	Limit int    `form:"limit,default=20"`
}

// PostResponse 帖子 + 作者 + 点赞数
// MyLike 未登录时为 null
type PostResponse struct {
	PostID     uint64        `json:"post_id"`
	Title      string        `json:"title"`
	Content    string        `json:"content"`
	AuthorID   string        `json:"author_id"`
	Author     AuthorProfile `json:"author"`
	LikesCount int64         `json:"likes_count"`
	MyLike     *bool         `json:"my_like"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

type LikeToggleResponse struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likes_count"`
}

// Page 分页窗口
type Page struct {
	Skip  int
	Limit int
}

// Normalize skip 小于 0 取 0，limit 限制在 [1, 100]
func (p Page) Normalize() Page {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit < 1 {
		p.Limit = 1
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}
