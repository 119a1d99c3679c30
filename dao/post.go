package dao

import (
	"Board/models"
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
)

// PostRow 帖子聚合结果：作者 + 点赞数
type PostRow struct {
	ID             uint64    `gorm:"column:id"`
	Title          string    `gorm:"column:title"`
	Content        string    `gorm:"column:content"`
	AuthorID       string    `gorm:"column:author_id"`
	AuthorUsername string    `gorm:"column:author_username"`
	LikesCount     int64     `gorm:"column:likes_count"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

// PostQuery 列表查询条件
type PostQuery struct {
	Search        string
	CaseSensitive bool
	Offset        int
	Limit         int
}

type Posts struct {
	Repo[models.Post]
}

func NewPosts(db *gorm.DB) *Posts {
	return &Posts{Repo: NewRepo[models.Post](db)}
}

// aggregate 帖子 JOIN 作者 LEFT JOIN 点赞数
// 没有点赞的帖子点赞数为 0，不能被过滤掉
func (d *Posts) aggregate(ctx context.Context) *gorm.DB {
	likeCounts := d.Db.Model(&models.Like{}).
		Select("post_id, COUNT(*) AS likes_count").
		Group("post_id")

	return d.Db.WithContext(ctx).
		Table("posts").
		Select("posts.id, posts.title, posts.content, posts.author_id, posts.created_at, posts.updated_at, " +
			"accounts.username AS author_username, COALESCE(lc.likes_count, 0) AS likes_count").
		Joins("JOIN accounts ON accounts.id = posts.author_id").
		Joins("LEFT JOIN (?) AS lc ON lc.post_id = posts.id", likeCounts)
}

// List 按创建时间倒序分页查询
func (d *Posts) List(ctx context.Context, q PostQuery) ([]*PostRow, error) {
	query := d.aggregate(ctx)

	if term := strings.TrimSpace(q.Search); term != "" {
		query = d.search(query, term, q.CaseSensitive)
	}

	rows := make([]*PostRow, 0)
	err := query.
		Order("posts.created_at DESC").
		Order("posts.id DESC").
		Offset(q.Offset).
		Limit(q.Limit).
		Scan(&rows).Error
	return rows, err
}

// GetRow 单个帖子聚合查询，不存在时返回 gorm.ErrRecordNotFound
func (d *Posts) GetRow(ctx context.Context, postID uint64) (*PostRow, error) {
	rows := make([]*PostRow, 0, 1)
	err := d.aggregate(ctx).
		Where("posts.id = ?", postID).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return rows[0], nil
}

// search 标题或正文包含关键字
func (d *Posts) search(query *gorm.DB, term string, caseSensitive bool) *gorm.DB {
	dialect := d.Db.Dialector.Name()
	if !caseSensitive {
		folded := strings.ToLower(term)
		if dialect == "sqlite" {
			// sqlite 的 LOWER 只转换 ASCII 字母，关键字按同样规则转换
			folded = asciiLower(term)
		}
		pattern := "%" + escapeLike(folded) + "%"
		return query.Where("(LOWER(posts.title) LIKE ? ESCAPE '!' OR LOWER(posts.content) LIKE ? ESCAPE '!')", pattern, pattern)
	}

	switch dialect {
	case "sqlite":
		return query.Where("(INSTR(posts.title, ?) > 0 OR INSTR(posts.content, ?) > 0)", term, term)
	case "mysql":
		pattern := "%" + escapeLike(term) + "%"
		return query.Where("(posts.title COLLATE utf8mb4_bin LIKE ? ESCAPE '!' OR posts.content COLLATE utf8mb4_bin LIKE ? ESCAPE '!')", pattern, pattern)
	default:
		pattern := "%" + escapeLike(term) + "%"
		return query.Where("(posts.title LIKE ? ESCAPE '!' OR posts.content LIKE ? ESCAPE '!')", pattern, pattern)
	}
}

func asciiLower(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}

func escapeLike(s string) string {
	return strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(s)
}

// UpdateFields 更新帖子字段，updated_at 自动刷新
func (d *Posts) UpdateFields(ctx context.Context, postID uint64, data map[string]any) error {
	if len(data) == 0 {
		return nil
	}
	_, err := d.Repo.UpdateById(ctx, postID, data)
	return err
}

// DeleteCascade 删除帖子及其评论、点赞
func (d *Posts) DeleteCascade(ctx context.Context, postID uint64) error {
	return d.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", postID).Delete(&models.Post{}).Error
	})
}
