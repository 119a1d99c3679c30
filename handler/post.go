package handler

import (
	"Board/middleware"
	"Board/pkg/context"
	"Board/pkg/response"
	"Board/service"
	"Board/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Post struct {
	PostService     service.IPostService
	LikeService     service.ILikeService
	IdentityService service.IIdentityService
}

func (p *Post) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(p.IdentityService)
	optional := middleware.OptionalAuth(p.IdentityService)

	g := r.Group("/posts")
	g.GET("/health", health)
	g.POST("", authorize, context.Wrap(p.Create))
	g.GET("", optional, context.Wrap(p.List))
	g.GET("/:id", optional, context.Wrap(p.Get))
	g.PATCH("/:id", authorize, context.Wrap(p.Update))
	g.DELETE("/:id", authorize, context.Wrap(p.Delete))
	g.POST("/:id/like", authorize, context.Wrap(p.ToggleLike))
}

// Create 发帖
func (p *Post) Create(c *gin.Context) error {
	account, err := context.GetAccount(c)
	if err != nil {
		return err
	}

	var req types.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	post, err := p.PostService.Create(c.Request.Context(), account, &req)
	if err != nil {
		return err
	}

	response.Created(c, post)
	return nil
}

// List 帖子列表，支持关键字搜索
func (p *Post) List(c *gin.Context) error {
	var req types.ListPostsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "分页参数错误")
	}

	viewer, _ := context.GetViewer(c)
	posts, err := p.PostService.List(c.Request.Context(), viewer, &req)
	if err != nil {
		return err
	}

	response.Success(c, posts)
	return nil
}

func (p *Post) Get(c *gin.Context) error {
	postID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	viewer, _ := context.GetViewer(c)
	post, err := p.PostService.Get(c.Request.Context(), viewer, postID)
	if err != nil {
		return err
	}

	response.Success(c, post)
	return nil
}

func (p *Post) Update(c *gin.Context) error {
	account, err := context.GetAccount(c)
	if err != nil {
		return err
	}
	postID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req types.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	post, err := p.PostService.Update(c.Request.Context(), account, postID, &req)
	if err != nil {
		return err
	}

	response.Success(c, post)
	return nil
}

func (p *Post) Delete(c *gin.Context) error {
	account, err := context.GetAccount(c)
	if err != nil {
		return err
	}
	postID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := p.PostService.Delete(c.Request.Context(), account, postID); err != nil {
		return err
	}

	response.NoContent(c)
	return nil
}

// ToggleLike 点赞或取消点赞
func (p *Post) ToggleLike(c *gin.Context) error {
	account, err := context.GetAccount(c)
	if err != nil {
		return err
	}
	postID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	result, err := p.LikeService.Toggle(c.Request.Context(), account, postID)
	if err != nil {
		return err
	}
	middleware.ObserveLikeToggle(result.Liked)

	response.Success(c, result)
	return nil
}
