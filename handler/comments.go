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

type CommentsHandler struct {
	CommentService  service.ICommentService
	IdentityService service.IIdentityService
}

func (ch *CommentsHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(ch.IdentityService)
	comments := r.Group("/comments")
	comments.GET("/health", health)
	comments.POST("", authorize, context.Wrap(ch.CreateComment)) //创建评论
	comments.GET("", context.Wrap(ch.ListComments))
	comments.GET("/:id", context.Wrap(ch.GetComment))
	comments.PATCH("/:id", authorize, context.Wrap(ch.UpdateComment))
	comments.DELETE("/:id", authorize, context.Wrap(ch.DeleteComment))
}

// CreateComment 创建评论
func (ch *CommentsHandler) CreateComment(c *gin.Context) error {
	account, err := context.GetAccount(c)
	if err != nil {
		return err
	}

	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	comment, err := ch.CommentService.Create(c.Request.Context(), account, &req)
	if err != nil {
		return err
	}

	response.Created(c, comment)
	return nil
}

// ListComments 获取帖子下的评论
func (ch *CommentsHandler) ListComments(c *gin.Context) error {
	var req types.ListCommentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "post_id参数错误")
	}

	comments, err := ch.CommentService.List(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	response.Success(c, comments)
	return nil
}

func (ch *CommentsHandler) GetComment(c *gin.Context) error {
	commentID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	comment, err := ch.CommentService.Get(c.Request.Context(), commentID)
	if err != nil {
		return err
	}

	response.Success(c, comment)
	return nil
}

func (ch *CommentsHandler) UpdateComment(c *gin.Context) error {
	account, err := context.GetAccount(c)
	if err != nil {
		return err
	}
	commentID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req types.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	comment, err := ch.CommentService.Update(c.Request.Context(), account, commentID, &req)
	if err != nil {
		return err
	}

	response.Success(c, comment)
	return nil
}

func (ch *CommentsHandler) DeleteComment(c *gin.Context) error {
	account, err := context.GetAccount(c)
	if err != nil {
		return err
	}
	commentID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := ch.CommentService.Delete(c.Request.Context(), account, commentID); err != nil {
		return err
	}

	response.NoContent(c)
	return nil
}
