package handler

import (
	"net/http"

	"tradeverse/config"
	"tradeverse/middleware"
	"tradeverse/pkg/context"
	"tradeverse/pkg/response"
	"tradeverse/service"
	"tradeverse/types"

	"github.com/gin-gonic/gin"
)

type Comment struct {
	CommentService service.ICommentService
	Config         *config.Config
}

func (h *Comment) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(h.Config.Jwt.Secret)
	g := r.Group("/v1/comment")
	g.POST("/create", authorize, context.Wrap(h.Create))
	g.GET("/list", context.Wrap(h.List))
	g.DELETE("/:id", authorize, context.Wrap(h.Delete))
}

func (h *Comment) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	commentID, err := h.CommentService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"comment_id": commentID})
	return nil
}

func (h *Comment) List(c *gin.Context) error {
	var req types.GetCommentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	resp, err := h.CommentService.List(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Comment) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	commentID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.CommentService.Delete(c.Request.Context(), userID, context.IsAdmin(c), commentID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
