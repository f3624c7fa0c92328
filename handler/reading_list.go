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

type ReadingList struct {
	ReadingListService service.IReadingListService
	Config             *config.Config
}

func (h *ReadingList) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(h.Config.Jwt.Secret)
	optional := middleware.OptionalAuth(h.Config.Jwt.Secret)

	g := r.Group("/v1/reading-list")
	g.GET("/list", optional, context.Wrap(h.List))
	g.POST("/create", authorize, context.Wrap(h.Create))
	g.PUT("/:id", authorize, context.Wrap(h.Update))
	g.DELETE("/:id", authorize, context.Wrap(h.Delete))
	g.GET("/:id/posts", optional, context.Wrap(h.ListPosts))
	g.POST("/:id/posts", authorize, context.Wrap(h.AddPost))
	g.DELETE("/:id/posts/:post_id", authorize, context.Wrap(h.RemovePost))
}

func (h *ReadingList) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	var req types.CreateReadingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	listID, err := h.ReadingListService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"list_id": listID})
	return nil
}

func (h *ReadingList) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	listID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req types.UpdateReadingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	if err := h.ReadingListService.Update(c.Request.Context(), userID, listID, &req); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *ReadingList) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	listID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.ReadingListService.Delete(c.Request.Context(), userID, listID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *ReadingList) List(c *gin.Context) error {
	userID, _ := context.GetUserID(c)

	lists, err := h.ReadingListService.List(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"lists": lists})
	return nil
}

func (h *ReadingList) AddPost(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	listID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req types.ListPostOpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	if err := h.ReadingListService.AddPost(c.Request.Context(), userID, listID, req.PostID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *ReadingList) RemovePost(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	listID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	postID, err := paramID(c, "post_id")
	if err != nil {
		return err
	}

	if err := h.ReadingListService.RemovePost(c.Request.Context(), userID, listID, postID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *ReadingList) ListPosts(c *gin.Context) error {
	userID, _ := context.GetUserID(c)
	listID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	items, err := h.ReadingListService.ListPosts(c.Request.Context(), userID, listID)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"posts": items})
	return nil
}
