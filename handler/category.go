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

type Category struct {
	CategoryService service.ICategoryService
	Config          *config.Config
}

func (h *Category) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(h.Config.Jwt.Secret)
	optional := middleware.OptionalAuth(h.Config.Jwt.Secret)

	g := r.Group("/v1/category")
	g.GET("/list", optional, context.Wrap(h.List))
	g.POST("/create", authorize, middleware.AdminOnly(), context.Wrap(h.Create))
	g.PUT("/:id", authorize, middleware.AdminOnly(), context.Wrap(h.Update))
}

func (h *Category) List(c *gin.Context) error {
	items, err := h.CategoryService.List(c.Request.Context(), context.IsAdmin(c))
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"categories": items})
	return nil
}

func (h *Category) Create(c *gin.Context) error {
	var req types.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	categoryID, err := h.CategoryService.Create(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"category_id": categoryID})
	return nil
}

func (h *Category) Update(c *gin.Context) error {
	categoryID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req types.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	if err := h.CategoryService.Update(c.Request.Context(), categoryID, &req); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
