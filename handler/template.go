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

type Template struct {
	TemplateService service.ITemplateService
	Config          *config.Config
}

func (h *Template) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(h.Config.Jwt.Secret)
	g := r.Group("/v1/template")
	g.GET("/list", authorize, context.Wrap(h.List))
	g.POST("/create", authorize, context.Wrap(h.Create))
	g.PUT("/:id", authorize, context.Wrap(h.Update))
	g.DELETE("/:id", authorize, context.Wrap(h.Delete))
	g.GET("/:id/instantiate", authorize, context.Wrap(h.Instantiate))
}

func (h *Template) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	var req types.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	templateID, err := h.TemplateService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"template_id": templateID})
	return nil
}

func (h *Template) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	templateID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req types.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	if err := h.TemplateService.Update(c.Request.Context(), userID, context.IsAdmin(c), templateID, &req); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Template) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	templateID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.TemplateService.Delete(c.Request.Context(), userID, context.IsAdmin(c), templateID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Template) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	items, err := h.TemplateService.List(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"templates": items})
	return nil
}

// Instantiate 模板展开成草稿，前端拿到后直接填进编辑器
func (h *Template) Instantiate(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	templateID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	draft, err := h.TemplateService.Instantiate(c.Request.Context(), userID, templateID)
	if err != nil {
		return err
	}
	response.Success(c, draft)
	return nil
}
