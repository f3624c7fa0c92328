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

type Follow struct {
	FollowService service.IFollowService
	Config        *config.Config
}

func (h *Follow) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(h.Config.Jwt.Secret)
	g := r.Group("/v1/follow")
	g.POST("/:id", authorize, context.Wrap(h.Toggle))
	g.GET("/following", authorize, context.Wrap(h.Following))
	g.GET("/:id/stats", context.Wrap(h.Stats))
}

func (h *Follow) Toggle(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	targetID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	resp, err := h.FollowService.Toggle(c.Request.Context(), userID, targetID)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Follow) Following(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	var req types.GetFollowingListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	resp, err := h.FollowService.GetFollowingList(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Follow) Stats(c *gin.Context) error {
	userID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	stats, err := h.FollowService.GetFollowStats(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, stats)
	return nil
}
