package handler

import (
	"net/http"

	"tradeverse/config"
	"tradeverse/middleware"
	"tradeverse/pkg/context"
	"tradeverse/pkg/response"
	"tradeverse/service"

	"github.com/gin-gonic/gin"
)

type Feed struct {
	ActivityService service.IActivityService
	Config          *config.Config
}

func (h *Feed) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(h.Config.Jwt.Secret)
	g := r.Group("/v1/feed")
	g.GET("", authorize, context.Wrap(h.GetFeed))
}

// GetFeed 动态流：自己和关注的人最近的动作
func (h *Feed) GetFeed(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	resp, err := h.ActivityService.GetFeed(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
