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

type User struct {
	UserService service.IUserService
	Config      *config.Config
}

func (h *User) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(h.Config.Jwt.Secret)
	g := r.Group("/v1/user")
	g.GET("/profile", authorize, context.Wrap(h.GetMyProfile))
	g.PUT("/profile", authorize, context.Wrap(h.UpdateProfile))
	g.GET("/:id/profile", context.Wrap(h.GetProfile))
}

func (h *User) GetMyProfile(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	profile, err := h.UserService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, profile)
	return nil
}

func (h *User) GetProfile(c *gin.Context) error {
	userID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	profile, err := h.UserService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, profile)
	return nil
}

func (h *User) UpdateProfile(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	if err := h.UserService.UpdateProfile(c.Request.Context(), userID, &req); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
