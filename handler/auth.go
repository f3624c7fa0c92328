package handler

import (
	"net/http"

	"tradeverse/config"
	"tradeverse/pkg/context"
	"tradeverse/pkg/response"
	"tradeverse/service"
	"tradeverse/types"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	AuthService service.IAuthService
	Config      *config.Config
}

func (h *Auth) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/auth")
	g.POST("/register", context.Wrap(h.Register))
	g.POST("/login", context.Wrap(h.Login))
	g.POST("/refresh", context.Wrap(h.Refresh))
	g.GET("/verify", context.Wrap(h.VerifyEmail))
}

func (h *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	user, err := h.AuthService.Register(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{
		"user_id":  user.ID,
		"username": user.Username,
	})
	return nil
}

func (h *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	resp, err := h.AuthService.Login(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Auth) Refresh(c *gin.Context) error {
	var req types.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	pair, err := h.AuthService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		return err
	}
	response.Success(c, pair)
	return nil
}

// VerifyEmail 邮箱验证回跳，token 在查询参数里
func (h *Auth) VerifyEmail(c *gin.Context) error {
	token := c.Query("token")
	if token == "" {
		return response.NewError(http.StatusBadRequest, "缺少 token")
	}

	if err := h.AuthService.VerifyEmail(c.Request.Context(), token); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
