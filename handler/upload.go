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

type Upload struct {
	UploadService service.IUploadService
	Config        *config.Config
}

func (h *Upload) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(h.Config.Jwt.Secret)
	g := r.Group("/v1/upload")
	g.POST("", authorize, context.Wrap(h.Upload))
}

func (h *Upload) Upload(c *gin.Context) error {
	if _, err := context.GetUserID(c); err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	header, err := c.FormFile("file")
	if err != nil {
		return response.NewError(http.StatusBadRequest, "缺少上传文件")
	}

	resp, err := h.UploadService.Upload(c.Request.Context(), header)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
