package handler

import (
	"strconv"

	"tradeverse/pkg/response"

	"github.com/gin-gonic/gin"
)

// paramID 解析路径里的数字ID
func paramID(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, response.NewError(400, "非法的ID")
	}
	return id, nil
}
