package handler

import (
	"Board/pkg/response"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// paramID 解析路径中的自增ID
func paramID(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, response.NewError(http.StatusBadRequest, name+"参数错误")
	}
	return id, nil
}

func health(c *gin.Context) {
	response.Success(c, gin.H{"status": "ok"})
}
