package handler

import (
	"errors"
	"net/http"

	"github.com/blues/fms/internal/logic"
	"github.com/gin-gonic/gin"
)

// HandleError 将业务错误映射为HTTP状态码
func HandleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, logic.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, logic.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, logic.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
