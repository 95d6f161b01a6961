package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cvpress/internal/errcode"
)

func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

func BadRequest(c *gin.Context, msg string) { Error(c, http.StatusBadRequest, msg) }

// NotFound 额外带上业务错误码，客户端据此区分“资源不存在”与其他 404。
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"error": msg, "code": errcode.ResourceMissing})
}

func Conflict(c *gin.Context, msg string) { Error(c, http.StatusConflict, msg) }
func Internal(c *gin.Context, msg string) { Error(c, http.StatusInternalServerError, msg) }
