package util

import (
	"course_dash_backend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Errors are written as plain text, successful payloads as bare JSON. The
// dashboard client surfaces error bodies to the author verbatim.

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Text writes a plain-text status such as "Success".
func Text(c *gin.Context, code int, message string) {
	c.String(code, message)
}

func Error(c *gin.Context, code int, message string) {
	c.String(code, message)
}

func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "Unauthorized")
}

func Forbidden(c *gin.Context) {
	Error(c, http.StatusForbidden, "Forbidden")
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context) {
	Error(c, http.StatusNotFound, "Not Found")
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal Error")
}

// LogInternalError logs err under tag (e.g. "[REORDER]") and answers 500.
func LogInternalError(c *gin.Context, tag string, err error) {
	logger.Log.Error(tag,
		zap.Error(err),
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
	)
	InternalServerError(c)
}
