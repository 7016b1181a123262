package response

import (
	"camp-signup-system/config"
	"camp-signup-system/internal/global/logger"
	"camp-signup-system/internal/global/sentry"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	pkgerrors "github.com/pkg/errors"
)

// Success 以给定状态码返回 JSON，不包装信封
func Success(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// NoContent 返回空响应体
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Fail 写出错误响应：400 返回 {"errors": [...]}，其余返回 {"error": "..."}
func Fail(c *gin.Context, err *Error) {
	c.Set(ErrorContextKey, err)

	body := gin.H{}
	if err.Code == http.StatusBadRequest {
		details := err.Details
		if len(details) == 0 {
			details = []string{err.Message}
		}
		body["errors"] = details
	} else {
		body["error"] = err.Message
	}
	if err.Origin != "" && config.Get().Mode == config.ModeDebug {
		body["origin"] = err.Origin
	}

	if err.Code >= http.StatusInternalServerError {
		sentry.CaptureException(c, err)
	}
	c.AbortWithStatusJSON(int(err.Code), body)
}

// Recovery 捕获 panic 并转换为 500，需在 defer 中调用
func Recovery(c *gin.Context) {
	r := recover()
	if r == nil {
		return
	}
	cause, ok := r.(error)
	if !ok {
		cause = fmt.Errorf("%v", r)
	}
	logger.WithContext(logger.New("Recovery"), c).Error("panic recovered",
		"error", cause,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)
	Fail(c, ErrServerInternal.WithOrigin(pkgerrors.WithStack(cause)))
}
