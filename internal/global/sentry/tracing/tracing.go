// Package tracing 将 gorm 与 resty 的调用挂到 Sentry 性能追踪上
package tracing

import (
	"camp-signup-system/config"
	"context"

	"github.com/gin-gonic/gin"
)

// IsEnabled 检查 Sentry 追踪是否已启用
func IsEnabled() bool {
	return config.Get().Sentry.Dsn != ""
}

// ContextWithSpan 返回携带 sentrygin span 的 context，供 gorm WithContext 使用
//
//	database.DB.WithContext(tracing.ContextWithSpan(c)).Find(&campers)
func ContextWithSpan(c *gin.Context) context.Context {
	if c == nil || c.Request == nil {
		return context.Background()
	}
	return c.Request.Context()
}
