package ping

import (
	"camp-signup-system/internal/global/database"
	"camp-signup-system/internal/global/response"
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (p *ModulePing) InitRouter(r *gin.RouterGroup) {
	r.GET("", Index)
	r.GET("/ping", Ping)
}

// Index 根路径，空响应
func Index(c *gin.Context) {
	c.Status(http.StatusOK)
}

// Ping 健康检查，同时探测数据库连接
func Ping(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	sqlDB, err := database.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		log.Error("数据库不可用", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"message":  "pong",
		"database": "ok",
	})
}
