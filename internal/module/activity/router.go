package activity

import (
	"github.com/gin-gonic/gin"
)

func (p *ModuleActivity) InitRouter(r *gin.RouterGroup) {
	// 活动只开放查询与删除，不提供创建端点
	activityGroup := r.Group("/activities")
	{
		activityGroup.GET("", ListActivities)
		activityGroup.DELETE("/:id", DeleteActivity)
	}
}
