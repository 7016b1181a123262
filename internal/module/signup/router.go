package signup

import (
	"github.com/gin-gonic/gin"
)

func (p *ModuleSignup) InitRouter(r *gin.RouterGroup) {
	signupGroup := r.Group("/signups")
	{
		signupGroup.POST("", CreateSignup)
		signupGroup.GET("/export", ExportSignups)
	}
}
