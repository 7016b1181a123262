package signup

import (
	"camp-signup-system/internal/global/binding"
	"camp-signup-system/internal/global/database"
	"camp-signup-system/internal/global/response"
	"camp-signup-system/internal/global/sentry/tracing"
	"camp-signup-system/internal/model"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type SignupCreateReq struct {
	CamperID   *uint `json:"camper_id" binding:"required"`
	ActivityID *uint `json:"activity_id" binding:"required"`
	Time       *int  `json:"time" binding:"required"`
}

// CreateSignup 创建报名，返回带营员与活动的完整记录
func CreateSignup(c *gin.Context) {
	var req SignupCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("绑定创建报名请求失败", "error", err)
		response.Fail(c, response.ErrValidation.WithTips(binding.Messages(err)...))
		return
	}

	db := database.DB.WithContext(tracing.ContextWithSpan(c))
	signup := model.Signup{
		CamperID:   *req.CamperID,
		ActivityID: *req.ActivityID,
		Time:       *req.Time,
	}
	if err := db.Create(&signup).Error; err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			log.Warn("报名校验失败", "errors", verr.Messages,
				"camper_id", signup.CamperID, "activity_id", signup.ActivityID)
			response.Fail(c, response.ErrValidation.WithTips(verr.Messages...))
			return
		}
		log.Error("创建报名失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if err := db.Preload("Camper").Preload("Activity").First(&signup, signup.ID).Error; err != nil {
		log.Error("查询报名失败", "error", err, "id", signup.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("报名成功", "id", signup.ID, "camper_id", signup.CamperID, "activity_id", signup.ActivityID)
	response.Success(c, http.StatusCreated, signup.Detail())
}
