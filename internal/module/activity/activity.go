package activity

import (
	"camp-signup-system/internal/global/database"
	"camp-signup-system/internal/global/response"
	"camp-signup-system/internal/global/sentry/tracing"
	"camp-signup-system/internal/model"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var errActivityNotFound = response.ErrNotFound.WithMessage("Activity not found")

// ListActivities 返回所有活动的 {id,name,difficulty}
func ListActivities(c *gin.Context) {
	var activities []model.Activity
	if err := database.DB.WithContext(tracing.ContextWithSpan(c)).Order("id").Find(&activities).Error; err != nil {
		log.Error("获取活动列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	result := make([]model.ActivityBrief, 0, len(activities))
	for i := range activities {
		result = append(result, activities[i].Brief())
	}
	response.Success(c, http.StatusOK, result)
}

// DeleteActivity 删除活动，报名由 BeforeDelete 在同一事务内删除
func DeleteActivity(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.Fail(c, errActivityNotFound)
		return
	}

	db := database.DB.WithContext(tracing.ContextWithSpan(c))
	var activity model.Activity
	if err := db.First(&activity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("活动不存在", "id", id)
			response.Fail(c, errActivityNotFound)
			return
		}
		log.Error("查询活动失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if err := db.Delete(&activity).Error; err != nil {
		log.Error("删除活动失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("活动删除成功", "id", activity.ID, "name", activity.Name)
	response.NoContent(c)
}
