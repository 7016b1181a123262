package camper

import (
	"camp-signup-system/internal/global/binding"
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

var errCamperNotFound = response.ErrNotFound.WithMessage("Camper not found")

// CamperCreateReq 创建营员，字段缺失与字段非法分开报告
type CamperCreateReq struct {
	Name *string `json:"name" binding:"required"`
	Age  *int    `json:"age" binding:"required"`
}

// CamperUpdateReq 只覆盖请求中出现的字段
type CamperUpdateReq struct {
	Name *string `json:"name"`
	Age  *int    `json:"age"`
}

// ListCampers 返回所有营员的 {id,name,age}
func ListCampers(c *gin.Context) {
	var campers []model.Camper
	if err := database.DB.WithContext(tracing.ContextWithSpan(c)).Order("id").Find(&campers).Error; err != nil {
		log.Error("查询营员列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	result := make([]model.CamperBrief, 0, len(campers))
	for i := range campers {
		result = append(result, campers[i].Brief())
	}
	response.Success(c, http.StatusOK, result)
}

// GetCamper 返回营员详情及其报名的活动
func GetCamper(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.Fail(c, errCamperNotFound)
		return
	}

	var camper model.Camper
	err := database.DB.WithContext(tracing.ContextWithSpan(c)).
		Preload("Signups", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Signups.Activity").
		First(&camper, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("营员不存在", "id", id)
			response.Fail(c, errCamperNotFound)
			return
		}
		log.Error("查询营员失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, http.StatusOK, camper.Detail())
}

// CreateCamper 创建营员
func CreateCamper(c *gin.Context) {
	var req CamperCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("绑定创建营员请求失败", "error", err)
		response.Fail(c, response.ErrValidation.WithTips(binding.Messages(err)...))
		return
	}

	camper := model.Camper{Name: *req.Name, Age: *req.Age}
	if err := database.DB.WithContext(tracing.ContextWithSpan(c)).Create(&camper).Error; err != nil {
		failOnSave(c, err)
		return
	}

	log.Info("营员创建成功", "id", camper.ID, "name", camper.Name)
	response.Success(c, http.StatusCreated, camper.Brief())
}

// UpdateCamper 更新营员并重新校验
func UpdateCamper(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.Fail(c, errCamperNotFound)
		return
	}

	db := database.DB.WithContext(tracing.ContextWithSpan(c))
	var camper model.Camper
	if err := db.First(&camper, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("营员不存在", "id", id)
			response.Fail(c, errCamperNotFound)
			return
		}
		log.Error("查询营员失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	var req CamperUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("绑定更新营员请求失败", "error", err, "id", id)
		response.Fail(c, response.ErrValidation.WithTips(binding.Messages(err)...))
		return
	}
	if req.Name != nil {
		camper.Name = *req.Name
	}
	if req.Age != nil {
		camper.Age = *req.Age
	}

	if err := db.Save(&camper).Error; err != nil {
		failOnSave(c, err)
		return
	}

	log.Info("营员更新成功", "id", camper.ID, "name", camper.Name)
	response.Success(c, http.StatusAccepted, camper.Brief())
}

// failOnSave 校验失败返回 400，其余视为数据库错误
func failOnSave(c *gin.Context, err error) {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		log.Warn("营员校验失败", "errors", verr.Messages)
		response.Fail(c, response.ErrValidation.WithTips(verr.Messages...))
		return
	}
	log.Error("保存营员失败", "error", err)
	response.Fail(c, response.ErrDatabase.WithOrigin(err))
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
