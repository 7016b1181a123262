package signup

import (
	"camp-signup-system/internal/global/database"
	"camp-signup-system/internal/global/response"
	"camp-signup-system/internal/global/sentry/tracing"
	"camp-signup-system/internal/model"
	"camp-signup-system/tools"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm/clause"
)

const exportSheet = "Signups"

type signupRow struct {
	ID         uint   `excel:"Signup ID"`
	Time       int    `excel:"Time"`
	Camper     string `excel:"Camper"`
	Age        int    `excel:"Age"`
	Activity   string `excel:"Activity"`
	Difficulty int    `excel:"Difficulty"`
}

// ExportSignups 导出全部报名为 xlsx，按活动、时间排序
func ExportSignups(c *gin.Context) {
	var signups []model.Signup
	err := database.DB.WithContext(tracing.ContextWithSpan(c)).
		Preload("Camper").Preload("Activity").
		Order("activity_id").
		Order(clause.OrderByColumn{Column: clause.Column{Name: "time"}}).
		Order("id").
		Find(&signups).Error
	if err != nil {
		log.Error("查询报名失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	rows := make([]signupRow, 0, len(signups))
	for i := range signups {
		d := signups[i].Detail()
		rows = append(rows, signupRow{
			ID:         d.ID,
			Time:       d.Time,
			Camper:     d.Camper.Name,
			Age:        d.Camper.Age,
			Activity:   d.Activity.Name,
			Difficulty: d.Activity.Difficulty,
		})
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Error("关闭导出文件失败", "error", err)
		}
	}()
	if err := writeSheet(f, rows); err != nil {
		log.Error("导出报名失败", "error", err)
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}

	filename := fmt.Sprintf("signups_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Type", tools.ExcelContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Cache-Control", "must-revalidate")
	if err := f.Write(c.Writer); err != nil {
		log.Error("写出导出文件失败", "error", err)
		return
	}
	log.Info("导出报名成功", "count", len(rows))
}

// writeSheet 写入默认工作表并改名
func writeSheet(f *excelize.File, rows []signupRow) error {
	if err := tools.ExportToExcel(f, "", rows); err != nil {
		return err
	}
	return f.SetSheetName("Sheet1", exportSheet)
}
