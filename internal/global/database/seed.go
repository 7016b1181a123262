package database

import (
	"camp-signup-system/internal/model"

	"gorm.io/gorm"
)

var seedActivities = []model.Activity{
	{Name: "Archery", Difficulty: 2},
	{Name: "Canoeing", Difficulty: 3},
	{Name: "Rock Climbing", Difficulty: 5},
	{Name: "Arts and Crafts", Difficulty: 1},
	{Name: "Orienteering", Difficulty: 4},
}

var seedCampers = []model.Camper{
	{Name: "Caitlin", Age: 10},
	{Name: "Nicholas", Age: 12},
	{Name: "Ava", Age: 14},
	{Name: "Mateo", Age: 9},
	{Name: "Priya", Age: 16},
}

// Seed 清空三张表并写入示例数据，返回写入的报名数
func Seed(db *gorm.DB) (int, error) {
	var created int
	err := db.Transaction(func(tx *gorm.DB) error {
		// 先删报名，再删被引用的营员和活动
		for _, m := range []any{&model.Signup{}, &model.Camper{}, &model.Activity{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
				return err
			}
		}

		activities := append([]model.Activity(nil), seedActivities...)
		if err := tx.Create(&activities).Error; err != nil {
			return err
		}
		campers := append([]model.Camper(nil), seedCampers...)
		if err := tx.Create(&campers).Error; err != nil {
			return err
		}

		// 每位营员按顺序报名两个活动，时间错开
		for i := range campers {
			for j := 0; j < 2; j++ {
				s := model.Signup{
					CamperID:   campers[i].ID,
					ActivityID: activities[(i+j)%len(activities)].ID,
					Time:       9 + 2*j + i%3,
				}
				if err := tx.Create(&s).Error; err != nil {
					return err
				}
				created++
			}
		}
		return nil
	})
	return created, err
}
