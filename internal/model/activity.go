package model

import (
	"gorm.io/gorm"
)

type Activity struct {
	Model
	Name       string   `gorm:"type:varchar(100)" json:"name"`
	Difficulty int      `json:"difficulty"`
	Signups    []Signup `gorm:"foreignKey:ActivityID;constraint:OnDelete:CASCADE" json:"-"`
}

// ActivityBrief 活动列表与嵌套展示的字段
type ActivityBrief struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Difficulty int    `json:"difficulty"`
}

func (a *Activity) Brief() ActivityBrief {
	return ActivityBrief{ID: a.ID, Name: a.Name, Difficulty: a.Difficulty}
}

// BeforeDelete 删除活动前删除其报名
func (a *Activity) BeforeDelete(tx *gorm.DB) error {
	if a.ID == 0 {
		return nil
	}
	return session(tx).Where("activity_id = ?", a.ID).Delete(&Signup{}).Error
}

// session 在 hook 中发起新查询，复用当前事务
func session(tx *gorm.DB) *gorm.DB {
	return tx.Session(&gorm.Session{NewDB: true})
}
