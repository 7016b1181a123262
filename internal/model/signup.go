package model

import (
	"gorm.io/gorm"
)

const (
	SignupEarliestHour = 0
	SignupLatestHour   = 23
)

type Signup struct {
	Model
	Time       int       `json:"time"`
	CamperID   uint      `gorm:"not null;index" json:"camper_id"`
	ActivityID uint      `gorm:"not null;index" json:"activity_id"`
	Camper     *Camper   `gorm:"foreignKey:CamperID" json:"camper,omitempty"`
	Activity   *Activity `gorm:"foreignKey:ActivityID" json:"activity,omitempty"`
}

// SignupInCamper 嵌在营员详情中的报名，只展开活动
type SignupInCamper struct {
	ID         uint          `json:"id"`
	Time       int           `json:"time"`
	CamperID   uint          `json:"camper_id"`
	ActivityID uint          `json:"activity_id"`
	Activity   ActivityBrief `json:"activity"`
}

// SignupDetail 报名详情，营员与活动都不再回指报名
type SignupDetail struct {
	ID         uint          `json:"id"`
	Time       int           `json:"time"`
	CamperID   uint          `json:"camper_id"`
	ActivityID uint          `json:"activity_id"`
	Camper     CamperBrief   `json:"camper"`
	Activity   ActivityBrief `json:"activity"`
}

func (s *Signup) InCamper() SignupInCamper {
	out := SignupInCamper{ID: s.ID, Time: s.Time, CamperID: s.CamperID, ActivityID: s.ActivityID}
	if s.Activity != nil {
		out.Activity = s.Activity.Brief()
	}
	return out
}

// Detail 需要预加载 Camper 与 Activity
func (s *Signup) Detail() SignupDetail {
	out := SignupDetail{ID: s.ID, Time: s.Time, CamperID: s.CamperID, ActivityID: s.ActivityID}
	if s.Camper != nil {
		out.Camper = s.Camper.Brief()
	}
	if s.Activity != nil {
		out.Activity = s.Activity.Brief()
	}
	return out
}

// Validate 检查字段范围；引用是否存在由 BeforeSave 在事务内检查
func (s *Signup) Validate() error {
	verr := &ValidationError{}
	s.validateTime(verr)
	return verr.orNil()
}

func (s *Signup) validateTime(verr *ValidationError) {
	if s.Time <= SignupEarliestHour || s.Time > SignupLatestHour {
		verr.add("Signup time must be a valid time of day")
	}
}

func (s *Signup) BeforeSave(tx *gorm.DB) error {
	verr := &ValidationError{}
	s.validateTime(verr)

	var n int64
	if err := session(tx).Model(&Camper{}).Where("id = ?", s.CamperID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		verr.add("Camper must exist")
	}
	if err := session(tx).Model(&Activity{}).Where("id = ?", s.ActivityID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		verr.add("Activity must exist")
	}
	return verr.orNil()
}
