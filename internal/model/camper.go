package model

import (
	"gorm.io/gorm"
)

const (
	CamperMinAge = 8
	CamperMaxAge = 18
)

type Camper struct {
	Model
	Name    string   `gorm:"type:varchar(100);not null" json:"name"`
	Age     int      `json:"age"`
	Signups []Signup `gorm:"foreignKey:CamperID;constraint:OnDelete:CASCADE" json:"signups"`
}

type CamperBrief struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// CamperDetail 营员详情，报名中不再回指营员
type CamperDetail struct {
	CamperBrief
	Signups []SignupInCamper `json:"signups"`
}

func (c *Camper) Brief() CamperBrief {
	return CamperBrief{ID: c.ID, Name: c.Name, Age: c.Age}
}

// Detail 需要预加载 Signups.Activity
func (c *Camper) Detail() CamperDetail {
	d := CamperDetail{
		CamperBrief: c.Brief(),
		Signups:     make([]SignupInCamper, 0, len(c.Signups)),
	}
	for i := range c.Signups {
		d.Signups = append(d.Signups, c.Signups[i].InCamper())
	}
	return d
}

func (c *Camper) Validate() error {
	verr := &ValidationError{}
	if c.Name == "" {
		verr.add("Camper must have a name")
	}
	if c.Age <= CamperMinAge || c.Age >= CamperMaxAge {
		verr.add("Camper's age must be between 8 and 18 years")
	}
	return verr.orNil()
}

func (c *Camper) BeforeSave(*gorm.DB) error {
	return c.Validate()
}

func (c *Camper) BeforeDelete(tx *gorm.DB) error {
	if c.ID == 0 {
		return nil
	}
	return session(tx).Where("camper_id = ?", c.ID).Delete(&Signup{}).Error
}
