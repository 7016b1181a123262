package model

import (
	"time"
)

// Model 时间戳只用于排查，不对外输出
type Model struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
