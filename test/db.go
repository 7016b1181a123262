package test

import (
	"camp-signup-system/internal/global/database"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// SetupDB 为当前测试打开独立的 SQLite 文件库并替换 database.DB
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open("sqlite:///" + filepath.Join(t.TempDir(), "camp.db"))
	require.NoError(t, err)

	prev := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = prev
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
