package database

import (
	"camp-signup-system/config"
	"camp-signup-system/internal/global/sentry/tracing"
	"camp-signup-system/internal/model"
	"camp-signup-system/tools"
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var DB *gorm.DB

// autoMigrateModels 需要自动迁移的模型，被引用方在前
var autoMigrateModels = []any{
	&model.Activity{},
	&model.Camper{},
	&model.Signup{},
}

func Init() {
	db, err := Open(config.Get().Database.URI)
	tools.PanicOnErr(err)
	DB = db
}

// Open 按 URI 选择驱动并完成自动迁移
func Open(uri string) (*gorm.DB, error) {
	dialector, err := Dialector(uri)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(dialector, GormConfig())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if tracing.IsEnabled() {
		if err := db.Use(tracing.NewGormTracingPlugin()); err != nil {
			return nil, fmt.Errorf("register tracing plugin: %w", err)
		}
	}
	if err := db.AutoMigrate(autoMigrateModels...); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return db, nil
}

func GormConfig() *gorm.Config {
	c := &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true}, // 还是单数表名好
	}
	switch config.Get().Mode {
	case config.ModeDebug:
		c.Logger = logger.Default.LogMode(logger.Info)
	case config.ModeRelease:
		c.Logger = logger.Discard
	}
	return c
}

// Dialector 支持 sqlite:///path、mysql://dsn、postgres://...
func Dialector(uri string) (gorm.Dialector, error) {
	if uri == "" {
		uri = config.DefaultDatabaseURI
	}
	switch {
	case strings.HasPrefix(uri, "sqlite:///"):
		return sqlite.Open(sqliteDSN(strings.TrimPrefix(uri, "sqlite:///"))), nil
	case strings.HasPrefix(uri, "mysql://"):
		dsn, err := mysqlDSN(strings.TrimPrefix(uri, "mysql://"))
		if err != nil {
			return nil, err
		}
		return mysql.Open(dsn), nil
	case strings.HasPrefix(uri, "postgres://"), strings.HasPrefix(uri, "postgresql://"):
		return postgres.Open(uri), nil
	default:
		return nil, fmt.Errorf("unsupported database uri %q", uri)
	}
}

// sqliteDSN 打开外键约束，写锁等待 5 秒
func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// mysqlDSN 强制 parseTime，未指定时补上 utf8mb4 与本地时区
func mysqlDSN(dsn string) (string, error) {
	cfg, err := mysqldriver.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("parse mysql dsn: %w", err)
	}
	cfg.ParseTime = true
	if !hasDSNParam(dsn, "loc") {
		cfg.Loc = time.Local
	}
	if !hasDSNParam(dsn, "charset") {
		if err := cfg.Apply(mysqldriver.Charset("utf8mb4", "")); err != nil {
			return "", err
		}
	}
	return cfg.FormatDSN(), nil
}

func hasDSNParam(dsn, key string) bool {
	i := strings.LastIndex(dsn, "?")
	if i < 0 {
		return false
	}
	for _, kv := range strings.Split(dsn[i+1:], "&") {
		if k, _, _ := strings.Cut(kv, "="); k == key {
			return true
		}
	}
	return false
}

func Close() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
