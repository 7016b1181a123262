package tracing

import (
	"camp-signup-system/config"
	"time"

	"github.com/getsentry/sentry-go"
	"gorm.io/gorm"
)

const (
	gormSpanKey    = "sentry:span"
	gormStartKey   = "sentry:start"
	callbackPrefix = "sentry_tracing"
)

// GormTracingPlugin 为每条 SQL 在当前请求的 transaction 下创建子 span
type GormTracingPlugin struct {
	// 0 表示记录所有查询
	slowThreshold time.Duration
}

func NewGormTracingPlugin() *GormTracingPlugin {
	ms := config.Get().Sentry.Tracing.DBSlowThresholdMs
	return &GormTracingPlugin{slowThreshold: time.Duration(ms) * time.Millisecond}
}

func (p *GormTracingPlugin) Name() string {
	return "SentryTracingPlugin"
}

func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	errs := []error{
		cb.Create().Before("gorm:create").Register(callbackPrefix+":before_create", p.before("db.sql.create")),
		cb.Query().Before("gorm:query").Register(callbackPrefix+":before_query", p.before("db.sql.query")),
		cb.Update().Before("gorm:update").Register(callbackPrefix+":before_update", p.before("db.sql.update")),
		cb.Delete().Before("gorm:delete").Register(callbackPrefix+":before_delete", p.before("db.sql.delete")),
		cb.Row().Before("gorm:row").Register(callbackPrefix+":before_row", p.before("db.sql.row")),
		cb.Raw().Before("gorm:raw").Register(callbackPrefix+":before_raw", p.before("db.sql.raw")),

		cb.Create().After("gorm:create").Register(callbackPrefix+":after_create", p.after),
		cb.Query().After("gorm:query").Register(callbackPrefix+":after_query", p.after),
		cb.Update().After("gorm:update").Register(callbackPrefix+":after_update", p.after),
		cb.Delete().After("gorm:delete").Register(callbackPrefix+":after_delete", p.after),
		cb.Row().After("gorm:row").Register(callbackPrefix+":after_row", p.after),
		cb.Raw().After("gorm:raw").Register(callbackPrefix+":after_raw", p.after),
	}
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *GormTracingPlugin) before(operation string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		if db.Statement == nil || db.Statement.Context == nil {
			return
		}
		db.InstanceSet(gormStartKey, time.Now())

		parent := sentry.SpanFromContext(db.Statement.Context)
		if parent == nil {
			return
		}
		span := parent.StartChild(operation)
		span.Description = tableOf(db)
		span.SetData("db.system", db.Dialector.Name())
		db.InstanceSet(gormSpanKey, span)
		db.Statement.Context = span.Context()
	}
}

func (p *GormTracingPlugin) after(db *gorm.DB) {
	if db.Statement == nil {
		return
	}
	startVal, ok := db.InstanceGet(gormStartKey)
	if !ok {
		return
	}
	start, _ := startVal.(time.Time)
	spanVal, ok := db.InstanceGet(gormSpanKey)
	if !ok {
		return
	}
	span, ok := spanVal.(*sentry.Span)
	if !ok || span == nil {
		return
	}

	// 未达到慢查询阈值的 span 不发送
	if p.slowThreshold > 0 && time.Since(start) < p.slowThreshold {
		span.Sampled = sentry.SampledFalse
	}
	span.SetData("db.rows_affected", db.RowsAffected)
	if db.Error != nil {
		span.Status = sentry.SpanStatusInternalError
		span.SetData("db.error", db.Error.Error())
	} else {
		span.Status = sentry.SpanStatusOK
	}
	span.Finish()
}

// tableOf 只记录表名，不记录完整 SQL
func tableOf(db *gorm.DB) string {
	if db.Statement.Table == "" {
		return "unknown"
	}
	return db.Statement.Table
}
