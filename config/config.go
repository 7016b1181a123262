package config

type Mode string

const (
	ModeDebug   Mode = "debug"
	ModeRelease Mode = "release"
)

type Config struct {
	Host     string   `envconfig:"HOST" mapstructure:"host"`
	Port     string   `envconfig:"PORT" mapstructure:"port"`
	Prefix   string   `envconfig:"PREFIX" mapstructure:"prefix"`
	Mode     Mode     `envconfig:"MODE" mapstructure:"mode"`
	Database Database `envconfig:"DB" mapstructure:"database"`
	Log      Log      `envconfig:"LOG" mapstructure:"log"`
	Sentry   Sentry   `envconfig:"SENTRY" mapstructure:"sentry"`
	OTel     OTel     `envconfig:"OTEL" mapstructure:"otel"`
}

// Database 数据库连接配置，URI 的 scheme 决定驱动：sqlite:// mysql:// postgres://
type Database struct {
	URI string `envconfig:"URI" mapstructure:"uri"`
}

type Log struct {
	FilePath   string `envconfig:"FILE_PATH" mapstructure:"file_path"`     // 日志文件路径
	Level      string `envconfig:"LEVEL" mapstructure:"level"`             // 日志级别：debug, info, warn, error
	MaxSize    int    `envconfig:"MAX_SIZE" mapstructure:"max_size"`       // 日志文件最大大小（MB）
	MaxBackups int    `envconfig:"MAX_BACKUPS" mapstructure:"max_backups"` // 保留的旧日志文件数
	MaxAge     int    `envconfig:"MAX_AGE" mapstructure:"max_age"`         // 日志文件保留天数
	Compress   bool   `envconfig:"COMPRESS" mapstructure:"compress"`       // 是否压缩旧日志文件
}

type Sentry struct {
	Dsn         string        `envconfig:"DSN" mapstructure:"dsn"`
	Environment string        `envconfig:"ENVIRONMENT" mapstructure:"environment"`
	SampleRate  float64       `envconfig:"SAMPLE_RATE" mapstructure:"sample_rate"` // 性能追踪采样率
	Tracing     SentryTracing `envconfig:"TRACING" mapstructure:"tracing"`
}

type SentryTracing struct {
	DBSlowThresholdMs int  `envconfig:"DB_SLOW_THRESHOLD_MS" mapstructure:"db_slow_threshold_ms"` // 0 表示记录所有查询
	TraceHTTPCalls    bool `envconfig:"HTTP_CALLS" mapstructure:"http_calls"`
}

type OTel struct {
	Enable      bool   `envconfig:"ENABLE" mapstructure:"enable"`
	ServiceName string `envconfig:"SERVICE_NAME" mapstructure:"service_name"`
	AgentHost   string `envconfig:"AGENT_HOST" mapstructure:"agent_host"`
	AgentPort   string `envconfig:"AGENT_PORT" mapstructure:"agent_port"`
}
