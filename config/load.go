package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

const DefaultDatabaseURI = "sqlite:///app.db"

var (
	cfg  *Config
	once sync.Once
)

// Init 先读取可选的 config.yaml，再用环境变量覆盖
func Init() {
	once.Do(func() {
		c, err := Load()
		if err != nil {
			panic(err)
		}
		cfg = c
	})
}

// Get 获取全局配置，未初始化时自动初始化
func Get() *Config {
	Init()
	return cfg
}

func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	// 没有 default 标签的字段在环境变量缺失时保持 yaml 中的值
	if err := envconfig.Process("", c); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}

	switch c.Mode {
	case ModeDebug, ModeRelease:
	default:
		return nil, fmt.Errorf("unknown mode %q", c.Mode)
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("host", "")
	v.SetDefault("port", "5555")
	v.SetDefault("prefix", "")
	v.SetDefault("mode", string(ModeDebug))
	v.SetDefault("database.uri", DefaultDatabaseURI)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size", 100)
	v.SetDefault("log.max_backups", 7)
	v.SetDefault("log.max_age", 30)
	v.SetDefault("sentry.sample_rate", 1.0)
	v.SetDefault("otel.service_name", "camp-signup-system")
	v.SetDefault("otel.agent_host", "localhost")
	v.SetDefault("otel.agent_port", "4318")
}
