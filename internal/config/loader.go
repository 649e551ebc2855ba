package config

import (
	"context"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/healthpredict/healthpredict/pkg/errors"
	"github.com/healthpredict/healthpredict/pkg/logger"
)

// LoadConfig loads the configuration from file and environment variables.
// Environment variables use the HEALTHPREDICT_ prefix with dots replaced by
// underscores, e.g. HEALTHPREDICT_DATABASE_DRIVER.
func LoadConfig(log logger.Logger) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/healthpredict/")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.ErrInternal("failed to read config file").WithCause(err)
		}
	}

	v.SetEnvPrefix("HEALTHPREDICT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.ErrInternal("failed to unmarshal config").WithCause(err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.ErrInternal("invalid configuration").WithCause(err)
	}

	// Log level changes take effect without a restart. Structural settings
	// such as the listen address still require one.
	v.OnConfigChange(func(e fsnotify.Event) {
		log.Info(context.Background(), "config file changed", logger.Fields{"file": e.Name})
	})
	v.WatchConfig()

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 60)
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("server.enable_pprof", false)

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "healthpredict.db")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 30)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.min_idle_conns", 2)
	v.SetDefault("redis.session_ttl", 30)

	v.SetDefault("jwt.issuer", "healthpredict")
	v.SetDefault("jwt.access_token_ttl", 86400)

	v.SetDefault("artifacts.dir", "./artifacts")
	v.SetDefault("artifacts.cache_ttl", 720)

	v.SetDefault("narrative.enabled", false)
	v.SetDefault("narrative.base_url", "https://openrouter.ai/api/v1")
	v.SetDefault("narrative.model", "deepseek/deepseek-chat")
	v.SetDefault("narrative.timeout", 30)

	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.topic", "healthpredict.predictions")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.output_path", "stdout")

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.service_name", "healthpredict")
	v.SetDefault("tracing.sample_ratio", 0.1)
}
