package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
	Archive ArchiveConfig `yaml:"archive" mapstructure:"archive"`
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// OutputConfig names the generated artifacts. The labels end up in the
// dated download file names and the per-zone sheet titles.
type OutputConfig struct {
	Dir             string `yaml:"dir" mapstructure:"dir"`
	NormalizedLabel string `yaml:"normalized_label" mapstructure:"normalized_label"`
	GroupedLabel    string `yaml:"grouped_label" mapstructure:"grouped_label"`
	DuplicatesLabel string `yaml:"duplicates_label" mapstructure:"duplicates_label"`
	GroupLabel      string `yaml:"group_label" mapstructure:"group_label"`
}

// ArchiveConfig configures the best-effort Google Drive copy of
// uploads and generated reports.
type ArchiveConfig struct {
	Enabled  bool   `yaml:"enabled" mapstructure:"enabled"`
	Token    string `yaml:"token" mapstructure:"token"`
	FolderID string `yaml:"folder_id" mapstructure:"folder_id"`
	BaseURL  string `yaml:"base_url" mapstructure:"base_url"`
}

// ServerConfig configures the upload server.
type ServerConfig struct {
	Port         int     `yaml:"port" mapstructure:"port"`
	MaxUploadMB  int64   `yaml:"max_upload_mb" mapstructure:"max_upload_mb"`
	RatePerSec   float64 `yaml:"rate_per_sec" mapstructure:"rate_per_sec"`
	RateBurst    int     `yaml:"rate_burst" mapstructure:"rate_burst"`
	AllowOrigins string  `yaml:"allow_origins" mapstructure:"allow_origins"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("ORDERS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("output.dir", ".")
	v.SetDefault("output.normalized_label", "اوردرات الشحن")
	v.SetDefault("output.grouped_label", "تقرير المناطق")
	v.SetDefault("output.duplicates_label", "الاوردرات المكررة")
	v.SetDefault("output.group_label", "توزيع الاوردرات")
	v.SetDefault("archive.enabled", false)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.max_upload_mb", 25)
	v.SetDefault("server.rate_per_sec", 5)
	v.SetDefault("server.rate_burst", 10)
	v.SetDefault("server.allow_origins", "*")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
