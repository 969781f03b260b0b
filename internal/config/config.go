// Package config provides configuration management for the result reporter.
package config

import (
	"fmt"
	"path/filepath"
)

// Config represents the complete application configuration
type Config struct {
	App         AppConfig         `mapstructure:"app" validate:"required"`
	Charts      ChartsConfig      `mapstructure:"charts" validate:"required"`
	Guide       GuideConfig       `mapstructure:"guide" validate:"required"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Persistence PersistenceConfig `mapstructure:"persistence"`
	Metrics     MetricsConfig     `mapstructure:"metrics"`
	Secrets     SecretsConfig     `mapstructure:"secrets"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// ChartsConfig locates the chart files of one track.
type ChartsConfig struct {
	RootDir   string `mapstructure:"root_dir" validate:"required"`
	TrackCode string `mapstructure:"track_code" validate:"required,trackcode"`
}

// GuideConfig controls spreadsheet guide output.
type GuideConfig struct {
	OutputDir string  `mapstructure:"output_dir" validate:"required"`
	FontName  string  `mapstructure:"font_name"`
	FontSize  float64 `mapstructure:"font_size" validate:"gte=0,lte=72"`
}

// DatabaseConfig represents database connection configuration
type DatabaseConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Name           string `mapstructure:"name"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	SSLMode        string `mapstructure:"ssl_mode" validate:"omitempty,oneof=disable require verify-full"`
	MaxConnections int    `mapstructure:"max_connections" validate:"gte=0"`
}

// PersistenceConfig names the tables daily records are stored in.
type PersistenceConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	ShakeUpTable  string `mapstructure:"shakeup_table" validate:"omitempty,tablename"`
	BrohamerTable string `mapstructure:"brohamer_table" validate:"omitempty,tablename"`
}

// MetricsConfig represents metrics configuration. The registry is flushed to a
// node-exporter textfile when the run ends.
type MetricsConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	TextfilePath string `mapstructure:"textfile_path"`
}

// SecretsConfig enables the AWS Secrets Manager overlay.
type SecretsConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Region     string `mapstructure:"region"`
	SecretName string `mapstructure:"secret_name"`
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// GuidePath returns where the guide for a model is written.
func (c *Config) GuidePath(model string) string {
	return filepath.Join(c.Guide.OutputDir, fmt.Sprintf("%s_%s_guide.xlsx", c.Charts.TrackCode, model))
}

// TableFor returns the table daily records of a model are stored in.
func (c *Config) TableFor(model string) string {
	if model == "brohamer" {
		return c.Persistence.BrohamerTable
	}
	return c.Persistence.ShakeUpTable
}
