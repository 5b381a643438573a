package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	MCP      MCPConfig      `mapstructure:"mcp"`
	Defaults DefaultsConfig `mapstructure:"defaults"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type ServerConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	MetricsPort int    `mapstructure:"metrics_port"`
}

type MetricsConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	EnableLatency bool `mapstructure:"enable_latency"`
}

type MCPConfig struct {
	Addr string `mapstructure:"addr"`
}

type DefaultsConfig struct {
	Method         string  `mapstructure:"method"`
	TimeoutSeconds float64 `mapstructure:"timeout_seconds"`
	Output         string  `mapstructure:"output"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// Timeout converts the configured default into a duration.
func (d DefaultsConfig) Timeout() time.Duration {
	return time.Duration(d.TimeoutSeconds * float64(time.Second))
}

var globalConfig Config

// Load reads corscheck.yaml from configPath (then ./config and .) and
// applies environment overrides. A missing file is fine: defaults plus
// environment variables make a complete configuration.
func Load(configPath string) error {
	setDefaultValues()

	viper.SetConfigName("corscheck")
	viper.SetConfigType("yaml")
	if configPath != "" {
		viper.AddConfigPath(configPath)
	}
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("error reading config file corscheck.yaml: %w", err)
		}
	}

	if err := viper.Unmarshal(&globalConfig); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return nil
}

func setDefaultValues() {
	viper.SetDefault("server.host", "")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.metrics_port", 9090)
	viper.SetDefault("metrics.enabled", true)
	viper.SetDefault("metrics.enable_latency", true)
	viper.SetDefault("mcp.addr", "127.0.0.1:4380")
	viper.SetDefault("defaults.method", "GET")
	viper.SetDefault("defaults.timeout_seconds", 10.0)
	viper.SetDefault("defaults.output", "text")
	viper.SetDefault("logging.level", "info")
}

func GetConfig() *Config {
	return &globalConfig
}
