package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"admin-console/internal/console"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig

	// Console
	Backend  BackendConfig
	Session  SessionConfig
	Notice   NoticeConfig
	Entities map[string]console.Endpoints
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

// BackendConfig points at the admin REST backend every page talks to.
type BackendConfig struct {
	URL         string
	AccessToken string

	// Client-credentials flow; takes precedence over AccessToken when set.
	TokenURL     string
	ClientID     string
	ClientSecret string
	Scopes       []string

	Timeout         time.Duration
	RateLimitPerSec float64
	RateBurst       int
}

type SessionConfig struct {
	Max int
	TTL time.Duration
}

type NoticeConfig struct {
	TTL time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/app/
// unless a file was set with viper.SetConfigFile beforehand.
func Load() (*Config, error) {
	if viper.ConfigFileUsed() == "" {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./config")
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/app/")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.CORS.AllowedOrigins = splitList(viper.GetStringSlice("cors.allowed_origins"))

	// Backend
	cfg.Backend.URL = viper.GetString("backend.url")
	cfg.Backend.AccessToken = viper.GetString("backend.access_token")
	cfg.Backend.TokenURL = viper.GetString("backend.token_url")
	cfg.Backend.ClientID = viper.GetString("backend.client_id")
	cfg.Backend.ClientSecret = viper.GetString("backend.client_secret")
	cfg.Backend.Scopes = splitList(viper.GetStringSlice("backend.scopes"))
	cfg.Backend.Timeout = viper.GetDuration("backend.timeout")
	cfg.Backend.RateLimitPerSec = viper.GetFloat64("backend.rate_limit_per_sec")
	cfg.Backend.RateBurst = viper.GetInt("backend.rate_burst")
	if cfg.Backend.URL == "" {
		return nil, fmt.Errorf("backend.url is required")
	}

	// Sessions & notices
	cfg.Session.Max = viper.GetInt("session.max")
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Notice.TTL = viper.GetDuration("notice.ttl")

	// Per-entity endpoint overrides
	if viper.IsSet("entities") {
		if err := viper.UnmarshalKey("entities", &cfg.Entities); err != nil {
			return nil, fmt.Errorf("error reading entities: %w", err)
		}
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("backend.timeout", "10s")
	viper.SetDefault("backend.rate_limit_per_sec", 20)
	viper.SetDefault("backend.rate_burst", 5)

	viper.SetDefault("session.max", 256)
	viper.SetDefault("session.ttl", "30m")
	viper.SetDefault("notice.ttl", "3s")
}

// splitList accepts both YAML lists and comma separated env values.
func splitList(raw []string) []string {
	var out []string
	for _, item := range raw {
		for _, v := range strings.Split(item, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}
