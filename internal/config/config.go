package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from files, environment variables and flags.
type Config struct {
	AppName               string        `mapstructure:"app_name"`
	Env                   string        `mapstructure:"app_env"`
	LogLevel              string        `mapstructure:"log_level"`
	BackendURL            string        `mapstructure:"backend_url"`
	SiteOrigin            string        `mapstructure:"site_origin"`
	RequestTimeoutSeconds int64         `mapstructure:"request_timeout_seconds"`
	RequestTimeout        time.Duration `mapstructure:"-"`

	ResumeOutputDir   string `mapstructure:"resume_output_dir"`
	ResumeFileName    string `mapstructure:"resume_file_name"`
	ResumeVerifyMagic bool   `mapstructure:"resume_verify_magic"`
	UserAgent         string `mapstructure:"user_agent"`
	ShareCommand      string `mapstructure:"share_command"`
}

// flagKeys maps command line flag names onto config keys.
var flagKeys = map[string]string{
	"backend-url":   "backend_url",
	"log-level":     "log_level",
	"timeout":       "request_timeout_seconds",
	"out":           "resume_output_dir",
	"user-agent":    "user_agent",
	"share-command": "share_command",
	"verify-magic":  "resume_verify_magic",
}

// Load reads configuration from environment variables and config files. Flags that have
// been set on fs take precedence; fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "portfolio-client")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("backend_url", "")
	v.SetDefault("site_origin", "http://localhost:3000")
	v.SetDefault("request_timeout_seconds", 15)
	v.SetDefault("resume_output_dir", ".")
	v.SetDefault("resume_file_name", "Gunvanth_Madabattula_Resume.pdf")
	v.SetDefault("resume_verify_magic", false)
	v.SetDefault("user_agent", "")
	v.SetDefault("share_command", "")

	v.AutomaticEnv()
	// The site build historically exposed the backend as REACT_APP_BACKEND_URL.
	if err := v.BindEnv("backend_url", "BACKEND_URL", "REACT_APP_BACKEND_URL"); err != nil {
		return nil, fmt.Errorf("bind backend_url env: %w", err)
	}

	if fs != nil {
		for name, key := range flagKeys {
			flag := fs.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.RequestTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid request_timeout_seconds (must be positive seconds)")
	}
	cfg.RequestTimeout = time.Duration(cfg.RequestTimeoutSeconds) * time.Second

	cfg.BackendURL = strings.TrimSpace(cfg.BackendURL)
	cfg.SiteOrigin = strings.TrimSpace(cfg.SiteOrigin)
	if cfg.BackendURL == "" && cfg.SiteOrigin == "" {
		return nil, fmt.Errorf("either backend_url or site_origin must be set")
	}

	cfg.ResumeFileName = strings.TrimSpace(cfg.ResumeFileName)
	if cfg.ResumeFileName == "" {
		return nil, fmt.Errorf("resume_file_name must not be empty")
	}

	return &cfg, nil
}

// BaseURL returns the origin API requests are resolved against: the backend URL when
// configured, otherwise the site origin.
func (c *Config) BaseURL() string {
	if c == nil {
		return ""
	}
	if c.BackendURL != "" {
		return c.BackendURL
	}
	return c.SiteOrigin
}
