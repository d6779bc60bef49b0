package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Env string

const (
	Dev        Env = "development"
	Test       Env = "test"
	Preview    Env = "preview"
	Production Env = "production"
)

type Config struct {
	AppName string
	ENV     Env
	AppPort int

	LogLevel string

	// CORSAllowedOrigins enables CORS on the serve surface when non-empty.
	CORSAllowedOrigins []string

	// Grading defaults; CLI flags override these per run.
	ChecksFile   string
	HTMLFile     string
	OutputFormat string

	FetchTimeout      time.Duration
	FetchUserAgent    string
	FetchMaxBodyBytes int64
}

func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("APP_NAME", "selector-grader")
	v.SetDefault("APP_ENV", string(Dev))
	v.SetDefault("APP_PORT", 8080)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", []string{})

	v.SetDefault("CHECKS_FILE", "checks.json")
	v.SetDefault("HTML_FILE", "index.html")
	v.SetDefault("OUTPUT_FORMAT", "json")

	v.SetDefault("FETCH_TIMEOUT", 30*time.Second)
	v.SetDefault("FETCH_USER_AGENT", "selector-grader/1.0")
	v.SetDefault("FETCH_MAX_BODY_BYTES", int64(10<<20))

	return v
}

func NewConfig(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		AppName: v.GetString("APP_NAME"),
		ENV:     Env(strings.ToLower(strings.TrimSpace(v.GetString("APP_ENV")))),
		AppPort: v.GetInt("APP_PORT"),

		LogLevel: v.GetString("LOG_LEVEL"),

		CORSAllowedOrigins: splitList(v.GetStringSlice("CORS_ALLOWED_ORIGINS")),

		ChecksFile:   v.GetString("CHECKS_FILE"),
		HTMLFile:     v.GetString("HTML_FILE"),
		OutputFormat: v.GetString("OUTPUT_FORMAT"),

		FetchTimeout:      v.GetDuration("FETCH_TIMEOUT"),
		FetchUserAgent:    v.GetString("FETCH_USER_AGENT"),
		FetchMaxBodyBytes: v.GetInt64("FETCH_MAX_BODY_BYTES"),
	}

	switch cfg.ENV {
	case Dev, Test, Preview, Production:
	default:
		return nil, fmt.Errorf("invalid APP_ENV %q", cfg.ENV)
	}
	if cfg.AppPort <= 0 || cfg.AppPort > 65535 {
		return nil, fmt.Errorf("invalid APP_PORT %d", cfg.AppPort)
	}
	if cfg.FetchTimeout <= 0 {
		return nil, fmt.Errorf("invalid FETCH_TIMEOUT %s", cfg.FetchTimeout)
	}
	if cfg.FetchMaxBodyBytes <= 0 {
		return nil, fmt.Errorf("invalid FETCH_MAX_BODY_BYTES %d", cfg.FetchMaxBodyBytes)
	}

	return cfg, nil
}

// splitList accepts both "a,b" and "a b" env values.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
