package utils

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Upstream UpstreamConfig
	Fetch    FetchConfig
	View     ViewConfig
	Server   ServerConfig
}

type AppConfig struct {
	Name    string `validate:"required"`
	Port    string `validate:"required,numeric"`
	Debug   bool
	LogPath string
}

type UpstreamConfig struct {
	URL            string        `validate:"required,url"`
	Timeout        time.Duration `validate:"gt=0"`
	RateLimit      float64       `validate:"gte=0"`
	Burst          int           `validate:"gte=1"`
	QueryMode      string        `validate:"oneof=variables inline"`
	IncludeDetails bool
}

type FetchConfig struct {
	Page            int           `validate:"gte=1"`
	PageSize        int           `validate:"gte=1,lte=1000"`
	RefreshInterval time.Duration `validate:"gte=0"`
}

type ViewConfig struct {
	DefaultPageSize   int `validate:"gte=1"`
	ResetPageOnFilter bool
}

type ServerConfig struct {
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	IdleTimeout      time.Duration
	ShutdownTimeout  time.Duration
	CORSOrigin       string
	RefreshRateLimit float64 `validate:"gt=0"`
	RefreshBurst     int     `validate:"gte=1"`
}

// LoadConfig reads envFile when it exists, then overlays the process environment.
func LoadConfig(envFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("APP_NAME", "Movees DB")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("UPSTREAM_URL", "https://mo-vees.herokuapp.com/api")
	v.SetDefault("UPSTREAM_TIMEOUT", "10s")
	v.SetDefault("UPSTREAM_RATE_LIMIT", 2)
	v.SetDefault("UPSTREAM_BURST", 1)
	v.SetDefault("UPSTREAM_QUERY_MODE", "variables")
	v.SetDefault("UPSTREAM_INCLUDE_DETAILS", false)
	v.SetDefault("FETCH_PAGE", 1)
	v.SetDefault("FETCH_PAGE_SIZE", 200)
	v.SetDefault("REFRESH_INTERVAL", "0s")
	v.SetDefault("VIEW_DEFAULT_PAGE_SIZE", 25)
	v.SetDefault("VIEW_RESET_PAGE_ON_FILTER", true)
	v.SetDefault("REFRESH_RATE_LIMIT", 0.2)
	v.SetDefault("REFRESH_BURST", 2)
	v.SetDefault("CORS_ALLOWED_ORIGIN", "*")
	v.SetDefault("SERVER_READ_TIMEOUT", "5s")
	v.SetDefault("SERVER_WRITE_TIMEOUT", "10s")
	v.SetDefault("SERVER_IDLE_TIMEOUT", "120s")
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "10s")

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			v.SetConfigFile(envFile)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("stat config file: %w", err)
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Upstream: UpstreamConfig{
			URL:            v.GetString("UPSTREAM_URL"),
			Timeout:        v.GetDuration("UPSTREAM_TIMEOUT"),
			RateLimit:      v.GetFloat64("UPSTREAM_RATE_LIMIT"),
			Burst:          v.GetInt("UPSTREAM_BURST"),
			QueryMode:      v.GetString("UPSTREAM_QUERY_MODE"),
			IncludeDetails: v.GetBool("UPSTREAM_INCLUDE_DETAILS"),
		},
		Fetch: FetchConfig{
			Page:            v.GetInt("FETCH_PAGE"),
			PageSize:        v.GetInt("FETCH_PAGE_SIZE"),
			RefreshInterval: v.GetDuration("REFRESH_INTERVAL"),
		},
		View: ViewConfig{
			DefaultPageSize:   v.GetInt("VIEW_DEFAULT_PAGE_SIZE"),
			ResetPageOnFilter: v.GetBool("VIEW_RESET_PAGE_ON_FILTER"),
		},
		Server: ServerConfig{
			ReadTimeout:      v.GetDuration("SERVER_READ_TIMEOUT"),
			WriteTimeout:     v.GetDuration("SERVER_WRITE_TIMEOUT"),
			IdleTimeout:      v.GetDuration("SERVER_IDLE_TIMEOUT"),
			ShutdownTimeout:  v.GetDuration("SERVER_SHUTDOWN_TIMEOUT"),
			CORSOrigin:       v.GetString("CORS_ALLOWED_ORIGIN"),
			RefreshRateLimit: v.GetFloat64("REFRESH_RATE_LIMIT"),
			RefreshBurst:     v.GetInt("REFRESH_BURST"),
		},
	}

	if errs := ValidateStruct(config); len(errs) > 0 {
		return nil, fmt.Errorf("invalid config: %s", FormatValidationErrors(errs))
	}

	return config, nil
}
