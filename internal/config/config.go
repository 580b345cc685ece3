package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	LocalDB   LocalDBConfig
	Remote    RemoteConfig
	Sync      SyncConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type LocalDBConfig struct {
	Path        string
	BusyTimeout time.Duration
}

type RemoteConfig struct {
	BaseURL      string
	Timeout      time.Duration
	ProbeTimeout time.Duration
}

type SyncConfig struct {
	OnStart       bool
	ProbeInterval time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "fieldsync-agent")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8090")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("LOCAL_DB_PATH", "./data/fieldsync.db")
	viper.SetDefault("LOCAL_DB_BUSY_TIMEOUT_MS", 5000)
	viper.SetDefault("REMOTE_BASE_URL", "http://localhost:5109/api")
	viper.SetDefault("REMOTE_TIMEOUT_SECONDS", 30)
	viper.SetDefault("REMOTE_PROBE_TIMEOUT_SECONDS", 2)
	viper.SetDefault("SYNC_ON_START", true)
	viper.SetDefault("SYNC_PROBE_INTERVAL_SECONDS", 30)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_RPS", 20)
	viper.SetDefault("RATE_LIMIT_BURST", 40)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		LocalDB: LocalDBConfig{
			Path:        viper.GetString("LOCAL_DB_PATH"),
			BusyTimeout: time.Duration(viper.GetInt("LOCAL_DB_BUSY_TIMEOUT_MS")) * time.Millisecond,
		},
		Remote: RemoteConfig{
			BaseURL:      viper.GetString("REMOTE_BASE_URL"),
			Timeout:      time.Duration(viper.GetInt("REMOTE_TIMEOUT_SECONDS")) * time.Second,
			ProbeTimeout: time.Duration(viper.GetInt("REMOTE_PROBE_TIMEOUT_SECONDS")) * time.Second,
		},
		Sync: SyncConfig{
			OnStart:       viper.GetBool("SYNC_ON_START"),
			ProbeInterval: time.Duration(viper.GetInt("SYNC_PROBE_INTERVAL_SECONDS")) * time.Second,
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             viper.GetInt("RATE_LIMIT_BURST"),
		},
	}
}
