// internal/config/config.go
package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	Driver      string `mapstructure:"driver"` // postgres | sqlite
	URL         string `mapstructure:"url"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type AuthConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type JWTConfig struct {
	SecretKey string `mapstructure:"secret_key"`
}

// RedisConfig は問題・ドリルのキャッシュ設定。Addr が空ならキャッシュしない。
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type AppConfig struct {
	DailyQuota   int    `mapstructure:"daily_quota"`
	HistoryLimit int    `mapstructure:"history_limit"`
	Timezone     string `mapstructure:"timezone"`
	BackfillSeed uint64 `mapstructure:"backfill_seed"` // 0 なら時刻で初期化
}

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Auth     AuthConfig     `mapstructure:"auth"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Redis    RedisConfig    `mapstructure:"redis"`
	App      AppConfig      `mapstructure:"app"`
}

var Cfg Config

func LoadConfig(path string) error {
	// .env があれば環境変数として読み込む (無くてもよい)
	if err := godotenv.Load(); err == nil {
		log.Println(".env file loaded")
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("auth.enabled", "AUTH_ENABLED")
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("database.driver", "DATABASE_DRIVER")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")
	viper.BindEnv("redis.addr", "REDIS_ADDR")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	err := viper.Unmarshal(&Cfg)
	if err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// Auth.Enabled は未設定なら true (有効)
	if !viper.IsSet("auth.enabled") {
		log.Println("Auth enabled flag not set, defaulting to true (enabled)")
		Cfg.Auth.Enabled = true
	}

	Cfg.ApplyDefaults()

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Database Driver: %s", Cfg.Database.Driver)
	log.Printf("Daily Quota: %d", Cfg.App.DailyQuota)
	log.Printf("Auth Enabled: %t", Cfg.Auth.Enabled)

	return nil
}

// ApplyDefaults は未設定・不正な値を既定値で埋めます。
func (c *Config) ApplyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = DefaultServerPort
	}
	if c.Database.Driver == "" {
		c.Database.Driver = DefaultDatabaseDriver
	}
	if c.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.App.DailyQuota <= 0 {
		c.App.DailyQuota = DefaultDailyQuota
	}
	if c.App.HistoryLimit <= 0 {
		c.App.HistoryLimit = DefaultHistoryLimit
	}
	if c.App.Timezone == "" {
		c.App.Timezone = DefaultTimezone
	}
	if c.Redis.TTL <= 0 {
		c.Redis.TTL = DefaultCacheTTL
	}
}

// Location は日付計算に使うタイムゾーンを返します。不正な値なら UTC。
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		log.Printf("Invalid timezone %q, falling back to UTC: %v", c.App.Timezone, err)
		return time.UTC
	}
	return loc
}
