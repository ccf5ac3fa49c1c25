package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// 環境名稱
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config 是伺服器與客戶端共用的啟動配置
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	DB     DBConfig     `mapstructure:"db"`
	Log    LogConfig    `mapstructure:"log"`
	Auth   AuthConfig   `mapstructure:"auth"`
	Client ClientConfig `mapstructure:"client"`
}

type ServerConfig struct {
	Port          int    `mapstructure:"port"`
	AllowedOrigin string `mapstructure:"allowed_origin"` // CORS 允許的來源
	Env           string `mapstructure:"env"`
}

type DBConfig struct {
	Host     string `mapstructure:"host"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	Port     int    `mapstructure:"port"`
	SSLMode  string `mapstructure:"sslmode"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

type ClientConfig struct {
	APIBaseURL string `mapstructure:"api_base_url"`
}

// Address 回傳 HTTP 伺服器的監聽地址
func (s ServerConfig) Address() string {
	return fmt.Sprintf(":%d", s.Port)
}

// IsProduction 判斷是否運行於正式環境
func (s ServerConfig) IsProduction() bool {
	return s.Env == EnvProduction
}

// DSN 組合 PostgreSQL 連線字串
func (d DBConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=Asia/Seoul",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode)
}

// Load 從預設路徑讀取配置
func Load() (*Config, error) {
	return LoadFrom("./pkg/config", ".")
}

// LoadFrom 依序在給定目錄中尋找 config.yaml，找不到時只使用預設值與環境變數
func LoadFrom(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	setDefaults(v)
	if err := bindEnv(v); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	// 未指定日誌等級時，正式環境用 info，其餘用 debug
	if config.Log.Level == "" {
		config.Log.Level = "debug"
		if config.Server.IsProduction() {
			config.Log.Level = "info"
		}
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.allowed_origin", "http://localhost:3001")
	v.SetDefault("server.env", EnvDevelopment)

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "postgres")
	v.SetDefault("db.name", "member_web")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.sslmode", "disable")

	v.SetDefault("auth.jwt_secret", "member_web_dev_secret")
	v.SetDefault("auth.token_ttl", 24*time.Hour)

	v.SetDefault("client.api_base_url", "http://localhost:3000")
}

func bindEnv(v *viper.Viper) error {
	bindings := map[string][]string{
		"server.port":           {"PORT"},
		"server.allowed_origin": {"APP_BASE_URL"},
		"server.env":            {"APP_ENV", "NODE_ENV"},
		"log.level":             {"LOG_LEVEL"},
		"db.host":               {"DB_HOST"},
		"db.user":               {"DB_USER"},
		"db.password":           {"DB_PASSWORD"},
		"db.name":               {"DB_NAME"},
		"db.port":               {"DB_PORT"},
		"db.sslmode":            {"DB_SSLMODE"},
		"auth.jwt_secret":       {"JWT_SECRET"},
		"auth.token_ttl":        {"TOKEN_TTL"},
		"client.api_base_url":   {"API_BASE_URL", "NEXT_PUBLIC_API_URL"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return err
		}
	}
	return nil
}
