package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func (s SMTPConfig) Enabled() bool {
	return s.Host != "" && s.User != "" && s.Password != ""
}

type Config struct {
	AppEnv          string
	Port            string
	CORSOrigins     []string
	AdminEmails     []string
	AdminInviteCode string
	JWTSecret       string
	DatabaseURL     string
	DBName          string
	DBMaxConns      int32
	RedisURL        string
	CloudinaryURL   string
	SMTP            SMTPConfig
	MaxUploadSize   int64
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

var requiredKeys = []string{"CORS_ORIGINS", "ADMIN_EMAILS", "DATABASE_URL", "DB_NAME"}

func Load() (*Config, error) {
	if os.Getenv("VERCEL") == "" {
		if err := godotenv.Load(); err != nil {
			log.Debug().Msg(".env file not found, using system environment variables")
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("MAX_UPLOAD_SIZE", 5*1024*1024)

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	for _, key := range requiredKeys {
		if strings.TrimSpace(v.GetString(key)) == "" {
			return nil, fmt.Errorf("missing environment variable: %s", key)
		}
	}

	maxConns := v.GetInt32("DB_MAX_CONNS")
	if maxConns <= 0 {
		maxConns = 10
	}

	maxUpload := v.GetInt64("MAX_UPLOAD_SIZE")
	if maxUpload <= 0 {
		maxUpload = 5 * 1024 * 1024
	}

	cfg := &Config{
		AppEnv:          strings.TrimSpace(v.GetString("APP_ENV")),
		Port:            strings.TrimSpace(v.GetString("PORT")),
		CORSOrigins:     SplitList(v.GetString("CORS_ORIGINS")),
		AdminEmails:     lowerAll(SplitList(v.GetString("ADMIN_EMAILS"))),
		AdminInviteCode: strings.TrimSpace(v.GetString("ADMIN_INVITE_CODE")),
		JWTSecret:       strings.TrimSpace(v.GetString("JWT_SECRET")),
		DatabaseURL:     strings.TrimSpace(v.GetString("DATABASE_URL")),
		DBName:          strings.TrimSpace(v.GetString("DB_NAME")),
		DBMaxConns:      maxConns,
		RedisURL:        strings.TrimSpace(v.GetString("REDIS_URL")),
		CloudinaryURL:   strings.TrimSpace(v.GetString("CLOUDINARY_URL")),
		SMTP: SMTPConfig{
			Host:     strings.TrimSpace(v.GetString("SMTP_HOST")),
			Port:     v.GetInt("SMTP_PORT"),
			User:     strings.TrimSpace(v.GetString("SMTP_USER")),
			Password: v.GetString("SMTP_PASS"),
			From:     strings.TrimSpace(v.GetString("SMTP_FROM")),
		},
		MaxUploadSize: maxUpload,
	}

	return cfg, nil
}

// SplitList turns "a, b,,c" into ["a" "b" "c"].
func SplitList(value string) []string {
	out := []string{}
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func lowerAll(values []string) []string {
	for i, v := range values {
		values[i] = strings.ToLower(v)
	}
	return values
}
