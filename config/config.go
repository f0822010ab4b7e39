package config

import (
	"log"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"qrattendance/errors"
	"qrattendance/validator"

	"github.com/creasty/defaults"
	"github.com/joho/godotenv"
)

// Config holds every environment-supplied setting.
type Config struct {
	Env  string `default:"dev"`
	Port string `default:"8083"`

	SecretKey string `validate:"required"`
	SiteURL   string `validate:"omitempty,url"`

	StoreDriver        string `default:"sheets" validate:"oneof=sheets redis postgres sqlite memory"`
	SpreadsheetID      string `validate:"required_if=StoreDriver sheets"`
	SheetName          string `default:"Sheet1"`
	ServiceAccountPath string `validate:"required_if=StoreDriver sheets"`

	RedisAddr     string `validate:"required_if=StoreDriver redis"`
	RedisUser     string
	RedisPassword string
	RedisPrefix   string `default:"attendance"`

	DatabaseURL string `validate:"required_if=StoreDriver postgres"`
	SQLitePath  string `default:"data/attendance.db"`

	Timezone string `default:"UTC"`

	AdminUsername     string `default:"admin"`
	AdminPassword     string `validate:"required_without=AdminPasswordHash"`
	AdminPasswordHash string

	LogLevel         string `default:"info"`
	LogDir           string
	PrecreateColumns bool
	CORSOrigins      []string

	Location *time.Location `default:"-"`
}

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

// FromEnv reads the configuration from the process environment, fills
// defaults and validates it.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Env:                GetEnv("ENV"),
		Port:               GetEnv("PORT"),
		SecretKey:          GetEnv("SECRET_KEY"),
		SiteURL:            GetEnv("SITE_URL"),
		StoreDriver:        strings.ToLower(GetEnv("STORE_DRIVER")),
		SpreadsheetID:      GetEnv("SPREADSHEET_ID"),
		SheetName:          GetEnv("SHEET_NAME"),
		ServiceAccountPath: GetEnv("SERVICE_ACCOUNT_PATH"),
		RedisAddr:          GetEnv("REDIS_ADDR"),
		RedisUser:          GetEnv("REDIS_USER"),
		RedisPassword:      GetEnv("REDIS_PASSWORD"),
		RedisPrefix:        GetEnv("REDIS_PREFIX"),
		DatabaseURL:        GetEnv("DATABASE_URL"),
		SQLitePath:         GetEnv("SQLITE_PATH"),
		Timezone:           GetEnv("TIMEZONE"),
		AdminUsername:      GetEnv("ADMIN_USERNAME"),
		AdminPassword:      GetEnv("ADMIN_PASSWORD"),
		AdminPasswordHash:  GetEnv("ADMIN_PASSWORD_HASH"),
		LogLevel:           GetEnv("LOG_LEVEL"),
		LogDir:             GetEnv("LOG_DIR"),
		PrecreateColumns:   parseBool(GetEnv("PRECREATE_COLUMNS")),
		CORSOrigins:        splitList(GetEnv("CORS_ORIGINS")),
	}
	return cfg, cfg.finalize()
}

func (c *Config) finalize() error {
	if err := defaults.Set(c); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidConfig, "apply defaults", err)
	}
	if err := validator.ValidateStruct(c); err != nil {
		return err
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidConfig, "unknown TIMEZONE "+c.Timezone, err)
	}
	c.Location = loc
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "prod"
}

func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
