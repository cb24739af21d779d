package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StorageModeLocal  = "local"
	StorageModeShared = "shared"
)

type Config struct {
	Server    ServerConfig
	Logger    LoggerConfig
	Storage   StorageConfig
	DynamoDB  DynamoDBConfig
	Estimator EstimatorConfig
	Migration MigrationConfig
	Admin     AdminConfig
	Business  BusinessConfig
}

type ServerConfig struct {
	AppEnv      string
	Port        string
	CORSOrigins []string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

// StorageConfig selects the persistence strategy. Local keeps everything in a
// SQLite file on this host; shared keeps inquiries and prices in DynamoDB and
// uses the SQLite file only as the legacy migration source.
type StorageConfig struct {
	Mode       string
	SQLitePath string
}

type DynamoDBConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	InquiriesTable  string
	SettingsTable   string
	WatchStream     bool
	StreamPoll      time.Duration
}

type EstimatorConfig struct {
	SubmitTimeout time.Duration
}

type MigrationConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

type AdminConfig struct {
	Email         string
	Password      string
	SessionSecret string
}

type BusinessConfig struct {
	Name           string
	Phone          string
	Email          string
	WhatsAppNumber string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("CORS_ORIGINS", "*")

	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_ENCODING", "json")
	v.SetDefault("LOGGER_DISABLE_CALLER", false)
	v.SetDefault("LOGGER_DISABLE_STACKTRACE", true)

	v.SetDefault("STORAGE_MODE", StorageModeLocal)
	v.SetDefault("SQLITE_PATH", "estimator.db")

	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("INQUIRIES_TABLE", "inquiries")
	v.SetDefault("SETTINGS_TABLE", "settings")
	v.SetDefault("WATCH_INQUIRY_STREAM", true)
	v.SetDefault("STREAM_POLL_INTERVAL", "2s")

	v.SetDefault("SUBMIT_TIMEOUT", "5s")
	v.SetDefault("MIGRATION_MAX_ATTEMPTS", 3)
	v.SetDefault("MIGRATION_BASE_DELAY", "500ms")

	v.SetDefault("ADMIN_EMAIL", "bharatmultiservicesnagpur@gmail.com")
	v.SetDefault("ADMIN_PASSWORD", "Bms@1234")
	v.SetDefault("SESSION_SECRET", "change-me-session-secret-32-bytes")

	v.SetDefault("BUSINESS_NAME", "Bharat Multi Services")
	v.SetDefault("BUSINESS_PHONE", "+91 94221 15003")
	v.SetDefault("BUSINESS_EMAIL", "bharatmultiservicesnagpur@gmail.com")
	v.SetDefault("WHATSAPP_NUMBER", "919422115003")
}

// Load reads configuration from the environment. The .env file, if any, is
// loaded into the environment by the caller before Load runs.
func Load() *Config {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	return fromViper(v)
}

func fromViper(v *viper.Viper) *Config {
	mode := strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_MODE")))
	if mode != StorageModeShared {
		mode = StorageModeLocal
	}

	return &Config{
		Server: ServerConfig{
			AppEnv:      v.GetString("APP_ENV"),
			Port:        v.GetString("HTTP_PORT"),
			CORSOrigins: splitList(v.GetString("CORS_ORIGINS")),
		},
		Logger: LoggerConfig{
			Level:             v.GetString("LOGGER_LEVEL"),
			Encoding:          v.GetString("LOGGER_ENCODING"),
			DisableCaller:     v.GetBool("LOGGER_DISABLE_CALLER"),
			DisableStacktrace: v.GetBool("LOGGER_DISABLE_STACKTRACE"),
		},
		Storage: StorageConfig{
			Mode:       mode,
			SQLitePath: v.GetString("SQLITE_PATH"),
		},
		DynamoDB: DynamoDBConfig{
			Region:          v.GetString("AWS_REGION"),
			Endpoint:        v.GetString("DYNAMODB_ENDPOINT"),
			AccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
			InquiriesTable:  v.GetString("INQUIRIES_TABLE"),
			SettingsTable:   v.GetString("SETTINGS_TABLE"),
			WatchStream:     v.GetBool("WATCH_INQUIRY_STREAM"),
			StreamPoll:      v.GetDuration("STREAM_POLL_INTERVAL"),
		},
		Estimator: EstimatorConfig{
			SubmitTimeout: v.GetDuration("SUBMIT_TIMEOUT"),
		},
		Migration: MigrationConfig{
			MaxAttempts: v.GetInt("MIGRATION_MAX_ATTEMPTS"),
			BaseDelay:   v.GetDuration("MIGRATION_BASE_DELAY"),
		},
		Admin: AdminConfig{
			Email:         v.GetString("ADMIN_EMAIL"),
			Password:      v.GetString("ADMIN_PASSWORD"),
			SessionSecret: v.GetString("SESSION_SECRET"),
		},
		Business: BusinessConfig{
			Name:           v.GetString("BUSINESS_NAME"),
			Phone:          v.GetString("BUSINESS_PHONE"),
			Email:          v.GetString("BUSINESS_EMAIL"),
			WhatsAppNumber: v.GetString("WHATSAPP_NUMBER"),
		},
	}
}

// IsDevelopment reports whether the service runs with development defaults.
func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "development"
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
