package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env  string
	Port int

	Backend       BackendConfig
	CORS          CORSConfig
	Log           LogConfig
	Session       SessionConfig
	Downloads     DownloadsConfig
	Upload        UploadConfig
	Calendar      CalendarConfig
	Print         PrintConfig
	Observability ObservabilityConfig
}

// BackendConfig points the console at the scheduling backend.
type BackendConfig struct {
	BaseURL string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// SessionConfig governs console session lifetime and toast behaviour.
type SessionConfig struct {
	TTL             time.Duration
	NotificationTTL time.Duration
	ConfirmationTTL time.Duration
}

// DownloadsConfig controls where exported files land and how long links stay valid.
type DownloadsConfig struct {
	Dir             string
	SignedURLSecret string
	SignedURLTTL    time.Duration
	CleanupInterval time.Duration
}

// UploadConfig limits sales plan uploads.
type UploadConfig struct {
	MaxFileSizeBytes int64
}

// CalendarConfig tunes the time grid of the calendar.
type CalendarConfig struct {
	HourStart int
	HourEnd   int
	Timezone  string
}

// PrintConfig controls the print view renderer.
type PrintConfig struct {
	FontPath string
}

// ObservabilityConfig toggles metrics and API docs.
type ObservabilityConfig struct {
	MetricsEnabled bool
	DocsEnabled    bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")

	cfg.Backend = BackendConfig{BaseURL: strings.TrimRight(v.GetString("BACKEND_BASE_URL"), "/")}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Session = SessionConfig{
		TTL:             parseDuration(v.GetString("SESSION_TTL"), 30*time.Minute),
		NotificationTTL: parseDuration(v.GetString("NOTIFICATION_TTL"), 3*time.Second),
		ConfirmationTTL: parseDuration(v.GetString("CONFIRMATION_TTL"), 5*time.Minute),
	}

	cfg.Downloads = DownloadsConfig{
		Dir:             v.GetString("DOWNLOADS_DIR"),
		SignedURLSecret: v.GetString("DOWNLOAD_URL_SECRET"),
		SignedURLTTL:    parseDuration(v.GetString("DOWNLOAD_URL_TTL"), 30*time.Minute),
		CleanupInterval: parseDuration(v.GetString("DOWNLOAD_CLEANUP_INTERVAL"), time.Hour),
	}

	maxUpload := v.GetInt64("UPLOAD_MAX_FILE_SIZE")
	if maxUpload <= 0 {
		maxUpload = 10 * 1024 * 1024
	}
	cfg.Upload = UploadConfig{MaxFileSizeBytes: maxUpload}

	cfg.Calendar = CalendarConfig{
		HourStart: v.GetInt("CALENDAR_HOUR_START"),
		HourEnd:   v.GetInt("CALENDAR_HOUR_END"),
		Timezone:  v.GetString("CALENDAR_TIMEZONE"),
	}
	if cfg.Calendar.HourStart < 0 || cfg.Calendar.HourEnd > 24 || cfg.Calendar.HourStart >= cfg.Calendar.HourEnd {
		cfg.Calendar.HourStart, cfg.Calendar.HourEnd = 6, 22
	}

	cfg.Print = PrintConfig{FontPath: v.GetString("PRINT_FONT_PATH")}

	cfg.Observability = ObservabilityConfig{
		MetricsEnabled: v.GetBool("ENABLE_METRICS"),
		DocsEnabled:    v.GetBool("ENABLE_DOCS"),
	}

	return cfg
}

// Location resolves the configured calendar timezone, falling back to local time.
func (c CalendarConfig) Location() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)

	v.SetDefault("BACKEND_BASE_URL", "http://localhost:8000/api")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("SESSION_TTL", "30m")
	v.SetDefault("NOTIFICATION_TTL", "3s")
	v.SetDefault("CONFIRMATION_TTL", "5m")

	v.SetDefault("DOWNLOADS_DIR", "./downloads")
	v.SetDefault("DOWNLOAD_URL_SECRET", "dev_downloads_secret")
	v.SetDefault("DOWNLOAD_URL_TTL", "30m")
	v.SetDefault("DOWNLOAD_CLEANUP_INTERVAL", "1h")

	v.SetDefault("UPLOAD_MAX_FILE_SIZE", 10*1024*1024)

	v.SetDefault("CALENDAR_HOUR_START", 6)
	v.SetDefault("CALENDAR_HOUR_END", 22)
	v.SetDefault("CALENDAR_TIMEZONE", "")

	v.SetDefault("PRINT_FONT_PATH", "")

	v.SetDefault("ENABLE_METRICS", true)
	v.SetDefault("ENABLE_DOCS", true)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
