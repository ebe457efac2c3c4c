package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestFromViperDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)

	require.Equal(t, EnvDevelopment, cfg.Env)
	require.Equal(t, "http://localhost:8000/api", cfg.Backend.BaseURL)
	require.Equal(t, 3*time.Second, cfg.Session.NotificationTTL)
	require.Equal(t, 30*time.Minute, cfg.Session.TTL)
	require.Equal(t, 6, cfg.Calendar.HourStart)
	require.Equal(t, 22, cfg.Calendar.HourEnd)
	require.Equal(t, int64(10*1024*1024), cfg.Upload.MaxFileSizeBytes)
	require.Nil(t, cfg.CORS.AllowedOrigins)
}

func TestFromViperOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("BACKEND_BASE_URL", "http://aps.internal:9000/api/")
	v.Set("ALLOWED_ORIGINS", "http://a.test, ,http://b.test")
	v.Set("NOTIFICATION_TTL", "bogus")
	v.Set("CALENDAR_HOUR_START", 23)
	v.Set("CALENDAR_HOUR_END", 4)
	v.Set("PRINT_FONT_PATH", "/usr/share/fonts/NanumGothic.ttf")

	cfg := fromViper(v)

	require.Equal(t, "http://aps.internal:9000/api", cfg.Backend.BaseURL)
	require.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
	require.Equal(t, "/usr/share/fonts/NanumGothic.ttf", cfg.Print.FontPath)
	require.Equal(t, 3*time.Second, cfg.Session.NotificationTTL)
	require.Equal(t, 6, cfg.Calendar.HourStart)
	require.Equal(t, 22, cfg.Calendar.HourEnd)
}

func TestCalendarLocationFallsBack(t *testing.T) {
	require.Equal(t, time.Local, CalendarConfig{}.Location())
	require.Equal(t, time.Local, CalendarConfig{Timezone: "Nowhere/Atlantis"}.Location())
	require.Equal(t, "UTC", CalendarConfig{Timezone: "UTC"}.Location().String())
}
