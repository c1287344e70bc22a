package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Task Planner specifics
	Scheduler      SchedulerConfig
	Memos          MemosConfig
	GoogleCalendar GoogleCalendarConfig

	// Webhooks
	Webhook WebhookConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// SchedulerConfig holds the scheduling-window settings. Working hours are
// "HH:MM" 24-hour strings; working days are weekday integers 0=Sunday..6=Saturday.
// Validation happens in schedule.ParseSettings so the service fails fast on
// malformed values at startup.
type SchedulerConfig struct {
	WorkingHoursStart   string
	WorkingHoursEnd     string
	WorkingDays         []int
	SlotDurationMinutes int
	DefaultPriority     int
	DefaultTimeEstimate int
	ScheduleHorizonDays int // full scheduling runs
	DisplayHorizonDays  int // display-only grid refreshes
	Timezone            string
}

type MemosConfig struct {
	URL         string
	APIVersion  string
	AccessToken string
	ExternalURL string // URL for generating user-facing links (e.g., http://localhost:5230)
	TaskTag     string // Tag marking memos the planner owns
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

type WebhookConfig struct {
	Enabled         bool
	Secret          string
	AllowedIPs      []string
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Scheduler settings
	cfg.Scheduler.WorkingHoursStart = viper.GetString("scheduler.working_hours_start")
	cfg.Scheduler.WorkingHoursEnd = viper.GetString("scheduler.working_hours_end")
	cfg.Scheduler.WorkingDays = viper.GetIntSlice("scheduler.working_days")
	cfg.Scheduler.SlotDurationMinutes = viper.GetInt("scheduler.slot_duration_minutes")
	cfg.Scheduler.DefaultPriority = viper.GetInt("scheduler.default_priority")
	cfg.Scheduler.DefaultTimeEstimate = viper.GetInt("scheduler.default_time_estimate")
	cfg.Scheduler.ScheduleHorizonDays = viper.GetInt("scheduler.schedule_horizon_days")
	cfg.Scheduler.DisplayHorizonDays = viper.GetInt("scheduler.display_horizon_days")
	cfg.Scheduler.Timezone = viper.GetString("scheduler.timezone")

	// Task store
	cfg.Memos.URL = viper.GetString("memos.url")
	cfg.Memos.APIVersion = viper.GetString("memos.api_version")
	cfg.Memos.AccessToken = viper.GetString("memos.access_token")
	cfg.Memos.ExternalURL = viper.GetString("memos.external_url")
	cfg.Memos.TaskTag = viper.GetString("memos.task_tag")
	if memosURL := viper.GetString("memos_url"); memosURL != "" {
		cfg.Memos.URL = memosURL
	}
	if memosToken := viper.GetString("memos_access_token"); memosToken != "" {
		cfg.Memos.AccessToken = memosToken
	}
	// If external URL not set, default to internal URL
	if cfg.Memos.ExternalURL == "" {
		cfg.Memos.ExternalURL = cfg.Memos.URL
	}

	// Google Calendar (optional)
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")

	// Webhook
	cfg.Webhook.Enabled = viper.GetBool("webhook.enabled")
	cfg.Webhook.Secret = viper.GetString("webhook.secret")
	cfg.Webhook.AllowedIPs = viper.GetStringSlice("webhook.allowed_ips")
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("scheduler.working_hours_start", "09:00")
	viper.SetDefault("scheduler.working_hours_end", "17:00")
	viper.SetDefault("scheduler.working_days", []int{1, 2, 3, 4, 5}) // Mon-Fri
	viper.SetDefault("scheduler.slot_duration_minutes", 30)
	viper.SetDefault("scheduler.default_priority", 3)
	viper.SetDefault("scheduler.default_time_estimate", 30)
	viper.SetDefault("scheduler.schedule_horizon_days", 14)
	viper.SetDefault("scheduler.display_horizon_days", 7)
	viper.SetDefault("scheduler.timezone", "UTC")

	viper.SetDefault("memos.api_version", "v1")
	viper.SetDefault("memos.task_tag", "#task")

	viper.SetDefault("webhook.enabled", false)
	viper.SetDefault("webhook.rate_limit_per_min", 60)
}
