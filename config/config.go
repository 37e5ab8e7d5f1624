package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Remote   RemoteConfig
	Session  SessionConfig
	Schedule ScheduleConfig
}

type AppConfig struct {
	Env      string
	LogLevel string
	// StrictReferences turns the optional referential-integrity rule on:
	// mutations referencing an unknown doctor/patient/unit, or a patient
	// owned by a different doctor, are rejected before any remote call.
	StrictReferences bool
}

type RemoteConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SessionConfig struct {
	DBPath string
}

// ScheduleConfig seeds the constraints singleton before the first
// replacement through the constraints usecase.
type ScheduleConfig struct {
	StartHour    int
	EndHour      int
	SlotMinutes  int
	AllowOverlap bool
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("VALIDATE_REFERENCES", false)
	viper.SetDefault("API_TIMEOUT", "15s")
	viper.SetDefault("SESSION_DB_PATH", "clinic-session.db")
	viper.SetDefault("SCHEDULE_START_HOUR", 8)
	viper.SetDefault("SCHEDULE_END_HOUR", 20)
	viper.SetDefault("SCHEDULE_SLOT_MINUTES", 30)
	viper.SetDefault("SCHEDULE_ALLOW_OVERLAP", false)

	// The .env file is optional; environment variables alone are enough.
	_ = viper.ReadInConfig()

	timeout, err := time.ParseDuration(viper.GetString("API_TIMEOUT"))
	if err != nil {
		timeout = 15 * time.Second
	}

	config := &Config{
		App: AppConfig{
			Env:              viper.GetString("APP_ENV"),
			LogLevel:         viper.GetString("LOG_LEVEL"),
			StrictReferences: viper.GetBool("VALIDATE_REFERENCES"),
		},
		Remote: RemoteConfig{
			BaseURL: viper.GetString("API_BASE_URL"),
			Timeout: timeout,
		},
		Session: SessionConfig{
			DBPath: viper.GetString("SESSION_DB_PATH"),
		},
		Schedule: ScheduleConfig{
			StartHour:    viper.GetInt("SCHEDULE_START_HOUR"),
			EndHour:      viper.GetInt("SCHEDULE_END_HOUR"),
			SlotMinutes:  viper.GetInt("SCHEDULE_SLOT_MINUTES"),
			AllowOverlap: viper.GetBool("SCHEDULE_ALLOW_OVERLAP"),
		},
	}

	if config.Remote.BaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL is required")
	}

	return config, nil
}
