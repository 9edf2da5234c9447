package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Booking BookingConfig
	Log     LogConfig
}

type AppConfig struct {
	Port       string
	Env        string
	Timezone   string
	CORSOrigin string
}

type DBConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	AutoMigrate bool
}

type RedisConfig struct {
	Host             string
	Port             string
	Password         string
	DB               int
	ScheduleCacheTTL time.Duration
}

type JWTConfig struct {
	Secret string
}

// BookingConfig holds the hospital's booking horizon and reminder rules.
// Day offsets are calendar days in Location, counted from today.
type BookingConfig struct {
	Location     *time.Location
	MinDaysAhead int
	MaxDaysAhead int
	ReminderLead time.Duration
}

type LogConfig struct {
	Level string
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_TIMEZONE", "Asia/Jakarta")
	v.SetDefault("APP_CORS_ORIGIN", "*")
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("BOOKING_MIN_DAYS_AHEAD", 1)
	v.SetDefault("BOOKING_MAX_DAYS_AHEAD", 7)
	v.SetDefault("LOG_LEVEL", "info")

	// A missing .env is fine when everything comes from the environment.
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	location, err := time.LoadLocation(v.GetString("APP_TIMEZONE"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", v.GetString("APP_TIMEZONE"), err)
	}

	scheduleCacheTTL, err := time.ParseDuration(v.GetString("REDIS_SCHEDULE_CACHE_TTL"))
	if err != nil {
		scheduleCacheTTL = 10 * time.Minute
	}

	reminderLead, err := time.ParseDuration(v.GetString("BOOKING_REMINDER_LEAD"))
	if err != nil {
		reminderLead = time.Hour
	}

	minDays := v.GetInt("BOOKING_MIN_DAYS_AHEAD")
	maxDays := v.GetInt("BOOKING_MAX_DAYS_AHEAD")
	if minDays < 0 || maxDays < minDays {
		return nil, fmt.Errorf("invalid booking horizon: min=%d max=%d", minDays, maxDays)
	}

	config := &Config{
		App: AppConfig{
			Port:       v.GetString("APP_PORT"),
			Env:        v.GetString("APP_ENV"),
			Timezone:   location.String(),
			CORSOrigin: v.GetString("APP_CORS_ORIGIN"),
		},
		DB: DBConfig{
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetString("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASSWORD"),
			Name:        v.GetString("DB_NAME"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
		Redis: RedisConfig{
			Host:             v.GetString("REDIS_HOST"),
			Port:             v.GetString("REDIS_PORT"),
			Password:         v.GetString("REDIS_PASSWORD"),
			DB:               v.GetInt("REDIS_DB"),
			ScheduleCacheTTL: scheduleCacheTTL,
		},
		JWT: JWTConfig{
			Secret: v.GetString("JWT_SECRET"),
		},
		Booking: BookingConfig{
			Location:     location,
			MinDaysAhead: minDays,
			MaxDaysAhead: maxDays,
			ReminderLead: reminderLead,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	return config, nil
}
