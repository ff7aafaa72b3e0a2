package config

import (
	"fmt"
	"os"
	"time"
)

func GetDSN() string {
	DATABASE_HOST := os.Getenv("DATABASE_HOST")
	DATABASE_PORT := os.Getenv("DATABASE_PORT")
	DATABASE_SSLMODE := os.Getenv("DATABASE_SSLMODE")
	DATABASE_TIMEZONE := os.Getenv("DATABASE_TIMEZONE")
	DATABASE_USER := os.Getenv("DATABASE_USER")
	DATABASE_PASSWORD := os.Getenv("DATABASE_PASSWORD")
	DATABASE_NAME := os.Getenv("DATABASE_NAME")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s", DATABASE_HOST, DATABASE_USER, DATABASE_PASSWORD, DATABASE_NAME, DATABASE_PORT, DATABASE_SSLMODE, DATABASE_TIMEZONE)
	return dsn
}

const TIME_PARSE_FORMAT = "2006-01-02 15:04:05 -07:00"

var API_ENV = os.Getenv("API_ENV")

func durationFromEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}

// SweepInterval is the period of the reconciliation job. The exact interval
// is a tuning value, not a correctness requirement.
func SweepInterval() time.Duration {
	return durationFromEnv("SWEEP_INTERVAL", time.Hour)
}

// BookingGraceWindow is how far past its start time a PENDING booking may sit
// before the sweep auto-rejects it.
func BookingGraceWindow() time.Duration {
	return durationFromEnv("BOOKING_GRACE_WINDOW", 24*time.Hour)
}

// NoticeRetentionGrace is how long an expired notice is kept around before
// the sweep purges it. Zero purges on the first sweep after expiry.
func NoticeRetentionGrace() time.Duration {
	return durationFromEnv("NOTICE_RETENTION_GRACE", 0)
}

func NoticeCacheTTL() time.Duration {
	return durationFromEnv("NOTICE_CACHE_TTL", 5*time.Minute)
}
