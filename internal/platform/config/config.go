package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures process-level configuration. FromEnv builds it so main
// stays lean; attendance policy thresholds load here once and are never
// mutated at runtime.
type Config struct {
	Addr          string
	JWTSigningKey string

	OnTimeThreshold      time.Duration
	LateThreshold        time.Duration
	GeofenceRadiusMeters float64
	FenceCenterLat       float64
	FenceCenterLng       float64
	FenceAddress         string
	AllowExpiredCheckIn  bool

	RemoteBaseURL string
	RemoteToken   string

	RedisURL string

	AuditSink    string // memory | postgres | kafka
	PostgresDSN  string
	KafkaBrokers []string
	KafkaTopic   string
}

// FromEnv builds a Config from environment variables.
func FromEnv() Config {
	cfg := Config{
		Addr:                 getenv("ROLLCALL_ADDR", ":8080"),
		JWTSigningKey:        getenv("JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		OnTimeThreshold:      minutes("ATTENDANCE_ONTIME_THRESHOLD_MIN", 15),
		LateThreshold:        minutes("ATTENDANCE_LATE_THRESHOLD_MIN", 60),
		GeofenceRadiusMeters: floatenv("GEOFENCE_RADIUS_METERS", 150),
		FenceCenterLat:       floatenv("GEOFENCE_CENTER_LAT", 37.4979),
		FenceCenterLng:       floatenv("GEOFENCE_CENTER_LNG", 127.0276),
		FenceAddress:         getenv("GEOFENCE_ADDRESS", ""),
		AllowExpiredCheckIn:  os.Getenv("ALLOW_EXPIRED_CHECKIN") == "true",
		RemoteBaseURL:        getenv("ATTENDANCE_API_URL", "http://localhost:9090"),
		RemoteToken:          os.Getenv("ATTENDANCE_API_TOKEN"),
		RedisURL:             os.Getenv("REDIS_URL"),
		AuditSink:            getenv("AUDIT_SINK", "memory"),
		PostgresDSN:          os.Getenv("AUDIT_POSTGRES_DSN"),
		KafkaTopic:           getenv("AUDIT_KAFKA_TOPIC", "rollcall.attendance.audit"),
	}
	if brokers := os.Getenv("AUDIT_KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func minutes(key string, fallback int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Minute
		}
	}
	return time.Duration(fallback) * time.Minute
}

func floatenv(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
