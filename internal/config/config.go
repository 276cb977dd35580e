package config

import (
	"os"
	"strconv"
	"time"

	"docuagent/internal/client"
	"docuagent/internal/service"
)

// BackendConfig holds settings for the DocuAgent REST backend.
type BackendConfig struct {
	BaseURL string
	Tracing bool
}

// UploadConfig holds the client-side upload gate.
type UploadConfig struct {
	MaxBytes int64
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables; a .env file is auto-loaded by the binaries.
type AppConfig struct {
	Port        string
	Timezone    string
	LogLevel    string
	RecentLimit int
	Backend     BackendConfig
	Upload      UploadConfig
}

// Load reads configuration from environment variables.
// DOCUAGENT_API_URL wins over NEXT_PUBLIC_API_URL; both fall back to the localhost backend.
func Load() *AppConfig {
	return &AppConfig{
		Port:        getEnv("PORT", "3000"),
		Timezone:    getEnv("APP_TIMEZONE", "UTC"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		RecentLimit: getEnvInt("DASHBOARD_RECENT_LIMIT", 3),
		Backend: BackendConfig{
			BaseURL: getEnv("DOCUAGENT_API_URL", getEnv("NEXT_PUBLIC_API_URL", client.DefaultBaseURL)),
			Tracing: getEnvBool("DOCUAGENT_TRACING", true),
		},
		Upload: UploadConfig{
			MaxBytes: getEnvInt64("UPLOAD_MAX_BYTES", service.DefaultMaxUploadBytes),
		},
	}
}

// Location resolves Timezone, falling back to UTC when it is unknown.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.ParseInt(v, 10, 64)
		if err == nil && i > 0 {
			return i
		}
	}
	return def
}
