package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"placement-backend/internal/shared/telemetry"
)

// Config holds application configuration.
type Config struct {
	Port                 string
	Env                  string
	DatabaseURL          string
	RedisAddr            string
	RedisPassword        string
	RedisDB              int
	RedisTTL             time.Duration
	CORSAllowOrigin      []string
	LogLevel             string
	LogJSON              bool
	EvaluationServiceURL string
	MockDelay            time.Duration
	HTTPTimeout          time.Duration
	RateLimitRPS         float64
	RateLimitBurst       int
}

var defaults = map[string]any{
	"PORT":                   "8080",
	"ENV":                    "dev",
	"DATABASE_URL":           "",
	"REDIS_ADDR":             "",
	"REDIS_PASSWORD":         "",
	"REDIS_DB":               0,
	"REDIS_TTL":              "10m",
	"CORS_ALLOW_ORIGINS":     "http://localhost:5173",
	"LOG_LEVEL":              "info",
	"LOG_JSON":               true,
	"EVALUATION_SERVICE_URL": "http://localhost:8080",
	"MOCK_DELAY":             "1500ms",
	"HTTP_TIMEOUT":           "0s",
	"RATE_LIMIT_RPS":         10.0,
	"RATE_LIMIT_BURST":       20,
}

// Load reads configuration from .env files, the environment and defaults,
// in that order of precedence (environment wins over .env).
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	v.AutomaticEnv()
	return v
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) Config {
	env := normalizeEnv(v.GetString("ENV"))
	dbURL := strings.TrimSpace(v.GetString("DATABASE_URL"))
	if env == "production" && dbURL == "" {
		telemetry.Warn("config.database_url_missing", map[string]any{"env": env})
	}

	return Config{
		Port:                 v.GetString("PORT"),
		Env:                  env,
		DatabaseURL:          dbURL,
		RedisAddr:            strings.TrimSpace(v.GetString("REDIS_ADDR")),
		RedisPassword:        v.GetString("REDIS_PASSWORD"),
		RedisDB:              v.GetInt("REDIS_DB"),
		RedisTTL:             v.GetDuration("REDIS_TTL"),
		CORSAllowOrigin:      splitAndTrim(v.GetString("CORS_ALLOW_ORIGINS")),
		LogLevel:             strings.ToLower(v.GetString("LOG_LEVEL")),
		LogJSON:              v.GetBool("LOG_JSON"),
		EvaluationServiceURL: strings.TrimSpace(v.GetString("EVALUATION_SERVICE_URL")),
		MockDelay:            v.GetDuration("MOCK_DELAY"),
		HTTPTimeout:          v.GetDuration("HTTP_TIMEOUT"),
		RateLimitRPS:         v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst:       v.GetInt("RATE_LIMIT_BURST"),
	}
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
