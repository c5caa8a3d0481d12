package config

import (
	"os"

	"github.com/joho/godotenv"

	"placement-backend/internal/shared/telemetry"
)

// loadEnvFiles loads KEY=VALUE pairs from the given files if they exist.
// Variables already present in the environment are not overridden.
func loadEnvFiles(paths ...string) {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			telemetry.Warn("config.env_file_invalid", map[string]any{"path": path, "err": err})
			continue
		}
		telemetry.Debug("config.env_file_loaded", map[string]any{"path": path})
	}
}
