package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Environment
	Environment string

	// Server
	Port        string
	FrontendURL string

	// Game tuning file (optional)
	TuningPath string

	// Session
	SessionSeconds int

	// Gesture input
	PinchThreshold  float64 // normalized thumb-index distance
	ShootCooldownMs int

	// Play area (canvas pixels, authoritative on the server)
	PlayAreaWidth  float64
	PlayAreaHeight float64

	// Spawn scheduling
	SpawnIntervalStartMs float64
	SpawnIntervalStepMs  float64
	SpawnIntervalFloorMs float64
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		// Environment
		Environment: getEnv("APP_ENV", "development"),

		// Server
		Port:        getEnv("APP_PORT", "8080"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),

		// Game tuning
		TuningPath: getEnv("GAME_TUNING_FILE", "tuning.toml"),

		// Session
		SessionSeconds: getEnvInt("SESSION_SECONDS", 60),

		// Gesture input
		PinchThreshold:  getEnvFloat("PINCH_THRESHOLD", 0.05),
		ShootCooldownMs: getEnvInt("SHOOT_COOLDOWN_MS", 200),

		// Play area
		PlayAreaWidth:  getEnvFloat("PLAY_AREA_WIDTH", 1280),
		PlayAreaHeight: getEnvFloat("PLAY_AREA_HEIGHT", 720),

		// Spawn scheduling
		SpawnIntervalStartMs: getEnvFloat("SPAWN_INTERVAL_START_MS", 1000),
		SpawnIntervalStepMs:  getEnvFloat("SPAWN_INTERVAL_STEP_MS", 10),
		SpawnIntervalFloorMs: getEnvFloat("SPAWN_INTERVAL_FLOOR_MS", 400),
	}

	if tuning, err := LoadTuning(cfg.TuningPath); err == nil {
		cfg.applyTuning(tuning)
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
