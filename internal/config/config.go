package config

import (
	"os"
)

type Config struct {
	DBDriver         string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	ServerPort       string
	GinMode          string
	EphemeralStorage bool
}

func Load() *Config {
	return &Config{
		DBDriver:         getEnv("DB_DRIVER", "mysql"),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "3306"),
		DBUser:           getEnv("DB_USER", "supervision"),
		DBPassword:       getEnv("DB_PASSWORD", "supervision"),
		DBName:           getEnv("DB_NAME", "construction_supervision"),
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		GinMode:          getEnv("GIN_MODE", "debug"),
		EphemeralStorage: getEnv("EPHEMERAL_STORAGE", "false") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
