package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Folders FolderConfig
	Log     LogConfig
}

type FolderConfig struct {
	Input  string
	Output string
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := &Config{
		Folders: FolderConfig{
			Input:  getEnv("INPUT_FOLDER", "/storage/emulated/0/input"),
			Output: getEnv("OUTPUT_FOLDER", "/storage/emulated/0/output"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}
