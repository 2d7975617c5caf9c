package main

import (
	"os"

	"github.com/imco-tools/indices"
	"github.com/joho/godotenv"
)

// envDefaults holds flag defaults that may come from the environment.
type envDefaults struct {
	URL       string
	OutputDir string
	Report    string
	UserAgent string
}

// loadEnv reads a .env file from the working directory if there is one,
// then builds flag defaults from the environment. Variables already set
// take precedence over the .env file.
func loadEnv() envDefaults {
	_ = godotenv.Load()

	return envDefaults{
		URL:       getEnv("INDICES_URL", indices.DefaultURL),
		OutputDir: getEnv("INDICES_OUTPUT_DIR", "."),
		Report:    getEnv("INDICES_REPORT", "indices_data.xlsx"),
		UserAgent: getEnv("INDICES_USER_AGENT", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func isDirectory(path string) bool {
	f, err := os.Stat(path)
	if err != nil {
		return false
	}

	return f.IsDir()
}
