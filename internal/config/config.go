package config

import (
	"os"
)

type Config struct {
	Data DataConfig
	QR   QRConfig
	Logs LogConfig
}

// DataConfig holds the paths of the flat files everything is persisted
// in.
type DataConfig struct {
	MoviesFile   string
	SessionsFile string
	TicketsFile  string
	UsersFile    string
}

type QRConfig struct {
	SecretKey string
	OutputDir string
	Enabled   bool
}

type LogConfig struct {
	Dir string
}

func Load() *Config {
	return &Config{
		Data: DataConfig{
			MoviesFile:   getEnv("MOVIES_FILE", "movies.csv"),
			SessionsFile: getEnv("SESSIONS_FILE", "sessions.csv"),
			TicketsFile:  getEnv("TICKETS_FILE", "tickets.csv"),
			UsersFile:    getEnv("USERS_FILE", "users.csv"),
		},
		QR: QRConfig{
			SecretKey: getEnv("QR_SECRET_KEY", "cinema-manager-dev-secret"),
			OutputDir: getEnv("QR_OUTPUT_DIR", "qr"),
			Enabled:   getEnvBool("QR_ENABLED", true),
		},
		Logs: LogConfig{
			Dir: getEnv("LOG_DIR", "logs"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	switch os.Getenv(key) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultValue
}
