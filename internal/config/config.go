package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	cfg, missing := FromEnv(os.LookupEnv)
	if missing != "" {
		log.Fatalf("Error: Required environment variable %s is not set.", missing)
	}
	return cfg
}

// FromEnv builds a Config from lookup. It returns the name of the first
// missing required variable, if any.
func FromEnv(lookup func(string) (string, bool)) (Config, string) {
	var missing string
	getEnv := func(key string) string {
		if value, ok := lookup(key); ok && value != "" {
			return value
		}
		if missing == "" {
			missing = key
		}
		return ""
	}
	getEnvDefault := func(key, fallback string) string {
		if value, ok := lookup(key); ok && value != "" {
			return value
		}
		return fallback
	}
	getInt := func(key string, fallback int) int {
		raw := getEnvDefault(key, "")
		if raw == "" {
			return fallback
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			log.Warn("Ignoring invalid integer setting", "key", key, "value", raw)
			return fallback
		}
		return n
	}

	cfg := Config{
		DBName:       getEnv("DB_NAME"),
		Port:         getEnv("PORT"),
		DefaultBoard: getEnvDefault("DEFAULT_BOARD", "default"),
		HistoryLimit: getInt("HISTORY_LIMIT", 0),
		SaveRetries:  getInt("SAVE_RETRIES", 2),
		LogLevel:     getEnvDefault("LOG_LEVEL", "info"),
		LogFormat:    getEnvDefault("LOG_FORMAT", "text"),
		Turso: TursoConfig{
			PrimaryURL: getEnvDefault("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnvDefault("TURSO_AUTH_TOKEN", ""),
		},
		Slack: SlackConfig{
			Token:     getEnvDefault("SLACK_BOT_TOKEN", ""),
			ChannelID: getEnvDefault("SLACK_CHANNEL_ID", ""),
			DryRun:    strings.EqualFold(getEnvDefault("SLACK_DRY_RUN", "false"), "true"),
		},
		PubSub: PubSubConfig{
			ProjectID: getEnvDefault("GCP_PROJECT", ""),
			Topic:     getEnvDefault("PUBSUB_TOPIC", ""),
		},
	}
	return cfg, missing
}

// ConfigureLogger applies the log level and format settings.
func ConfigureLogger(cfg Config) {
	if strings.EqualFold(cfg.LogFormat, "json") {
		log.SetFormatter(log.JSONFormatter)
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn("Unknown log level, using info", "level", cfg.LogLevel)
		level = log.InfoLevel
	}
	log.SetLevel(level)
}
