package config

import (
	"os"
	"strings"
	"time"
)

type ServerConfig struct {
	Port string
}

type LoggingConfig struct {
	Directory string
	Level     string
	Format    string
}

type DatasetConfig struct {
	Path string
}

type KafkaConfig struct {
	Brokers []string
	GroupID string
	Topics  []string
}

type SecurityConfig struct {
	JWTSecret string
}

type WebsocketConfig struct {
	SendBuffer int
}

type Config struct {
	Server    ServerConfig
	Logging   LoggingConfig
	Dataset   DatasetConfig
	Kafka     KafkaConfig
	Security  SecurityConfig
	Websocket WebsocketConfig
	Shutdown  time.Duration
}

// Load materializes the configuration from environment variables, applying
// defaults that make a plain local run work without any .env file.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: envOr("PORT", "8000"),
		},
		Logging: LoggingConfig{
			Directory: envOr("LOG_DIR", "./logs"),
			Level:     envOr("LOG_LEVEL", "info"),
			Format:    envOr("LOG_FORMAT", "text"),
		},
		Dataset: DatasetConfig{
			Path: envOr("DATASET_PATH", "restaurants.csv"),
		},
		Kafka: KafkaConfig{
			Brokers: splitList(os.Getenv("KAFKA_BROKERS")),
			GroupID: envOr("KAFKA_GROUP_ID", "dine-hours"),
			Topics:  splitList(envOr("KAFKA_TOPICS", "restaurant.dataset.updated")),
		},
		Security: SecurityConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
		},
		Websocket: WebsocketConfig{
			SendBuffer: 8,
		},
		Shutdown: 10 * time.Second,
	}
	if len(cfg.Kafka.Brokers) == 0 {
		cfg.Kafka.Brokers = splitList(os.Getenv("KAFKA_BROKER"))
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func splitList(raw string) []string {
	var values []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
