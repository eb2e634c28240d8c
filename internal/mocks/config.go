package mocks

import (
	"time"

	"github.com/cradoe/biodata/internal/config"
)

// NewConfig returns a configuration pointing at local services, suitable for
// wiring the router in tests.
func NewConfig() *config.Config {
	cfg := &config.Config{
		BaseURL:         "http://localhost",
		HttpPort:        8080,
		LogLevel:        "debug",
		KafkaServers:    "localhost:9092",
		FeedCacheTTL:    time.Minute,
		DisplayTimezone: "Asia/Dhaka",
	}
	cfg.Db.Dsn = "mock_dsn"
	cfg.Jwt.SecretKey = "test_secret"
	cfg.Jwt.Audience = "biodata"
	cfg.Notifications.Email = "no-reply@example.gov.bd"
	cfg.Smtp.Host = "smtp.example.com"
	cfg.Smtp.Port = 587
	cfg.Smtp.From = "no-reply@example.gov.bd"
	cfg.Redis.Server = "localhost:6379"
	return cfg
}
