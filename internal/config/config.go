package config

import "time"

type Config struct {
	BaseURL  string
	HttpPort int
	LogLevel string
	Db       struct {
		Dsn         string
		Automigrate bool
	}
	Jwt struct {
		SecretKey string
		Issuer    string
		Audience  string
	}
	Notifications struct {
		Email string
	}
	Smtp struct {
		Host     string
		Port     int
		Username string
		Password string
		From     string
	}
	Redis struct {
		Server string
		DB     int
	}
	FileUploader struct {
		CloudName string
		ApiKey    string
		ApiSecret string
		Folder    string
	}
	KafkaServers string

	// FeedCacheTTL of zero disables the activity feed cache.
	FeedCacheTTL time.Duration
	// DisplayTimezone is the IANA zone activity times are printed in.
	DisplayTimezone string
}

// Location resolves DisplayTimezone, falling back to UTC.
func (c Config) Location() *time.Location {
	if c.DisplayTimezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.DisplayTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
