package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cradoe/biodata/internal/activity"
	"github.com/cradoe/biodata/internal/cache"
	"github.com/cradoe/biodata/internal/config"
	"github.com/cradoe/biodata/internal/editor"
	"github.com/cradoe/biodata/internal/env"
	"github.com/cradoe/biodata/internal/errHandler"
	"github.com/cradoe/biodata/internal/file"
	"github.com/cradoe/biodata/internal/helper"
	"github.com/cradoe/biodata/internal/lastseen"
	"github.com/cradoe/biodata/internal/repository"
	"github.com/cradoe/biodata/internal/smtp"
	"github.com/cradoe/biodata/internal/stream"
	"github.com/cradoe/biodata/internal/worker"
	"github.com/joho/godotenv"
)

// Essential services and resources are exposed to the application
// this makes it possible for methods to have access to these items and when they need them
type Application struct {
	Config       config.Config
	DB           *repository.DatabaseImpl
	Cache        *cache.Cache
	Logger       *slog.Logger
	Mailer       *smtp.Mailer
	WG           sync.WaitGroup
	stopWorkers  context.CancelFunc
	errorHandler *errHandler.ErrorHandler
	helper       *helper.HelperRepository
	Kafka        *stream.KafkaStream
	FileUploader *file.FileUploader

	Activity *activity.Aggregator
	Editor   *editor.Editor
	Notifier *worker.ChangeNotifier
}

// LoadConfig reads the configuration from the environment and the .env file.
func LoadConfig(logger *slog.Logger) config.Config {
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", "error", err)
	}

	var cfg config.Config

	// Default values are provided for these items and these should strictly be values for development mode only
	// make sure no production-level value is exposed as default value here
	cfg.BaseURL = env.GetString("BASE_URL", "http://localhost:4444")
	cfg.HttpPort = env.GetInt("HTTP_PORT", 4444)
	cfg.LogLevel = env.GetString("LOG_LEVEL", "info")

	cfg.Db.Dsn = env.GetString("DB_DSN", "user:pass@localhost:5432/db?sslmode=disable")
	cfg.Db.Automigrate = env.GetBool("DB_AUTOMIGRATE", true)

	cfg.Jwt.SecretKey = env.GetString("JWT_SECRET_KEY", "ajf5nx3qmp6zquevllxocxqvyz42ypuo")
	cfg.Jwt.Issuer = env.GetString("JWT_ISSUER", "")
	cfg.Jwt.Audience = env.GetString("JWT_AUDIENCE", "")

	// server errors won't be sent via email if the NOTIFICATIONS_EMAIL wasn't set in the .env file
	cfg.Notifications.Email = env.GetString("NOTIFICATIONS_EMAIL", "")

	cfg.Smtp.Host = env.GetString("SMTP_HOST", "example.smtp.host")
	cfg.Smtp.Port = env.GetInt("SMTP_PORT", 25)
	cfg.Smtp.Username = env.GetString("SMTP_USERNAME", "example_username")
	cfg.Smtp.Password = env.GetString("SMTP_PASSWORD", "pa55word")
	cfg.Smtp.From = env.GetString("SMTP_FROM", "Example Name <no_reply@example.org>")

	// an empty REDIS_SERVER keeps last-seen markers in process and disables the feed cache
	cfg.Redis.Server = env.GetString("REDIS_SERVER", "localhost:6379")
	cfg.Redis.DB = env.GetInt("REDIS_DB", 0)

	// an empty KAFKA_SERVERS disables change events
	cfg.KafkaServers = env.GetString("KAFKA_SERVERS", "localhost:9092")

	cfg.FileUploader.ApiKey = env.GetString("CLOUDINARY_API_KEY", "")
	cfg.FileUploader.CloudName = env.GetString("CLOUDINARY_CLOUD_NAME", "")
	cfg.FileUploader.ApiSecret = env.GetString("CLOUDINARY_API_SECRET", "")
	cfg.FileUploader.Folder = env.GetString("CLOUDINARY_FOLDER", "biodata/photos")

	cfg.FeedCacheTTL = env.GetDuration("FEED_CACHE_TTL", 5*time.Minute)
	cfg.DisplayTimezone = env.GetString("DISPLAY_TIMEZONE", "Asia/Dhaka")

	return cfg
}

func NewApplication(cfg config.Config, logger *slog.Logger) (*Application, error) {
	db, err := repository.New(cfg.Db.Dsn, cfg.Db.Automigrate)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	mailer, err := smtp.NewMailer(cfg.Smtp.Host, cfg.Smtp.Port, cfg.Smtp.Username, cfg.Smtp.Password, cfg.Smtp.From)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize mailer: %w", err)
	}

	app := &Application{
		Config:       cfg,
		DB:           db,
		Logger:       logger,
		Mailer:       mailer,
		FileUploader: file.New(cfg.FileUploader.CloudName, cfg.FileUploader.ApiKey, cfg.FileUploader.ApiSecret, cfg.FileUploader.Folder),
	}

	app.helper = helper.New(cfg.BaseURL, &app.WG, nil)
	app.errorHandler = errHandler.New(cfg.Notifications.Email, mailer, logger, app.helper)
	app.helper.SetReporter(app.errorHandler)

	records := db.Records()

	if cfg.Redis.Server != "" {
		app.Cache = cache.New(cfg.Redis.Server, cfg.Redis.DB)
	}

	app.Activity = activity.New(records, markerStore(app.Cache), logger)
	if app.Cache != nil && cfg.FeedCacheTTL > 0 {
		app.Activity.UseCache(app.Cache, cfg.FeedCacheTTL)
	}

	var publisher worker.Publisher
	if cfg.KafkaServers != "" {
		app.Kafka = stream.New(cfg.KafkaServers)
		publisher = stream.NewChangePublisher(app.Kafka)
	}

	app.Notifier = worker.NewChangeNotifier(app.Activity, publisher, app.helper, logger)
	app.Editor = editor.New(records, app.Notifier, logger)

	return app, nil
}

// markerStore keeps last-seen markers in redis when one is configured.
func markerStore(c *cache.Cache) lastseen.Store {
	if c == nil {
		return lastseen.NewMemoryStore()
	}
	return lastseen.NewRedisStore(c)
}

// Close stops the workers, waits for every background task and then releases
// the connections held by the application.
func (app *Application) Close() {
	if app.stopWorkers != nil {
		app.stopWorkers()
	}
	app.WG.Wait()

	if app.Kafka != nil {
		app.Kafka.Close()
	}
	if app.Cache != nil {
		if err := app.Cache.Close(); err != nil {
			app.Logger.Warn("closing cache", "error", err)
		}
	}
	if err := app.DB.Close(); err != nil {
		app.Logger.Warn("closing database", "error", err)
	}
}
