package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/cradoe/biodata/internal/app"
	"github.com/cradoe/biodata/internal/auth"
	seeders "github.com/cradoe/biodata/internal/seeder"
	"github.com/cradoe/biodata/internal/version"
	"github.com/google/uuid"
)

func main() {
	var level slog.LevelVar
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: &level}))

	err := run(logger, &level)
	if err != nil {
		trace := string(debug.Stack())
		logger.Error(err.Error(), "trace", trace)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, level *slog.LevelVar) error {
	showVersion := flag.Bool("version", false, "display version and exit")
	seedOwner := flag.String("seed-owner", "", "fill the records of this owner id with demo data and exit")
	devToken := flag.String("dev-token", "", "print a bearer token for this owner id and exit")
	devTokenTTL := flag.Duration("dev-token-ttl", 24*time.Hour, "lifetime of the token printed by -dev-token")
	flag.Parse()

	if *showVersion {
		fmt.Printf("version: %s\n", version.Get())
		return nil
	}

	cfg := app.LoadConfig(logger)
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logger.Warn("unknown log level, using info", "level", cfg.LogLevel)
	}

	if *devToken != "" {
		if _, err := uuid.Parse(*devToken); err != nil {
			return fmt.Errorf("-dev-token: %w", err)
		}
		token, expiry, err := auth.IssueToken(*devToken, auth.TokenOptions{
			Secret:   cfg.Jwt.SecretKey,
			Issuer:   cfg.Jwt.Issuer,
			Audience: cfg.Jwt.Audience,
			TTL:      *devTokenTTL,
		}, time.Now())
		if err != nil {
			return err
		}
		fmt.Printf("%s\nexpires: %s\n", token, expiry.Format(time.RFC3339))
		return nil
	}

	application, err := app.NewApplication(cfg, logger)
	if err != nil {
		return err
	}
	defer application.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *seedOwner != "" {
		if _, err := uuid.Parse(*seedOwner); err != nil {
			return fmt.Errorf("-seed-owner: %w", err)
		}

		seeder := seeders.New(&seeders.Seeder{
			Records:  application.DB.Records(),
			Editor:   application.Editor,
			Notifier: application.Notifier,
			Logger:   logger,
		})
		err := seeder.Run(ctx, *seedOwner)
		application.WG.Wait()
		return err
	}

	application.StartWorkers(ctx)

	return application.ServeHTTP(ctx)
}
