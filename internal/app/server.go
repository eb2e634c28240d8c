package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cradoe/biodata/internal/worker"
)

const (
	defaultIdleTimeout    = time.Minute
	defaultReadTimeout    = 5 * time.Second
	defaultWriteTimeout   = 30 * time.Second
	defaultShutdownPeriod = 30 * time.Second
)

// ServeHTTP blocks until ctx is cancelled or the listener fails. On
// cancellation in-flight requests and background tasks are given time to
// finish. A failed listener returns at once and Close stops the workers.
func (app *Application) ServeHTTP(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", app.Config.HttpPort),
		Handler:           app.routes(),
		ErrorLog:          slog.NewLogLogger(app.Logger.Handler(), slog.LevelWarn),
		IdleTimeout:       defaultIdleTimeout,
		ReadHeaderTimeout: defaultReadTimeout,
		ReadTimeout:       defaultReadTimeout,
		WriteTimeout:      defaultWriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		app.Logger.Info("starting server", slog.Group("server", "addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		app.Logger.Info("shutting down server", slog.Group("server", "addr", srv.Addr))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownPeriod)
		defer cancel()

		err := srv.Shutdown(shutdownCtx)
		app.WG.Wait()
		if err != nil {
			return err
		}
		app.Logger.Info("stopped server", slog.Group("server", "addr", srv.Addr))
		return nil
	case err := <-errCh:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// StartWorkers runs the change-event consumers until ctx ends or Close is
// called. Nothing is started when change events are disabled.
func (app *Application) StartWorkers(ctx context.Context) {
	if app.Kafka == nil {
		return
	}

	ctx, app.stopWorkers = context.WithCancel(ctx)

	wk := worker.New(&worker.Worker{
		KafkaStream: app.Kafka,
		Activity:    app.Activity,
		Ctx:         ctx,
		Helper:      app.helper,
		Logger:      app.Logger,
	})

	app.WG.Add(1)
	go func() {
		defer app.WG.Done()
		if err := wk.FeedInvalidationWorker(); err != nil {
			app.Logger.Error("feed invalidation worker stopped", "error", err)
		}
	}()
}
