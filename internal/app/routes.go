package app

import (
	"net/http"
	"time"

	"github.com/cradoe/biodata/internal/handler"
	"github.com/cradoe/biodata/internal/middleware"
)

func (app *Application) routes() http.Handler {
	mux := http.NewServeMux()

	middlewareRepo := middleware.New(app.errorHandler, app.Logger, &app.Config)
	location := app.Config.Location()

	checks := map[string]handler.Pinger{"database": app.DB.Ping}
	if app.Cache != nil {
		checks["cache"] = app.Cache.Ping
	}

	healthHandler := handler.NewHealthCheckHandler(&handler.HealthCheckHandler{
		ErrHandler: app.errorHandler,
		Checks:     checks,
	})
	activityHandler := handler.NewActivityHandler(&handler.ActivityHandler{
		Activity:   app.Activity,
		ErrHandler: app.errorHandler,
		Location:   location,
		Now:        time.Now,
	})
	surfaceHandler := handler.NewSurfaceHandler(&handler.SurfaceHandler{
		Editor:     app.Editor,
		ErrHandler: app.errorHandler,
	})
	recordHandler := handler.NewRecordHandler(&handler.RecordHandler{
		Records:    app.DB.Records(),
		Notifier:   app.Notifier,
		Uploader:   app.FileUploader,
		ErrHandler: app.errorHandler,
	})
	biographyHandler := handler.NewBiographyHandler(&handler.BiographyHandler{
		Records:    app.DB.Records(),
		ErrHandler: app.errorHandler,
		Location:   location,
		Now:        time.Now,
	})

	authed := func(h http.HandlerFunc) http.Handler {
		return middlewareRepo.RequireAuthenticatedUser(h)
	}

	mux.HandleFunc("GET /v1/healthcheck", healthHandler.HandleHealthCheck)

	mux.Handle("GET /v1/activities", authed(activityHandler.HandleActivityFeed))
	mux.Handle("GET /v1/activities/unseen", authed(activityHandler.HandleUnseenCount))
	mux.Handle("POST /v1/activities/seen", authed(activityHandler.HandleMarkSeen))
	mux.Handle("GET /v1/activities/export", authed(activityHandler.HandleActivityExport))

	mux.Handle("GET /v1/surfaces/{surface}", authed(surfaceHandler.HandleSurfaceLoad))
	mux.Handle("PUT /v1/surfaces/{surface}", authed(surfaceHandler.HandleSurfaceSubmit))

	mux.Handle("GET /v1/profile", authed(recordHandler.HandleGetProfile))
	mux.Handle("PUT /v1/profile", authed(recordHandler.HandlePutProfile))
	mux.Handle("POST /v1/profile/photo", authed(recordHandler.HandleUploadPhoto))
	mux.Handle("GET /v1/office", authed(recordHandler.HandleGetOffice))
	mux.Handle("PUT /v1/office", authed(recordHandler.HandlePutOffice))
	mux.Handle("GET /v1/general", authed(recordHandler.HandleGetGeneral))
	mux.Handle("PUT /v1/general", authed(recordHandler.HandlePutGeneral))
	mux.Handle("GET /v1/marital", authed(recordHandler.HandleGetMarital))
	mux.Handle("PUT /v1/marital", authed(recordHandler.HandlePutMarital))

	mux.Handle("GET /v1/biography", authed(biographyHandler.HandleBiography))
	mux.Handle("GET /v1/biography/print", authed(biographyHandler.HandleBiographyPrint))

	mux.HandleFunc("/", app.errorHandler.NotFound)

	return middlewareRepo.LogAccess(middlewareRepo.RecoverPanic(middlewareRepo.Authenticate(mux)))
}
