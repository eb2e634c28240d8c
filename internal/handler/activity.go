package handler

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/cradoe/biodata/internal/activity"
	ctxutil "github.com/cradoe/biodata/internal/context"
	"github.com/cradoe/biodata/internal/errHandler"
	"github.com/cradoe/biodata/internal/export"
	"github.com/cradoe/biodata/internal/lastseen"
	"github.com/cradoe/biodata/internal/locale"
	"github.com/cradoe/biodata/internal/models"
	"github.com/cradoe/biodata/internal/response"
)

type ActivityService interface {
	Feed(ctx context.Context, ownerID string, lang locale.Lang) ([]models.ActivityEntry, error)
	UnseenCount(ctx context.Context, ownerID string) (int, error)
	MarkSeen(ctx context.Context, ownerID string) (lastseen.Marker, error)
}

type ActivityHandler struct {
	Activity   ActivityService
	ErrHandler *errHandler.ErrorHandler
	Location   *time.Location
	Now        func() time.Time
}

func NewActivityHandler(handler *ActivityHandler) *ActivityHandler {
	h := &ActivityHandler{
		Activity:   handler.Activity,
		ErrHandler: handler.ErrHandler,
		Location:   handler.Location,
		Now:        handler.Now,
	}
	if h.Location == nil {
		h.Location = time.UTC
	}
	if h.Now == nil {
		h.Now = time.Now
	}
	return h
}

type ActivityResponseData struct {
	models.ActivityEntry
	EntityLabel   string `json:"entity_label"`
	FormattedTime string `json:"formatted_time"`
}

type MarkSeenResponseData struct {
	SeenAt  time.Time `json:"seen_at"`
	Version int64     `json:"version"`
}

func (h *ActivityHandler) filteredFeed(r *http.Request) ([]models.ActivityEntry, locale.Lang, error) {
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()

	lang := requestLang(r)
	entries, err := h.Activity.Feed(ctx, ctxutil.ContextGetOwnerID(r), lang)
	if err != nil {
		return nil, lang, err
	}

	filter := models.ParseActionFilter(r.URL.Query().Get("action"))
	return activity.Filter(entries, filter), lang, nil
}

// HandleActivityFeed lists the owner's activity, newest first, optionally
// narrowed with ?action=created|updated.
func (h *ActivityHandler) HandleActivityFeed(w http.ResponseWriter, r *http.Request) {
	entries, lang, err := h.filteredFeed(r)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	data := make([]ActivityResponseData, len(entries))
	for i, e := range entries {
		data[i] = ActivityResponseData{
			ActivityEntry: e,
			EntityLabel:   activity.EntityLabel(lang, e.EntityType),
			FormattedTime: locale.FormatTimestamp(lang, e.Timestamp, h.Location),
		}
	}

	message := ""
	if len(data) == 0 {
		message = locale.T(lang, "activity_empty")
	}

	err = response.JSONOkResponse(w, data, message, nil)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}

func (h *ActivityHandler) HandleUnseenCount(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()

	count, err := h.Activity.UnseenCount(ctx, ctxutil.ContextGetOwnerID(r))
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	err = response.JSONOkResponse(w, map[string]any{"count": count}, "", nil)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}

func (h *ActivityHandler) HandleMarkSeen(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()

	marker, err := h.Activity.MarkSeen(ctx, ctxutil.ContextGetOwnerID(r))
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	data := MarkSeenResponseData{SeenAt: marker.At, Version: marker.Version}
	err = response.JSONOkResponse(w, data, "Activity marked as seen", nil)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}

// HandleActivityExport downloads the filtered feed as an xlsx workbook.
func (h *ActivityHandler) HandleActivityExport(w http.ResponseWriter, r *http.Request) {
	entries, lang, err := h.filteredFeed(r)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteActivity(&buf, activity.ExportRows(entries, lang, h.Location)); err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+activity.ExportFilename(h.Now())+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
