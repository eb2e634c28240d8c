package handler

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/cradoe/biodata/internal/biography"
	ctxutil "github.com/cradoe/biodata/internal/context"
	"github.com/cradoe/biodata/internal/errHandler"
	"github.com/cradoe/biodata/internal/models"
	"github.com/cradoe/biodata/internal/response"
)

type SnapshotReader interface {
	Snapshot(ctx context.Context, ownerID string) (*models.Snapshot, error)
}

type BiographyHandler struct {
	Records    SnapshotReader
	ErrHandler *errHandler.ErrorHandler
	Location   *time.Location
	Now        func() time.Time
}

func NewBiographyHandler(handler *BiographyHandler) *BiographyHandler {
	h := &BiographyHandler{
		Records:    handler.Records,
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

func (h *BiographyHandler) snapshot(r *http.Request) (*models.Snapshot, error) {
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()

	return h.Records.Snapshot(ctx, ctxutil.ContextGetOwnerID(r))
}

func (h *BiographyHandler) HandleBiography(w http.ResponseWriter, r *http.Request) {
	snap, err := h.snapshot(r)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	err = response.JSONOkResponse(w, snap, "", nil)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}

// HandleBiographyPrint renders the biography form as a printable page. The page
// is built in memory so a template failure still yields a JSON error.
func (h *BiographyHandler) HandleBiographyPrint(w http.ResponseWriter, r *http.Request) {
	snap, err := h.snapshot(r)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	doc := biography.Build(snap, requestLang(r), h.Now().In(h.Location))

	var buf bytes.Buffer
	if err := biography.Render(&buf, doc); err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
