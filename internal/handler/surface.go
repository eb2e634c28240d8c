package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	ctxutil "github.com/cradoe/biodata/internal/context"
	"github.com/cradoe/biodata/internal/editor"
	"github.com/cradoe/biodata/internal/errHandler"
	"github.com/cradoe/biodata/internal/request"
	"github.com/cradoe/biodata/internal/response"
)

type SurfaceEditor interface {
	Load(ctx context.Context, s editor.Surface, ownerID string) (*editor.View, error)
	Submit(ctx context.Context, ownerID string, sub editor.Submission) error
}

type SurfaceHandler struct {
	Editor     SurfaceEditor
	ErrHandler *errHandler.ErrorHandler
}

func NewSurfaceHandler(handler *SurfaceHandler) *SurfaceHandler {
	return &SurfaceHandler{
		Editor:     handler.Editor,
		ErrHandler: handler.ErrHandler,
	}
}

func (h *SurfaceHandler) surface(w http.ResponseWriter, r *http.Request) (editor.Surface, bool) {
	s, err := editor.ParseSurface(r.PathValue("surface"))
	if err != nil {
		h.ErrHandler.NotFound(w, r)
		return "", false
	}
	return s, true
}

func (h *SurfaceHandler) HandleSurfaceLoad(w http.ResponseWriter, r *http.Request) {
	s, ok := h.surface(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()

	view, err := h.Editor.Load(ctx, s, ctxutil.ContextGetOwnerID(r))
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	err = response.JSONOkResponse(w, view, "", nil)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}

// HandleSurfaceSubmit replaces the lists present in the body. Each list is
// checked before anything is written; an empty list clears its domain.
func (h *SurfaceHandler) HandleSurfaceSubmit(w http.ResponseWriter, r *http.Request) {
	s, ok := h.surface(w, r)
	if !ok {
		return
	}

	var body map[string]json.RawMessage
	if err := request.DecodeJSON(w, r, &body); err != nil {
		h.ErrHandler.BadRequest(w, r, err)
		return
	}

	sub, err := editor.Decode(s, body)
	if err != nil {
		h.ErrHandler.BadRequest(w, r, err)
		return
	}

	ownerID := ctxutil.ContextGetOwnerID(r)

	// domains are written independently; give the whole batch one deadline
	ctx, cancel := context.WithTimeout(r.Context(), 2*defaultTimeout)
	defer cancel()

	err = h.Editor.Submit(ctx, ownerID, sub)
	var validationErr *editor.ValidationError
	switch {
	case errors.As(err, &validationErr):
		h.ErrHandler.FailedValidation(w, r, validationErr.Fields)
		return
	case errors.Is(err, editor.ErrSubmit):
		h.ErrHandler.SubmitFailed(w, r, err.Error())
		return
	case err != nil:
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	view, err := h.Editor.Load(ctx, s, ownerID)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	err = response.JSONOkResponse(w, view, "Changes saved", nil)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}
