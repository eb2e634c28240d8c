package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	ctxutil "github.com/cradoe/biodata/internal/context"
	"github.com/cradoe/biodata/internal/models"
	"github.com/cradoe/biodata/internal/response"
)

const maxPhotoSize = 10 << 20 // 10 MB

var errNotAnImage = errors.New("the uploaded file must be an image")

// HandleUploadPhoto stores a new profile photo and returns its public URL.
func (h *RecordHandler) HandleUploadPhoto(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxPhotoSize+1<<20)

	err := r.ParseMultipartForm(maxPhotoSize)
	if err != nil {
		h.ErrHandler.BadRequest(w, r, errors.New("invalid request data"))
		return
	}

	// Get the uploaded file
	file, header, err := r.FormFile("file")
	if err != nil {
		h.ErrHandler.BadRequest(w, r, errors.New("error retrieving the file"))
		return
	}
	defer file.Close()

	if header.Size > maxPhotoSize {
		h.ErrHandler.BadRequest(w, r, errors.New("the file must not be larger than 10 MB"))
		return
	}

	sniff := make([]byte, 512)
	n, err := io.ReadFull(file, sniff)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		h.ErrHandler.BadRequest(w, r, errors.New("error retrieving the file"))
		return
	}
	if !strings.HasPrefix(http.DetectContentType(sniff[:n]), "image/") {
		h.ErrHandler.BadRequest(w, r, errNotAnImage)
		return
	}

	// Save the file temporarily to the server
	tempFile, err := os.CreateTemp("", fmt.Sprintf("photo-*%s", filepath.Ext(header.Filename)))
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}
	defer os.Remove(tempFile.Name())
	defer tempFile.Close()

	_, err = io.Copy(tempFile, io.MultiReader(bytes.NewReader(sniff[:n]), file))
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	ownerID := ctxutil.ContextGetOwnerID(r)

	// uploads can be slow; they get their own deadline
	ctx, cancel := context.WithTimeout(r.Context(), 10*defaultTimeout)
	defer cancel()

	url, err := h.Uploader.UploadFile(ctx, tempFile.Name())
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	if err := h.Records.SetPhotoURL(ctx, ownerID, url); err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}
	notify(ctx, h.Notifier, ownerID, models.EntityProfile)

	message := "Photo uploaded successfully"
	err = response.JSONOkResponse(w, map[string]any{"photo_url": url}, message, nil)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}
