package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	ctxutil "github.com/cradoe/biodata/internal/context"
	"github.com/cradoe/biodata/internal/errHandler"
	"github.com/cradoe/biodata/internal/helper"
	"github.com/stretchr/testify/require"
)

const ownerID = "3f1c2b7e-8d4a-4c1e-9b6f-2a5d7e9c0b14"

var now = time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)

type envelope struct {
	Status  int             `json:"status"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

func newErrHandler() *errHandler.ErrorHandler {
	var wg sync.WaitGroup
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return errHandler.New("", nil, logger, helper.New("http://localhost", &wg, nil))
}

// newRequest builds an authenticated request as the middleware would leave it.
func newRequest(method, target string, body any) *http.Request {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		js, _ := json.Marshal(b)
		reader = bytes.NewReader(js)
	}

	r := httptest.NewRequest(method, target, reader)
	return ctxutil.ContextSetOwnerID(r, ownerID)
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env), rr.Body.String())
	return env
}
