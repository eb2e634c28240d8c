package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cradoe/biodata/internal/export"
	"github.com/cradoe/biodata/internal/lastseen"
	"github.com/cradoe/biodata/internal/locale"
	"github.com/cradoe/biodata/internal/mocks"
	"github.com/cradoe/biodata/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleFeed() []models.ActivityEntry {
	return []models.ActivityEntry{
		{
			ID:          "foreign_travels-t1",
			ActionType:  models.ActionUpdated,
			Description: "Foreign travel to Japan updated",
			EntityType:  models.EntityForeignTravel,
			EntityID:    "t1",
			Timestamp:   now,
		},
		{
			ID:          "profile-p1",
			ActionType:  models.ActionCreated,
			Description: "Profile created",
			EntityType:  models.EntityProfile,
			EntityID:    "p1",
			Timestamp:   now.Add(-time.Hour),
		},
	}
}

func newActivityHandler(svc *mocks.MockActivityService) *ActivityHandler {
	return NewActivityHandler(&ActivityHandler{
		Activity:   svc,
		ErrHandler: newErrHandler(),
		Now:        func() time.Time { return now },
	})
}

func TestHandleActivityFeed(t *testing.T) {
	svc := new(mocks.MockActivityService)
	svc.On("Feed", mock.Anything, ownerID, locale.EN).Return(sampleFeed(), nil)

	rr := httptest.NewRecorder()
	newActivityHandler(svc).HandleActivityFeed(rr, newRequest(http.MethodGet, "/v1/activities?action=created", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	env := decodeEnvelope(t, rr)

	var data []ActivityResponseData
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data, 1)
	assert.Equal(t, "profile-p1", data[0].ID)
	assert.Equal(t, "Profile", data[0].EntityLabel)
	assert.Equal(t, "Jun 10, 2024, 07:00 AM", data[0].FormattedTime)
}

func TestHandleActivityFeedEmpty(t *testing.T) {
	svc := new(mocks.MockActivityService)
	svc.On("Feed", mock.Anything, ownerID, locale.BN).Return([]models.ActivityEntry{}, nil)

	rr := httptest.NewRecorder()
	newActivityHandler(svc).HandleActivityFeed(rr, newRequest(http.MethodGet, "/v1/activities?lang=bn", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	env := decodeEnvelope(t, rr)
	assert.Equal(t, locale.T(locale.BN, "activity_empty"), env.Message)
}

func TestHandleActivityFeedFailure(t *testing.T) {
	svc := new(mocks.MockActivityService)
	svc.On("Feed", mock.Anything, ownerID, locale.EN).Return(nil, errors.New("connection reset"))

	rr := httptest.NewRecorder()
	newActivityHandler(svc).HandleActivityFeed(rr, newRequest(http.MethodGet, "/v1/activities", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "connection reset")
}

func TestHandleUnseenCount(t *testing.T) {
	svc := new(mocks.MockActivityService)
	svc.On("UnseenCount", mock.Anything, ownerID).Return(3, nil)

	rr := httptest.NewRecorder()
	newActivityHandler(svc).HandleUnseenCount(rr, newRequest(http.MethodGet, "/v1/activities/unseen", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"count":3}`, string(decodeEnvelope(t, rr).Data))
}

func TestHandleMarkSeen(t *testing.T) {
	svc := new(mocks.MockActivityService)
	svc.On("MarkSeen", mock.Anything, ownerID).Return(lastseen.Marker{At: now, Version: 2}, nil)

	rr := httptest.NewRecorder()
	newActivityHandler(svc).HandleMarkSeen(rr, newRequest(http.MethodPost, "/v1/activities/seen", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"seen_at":"2024-06-10T08:00:00Z","version":2}`, string(decodeEnvelope(t, rr).Data))
	svc.AssertExpectations(t)
}

func TestHandleActivityExport(t *testing.T) {
	svc := new(mocks.MockActivityService)
	svc.On("Feed", mock.Anything, ownerID, locale.EN).Return(sampleFeed(), nil)

	rr := httptest.NewRecorder()
	newActivityHandler(svc).HandleActivityExport(rr, newRequest(http.MethodGet, "/v1/activities/export", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, export.ContentType, rr.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="activity_logs_2024-06-10.xlsx"`, rr.Header().Get("Content-Disposition"))

	f, err := excelize.OpenReader(bytes.NewReader(rr.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(export.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"updated", "Foreign travel to Japan updated", "Foreign Travel", "Jun 10, 2024, 08:00 AM"}, rows[1])
}
