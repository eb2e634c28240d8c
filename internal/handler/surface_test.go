package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cradoe/biodata/internal/editor"
	"github.com/cradoe/biodata/internal/mocks"
	"github.com/cradoe/biodata/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSurfaceRequest(method, surface string, body any) *http.Request {
	r := newRequest(method, "/v1/surfaces/"+surface, body)
	r.SetPathValue("surface", surface)
	return r
}

func newSurfaceHandler(ed *mocks.MockSurfaceEditor) *SurfaceHandler {
	return NewSurfaceHandler(&SurfaceHandler{Editor: ed, ErrHandler: newErrHandler()})
}

func TestHandleSurfaceLoad(t *testing.T) {
	ed := new(mocks.MockSurfaceEditor)
	view := &editor.View{
		Surface: editor.SurfaceChildren,
		Mode:    editor.ModeEditing,
		Domains: map[models.EntityType]any{models.EntityChildrenInfo: []models.ChildInformation{}},
	}
	ed.On("Load", mock.Anything, editor.SurfaceChildren, ownerID).Return(view, nil)

	rr := httptest.NewRecorder()
	newSurfaceHandler(ed).HandleSurfaceLoad(rr, newSurfaceRequest(http.MethodGet, "children", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"surface":"children","mode":"editing","domains":{"children_information":[]}}`, string(decodeEnvelope(t, rr).Data))
}

func TestHandleSurfaceUnknown(t *testing.T) {
	ed := new(mocks.MockSurfaceEditor)

	rr := httptest.NewRecorder()
	newSurfaceHandler(ed).HandleSurfaceLoad(rr, newSurfaceRequest(http.MethodGet, "pensions", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	ed.AssertNotCalled(t, "Load", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleSurfaceSubmit(t *testing.T) {
	body := map[string]any{
		"foreign_travels": []map[string]any{{"purpose": "Conference", "duration": "5 days", "country": "Japan"}},
	}

	tests := []struct {
		name       string
		body       any
		submitErr  error
		wantStatus int
		wantSubmit bool
	}{
		{
			name:       "saved",
			body:       body,
			wantStatus: http.StatusOK,
			wantSubmit: true,
		},
		{
			name:       "unknown domain",
			body:       map[string]any{"children_information": []any{}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed body",
			body:       `{"foreign_travels": [`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "validation failure",
			body:       body,
			submitErr:  &editor.ValidationError{Fields: map[string]string{"foreign_travels.0.country": "This field is required"}},
			wantStatus: http.StatusUnprocessableEntity,
			wantSubmit: true,
		},
		{
			name:       "store failure",
			body:       body,
			submitErr:  editor.ErrSubmit,
			wantStatus: http.StatusInternalServerError,
			wantSubmit: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ed := new(mocks.MockSurfaceEditor)
			ed.On("Submit", mock.Anything, ownerID, mock.MatchedBy(func(sub editor.Submission) bool {
				return sub.Surface == editor.SurfaceTraining && len(sub.Domains) == 1 &&
					sub.Domains[0].Entity == models.EntityForeignTravel
			})).Return(tt.submitErr)
			ed.On("Load", mock.Anything, editor.SurfaceTraining, ownerID).
				Return(&editor.View{Surface: editor.SurfaceTraining, Mode: editor.ModeViewing}, nil)

			rr := httptest.NewRecorder()
			newSurfaceHandler(ed).HandleSurfaceSubmit(rr, newSurfaceRequest(http.MethodPut, "training", tt.body))

			assert.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			if tt.wantSubmit {
				ed.AssertCalled(t, "Submit", mock.Anything, ownerID, mock.Anything)
			} else {
				ed.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestHandleSurfaceSubmitFailureMessage(t *testing.T) {
	ed := new(mocks.MockSurfaceEditor)
	ed.On("Submit", mock.Anything, ownerID, mock.Anything).Return(editor.ErrSubmit)

	rr := httptest.NewRecorder()
	newSurfaceHandler(ed).HandleSurfaceSubmit(rr, newSurfaceRequest(http.MethodPut, "education", map[string]any{
		"educational_qualifications": []any{},
	}))

	env := decodeEnvelope(t, rr)
	assert.False(t, env.Success)
	assert.Equal(t, "Failed to save changes, please try again", env.Message)
	ed.AssertNotCalled(t, "Load", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleSurfaceSubmitReloadFailure(t *testing.T) {
	ed := new(mocks.MockSurfaceEditor)
	ed.On("Submit", mock.Anything, ownerID, mock.Anything).Return(nil)
	ed.On("Load", mock.Anything, editor.SurfaceEducation, ownerID).Return(nil, errors.New("timeout"))

	rr := httptest.NewRecorder()
	newSurfaceHandler(ed).HandleSurfaceSubmit(rr, newSurfaceRequest(http.MethodPut, "education", map[string]any{
		"educational_qualifications": []any{},
	}))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
