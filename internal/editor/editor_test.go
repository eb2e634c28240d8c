package editor

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"sync"
	"testing"

	"github.com/cradoe/biodata/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const owner = "owner-1"

type fakeStore struct {
	mu       sync.Mutex
	rows     map[models.EntityType][]models.Row
	fail     map[models.EntityType]error
	replaces int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		rows: map[models.EntityType][]models.Row{},
		fail: map[models.EntityType]error{},
	}
}

func (f *fakeStore) List(_ context.Context, entity models.EntityType, _ string, dest any) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.fail[entity]; err != nil {
		return err
	}
	out := reflect.ValueOf(dest).Elem()
	for _, r := range f.rows[entity] {
		out.Set(reflect.Append(out, reflect.ValueOf(r)))
	}
	return nil
}

func (f *fakeStore) ReplaceList(_ context.Context, entity models.EntityType, _ string, rows []models.Row) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.replaces++
	if err := f.fail[entity]; err != nil {
		return err
	}
	f.rows[entity] = rows
	return nil
}

type recordingNotifier struct {
	mu      sync.Mutex
	changed [][]models.EntityType
}

func (n *recordingNotifier) RecordsChanged(_ context.Context, _ string, entities []models.EntityType) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.changed = append(n.changed, entities)
}

func newTestEditor(store Store, notifier Notifier) *Editor {
	return New(store, notifier, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func validTravel() models.ForeignTravel {
	return models.ForeignTravel{Purpose: "Seminar", Duration: "7 days", Country: "Japan"}
}

func TestLoadInitialMode(t *testing.T) {
	store := newFakeStore()
	e := newTestEditor(store, nil)

	view, err := e.Load(context.Background(), SurfaceTraining, owner)
	require.NoError(t, err)
	assert.Equal(t, ModeEditing, view.Mode)
	require.Len(t, view.Domains, 5)
	assert.Equal(t, []models.ForeignTravel{}, view.Domains[models.EntityForeignTravel])

	store.rows[models.EntityForeignTravel] = []models.Row{validTravel()}

	view, err = e.Load(context.Background(), SurfaceTraining, owner)
	require.NoError(t, err)
	assert.Equal(t, ModeViewing, view.Mode)
	assert.Equal(t, []models.ForeignTravel{validTravel()}, view.Domains[models.EntityForeignTravel])
}

func TestLoadFailure(t *testing.T) {
	store := newFakeStore()
	store.fail[models.EntityLienDeputation] = errors.New("timeout")

	_, err := newTestEditor(store, nil).Load(context.Background(), SurfaceTraining, owner)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lien_deputations")

	_, err = newTestEditor(store, nil).Load(context.Background(), Surface("salary"), owner)
	assert.ErrorIs(t, err, ErrUnknownSurface)
}

func TestDecode(t *testing.T) {
	body := map[string]json.RawMessage{
		"foreign_travels":  json.RawMessage(`[{"purpose":"Seminar","duration":"7 days","country":"Japan"}]`),
		"foreign_postings": json.RawMessage(`[]`),
		"lien_deputations": json.RawMessage(`null`),
	}

	sub, err := Decode(SurfaceTraining, body)
	require.NoError(t, err)
	require.Len(t, sub.Domains, 3)

	assert.Equal(t, models.EntityForeignTravel, sub.Domains[0].Entity)
	assert.Equal(t, []models.Row{validTravel()}, sub.Domains[0].Rows)
	assert.Equal(t, models.EntityForeignPosting, sub.Domains[1].Entity)
	assert.Empty(t, sub.Domains[1].Rows)
	assert.Empty(t, sub.Domains[2].Rows)

	_, err = Decode(SurfaceTraining, map[string]json.RawMessage{"children_information": json.RawMessage(`[]`)})
	assert.Error(t, err)

	_, err = Decode(SurfaceEducation, map[string]json.RawMessage{"educational_qualifications": json.RawMessage(`{}`)})
	assert.Error(t, err)
}

func TestSubmitValidationFailureSkipsStore(t *testing.T) {
	store := newFakeStore()
	notifier := &recordingNotifier{}
	e := newTestEditor(store, notifier)

	year := 2005
	sub := Submission{
		Surface: SurfaceTraining,
		Domains: []DomainRows{
			{Entity: models.EntityForeignTravel, Rows: []models.Row{validTravel(), models.ForeignTravel{Purpose: "Visit", Country: " "}}},
			{Entity: models.EntityDomesticTraining, Rows: []models.Row{models.DomesticTraining{CourseName: "Finance"}}},
		},
	}

	err := e.Submit(context.Background(), owner, sub)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[string]string{
		"foreign_travels.1.duration":            "This field is required",
		"foreign_travels.1.country":             "This field is required",
		"domestic_trainings.0.institution_name": "This field is required",
		"domestic_trainings.0.duration":         "This field is required",
		"domestic_trainings.0.funding_source":   "This field is required",
	}, verr.Fields)
	assert.Zero(t, store.replaces)
	assert.Empty(t, notifier.changed)

	edu := Submission{Surface: SurfaceEducation, Domains: []DomainRows{{
		Entity: models.EntityEducation,
		Rows: []models.Row{
			models.EducationalQualification{DegreeTitle: "SSC", InstitutionName: "Dhaka Board", PassingYear: &year},
			models.EducationalQualification{DegreeTitle: "HSC", InstitutionName: "Dhaka College"},
		},
	}}}
	v := Validate(edu)
	assert.Equal(t, map[string]string{"educational_qualifications.1.passing_year": "This field is required"}, v.FieldErrors)
}

func TestValidateChildren(t *testing.T) {
	age := -1
	sub := Submission{Surface: SurfaceChildren, Domains: []DomainRows{{
		Entity: models.EntityChildrenInfo,
		Rows: []models.Row{
			models.ChildInformation{FullName: "Nadia", Gender: "female", MaritalStatus: "single", Age: &age},
		},
	}}}

	v := Validate(sub)
	assert.Len(t, v.FieldErrors, 2)
	assert.Contains(t, v.FieldErrors, "children_information.0.marital_status")
	assert.Contains(t, v.FieldErrors, "children_information.0.age")
}

func TestSubmitEmptyListClearsDomain(t *testing.T) {
	store := newFakeStore()
	store.rows[models.EntityForeignTravel] = []models.Row{validTravel()}
	notifier := &recordingNotifier{}
	e := newTestEditor(store, notifier)

	err := e.Submit(context.Background(), owner, Submission{
		Surface: SurfaceTraining,
		Domains: []DomainRows{{Entity: models.EntityForeignTravel, Rows: []models.Row{}}},
	})
	require.NoError(t, err)

	view, err := e.Load(context.Background(), SurfaceTraining, owner)
	require.NoError(t, err)
	assert.Equal(t, []models.ForeignTravel{}, view.Domains[models.EntityForeignTravel])
	assert.Equal(t, [][]models.EntityType{{models.EntityForeignTravel}}, notifier.changed)
}

func TestSubmitPartialFailure(t *testing.T) {
	store := newFakeStore()
	store.fail[models.EntityForeignPosting] = errors.New("deadlock detected")
	notifier := &recordingNotifier{}
	e := newTestEditor(store, notifier)

	posting := models.ForeignPosting{Designation: "Counsellor", InstitutionName: "Embassy", Country: "Italy", Duration: "3 years", FundingSource: "GoB"}
	err := e.Submit(context.Background(), owner, Submission{
		Surface: SurfaceTraining,
		Domains: []DomainRows{
			{Entity: models.EntityForeignTravel, Rows: []models.Row{validTravel()}},
			{Entity: models.EntityForeignPosting, Rows: []models.Row{posting}},
		},
	})
	require.ErrorIs(t, err, ErrSubmit)

	assert.Equal(t, 2, store.replaces)
	assert.Equal(t, []models.Row{validTravel()}, store.rows[models.EntityForeignTravel], "independent domain stays committed")
	assert.Equal(t, [][]models.EntityType{{models.EntityForeignTravel}}, notifier.changed)
}

func TestTransition(t *testing.T) {
	tests := []struct {
		from    Mode
		event   Event
		want    Mode
		wantErr bool
	}{
		{ModeViewing, EventEdit, ModeEditing, false},
		{ModeEditing, EventSubmit, ModeSubmitting, false},
		{ModeEditing, EventCancel, ModeViewing, false},
		{ModeSubmitting, EventSucceeded, ModeViewing, false},
		{ModeSubmitting, EventFailed, ModeEditing, false},
		{ModeViewing, EventSubmit, ModeViewing, true},
		{ModeSubmitting, EventCancel, ModeSubmitting, true},
	}

	for _, tt := range tests {
		got, err := Transition(tt.from, tt.event)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidTransition)
		} else {
			assert.NoError(t, err)
		}
		assert.Equal(t, tt.want, got, "%s on %s", tt.event, tt.from)
	}
}

func TestSession(t *testing.T) {
	store := newFakeStore()
	e := newTestEditor(store, nil)
	ctx := context.Background()

	s, err := e.Open(ctx, SurfaceTraining, owner)
	require.NoError(t, err)
	assert.Equal(t, ModeEditing, s.Mode(), "empty surface opens in edit mode")

	bad := Submission{Surface: SurfaceTraining, Domains: []DomainRows{
		{Entity: models.EntityForeignTravel, Rows: []models.Row{models.ForeignTravel{}}},
	}}
	require.Error(t, s.Submit(ctx, bad))
	assert.Equal(t, ModeEditing, s.Mode())

	good := Submission{Surface: SurfaceTraining, Domains: []DomainRows{
		{Entity: models.EntityForeignTravel, Rows: []models.Row{validTravel()}},
	}}
	require.NoError(t, s.Submit(ctx, good))
	assert.Equal(t, ModeViewing, s.Mode())
	assert.Equal(t, []models.ForeignTravel{validTravel()}, s.View().Domains[models.EntityForeignTravel])

	require.NoError(t, s.Edit())
	before := s.View()
	require.NoError(t, s.Cancel())
	assert.Equal(t, ModeViewing, s.Mode())
	assert.Same(t, before, s.View())

	assert.ErrorIs(t, s.Cancel(), ErrInvalidTransition)
	assert.Error(t, s.Submit(ctx, Submission{Surface: SurfaceChildren}))
}
