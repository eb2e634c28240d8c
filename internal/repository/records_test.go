package repository

import (
	"context"
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/cradoe/biodata/assets"
	"github.com/cradoe/biodata/internal/models"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

const (
	ownerA = "0b7f5a6e-6a43-4a8e-9d0c-1f1d6f0b2a11"
	ownerB = "7c1e0d2a-94e4-4d7b-8f26-52b0e1c6a9f3"
)

// sqliteSchema rewrites the Postgres migration into something sqlite accepts.
func sqliteSchema(t *testing.T) []string {
	t.Helper()

	raw, err := fs.ReadFile(assets.EmbeddedFiles, "migrations/000001_create_records.up.sql")
	require.NoError(t, err)

	ddl := strings.NewReplacer(
		"UUID", "TEXT",
		"TIMESTAMPTZ", "TIMESTAMP",
		"DEFAULT NOW()", "DEFAULT CURRENT_TIMESTAMP",
	).Replace(string(raw))

	var statements []string
	for _, stmt := range strings.Split(ddl, ";") {
		if strings.TrimSpace(stmt) != "" {
			statements = append(statements, stmt)
		}
	}
	return statements
}

type testClock struct {
	at time.Time
}

func (c *testClock) now() time.Time { return c.at }

func newTestRepo(t *testing.T) (*RecordRepositoryImpl, *testClock) {
	t.Helper()

	db, err := sqlx.Open("sqlite", "file::memory:?_time_format=sqlite")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	for _, stmt := range sqliteSchema(t) {
		_, err := db.Exec(stmt)
		require.NoError(t, err, stmt)
	}

	clock := &testClock{at: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
	repo := NewRecordRepository(db).(*RecordRepositoryImpl)
	repo.now = clock.now

	return repo, clock
}

func TestRegistryMatchesModels(t *testing.T) {
	rows := map[models.EntityType]models.Row{
		models.EntityProfile:          models.Profile{},
		models.EntityGeneralInfo:      models.GeneralInformation{},
		models.EntityOfficeInfo:       models.OfficeInformation{},
		models.EntityMaritalInfo:      models.MaritalInformation{},
		models.EntityChildrenInfo:     models.ChildInformation{},
		models.EntityEducation:        models.EducationalQualification{},
		models.EntityDomesticTraining: models.DomesticTraining{},
		models.EntityForeignTraining:  models.ForeignTraining{},
		models.EntityForeignTravel:    models.ForeignTravel{},
		models.EntityForeignPosting:   models.ForeignPosting{},
		models.EntityLienDeputation:   models.LienDeputation{},
	}

	tables := Tables()
	require.Len(t, tables, len(models.AllEntities))

	for i, table := range tables {
		assert.Equal(t, models.AllEntities[i], table.Entity, "registry order")

		row, ok := rows[table.Entity]
		require.True(t, ok, table.Entity)
		assert.Len(t, row.Values(), len(table.Columns), table.Name)

		for _, req := range table.Required {
			assert.Contains(t, table.Columns, req, table.Name)
		}
	}

	assert.Len(t, models.Spouse{}.Values(), len(spouseTable.Columns))

	_, err := Lookup("salary")
	require.ErrorIs(t, err, ErrUnknownEntity)
}

func TestReplaceList(t *testing.T) {
	repo, clock := newTestRepo(t)
	ctx := context.Background()

	err := repo.ReplaceList(ctx, models.EntityDomesticTraining, ownerA, []models.Row{
		models.DomesticTraining{CourseName: "Foundation", InstitutionName: "BPATC", Duration: "4 months", FundingSource: "GoB"},
		models.DomesticTraining{CourseName: "ICT", InstitutionName: "BCC", Duration: "2 weeks", FundingSource: "GoB"},
	})
	require.NoError(t, err)

	err = repo.ReplaceList(ctx, models.EntityDomesticTraining, ownerB, []models.Row{
		models.DomesticTraining{CourseName: "Other owner", InstitutionName: "X", Duration: "1 day", FundingSource: "Y"},
	})
	require.NoError(t, err)

	var trainings []models.DomesticTraining
	require.NoError(t, repo.List(ctx, models.EntityDomesticTraining, ownerA, &trainings))
	require.Len(t, trainings, 2)
	assert.Equal(t, "Foundation", trainings[0].CourseName)
	assert.Equal(t, "ICT", trainings[1].CourseName)
	assert.Equal(t, ownerA, trainings[0].UserID)
	require.NotNil(t, trainings[0].UpdatedAt)
	assert.True(t, trainings[0].CreatedAt.Equal(*trainings[0].UpdatedAt))
	assert.True(t, trainings[0].CreatedAt.Equal(clock.at))

	clock.at = clock.at.Add(time.Hour)
	err = repo.ReplaceList(ctx, models.EntityDomesticTraining, ownerA, []models.Row{
		models.DomesticTraining{CourseName: "Leadership", InstitutionName: "BPATC", Duration: "1 week", FundingSource: "GoB"},
	})
	require.NoError(t, err)

	trainings = nil
	require.NoError(t, repo.List(ctx, models.EntityDomesticTraining, ownerA, &trainings))
	require.Len(t, trainings, 1)
	assert.Equal(t, "Leadership", trainings[0].CourseName)

	// an empty submission clears the domain
	require.NoError(t, repo.ReplaceList(ctx, models.EntityDomesticTraining, ownerA, nil))
	trainings = nil
	require.NoError(t, repo.List(ctx, models.EntityDomesticTraining, ownerA, &trainings))
	assert.Empty(t, trainings)

	// other owners are untouched
	trainings = nil
	require.NoError(t, repo.List(ctx, models.EntityDomesticTraining, ownerB, &trainings))
	assert.Len(t, trainings, 1)
}

func TestReplaceListRejectsSingular(t *testing.T) {
	repo, _ := newTestRepo(t)

	err := repo.ReplaceList(context.Background(), models.EntityProfile, ownerA, nil)
	require.ErrorIs(t, err, ErrNotList)

	_, err = repo.Upsert(context.Background(), models.EntityEducation, ownerA, models.EducationalQualification{})
	require.ErrorIs(t, err, ErrNotSingular)
}

func TestUpsertCreatesThenUpdates(t *testing.T) {
	repo, clock := newTestRepo(t)
	ctx := context.Background()
	created := clock.at

	birth := models.NewDate(1985, time.March, 14)
	id, err := repo.Upsert(ctx, models.EntityProfile, ownerA, models.Profile{FullName: "Rahim Uddin", DateOfBirth: &birth})
	require.NoError(t, err)
	assert.Equal(t, ownerA, id)

	stamps, err := repo.Stamps(ctx, models.EntityProfile, ownerA)
	require.NoError(t, err)
	require.Len(t, stamps, 1)
	assert.True(t, stamps[0].UpdatedAt.Valid)
	assert.True(t, stamps[0].CreatedAt.Equal(stamps[0].UpdatedAt.Time))

	clock.at = clock.at.Add(2 * time.Hour)
	id, err = repo.Upsert(ctx, models.EntityProfile, ownerA, models.Profile{FullName: "Rahim Uddin Ahmed", DateOfBirth: &birth})
	require.NoError(t, err)
	assert.Equal(t, ownerA, id)

	var profile models.Profile
	found, err := repo.GetOne(ctx, models.EntityProfile, ownerA, &profile)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Rahim Uddin Ahmed", profile.FullName)
	require.NotNil(t, profile.DateOfBirth)
	assert.Equal(t, "1985-03-14", profile.DateOfBirth.String())
	assert.True(t, profile.CreatedAt.Equal(created))
	require.NotNil(t, profile.UpdatedAt)
	assert.True(t, profile.UpdatedAt.Equal(clock.at))

	found, err = repo.GetOne(ctx, models.EntityProfile, ownerB, &models.Profile{})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCountUpdatedSince(t *testing.T) {
	repo, clock := newTestRepo(t)
	ctx := context.Background()
	t0 := clock.at

	_, err := repo.Upsert(ctx, models.EntityOfficeInfo, ownerA, models.OfficeInformation{Ministry: "Public Administration"})
	require.NoError(t, err)

	count, err := repo.CountUpdatedSince(ctx, models.EntityOfficeInfo, ownerA, t0.Add(-time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = repo.CountUpdatedSince(ctx, models.EntityOfficeInfo, ownerA, t0)
	require.NoError(t, err)
	assert.Equal(t, 0, count, "strictly greater than the marker")

	clock.at = t0.Add(time.Hour)
	_, err = repo.Upsert(ctx, models.EntityOfficeInfo, ownerA, models.OfficeInformation{Ministry: "Finance"})
	require.NoError(t, err)

	count, err = repo.CountUpdatedSince(ctx, models.EntityOfficeInfo, ownerA, t0.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = repo.CountUpdatedSince(ctx, models.EntityOfficeInfo, ownerB, t0.Add(-time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestUpsertMaritalReplacesSpouses(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.UpsertMarital(ctx, ownerA, &models.MaritalInformation{
		MaritalStatus: models.MaritalMarried,
		Spouses: []models.Spouse{
			{Name: "Fatema Begum", Occupation: "Teacher"},
			{Name: "Nasrin Akter"},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	spouses, err := repo.Spouses(ctx, id)
	require.NoError(t, err)
	require.Len(t, spouses, 2)
	assert.Equal(t, "Fatema Begum", spouses[0].Name)
	assert.Equal(t, "Nasrin Akter", spouses[1].Name)

	sameID, err := repo.UpsertMarital(ctx, ownerA, &models.MaritalInformation{MaritalStatus: models.MaritalWidower})
	require.NoError(t, err)
	assert.Equal(t, id, sameID)

	spouses, err = repo.Spouses(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, spouses)
}

func TestSetPhotoURL(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SetPhotoURL(ctx, ownerA, "https://res.cloudinary.com/demo/a.jpg"))

	var profile models.Profile
	found, err := repo.GetOne(ctx, models.EntityProfile, ownerA, &profile)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "https://res.cloudinary.com/demo/a.jpg", profile.PhotoURL)

	// saving the profile form keeps the photo
	_, err = repo.Upsert(ctx, models.EntityProfile, ownerA, models.Profile{FullName: "Rahim Uddin", PhotoURL: "ignored"})
	require.NoError(t, err)

	profile = models.Profile{}
	_, err = repo.GetOne(ctx, models.EntityProfile, ownerA, &profile)
	require.NoError(t, err)
	assert.Equal(t, "Rahim Uddin", profile.FullName)
	assert.Equal(t, "https://res.cloudinary.com/demo/a.jpg", profile.PhotoURL)
}

func TestSnapshot(t *testing.T) {
	repo, clock := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Upsert(ctx, models.EntityProfile, ownerA, models.Profile{FullName: "Rahim Uddin"})
	require.NoError(t, err)
	_, err = repo.UpsertMarital(ctx, ownerA, &models.MaritalInformation{
		MaritalStatus: models.MaritalMarried,
		Spouses:       []models.Spouse{{Name: "Fatema Begum"}},
	})
	require.NoError(t, err)

	y2005, y1999 := 2005, 1999
	clock.at = clock.at.Add(time.Minute)
	err = repo.ReplaceList(ctx, models.EntityEducation, ownerA, []models.Row{
		models.EducationalQualification{DegreeTitle: "MSc", InstitutionName: "DU", PassingYear: &y2005},
		models.EducationalQualification{DegreeTitle: "SSC", InstitutionName: "Zilla School", PassingYear: &y1999},
	})
	require.NoError(t, err)

	snap, err := repo.Snapshot(ctx, ownerA)
	require.NoError(t, err)

	require.NotNil(t, snap.Profile)
	assert.Equal(t, "Rahim Uddin", snap.Profile.FullName)
	assert.Nil(t, snap.Office)
	assert.Nil(t, snap.General)
	require.NotNil(t, snap.Marital)
	require.Len(t, snap.Marital.Spouses, 1)
	assert.Equal(t, "Fatema Begum", snap.Marital.Spouses[0].Name)

	require.Len(t, snap.Education, 2)
	assert.Equal(t, "SSC", snap.Education[0].DegreeTitle, "ordered by passing year")
	assert.Equal(t, "MSc", snap.Education[1].DegreeTitle)
	assert.Empty(t, snap.Children)
	assert.Empty(t, snap.LienDeputations)
}
