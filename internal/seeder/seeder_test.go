package seeders

import (
	"io"
	"log/slog"
	"testing"

	"github.com/cradoe/biodata/internal/editor"
	"github.com/cradoe/biodata/internal/mocks"
	"github.com/cradoe/biodata/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const ownerID = "3f1c2b7e-8d4a-4c1e-9b6f-2a5d7e9c0b14"

func newTestSeeder(repo *mocks.MockRecordRepository, notifier *mocks.MockNotifier) *Seeder {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(&Seeder{
		Records:  repo,
		Editor:   editor.New(repo, notifier, logger),
		Notifier: notifier,
		Logger:   logger,
	})
}

func TestRunSeedsEveryDomain(t *testing.T) {
	repo := new(mocks.MockRecordRepository)
	notifier := new(mocks.MockNotifier)

	repo.On("Upsert", mock.Anything, mock.Anything, ownerID, mock.Anything).Return("row-id", nil)
	repo.On("UpsertMarital", mock.Anything, ownerID, mock.Anything).Return("marital-id", nil)
	repo.On("List", mock.Anything, mock.Anything, ownerID, mock.Anything).Return(nil)
	repo.On("ReplaceList", mock.Anything, mock.Anything, ownerID, mock.Anything).Return(nil)
	notifier.On("RecordsChanged", mock.Anything, ownerID, mock.Anything).Return()

	require.NoError(t, newTestSeeder(repo, notifier).Run(t.Context(), ownerID))

	repo.AssertNumberOfCalls(t, "Upsert", 3)
	repo.AssertNumberOfCalls(t, "UpsertMarital", 1)
	for _, entity := range []models.EntityType{
		models.EntityChildrenInfo,
		models.EntityEducation,
		models.EntityDomesticTraining,
		models.EntityForeignTravel,
	} {
		repo.AssertCalled(t, "ReplaceList", mock.Anything, entity, ownerID, mock.Anything)
	}
	notifier.AssertCalled(t, "RecordsChanged", mock.Anything, ownerID, []models.EntityType{
		models.EntityProfile,
		models.EntityOfficeInfo,
		models.EntityGeneralInfo,
		models.EntityMaritalInfo,
	})
}

func TestRunSkipsSurfacesWithData(t *testing.T) {
	repo := new(mocks.MockRecordRepository)
	notifier := new(mocks.MockNotifier)

	repo.On("Upsert", mock.Anything, mock.Anything, ownerID, mock.Anything).Return("row-id", nil)
	repo.On("UpsertMarital", mock.Anything, ownerID, mock.Anything).Return("marital-id", nil)
	repo.On("List", mock.Anything, models.EntityChildrenInfo, ownerID, mock.Anything).
		Run(func(args mock.Arguments) {
			rows := args.Get(3).(*[]models.ChildInformation)
			*rows = append(*rows, models.ChildInformation{FullName: "Ayesha Rahman", Gender: "female"})
		}).
		Return(nil)
	repo.On("List", mock.Anything, mock.Anything, ownerID, mock.Anything).Return(nil)
	repo.On("ReplaceList", mock.Anything, mock.Anything, ownerID, mock.Anything).Return(nil)
	notifier.On("RecordsChanged", mock.Anything, ownerID, mock.Anything).Return()

	require.NoError(t, newTestSeeder(repo, notifier).Run(t.Context(), ownerID))

	repo.AssertNotCalled(t, "ReplaceList", mock.Anything, models.EntityChildrenInfo, ownerID, mock.Anything)
	repo.AssertCalled(t, "ReplaceList", mock.Anything, models.EntityEducation, ownerID, mock.Anything)
}

func TestRunStopsOnStoreFailure(t *testing.T) {
	repo := new(mocks.MockRecordRepository)
	notifier := new(mocks.MockNotifier)

	repo.On("Upsert", mock.Anything, mock.Anything, ownerID, mock.Anything).Return("", assert.AnError)

	err := newTestSeeder(repo, notifier).Run(t.Context(), ownerID)
	require.ErrorIs(t, err, assert.AnError)
	notifier.AssertNotCalled(t, "RecordsChanged", mock.Anything, mock.Anything, mock.Anything)
}
