package mocks

import (
	"context"
	"time"

	"github.com/cradoe/biodata/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockRecordRepository implements repository.RecordRepository. Reads that fill
// a destination should populate it from a Run callback.
type MockRecordRepository struct {
	mock.Mock
}

func (m *MockRecordRepository) Stamps(ctx context.Context, entity models.EntityType, ownerID string) ([]models.RecordStamp, error) {
	args := m.Called(ctx, entity, ownerID)
	stamps, _ := args.Get(0).([]models.RecordStamp)
	return stamps, args.Error(1)
}

func (m *MockRecordRepository) CountUpdatedSince(ctx context.Context, entity models.EntityType, ownerID string, since time.Time) (int, error) {
	args := m.Called(ctx, entity, ownerID, since)
	return args.Int(0), args.Error(1)
}

func (m *MockRecordRepository) GetOne(ctx context.Context, entity models.EntityType, ownerID string, dest any) (bool, error) {
	args := m.Called(ctx, entity, ownerID, dest)
	return args.Bool(0), args.Error(1)
}

func (m *MockRecordRepository) List(ctx context.Context, entity models.EntityType, ownerID string, dest any) error {
	args := m.Called(ctx, entity, ownerID, dest)
	return args.Error(0)
}

func (m *MockRecordRepository) Spouses(ctx context.Context, maritalID string) ([]models.Spouse, error) {
	args := m.Called(ctx, maritalID)
	spouses, _ := args.Get(0).([]models.Spouse)
	return spouses, args.Error(1)
}

func (m *MockRecordRepository) Snapshot(ctx context.Context, ownerID string) (*models.Snapshot, error) {
	args := m.Called(ctx, ownerID)
	snap, _ := args.Get(0).(*models.Snapshot)
	return snap, args.Error(1)
}

func (m *MockRecordRepository) ReplaceList(ctx context.Context, entity models.EntityType, ownerID string, rows []models.Row) error {
	args := m.Called(ctx, entity, ownerID, rows)
	return args.Error(0)
}

func (m *MockRecordRepository) Upsert(ctx context.Context, entity models.EntityType, ownerID string, row models.Row) (string, error) {
	args := m.Called(ctx, entity, ownerID, row)
	return args.String(0), args.Error(1)
}

func (m *MockRecordRepository) UpsertMarital(ctx context.Context, ownerID string, info *models.MaritalInformation) (string, error) {
	args := m.Called(ctx, ownerID, info)
	return args.String(0), args.Error(1)
}

func (m *MockRecordRepository) SetPhotoURL(ctx context.Context, ownerID, url string) error {
	args := m.Called(ctx, ownerID, url)
	return args.Error(0)
}
