package mocks

import (
	"context"

	"github.com/cradoe/biodata/internal/lastseen"
	"github.com/cradoe/biodata/internal/locale"
	"github.com/cradoe/biodata/internal/models"
	"github.com/stretchr/testify/mock"
)

type MockActivityService struct {
	mock.Mock
}

func (m *MockActivityService) Feed(ctx context.Context, ownerID string, lang locale.Lang) ([]models.ActivityEntry, error) {
	args := m.Called(ctx, ownerID, lang)
	entries, _ := args.Get(0).([]models.ActivityEntry)
	return entries, args.Error(1)
}

func (m *MockActivityService) UnseenCount(ctx context.Context, ownerID string) (int, error) {
	args := m.Called(ctx, ownerID)
	return args.Int(0), args.Error(1)
}

func (m *MockActivityService) MarkSeen(ctx context.Context, ownerID string) (lastseen.Marker, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(lastseen.Marker), args.Error(1)
}
