package mocks

import (
	"context"

	"github.com/cradoe/biodata/internal/models"
	"github.com/stretchr/testify/mock"
)

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) RecordsChanged(ctx context.Context, ownerID string, entities []models.EntityType) {
	m.Called(ctx, ownerID, entities)
}
