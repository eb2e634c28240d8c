package mocks

import (
	"context"

	"github.com/cradoe/biodata/internal/editor"
	"github.com/stretchr/testify/mock"
)

type MockSurfaceEditor struct {
	mock.Mock
}

func (m *MockSurfaceEditor) Load(ctx context.Context, s editor.Surface, ownerID string) (*editor.View, error) {
	args := m.Called(ctx, s, ownerID)
	view, _ := args.Get(0).(*editor.View)
	return view, args.Error(1)
}

func (m *MockSurfaceEditor) Submit(ctx context.Context, ownerID string, sub editor.Submission) error {
	args := m.Called(ctx, ownerID, sub)
	return args.Error(0)
}
