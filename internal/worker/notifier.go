package worker

import (
	"context"
	"log/slog"

	"github.com/cradoe/biodata/internal/helper"
	"github.com/cradoe/biodata/internal/models"
)

// Publisher announces record writes to other services.
type Publisher interface {
	Publish(ctx context.Context, ownerID string, entities []models.EntityType) error
}

// ChangeNotifier is called after every successful record write. The local
// feed cache is dropped right away; the change event is published in the
// background when a publisher is configured.
type ChangeNotifier struct {
	activity  Invalidator
	publisher Publisher
	helper    *helper.HelperRepository
	logger    *slog.Logger
}

func NewChangeNotifier(activity Invalidator, publisher Publisher, help *helper.HelperRepository, logger *slog.Logger) *ChangeNotifier {
	return &ChangeNotifier{
		activity:  activity,
		publisher: publisher,
		helper:    help,
		logger:    logger,
	}
}

func (n *ChangeNotifier) RecordsChanged(ctx context.Context, ownerID string, entities []models.EntityType) {
	if err := n.activity.Invalidate(ctx, ownerID); err != nil {
		n.logger.Warn("feed invalidation failed", "owner", ownerID, "error", err)
	}

	if n.publisher == nil {
		return
	}

	n.helper.BackgroundTask(func() error {
		return n.publisher.Publish(context.Background(), ownerID, entities)
	})
}
