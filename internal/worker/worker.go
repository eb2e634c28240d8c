package worker

import (
	"context"
	"log/slog"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/cradoe/biodata/internal/helper"
	"github.com/cradoe/biodata/internal/stream"
)

// Invalidator drops whatever the service caches for an owner.
type Invalidator interface {
	Invalidate(ctx context.Context, ownerID string) error
}

// Poller is the part of a kafka consumer the workers use.
type Poller interface {
	Poll(timeoutMs int) kafka.Event
	Close() error
}

type Worker struct {
	KafkaStream *stream.KafkaStream
	Activity    Invalidator
	Ctx         context.Context
	Helper      *helper.HelperRepository
	Logger      *slog.Logger

	// newConsumer is replaced in tests
	newConsumer func(*stream.StreamConsumer) (Poller, error)
}

const (
	// feedInvalidationGroupID consumes change events to drop cached activity feeds
	feedInvalidationGroupID = "activity-feed-invalidation-group"

	pollIntervalMs = 100
)

// Workers need the event stream and whatever they act on; worker-specific
// dependencies are passed as arguments.
func New(wk *Worker) *Worker {
	w := &Worker{
		KafkaStream: wk.KafkaStream,
		Activity:    wk.Activity,
		Ctx:         wk.Ctx,
		Helper:      wk.Helper,
		Logger:      wk.Logger,
		newConsumer: wk.newConsumer,
	}

	if w.newConsumer == nil {
		w.newConsumer = func(sc *stream.StreamConsumer) (Poller, error) {
			return w.KafkaStream.CreateConsumer(sc)
		}
	}
	if w.Ctx == nil {
		w.Ctx = context.Background()
	}
	return w
}
