package worker

import (
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/cradoe/biodata/internal/stream"
)

// FeedInvalidationWorker drops the cached activity feeds of every owner named
// on the records.changed topic. It returns when the worker context ends.
func (wk *Worker) FeedInvalidationWorker() error {
	consumer, err := wk.newConsumer(&stream.StreamConsumer{
		GroupId: feedInvalidationGroupID,
		Topic:   stream.RecordsChangedTopic,
	})
	if err != nil {
		return err
	}
	defer consumer.Close()

	for {
		select {
		case <-wk.Ctx.Done():
			return nil
		default:
		}

		event := consumer.Poll(pollIntervalMs)
		switch e := event.(type) {
		case *kafka.Message:
			wk.handleRecordsChanged(e.Value)
		case kafka.Error:
			wk.Logger.Error("kafka consumer error", "topic", stream.RecordsChangedTopic, "error", e)
		default:
			// timeouts and rebalances need no action
		}
	}
}

func (wk *Worker) handleRecordsChanged(payload []byte) {
	ev, err := stream.DecodeRecordsChanged(payload)
	if err != nil {
		wk.Logger.Warn("skipping malformed change event", "error", err)
		return
	}

	if err := wk.Activity.Invalidate(wk.Ctx, ev.OwnerID); err != nil {
		wk.Logger.Error("feed invalidation failed", "owner", ev.OwnerID, "error", err)
		return
	}

	wk.Logger.Debug("activity feed invalidated", "owner", ev.OwnerID, "entities", ev.Entities)
}
