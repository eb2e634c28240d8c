package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cradoe/biodata/internal/models"
)

// RecordsChangedTopic carries one event per successful record write.
const RecordsChangedTopic = "records.changed"

type RecordsChanged struct {
	OwnerID   string              `json:"owner_id"`
	Entities  []models.EntityType `json:"entities"`
	ChangedAt time.Time           `json:"changed_at"`
}

func DecodeRecordsChanged(b []byte) (RecordsChanged, error) {
	var ev RecordsChanged
	if err := json.Unmarshal(b, &ev); err != nil {
		return RecordsChanged{}, fmt.Errorf("decode %s event: %w", RecordsChangedTopic, err)
	}
	if ev.OwnerID == "" {
		return RecordsChanged{}, errors.New("records changed event without owner_id")
	}
	return ev, nil
}

type Producer interface {
	ProduceMessage(topic, key string, value []byte) error
}

type ChangePublisher struct {
	producer Producer
	now      func() time.Time
}

func NewChangePublisher(producer Producer) *ChangePublisher {
	return &ChangePublisher{
		producer: producer,
		now:      time.Now,
	}
}

// Publish announces that the listed entity types of ownerID were written.
// Events are keyed by owner so that one owner's events stay ordered.
func (p *ChangePublisher) Publish(ctx context.Context, ownerID string, entities []models.EntityType) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(RecordsChanged{
		OwnerID:   ownerID,
		Entities:  entities,
		ChangedAt: p.now().UTC(),
	})
	if err != nil {
		return err
	}

	return p.producer.ProduceMessage(RecordsChangedTopic, ownerID, payload)
}
