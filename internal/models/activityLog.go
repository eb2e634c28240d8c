package models

import (
	"database/sql"
	"time"
)

// ActionType tells whether a record was only created or has been edited since.
type ActionType string

const (
	ActionCreated ActionType = "created"
	ActionUpdated ActionType = "updated"
)

// ActionFilter narrows a feed down to one action type.
type ActionFilter string

const (
	FilterAll     ActionFilter = "all"
	FilterCreated ActionFilter = "created"
	FilterUpdated ActionFilter = "updated"
)

// ParseActionFilter accepts the filter names used by the activity page.
// Anything unknown falls back to FilterAll.
func ParseActionFilter(s string) ActionFilter {
	switch ActionFilter(s) {
	case FilterCreated, FilterUpdated:
		return ActionFilter(s)
	default:
		return FilterAll
	}
}

// RecordStamp is the minimal projection of any entity row the activity feed needs.
type RecordStamp struct {
	ID        string       `db:"id"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt sql.NullTime `db:"updated_at"`
}

// ActivityEntry is reconstructed from record timestamps on every read; it is never stored.
type ActivityEntry struct {
	ID          string     `json:"id"`
	ActionType  ActionType `json:"action_type"`
	Description string     `json:"description"`
	EntityType  EntityType `json:"entity_type"`
	EntityID    string     `json:"entity_id"`
	Timestamp   time.Time  `json:"timestamp"`
}
