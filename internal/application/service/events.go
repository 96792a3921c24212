package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Action string

const (
	ActionCreated  Action = "created"
	ActionUpdated  Action = "updated"
	ActionDeleted  Action = "deleted"
	ActionReplaced Action = "replaced"
)

// ContentEvent announces one successful write to a portfolio collection.
type ContentEvent struct {
	Collection string     `json:"collection"`
	Action     Action     `json:"action"`
	ID         uuid.UUID  `json:"id"`
	ParentID   *uuid.UUID `json:"parentId,omitempty"`
	OccurredAt time.Time  `json:"occurredAt"`
}

type EventPublisher interface {
	PublishContentChange(ctx context.Context, ev ContentEvent) error
}
