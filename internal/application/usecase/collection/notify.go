package collection

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

// Notifier publishes a change event after each successful write. Publishing
// failures are logged and never fail the write.
type Notifier struct {
	collection string
	events     service.EventPublisher
	logger     logger.Logger
	now        Clock
}

func NewNotifier(collection string, events service.EventPublisher, log logger.Logger) Notifier {
	return Notifier{
		collection: collection,
		events:     events,
		logger:     log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (n Notifier) Changed(ctx context.Context, action service.Action, id uuid.UUID) {
	n.publish(ctx, service.ContentEvent{Collection: n.collection, Action: action, ID: id})
}

func (n Notifier) ChildChanged(ctx context.Context, action service.Action, parentID, id uuid.UUID) {
	n.publish(ctx, service.ContentEvent{Collection: n.collection, Action: action, ID: id, ParentID: &parentID})
}

func (n Notifier) publish(ctx context.Context, ev service.ContentEvent) {
	if n.events == nil {
		return
	}
	ev.OccurredAt = n.now()
	if err := n.events.PublishContentChange(context.WithoutCancel(ctx), ev); err != nil {
		n.logger.Error("Failed to publish content event", err,
			zap.String("collection", ev.Collection),
			zap.String("action", string(ev.Action)),
			zap.String("id", ev.ID.String()))
	}
}
