package event

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

func TestContentMessage_KeyedByCollection(t *testing.T) {
	parent := uuid.New()
	ev := service.ContentEvent{
		Collection: "positions",
		Action:     service.ActionCreated,
		ID:         uuid.New(),
		ParentID:   &parent,
		OccurredAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	msg, err := ContentMessage(ev)
	require.NoError(t, err)
	assert.Equal(t, []byte("positions"), msg.Key)
	assert.Contains(t, string(msg.Value), `"parentId":"`+parent.String()+`"`)

	got, err := DecodeContentEvent(msg)
	require.NoError(t, err)
	assert.Equal(t, ev.ID, got.ID)
	require.NotNil(t, got.ParentID)
	assert.Equal(t, parent, *got.ParentID)
}

func TestContentMessage_OmitsParentForTopLevel(t *testing.T) {
	msg, err := ContentMessage(service.ContentEvent{Collection: "awards", Action: service.ActionDeleted, ID: uuid.New()})
	require.NoError(t, err)
	assert.NotContains(t, string(msg.Value), "parentId")
}

func TestDecodeContentEvent_RejectsMalformed(t *testing.T) {
	for name, value := range map[string]string{
		"not json":      "{oops",
		"no collection": `{"action":"created","id":"` + uuid.NewString() + `"}`,
		"no action":     `{"collection":"awards","id":"` + uuid.NewString() + `"}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeContentEvent(kafka.Message{Value: []byte(value)})
			assert.Error(t, err)
		})
	}
}

func TestNewKafkaProducerClient_RequiresBrokers(t *testing.T) {
	_, err := NewKafkaProducerClient(config.Config{}, logger.NewNop())
	assert.Error(t, err)
}
