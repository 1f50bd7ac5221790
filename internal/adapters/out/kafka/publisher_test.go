package kafka

import (
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"shop/internal/core/ports"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/require"
)

func newTestPublisher(t *testing.T) (*OrderEventPublisher, *mocks.SyncProducer) {
	t.Helper()
	producer := mocks.NewSyncProducer(t, nil)
	return &OrderEventPublisher{
		producer: producer,
		topic:    "shop.orders",
		logger:   slog.Default(),
	}, producer
}

func testEvent() ports.OrderChangedEvent {
	return ports.OrderChangedEvent{
		EventType:  ports.EventTypeOrderCancelled,
		OrderID:    "5f0c3c6c-0b6e-4f6e-9c8e-2a2f9f51a001",
		CustomerID: "9d2b1f7e-13a4-4f7c-8e0d-6b5a3c1d9f02",
		Status:     "cancelled",
		OccurredAt: time.Now().UTC(),
	}
}

func TestOrderEventPublisher_PublishOrderChanged(t *testing.T) {
	publisher, producer := newTestPublisher(t)
	event := testEvent()

	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(raw []byte) error {
		var got ports.OrderChangedEvent
		if err := json.Unmarshal(raw, &got); err != nil {
			return err
		}
		require.Equal(t, event.EventType, got.EventType)
		require.Equal(t, event.OrderID, got.OrderID)
		require.Equal(t, event.Status, got.Status)
		return nil
	})

	err := publisher.PublishOrderChanged(t.Context(), event)
	require.NoError(t, err)
	require.NoError(t, producer.Close())
}

func TestOrderEventPublisher_PublishOrderChanged_SendError(t *testing.T) {
	publisher, producer := newTestPublisher(t)

	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	err := publisher.PublishOrderChanged(t.Context(), testEvent())
	require.Error(t, err)
	require.NoError(t, producer.Close())
}
