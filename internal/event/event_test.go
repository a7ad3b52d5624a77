package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recorder struct {
	events []Event
}

func (r *recorder) Publish(_ context.Context, e Event) {
	r.events = append(r.events, e)
}

func TestFanout_PublishesToAll(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	f := Fanout{a, Discard{}, b}

	f.Publish(context.Background(), New(OrderCreated, map[string]int{"quantity": 2}, "admin", "created"))

	require.Len(t, a.events, 1)
	require.Len(t, b.events, 1)
	assert.Equal(t, TypeInventoryUpdate, a.events[0].Type)
	assert.Equal(t, OrderCreated, b.events[0].Action)
	assert.False(t, a.events[0].Timestamp.IsZero())
}

func TestKafkaPublisher_SendsJSON(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var e Event
		if err := json.Unmarshal(val, &e); err != nil {
			return err
		}
		if e.Action != ProductDeleted || e.User != "admin" {
			return errors.New("unexpected event payload")
		}
		return nil
	})

	p := NewKafkaPublisher(producer, "order-tracker-events", zap.NewNop())
	p.Publish(context.Background(), New(ProductDeleted, map[string]string{"code": "kaos_polos_merah"}, "admin", "deleted"))

	require.NoError(t, p.Close())
}

func TestKafkaPublisher_SwallowsErrors(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewKafkaPublisher(producer, "order-tracker-events", zap.NewNop())
	assert.NotPanics(t, func() {
		p.Publish(context.Background(), New(OrderDeleted, nil, "system", "deleted"))
	})
	require.NoError(t, p.Close())
}
