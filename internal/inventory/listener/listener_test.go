package listener

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-storefront/internal/inventory"
	"github.com/fekuna/omnipos-storefront/internal/inventory/dto"
	"github.com/fekuna/omnipos-storefront/internal/logger"
	"github.com/fekuna/omnipos-storefront/internal/model"
)

type recordingUseCase struct {
	inventory.UseCase

	mu     sync.Mutex
	inputs []dto.AdjustStockInput
}

func (r *recordingUseCase) AdjustStock(_ context.Context, in *dto.AdjustStockInput) (*model.StockLevel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inputs = append(r.inputs, *in)
	if in.ProductID == "sold-out" {
		return nil, model.ErrInsufficientStock
	}
	return &model.StockLevel{ProductID: in.ProductID}, nil
}

func (r *recordingUseCase) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.inputs)
}

const orderEvent = `{
	"event_id": "e1",
	"event_type": "OrderCreated",
	"payload": {
		"id": "order-7",
		"items": [
			{"product_id": "p1", "variant_id": "v2", "quantity": 2},
			{"product_id": "sold-out", "quantity": 1},
			{"product_id": "p3", "quantity": 0},
			{"product_id": "p4", "quantity": 1}
		]
	}
}`

func TestProcessMessage(t *testing.T) {
	uc := &recordingUseCase{}
	l := NewInventoryListener(nil, uc, logger.NewNop())

	l.processMessage(context.Background(), []byte(orderEvent))

	require.Len(t, uc.inputs, 3, "zero-quantity line is skipped, failures do not stop the rest")
	first := uc.inputs[0]
	assert.Equal(t, "p1", first.ProductID)
	require.NotNil(t, first.VariantID)
	assert.Equal(t, "v2", *first.VariantID)
	assert.Equal(t, -2, first.QuantityChange)
	assert.Equal(t, model.MovementSale, first.MovementType)
	assert.Equal(t, "order", first.ReferenceType)
	assert.Equal(t, "order-7", first.ReferenceID)
	assert.Equal(t, "p4", uc.inputs[2].ProductID)
}

func TestProcessMessageIgnoresOtherEvents(t *testing.T) {
	uc := &recordingUseCase{}
	l := NewInventoryListener(nil, uc, logger.NewNop())

	l.processMessage(context.Background(), []byte(`{"event_type":"OrderCancelled","payload":{"items":[{"product_id":"p1","quantity":1}]}}`))
	l.processMessage(context.Background(), []byte(`not json`))

	assert.Empty(t, uc.inputs)
}

type chanReader struct {
	msgs chan kafka.Message
}

func (c *chanReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	select {
	case <-ctx.Done():
		return kafka.Message{}, ctx.Err()
	case m, ok := <-c.msgs:
		if !ok {
			return kafka.Message{}, errors.New("closed")
		}
		return m, nil
	}
}

func TestStartStopsOnCancel(t *testing.T) {
	reader := &chanReader{msgs: make(chan kafka.Message, 1)}
	uc := &recordingUseCase{}
	l := NewInventoryListener(reader, uc, logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		l.Start(ctx)
		close(done)
	}()

	reader.msgs <- kafka.Message{Value: []byte(`{"event_type":"OrderCreated","payload":{"id":"o1","items":[{"product_id":"p1","quantity":1}]}}`)}
	assert.Eventually(t, func() bool { return uc.count() == 1 }, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("listener did not stop")
	}
}
