package publisher

import (
	"context"
	"testing"
	"time"

	"github.com/SimPaypl/simpay-payment-gateway/config"
	"github.com/SimPaypl/simpay-payment-gateway/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestNewKafkaPublisher_WritersAndDefaults(t *testing.T) {
	p := NewKafkaPublisher("localhost:9092", []string{
		models.TopicOrderPaid,
		models.TopicOrderRefunded,
	}, config.RetryConfig{})

	assert.Len(t, p.Writers, 2)
	assert.Contains(t, p.Writers, models.TopicOrderPaid)
	assert.Contains(t, p.Writers, models.TopicOrderRefunded)

	assert.Equal(t, 5, p.RetryConfig.MaxAttempts)
	assert.Equal(t, 100*time.Millisecond, p.RetryConfig.BaseDelay)
	assert.Equal(t, 10*time.Second, p.RetryConfig.MaxDelay)
}

func TestPublish_UnconfiguredTopic(t *testing.T) {
	p := NewKafkaPublisher("localhost:9092", []string{models.TopicOrderPaid}, config.RetryConfig{})

	err := p.Publish(context.Background(), "orders.unknown", models.OrderPaidEvent{OrderID: 1})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "orders.unknown")
}

func TestCalculateBackoff_ExponentialAndCapped(t *testing.T) {
	p := NewKafkaPublisher("localhost:9092", nil, config.RetryConfig{
		MaxAttempts: 5,
		BaseDelay:   100 * time.Millisecond,
		MaxDelay:    1 * time.Second,
		Jitter:      false,
	})

	assert.Equal(t, 100*time.Millisecond, p.calculateBackoff(0))
	assert.Equal(t, 200*time.Millisecond, p.calculateBackoff(1))
	assert.Equal(t, 400*time.Millisecond, p.calculateBackoff(2))
	assert.Equal(t, 1*time.Second, p.calculateBackoff(5))
}

func TestCalculateBackoff_JitterStaysBounded(t *testing.T) {
	p := NewKafkaPublisher("localhost:9092", nil, config.RetryConfig{
		MaxAttempts: 5,
		BaseDelay:   100 * time.Millisecond,
		MaxDelay:    10 * time.Second,
		Jitter:      true,
	})

	for i := 0; i < 100; i++ {
		delay := p.calculateBackoff(1)
		assert.GreaterOrEqual(t, delay, 170*time.Millisecond)
		assert.LessOrEqual(t, delay, 230*time.Millisecond)
	}
}

func TestEventPartitionKeys(t *testing.T) {
	// All events of one order share a key so they stay ordered per partition.
	assert.Equal(t, "42", models.OrderPaymentPendingEvent{OrderID: 42}.PartitionKey())
	assert.Equal(t, "42", models.OrderPaidEvent{OrderID: 42}.PartitionKey())
	assert.Equal(t, "42", models.OrderRefundedEvent{OrderID: 42}.PartitionKey())
}
