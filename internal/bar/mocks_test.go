package bar

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
)

// MockPublisher implements events.Publisher for testing.
type MockPublisher struct {
	mu        sync.Mutex
	published []publishedEvent
	err       error
}

type publishedEvent struct {
	Topic string
	Data  []byte
}

func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

func (m *MockPublisher) Publish(ctx context.Context, topic string, msg []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.published = append(m.published, publishedEvent{Topic: topic, Data: msg})
	return nil
}

func (m *MockPublisher) Published() []publishedEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]publishedEvent, len(m.published))
	copy(out, m.published)
	return out
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
