//go:generate go run go.uber.org/mock/mockgen -source=publisher.go -destination=../mocks/mock_publisher.go -package=mocks
package broadcast

import (
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"
)

// IPublisher is the publish primitive the mutation pipeline needs from the
// transport. Delivery guarantees are the transport's business; the pipeline
// only promises to call Publish exactly once per committed mutation.
type IPublisher interface {
	Publish(topic string, payload []byte) error
}

// Unsubscribe tears down a subscription.
type Unsubscribe func()

// ISubscriber is the matching subscribe primitive, used by the websocket
// gateway and never by the mutation pipeline itself.
type ISubscriber interface {
	Subscribe(topic string, handler func(payload []byte)) (Unsubscribe, error)
}

// NatsBroker carries mutation events over core NATS. Publishes are
// fire-and-forget; there is no acknowledgement to consume.
type NatsBroker struct {
	nc  *nats.Conn
	log *slog.Logger
}

func NewNatsBroker(url string, log *slog.Logger) (*NatsBroker, error) {
	nc, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return &NatsBroker{nc: nc, log: log}, nil
}

func (b *NatsBroker) Publish(topic string, payload []byte) error {
	return b.nc.Publish(topic, payload)
}

func (b *NatsBroker) Subscribe(topic string, handler func(payload []byte)) (Unsubscribe, error) {
	sub, err := b.nc.Subscribe(topic, func(msg *nats.Msg) {
		handler(msg.Data)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %q: %w", topic, err)
	}
	b.log.Debug(fmt.Sprintf("Subscribed to %s", topic))
	return func() { _ = sub.Unsubscribe() }, nil
}

func (b *NatsBroker) Close() {
	if b.nc != nil {
		b.nc.Close()
	}
}
