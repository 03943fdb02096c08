package pubsub

import (
	"context"
	"log/slog"
	"testing"

	"cloud.google.com/go/pubsub/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResult struct {
	id  string
	err error
}

func (r fakeResult) Get(context.Context) (string, error) {
	return r.id, r.err
}

// fakeOrderedPublisher pauses an ordering key after a failed publish, like the Pub/Sub client.
type fakeOrderedPublisher struct {
	failures  []error
	paused    map[string]bool
	published []*pubsub.Message
	resumed   []string
}

func newFakeOrderedPublisher(failures ...error) *fakeOrderedPublisher {
	return &fakeOrderedPublisher{failures: failures, paused: map[string]bool{}}
}

func (f *fakeOrderedPublisher) Publish(_ context.Context, msg *pubsub.Message) publishResult {
	if f.paused[msg.OrderingKey] {
		return fakeResult{err: pubsub.ErrPublishingPaused{OrderingKey: msg.OrderingKey}}
	}
	if len(f.failures) > 0 {
		err := f.failures[0]
		f.failures = f.failures[1:]
		f.paused[msg.OrderingKey] = true

		return fakeResult{err: err}
	}
	f.published = append(f.published, msg)

	return fakeResult{id: "server-1"}
}

func (f *fakeOrderedPublisher) ResumePublish(orderingKey string) {
	f.resumed = append(f.resumed, orderingKey)
	delete(f.paused, orderingKey)
}

func (f *fakeOrderedPublisher) Stop() {}

func TestGooglePubSubPublisher_PublishOrderEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("orders events by order id", func(t *testing.T) {
		fake := newFakeOrderedPublisher()
		publisher := &googlePubSubPublisher{publisher: fake, logger: slog.New(slog.DiscardHandler)}
		event := newTestOrderEvent()

		require.NoError(t, publisher.PublishOrderEvent(ctx, event))

		require.Len(t, fake.published, 1)
		assert.Equal(t, event.OrderID.String(), fake.published[0].OrderingKey)
		assert.Equal(t, "req-1", fake.published[0].Attributes["request_id"])
	})

	t.Run("failed publish does not block later events for the order", func(t *testing.T) {
		fake := newFakeOrderedPublisher(errors.New("unavailable"))
		publisher := &googlePubSubPublisher{publisher: fake, logger: slog.New(slog.DiscardHandler)}
		event := newTestOrderEvent()

		err := publisher.PublishOrderEvent(ctx, event)
		require.Error(t, err)
		assert.Equal(t, []string{event.OrderID.String()}, fake.resumed)

		next := newTestOrderEvent()
		next.OrderID = event.OrderID
		require.NoError(t, publisher.PublishOrderEvent(ctx, next))
		assert.Len(t, fake.published, 1)
	})
}
