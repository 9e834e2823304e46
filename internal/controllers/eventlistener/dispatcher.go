//go:generate go tool mockgen -source=dispatcher.go -destination=dispatcher_mock_test.go -package=eventlistener
package eventlistener

import (
	"context"

	"github.com/DIMO-Network/messenger-bot-api/internal/messenger"
	"github.com/rs/zerolog"
)

// Handlers receives messaging events, one method per event kind.
type Handlers interface {
	ReceivedAuthentication(ctx context.Context, event *messenger.MessagingEvent)
	ReceivedMessage(ctx context.Context, event *messenger.MessagingEvent)
	ReceivedDeliveryConfirmation(ctx context.Context, event *messenger.MessagingEvent)
	ReceivedPostback(ctx context.Context, event *messenger.MessagingEvent)
	ReceivedMessageRead(ctx context.Context, event *messenger.MessagingEvent)
	ReceivedAccountLink(ctx context.Context, event *messenger.MessagingEvent)
}

// Dispatcher routes every event of an entry to exactly one handler.
type Dispatcher struct {
	handlers Handlers
}

// NewDispatcher creates a Dispatcher for handlers.
func NewDispatcher(handlers Handlers) *Dispatcher {
	return &Dispatcher{handlers: handlers}
}

// ProcessEntry handles the entry's events in arrival order.
func (d *Dispatcher) ProcessEntry(ctx context.Context, entry *messenger.Entry) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("pageId", entry.ID).Int64("time", entry.Time).
		Int("events", len(entry.Messaging)).Msg("Processing page entry")

	for i := range entry.Messaging {
		d.dispatch(ctx, &entry.Messaging[i])
	}
}

func (d *Dispatcher) dispatch(ctx context.Context, event *messenger.MessagingEvent) {
	switch event.Kind {
	case messenger.KindOptIn:
		d.handlers.ReceivedAuthentication(ctx, event)
	case messenger.KindMessage:
		d.handlers.ReceivedMessage(ctx, event)
	case messenger.KindDelivery:
		d.handlers.ReceivedDeliveryConfirmation(ctx, event)
	case messenger.KindPostback:
		d.handlers.ReceivedPostback(ctx, event)
	case messenger.KindRead:
		d.handlers.ReceivedMessageRead(ctx, event)
	case messenger.KindAccountLinking:
		d.handlers.ReceivedAccountLink(ctx, event)
	case messenger.KindAmbiguous:
		tags := make([]string, len(event.Tags))
		for i, tag := range event.Tags {
			tags[i] = tag.String()
		}
		zerolog.Ctx(ctx).Error().Strs("tags", tags).Str("senderId", event.Sender.ID).
			Msg("Webhook received messaging event with more than one payload, skipping")
	default:
		zerolog.Ctx(ctx).Warn().Str("senderId", event.Sender.ID).Int64("timestamp", event.Timestamp).
			Msg("Webhook received unknown messaging event")
	}
}
