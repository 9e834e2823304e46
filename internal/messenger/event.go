// Package messenger holds the Messenger Platform wire types: the webhook
// payloads delivered to the bot and the Send API requests it issues.
package messenger

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ObjectPage is the only webhook object the bot subscribes to.
const ObjectPage = "page"

// Kind identifies which payload a messaging event carries.
type Kind int

const (
	KindUnknown Kind = iota
	KindOptIn
	KindMessage
	KindDelivery
	KindPostback
	KindRead
	KindAccountLinking
	// KindAmbiguous marks an event carrying more than one payload.
	KindAmbiguous
)

var kindNames = map[Kind]string{
	KindUnknown:        "unknown",
	KindOptIn:          "optin",
	KindMessage:        "message",
	KindDelivery:       "delivery",
	KindPostback:       "postback",
	KindRead:           "read",
	KindAccountLinking: "account_linking",
	KindAmbiguous:      "ambiguous",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// WebhookBody is the JSON document POSTed to the webhook.
type WebhookBody struct {
	Object string  `json:"object"`
	Entry  []Entry `json:"entry"`
}

// Entry is a batch of messaging events for one page.
type Entry struct {
	ID        string           `json:"id"`
	Time      int64            `json:"time"`
	Messaging []MessagingEvent `json:"messaging"`
}

// Party identifies a sender or recipient by its page-scoped id.
type Party struct {
	ID string `json:"id"`
}

// MessagingEvent is a single webhook event. Exactly one of the payload
// pointers is set when Kind is neither KindUnknown nor KindAmbiguous.
type MessagingEvent struct {
	Sender    Party `json:"sender"`
	Recipient Party `json:"recipient"`
	Timestamp int64 `json:"timestamp"`

	Kind Kind `json:"-"`
	// Tags lists every payload present on the wire, in field order.
	Tags []Kind `json:"-"`

	OptIn          *OptIn          `json:"optin,omitempty"`
	Message        *Message        `json:"message,omitempty"`
	Delivery       *Delivery       `json:"delivery,omitempty"`
	Postback       *Postback       `json:"postback,omitempty"`
	Read           *Read           `json:"read,omitempty"`
	AccountLinking *AccountLinking `json:"account_linking,omitempty"`
}

// UnmarshalJSON decodes the event and classifies it by the payloads present.
func (e *MessagingEvent) UnmarshalJSON(data []byte) error {
	type plain MessagingEvent
	var raw struct {
		plain
		OptIn          json.RawMessage `json:"optin"`
		Message        json.RawMessage `json:"message"`
		Delivery       json.RawMessage `json:"delivery"`
		Postback       json.RawMessage `json:"postback"`
		Read           json.RawMessage `json:"read"`
		AccountLinking json.RawMessage `json:"account_linking"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	ev := MessagingEvent{
		Sender:    raw.Sender,
		Recipient: raw.Recipient,
		Timestamp: raw.Timestamp,
	}
	fields := []struct {
		kind Kind
		raw  json.RawMessage
		dst  any
	}{
		{KindOptIn, raw.OptIn, &ev.OptIn},
		{KindMessage, raw.Message, &ev.Message},
		{KindDelivery, raw.Delivery, &ev.Delivery},
		{KindPostback, raw.Postback, &ev.Postback},
		{KindRead, raw.Read, &ev.Read},
		{KindAccountLinking, raw.AccountLinking, &ev.AccountLinking},
	}
	for _, f := range fields {
		if !present(f.raw) {
			continue
		}
		if err := json.Unmarshal(f.raw, f.dst); err != nil {
			return fmt.Errorf("failed to decode %s payload: %w", f.kind, err)
		}
		ev.Tags = append(ev.Tags, f.kind)
	}

	switch len(ev.Tags) {
	case 0:
		ev.Kind = KindUnknown
	case 1:
		ev.Kind = ev.Tags[0]
	default:
		ev.Kind = KindAmbiguous
	}
	*e = ev
	return nil
}

func present(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// OptIn is delivered when a user authenticates through a plugin.
type OptIn struct {
	// Ref is the data-ref set on the Send to Messenger plugin.
	Ref     string `json:"ref"`
	UserRef string `json:"user_ref,omitempty"`
}

// Message is a message sent to the page, or an echo of one the page sent.
type Message struct {
	MID         string       `json:"mid"`
	Seq         int64        `json:"seq,omitempty"`
	Text        string       `json:"text,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
	QuickReply  *QuickReply  `json:"quick_reply,omitempty"`

	IsEcho   bool   `json:"is_echo,omitempty"`
	AppID    int64  `json:"app_id,omitempty"`
	Metadata string `json:"metadata,omitempty"`
}

// Attachment is a media or structured attachment on a received message.
type Attachment struct {
	Type    string            `json:"type"`
	Payload AttachmentPayload `json:"payload"`
}

// AttachmentPayload covers the attachment payload shapes the bot inspects.
type AttachmentPayload struct {
	URL         string       `json:"url,omitempty"`
	StickerID   int64        `json:"sticker_id,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// Coordinates are sent with location attachments.
type Coordinates struct {
	Lat  float64 `json:"lat"`
	Long float64 `json:"long"`
}

// QuickReply carries the payload of a tapped quick reply.
type QuickReply struct {
	Payload string `json:"payload"`
}

// Delivery confirms that messages sent by the page were delivered.
type Delivery struct {
	MIDs []string `json:"mids,omitempty"`
	// Watermark is a timestamp; every message before it was delivered.
	Watermark int64 `json:"watermark"`
	Seq       int64 `json:"seq,omitempty"`
}

// Postback is delivered when a postback button is tapped.
type Postback struct {
	Title string `json:"title,omitempty"`
	// Payload is the developer defined value attached to the button.
	Payload string `json:"payload"`
}

// Read confirms that messages sent by the page were read.
type Read struct {
	Watermark int64 `json:"watermark"`
	Seq       int64 `json:"seq,omitempty"`
}

// Account linking statuses.
const (
	AccountLinked   = "linked"
	AccountUnlinked = "unlinked"
)

// AccountLinking is delivered when a user links or unlinks an account.
type AccountLinking struct {
	Status            string `json:"status"`
	AuthorizationCode string `json:"authorization_code,omitempty"`
}
