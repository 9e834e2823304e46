package messenger

import (
	"errors"
	"fmt"
)

// SenderAction is a non-message signal shown to the recipient.
type SenderAction string

const (
	TypingOn  SenderAction = "typing_on"
	TypingOff SenderAction = "typing_off"
	MarkSeen  SenderAction = "mark_seen"
)

// SendRequest is the body of a Send API call. Exactly one of Message and
// SenderAction must be set.
type SendRequest struct {
	Recipient    Party            `json:"recipient"`
	Message      *OutboundMessage `json:"message,omitempty"`
	SenderAction SenderAction     `json:"sender_action,omitempty"`
}

// OutboundMessage is a text or attachment message sent by the page.
type OutboundMessage struct {
	Text       string              `json:"text,omitempty"`
	Attachment *OutboundAttachment `json:"attachment,omitempty"`
	Metadata   string              `json:"metadata,omitempty"`
}

// OutboundAttachment is a media or template attachment. Payload is sent as is.
type OutboundAttachment struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// SendResponse is returned by the Send API on success. Sender actions do not
// get a message id.
type SendResponse struct {
	RecipientID string `json:"recipient_id"`
	MessageID   string `json:"message_id,omitempty"`
}

// Validate checks the request shape before it is sent.
func (r *SendRequest) Validate() error {
	if r == nil {
		return errors.New("send request is nil")
	}
	if r.Recipient.ID == "" {
		return errors.New("recipient id is required")
	}
	if r.Message == nil && r.SenderAction == "" {
		return errors.New("either message or sender_action is required")
	}
	if r.Message != nil && r.SenderAction != "" {
		return errors.New("message and sender_action are mutually exclusive")
	}
	if r.Message != nil {
		if r.Message.Text == "" && r.Message.Attachment == nil {
			return errors.New("message needs text or an attachment")
		}
		if r.Message.Text != "" && r.Message.Attachment != nil {
			return errors.New("message text and attachment are mutually exclusive")
		}
	}
	switch r.SenderAction {
	case "", TypingOn, TypingOff, MarkSeen:
	default:
		return fmt.Errorf("unknown sender action %q", r.SenderAction)
	}
	return nil
}
