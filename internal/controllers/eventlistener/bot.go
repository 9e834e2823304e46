//go:generate go tool mockgen -source=bot.go -destination=bot_mock_test.go -package=eventlistener
package eventlistener

import (
	"context"
	"slices"
	"strings"
	"time"
	"unicode/utf16"

	"github.com/DIMO-Network/messenger-bot-api/internal/auth"
	"github.com/DIMO-Network/messenger-bot-api/internal/messenger"
	"github.com/DIMO-Network/messenger-bot-api/internal/services/scheduler"
	"github.com/DIMO-Network/messenger-bot-api/internal/services/sendapi"
	"github.com/rs/zerolog"
)

const (
	defaultGreetingReply = "Hi."
	defaultFallbackReply = "Nope."
	defaultAuthReply     = "Authentication successful"
	defaultDelayPerChar  = 10 * time.Millisecond
	defaultMaxReplyDelay = 20 * time.Second
)

type Sender interface {
	SendAsync(ctx context.Context, req *messenger.SendRequest) *sendapi.Future
}

type Scheduler interface {
	After(d time.Duration, fn func()) scheduler.Handle
}

type EventCache interface {
	FirstSeen(id string) bool
}

type LinkVerifier interface {
	Verify(code string) (*auth.LinkToken, error)
}

// Bot implements Handlers. It answers greetings right away, answers any other
// text after a delay that grows with the text length, and confirms opt-ins.
// Every other event is only logged.
type Bot struct {
	sender    Sender
	scheduler Scheduler
	seen      EventCache
	linker    LinkVerifier

	Greetings     []string
	GreetingReply string
	FallbackReply string
	AuthReply     string
	DelayPerChar  time.Duration
	MaxReplyDelay time.Duration
}

// NewBot creates a Bot with the default replies. seen and linker may be nil,
// which disables redelivery detection and authorization code checks.
func NewBot(sender Sender, sched Scheduler, seen EventCache, linker LinkVerifier) *Bot {
	return &Bot{
		sender:        sender,
		scheduler:     sched,
		seen:          seen,
		linker:        linker,
		Greetings:     []string{"hi", "hello"},
		GreetingReply: defaultGreetingReply,
		FallbackReply: defaultFallbackReply,
		AuthReply:     defaultAuthReply,
		DelayPerChar:  defaultDelayPerChar,
		MaxReplyDelay: defaultMaxReplyDelay,
	}
}

// ReplyDelay is how long the bot "thinks" before answering text.
// Length is counted in UTF-16 code units, as the platform counts it.
func (b *Bot) ReplyDelay(text string) time.Duration {
	n := len(utf16.Encode([]rune(text)))
	delay := time.Duration(n) * b.DelayPerChar
	return min(delay, b.MaxReplyDelay)
}

func (b *Bot) isGreeting(text string) bool {
	return slices.Contains(b.Greetings, strings.ToLower(strings.TrimSpace(text)))
}

// ReceivedMessage handles a message sent to the page.
func (b *Bot) ReceivedMessage(ctx context.Context, event *messenger.MessagingEvent) {
	msg := event.Message
	senderID := event.Sender.ID
	logger := zerolog.Ctx(ctx).With().
		Str("senderId", senderID).
		Str("recipientId", event.Recipient.ID).
		Str("mid", msg.MID).
		Logger()
	logger.Info().Int64("timestamp", event.Timestamp).Str("text", msg.Text).Msg("Received message")

	if msg.IsEcho {
		logger.Info().Int64("appId", msg.AppID).Str("metadata", msg.Metadata).Msg("Received echo")
		return
	}
	if b.seen != nil && !b.seen.FirstSeen(msg.MID) {
		logger.Info().Msg("Skipping redelivered message")
		return
	}
	if msg.QuickReply != nil {
		logger.Info().Str("payload", msg.QuickReply.Payload).Msg("Received quick reply")
	}

	if msg.Text == "" {
		if len(msg.Attachments) > 0 {
			types := make([]string, len(msg.Attachments))
			for i, a := range msg.Attachments {
				types[i] = a.Type
			}
			logger.Info().Strs("attachmentTypes", types).Msg("Received message with attachments, not replying")
		}
		return
	}

	// Replies must outlive the webhook request.
	sendCtx := context.WithoutCancel(logger.WithContext(ctx))

	if b.isGreeting(msg.Text) {
		b.sender.SendAsync(sendCtx, sendapi.TextMessage(senderID, b.GreetingReply))
		return
	}

	b.sender.SendAsync(sendCtx, sendapi.TypingOn(senderID))
	delay := b.ReplyDelay(msg.Text)
	b.scheduler.After(delay, func() {
		b.sender.SendAsync(sendCtx, sendapi.TextMessage(senderID, b.FallbackReply))
	})
	logger.Debug().Dur("delay", delay).Msg("Scheduled fallback reply")
}

// ReceivedDeliveryConfirmation logs delivered message ids.
func (b *Bot) ReceivedDeliveryConfirmation(ctx context.Context, event *messenger.MessagingEvent) {
	logger := zerolog.Ctx(ctx)
	delivery := event.Delivery
	for _, mid := range delivery.MIDs {
		logger.Info().Str("mid", mid).Msg("Received delivery confirmation")
	}
	logger.Info().Int64("watermark", delivery.Watermark).Int64("seq", delivery.Seq).
		Msg("All messages before watermark were delivered")
}

// ReceivedPostback logs the payload of a tapped postback button.
func (b *Bot) ReceivedPostback(ctx context.Context, event *messenger.MessagingEvent) {
	zerolog.Ctx(ctx).Info().
		Str("senderId", event.Sender.ID).
		Str("recipientId", event.Recipient.ID).
		Str("payload", event.Postback.Payload).
		Str("title", event.Postback.Title).
		Int64("timestamp", event.Timestamp).
		Msg("Received postback")
}

// ReceivedMessageRead logs the read watermark.
func (b *Bot) ReceivedMessageRead(ctx context.Context, event *messenger.MessagingEvent) {
	zerolog.Ctx(ctx).Info().
		Str("senderId", event.Sender.ID).
		Int64("watermark", event.Read.Watermark).
		Int64("seq", event.Read.Seq).
		Msg("Received message read event")
}

// ReceivedAccountLink logs a link or unlink and checks linked codes.
func (b *Bot) ReceivedAccountLink(ctx context.Context, event *messenger.MessagingEvent) {
	link := event.AccountLinking
	logger := zerolog.Ctx(ctx).With().
		Str("senderId", event.Sender.ID).
		Str("status", link.Status).
		Logger()
	logger.Info().Str("authorizationCode", link.AuthorizationCode).Msg("Received account link event")

	if link.Status != messenger.AccountLinked || b.linker == nil {
		return
	}
	claims, err := b.linker.Verify(link.AuthorizationCode)
	if err != nil {
		logger.Warn().Err(err).Msg("Account linked with an authorization code this bot did not issue")
		return
	}
	logger.Info().Str("codeId", claims.ID).Msg("Account linked")
}

// ReceivedAuthentication logs the plugin pass-through param and confirms.
func (b *Bot) ReceivedAuthentication(ctx context.Context, event *messenger.MessagingEvent) {
	senderID := event.Sender.ID
	logger := zerolog.Ctx(ctx).With().Str("senderId", senderID).Logger()
	logger.Info().
		Str("recipientId", event.Recipient.ID).
		Str("ref", event.OptIn.Ref).
		Int64("timestamp", event.Timestamp).
		Msg("Received authentication")

	sendCtx := context.WithoutCancel(logger.WithContext(ctx))
	b.sender.SendAsync(sendCtx, sendapi.TextMessage(senderID, b.AuthReply))
}
