package sendapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/DIMO-Network/messenger-bot-api/internal/config"
	"github.com/DIMO-Network/messenger-bot-api/internal/messenger"
	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/rs/zerolog"
)

const (
	// SendFailureCode is the code returned when a Send API call failed
	SendFailureCode = -1

	// DefaultMetadata is attached to every text message the bot sends.
	DefaultMetadata = "DEVELOPER_DEFINED_METADATA"

	// Default timeout for Send API requests
	defaultSendTimeout = 30 * time.Second
	// Maximum response body size to read for error details
	maxResponseBodySize = 4096

	userAgent = "DIMO-Messenger-Bot/1.0"
)

// APIError is the error object returned by the Graph API.
type APIError struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id,omitempty"`
	// StatusCode is the HTTP status of the failed call.
	StatusCode int `json:"-"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("send API returned status code %d: %s (type=%s, code=%d)", e.StatusCode, e.Message, e.Type, e.Code)
}

// Client calls the Messenger Send API.
type Client struct {
	client      *http.Client
	endpoint    string
	accessToken string
}

// NewClient creates a Client for the configured Graph API version. A nil
// http client gets a default one using the configured send timeout.
func NewClient(settings *config.Settings, client *http.Client) *Client {
	if client == nil {
		timeout := settings.SendTimeout
		if timeout <= 0 {
			timeout = defaultSendTimeout
		}
		client = &http.Client{
			Timeout: timeout,
		}
	}
	return &Client{
		client:      client,
		endpoint:    strings.TrimSuffix(settings.GraphAPIURL, "/") + "/me/messages",
		accessToken: settings.PageAccessToken,
	}
}

// Send posts req to the Send API and waits for the response.
// A 200 response is a success whether or not it carries a message id.
func (c *Client) Send(ctx context.Context, req *messenger.SendRequest) (*messenger.SendResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, richerrors.Error{
			Code:        SendFailureCode,
			ExternalMsg: "Invalid send request",
			Err:         fmt.Errorf("invalid send request: %w", err),
		}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal send request: %w", err)
	}

	target, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, richerrors.Error{
			Code: SendFailureCode,
			Err:  fmt.Errorf("invalid URL: %w", err),
		}
	}
	query := target.Query()
	query.Set("access_token", c.accessToken)
	target.RawQuery = query.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, target.String(), bytes.NewReader(body))
	if err != nil {
		return nil, richerrors.Error{
			Code: SendFailureCode,
			Err:  fmt.Errorf("failed to create send request: %w", err),
		}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, richerrors.Error{
			Code: SendFailureCode,
			// url.Error would echo the access token back into logs.
			Err: fmt.Errorf("failed to POST to send API: %w", redactURLError(err)),
		}
	}
	defer resp.Body.Close() // nolint:errcheck

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return nil, richerrors.Error{
			Code: SendFailureCode,
			Err:  fmt.Errorf("failed to read send API response: %w", err),
		}
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := parseAPIError(resp.StatusCode, respBody)
		return nil, richerrors.Error{
			Code:        SendFailureCode,
			ExternalMsg: apiErr.Message,
			Err:         apiErr,
		}
	}

	var out messenger.SendResponse
	if len(bytes.TrimSpace(respBody)) > 0 {
		if err := json.Unmarshal(respBody, &out); err != nil {
			return nil, fmt.Errorf("failed to decode send API response: %w", err)
		}
	}
	return &out, nil
}

// SendAsync sends req on its own goroutine, logs the outcome and returns a
// Future the caller may wait on or ignore. Failures are never retried.
func (c *Client) SendAsync(ctx context.Context, req *messenger.SendRequest) *Future {
	f := newFuture()
	go func() {
		resp, err := c.Send(ctx, req)
		logResult(ctx, req, resp, err)
		f.resolve(resp, err)
	}()
	return f
}

func logResult(ctx context.Context, req *messenger.SendRequest, resp *messenger.SendResponse, err error) {
	logger := zerolog.Ctx(ctx)
	recipientID := ""
	if req != nil {
		recipientID = req.Recipient.ID
	}
	if err != nil {
		event := logger.Error().Err(err).Str("recipientId", recipientID)
		if apiErr, ok := AsAPIError(err); ok {
			event = event.Str("platformError", apiErr.Message).Int("statusCode", apiErr.StatusCode)
		}
		event.Msg("Send API call failed")
		return
	}
	if resp.MessageID != "" {
		logger.Info().Str("messageId", resp.MessageID).Str("recipientId", resp.RecipientID).
			Msg("Successfully sent message")
		return
	}
	logger.Info().Str("recipientId", resp.RecipientID).Msg("Successfully called Send API")
}

// AsAPIError extracts the platform error from a Send failure.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	if richErr, ok := richerrors.AsRichError(err); ok && richErr.Err != nil {
		if errors.As(richErr.Err, &apiErr) {
			return apiErr, true
		}
	}
	return nil, false
}

func parseAPIError(statusCode int, body []byte) *APIError {
	var envelope struct {
		Error *APIError `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error == nil {
		return &APIError{StatusCode: statusCode, Message: strings.TrimSpace(string(body))}
	}
	envelope.Error.StatusCode = statusCode
	return envelope.Error
}

func redactURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s %s: %w", urlErr.Op, redactToken(urlErr.URL), urlErr.Err)
	}
	return err
}

func redactToken(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<invalid url>"
	}
	u.RawQuery = ""
	return u.String()
}

// TextMessage builds a text message for recipientID.
func TextMessage(recipientID, text string) *messenger.SendRequest {
	return &messenger.SendRequest{
		Recipient: messenger.Party{ID: recipientID},
		Message: &messenger.OutboundMessage{
			Text:     text,
			Metadata: DefaultMetadata,
		},
	}
}

// SenderAction builds a sender action request for recipientID.
func SenderAction(recipientID string, action messenger.SenderAction) *messenger.SendRequest {
	return &messenger.SendRequest{
		Recipient:    messenger.Party{ID: recipientID},
		SenderAction: action,
	}
}

// TypingOn turns the typing indicator on.
func TypingOn(recipientID string) *messenger.SendRequest {
	return SenderAction(recipientID, messenger.TypingOn)
}

// TypingOff turns the typing indicator off.
func TypingOff(recipientID string) *messenger.SendRequest {
	return SenderAction(recipientID, messenger.TypingOff)
}

// MarkSeen marks the last message as read.
func MarkSeen(recipientID string) *messenger.SendRequest {
	return SenderAction(recipientID, messenger.MarkSeen)
}
