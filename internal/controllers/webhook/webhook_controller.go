//go:generate go tool mockgen -source=webhook_controller.go -destination=webhook_controller_mock_test.go -package=webhook
package webhook

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/DIMO-Network/messenger-bot-api/internal/auth"
	"github.com/DIMO-Network/messenger-bot-api/internal/messenger"
	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

const (
	eventReceived = "EVENT_RECEIVED"
	modeSubscribe = "subscribe"
)

type EntryProcessor interface {
	ProcessEntry(ctx context.Context, entry *messenger.Entry)
}

type CodeIssuer interface {
	Issue(accountLinkingToken string) (string, error)
}

// WebhookController serves the Messenger Platform webhook and the account
// linking page.
type WebhookController struct {
	processor       EntryProcessor
	issuer          CodeIssuer
	validationToken string
	serverURL       string
}

// NewWebhookController creates a new WebhookController.
func NewWebhookController(processor EntryProcessor, issuer CodeIssuer, validationToken, serverURL string) *WebhookController {
	return &WebhookController{
		processor:       processor,
		issuer:          issuer,
		validationToken: validationToken,
		serverURL:       serverURL,
	}
}

// Verify godoc
// @Summary      Verify the webhook subscription
// @Description  Answers the platform's subscription handshake by echoing hub.challenge when hub.mode is "subscribe" and hub.verify_token matches the configured validation token.
// @Tags         Webhook
// @Produce      plain
// @Param        hub.mode          query  string  true  "Must be subscribe"
// @Param        hub.verify_token  query  string  true  "Validation token entered in the app dashboard"
// @Param        hub.challenge     query  string  true  "Value to echo back"
// @Success      200  {string}  string  "The challenge"
// @Failure      403  "Validation failed"
// @Router       /webhook [get]
func (w *WebhookController) Verify(c *fiber.Ctx) error {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	if mode != modeSubscribe || token != w.validationToken {
		zerolog.Ctx(c.UserContext()).Warn().Str("mode", mode).
			Msg("Failed validation. Make sure the validation tokens match.")
		return richerrors.Error{
			ExternalMsg: "Failed validation",
			Err:         fmt.Errorf("webhook verification failed for mode %q", mode),
			Code:        fiber.StatusForbidden,
		}
	}

	zerolog.Ctx(c.UserContext()).Info().Msg("Validating webhook")
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(c.Query("hub.challenge"))
}

// Receive godoc
// @Summary      Receive webhook events
// @Description  Accepts a signed batch of page entries and handles every messaging event in arrival order. The response does not depend on the outcome of any reply.
// @Tags         Webhook
// @Accept       json
// @Produce      plain
// @Param        X-Hub-Signature  header  string                 true  "sha1=<hex HMAC of the raw body>"
// @Param        request          body    messenger.WebhookBody  true  "Webhook batch"
// @Success      200  {string}  string  "EVENT_RECEIVED"
// @Failure      400  "Invalid JSON payload"
// @Failure      403  "Missing or invalid signature"
// @Failure      404  "Object is not a page subscription"
// @Router       /webhook [post]
func (w *WebhookController) Receive(c *fiber.Ctx) error {
	var body messenger.WebhookBody
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return richerrors.Error{
			ExternalMsg: "Invalid request payload",
			Err:         fmt.Errorf("failed to decode webhook body: %w", err),
			Code:        fiber.StatusBadRequest,
		}
	}

	if body.Object != messenger.ObjectPage {
		return richerrors.Error{
			ExternalMsg: "Unsupported webhook object",
			Err:         fmt.Errorf("webhook object %q is not %q", body.Object, messenger.ObjectPage),
			Code:        fiber.StatusNotFound,
		}
	}

	ctx := c.UserContext()
	for i := range body.Entry {
		w.processor.ProcessEntry(ctx, &body.Entry[i])
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(eventReceived)
}

// Authorize godoc
// @Summary      Account linking page
// @Description  Renders the page the platform opens during account linking. An authorization code is issued for the linking token and appended to the redirect URI to form the success link.
// @Tags         Account Linking
// @Produce      html
// @Param        account_linking_token  query  string  true  "Token issued by the platform"
// @Param        redirect_uri           query  string  true  "Where to send the user when linking is done"
// @Success      200  {string}  string  "HTML page"
// @Failure      400  "Missing or invalid parameters"
// @Failure      500  "Internal server error"
// @Router       /authorize [get]
func (w *WebhookController) Authorize(c *fiber.Ctx) error {
	linkingToken := c.Query("account_linking_token")
	redirectURI := c.Query("redirect_uri")
	if linkingToken == "" || redirectURI == "" {
		return richerrors.Error{
			ExternalMsg: "account_linking_token and redirect_uri are required",
			Code:        fiber.StatusBadRequest,
		}
	}

	code, err := w.issuer.Issue(linkingToken)
	if err != nil {
		return richerrors.Error{
			ExternalMsg: "Failed to issue authorization code",
			Err:         err,
			Code:        fiber.StatusInternalServerError,
		}
	}

	successURI, err := auth.SuccessRedirect(redirectURI, code)
	if err != nil {
		return richerrors.Error{
			ExternalMsg: "Invalid redirect_uri",
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}

	page, err := renderAuthorizePage(AuthorizePage{
		AccountLinkingToken: linkingToken,
		RedirectURI:         redirectURI,
		RedirectURISuccess:  successURI,
		ServerURL:           w.serverURL,
	})
	if err != nil {
		return richerrors.Error{
			ExternalMsg: "Failed to render page",
			Err:         err,
			Code:        fiber.StatusInternalServerError,
		}
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(page)
}
