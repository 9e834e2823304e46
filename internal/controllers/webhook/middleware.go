package webhook

import (
	"errors"
	"fmt"

	"github.com/DIMO-Network/messenger-bot-api/internal/signature"
	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// SignatureMiddleware rejects requests whose body is not signed with appSecret.
// The SHA-256 header is used only when the SHA-1 header is absent.
func SignatureMiddleware(appSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(signature.Header)
		if header == "" {
			header = c.Get(signature.Header256)
		}

		if err := signature.Verify(appSecret, c.Body(), header); err != nil {
			logger := zerolog.Ctx(c.UserContext())
			if errors.Is(err, signature.ErrMissingSignature) {
				logger.Error().Msg("Couldn't validate the signature.")
			} else {
				logger.Error().Err(err).Msg("Couldn't validate the request signature.")
			}
			return richerrors.Error{
				ExternalMsg: "Invalid signature",
				Err:         fmt.Errorf("webhook signature check failed: %w", err),
				Code:        fiber.StatusForbidden,
			}
		}
		return c.Next()
	}
}
