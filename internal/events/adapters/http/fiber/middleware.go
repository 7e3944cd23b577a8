package fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

// NewSignatureMiddleware verifies X-Slack-Signature over the raw request
// body. slack.SecretsVerifier also enforces the five minute timestamp
// freshness window, so replayed deliveries are rejected here.
func NewSignatureMiddleware(signingSecret string, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := http.Header{}
		for key, values := range c.GetReqHeaders() {
			for _, v := range values {
				header.Add(key, v)
			}
		}

		verifier, err := slack.NewSecretsVerifier(header, signingSecret)
		if err != nil {
			log.Warn("rejected webhook with bad signature headers", zap.Error(err))
			return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
				Error: "invalid_signature",
			})
		}

		if _, err := verifier.Write(c.Body()); err != nil {
			log.Error("signature verifier write failed", zap.Error(err))
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}

		if err := verifier.Ensure(); err != nil {
			log.Warn("rejected webhook with invalid signature", zap.Error(err))
			return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
				Error: "invalid_signature",
			})
		}

		return c.Next()
	}
}
