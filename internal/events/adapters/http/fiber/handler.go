package fiber

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"slack-digest-service/internal/events/core/domain"
	"slack-digest-service/internal/events/core/usecase"
)

type DispatchEventUseCase interface {
	Execute(ctx context.Context, env domain.RawEnvelope) (usecase.Outcome, error)
}

type WebhookHandler struct {
	dispatchUC DispatchEventUseCase
	log        *zap.Logger
}

func NewWebhookHandler(dispatchUC DispatchEventUseCase, log *zap.Logger) *WebhookHandler {
	return &WebhookHandler{dispatchUC: dispatchUC, log: log}
}

// HandleEvent godoc
// @Summary Receive a Slack Events API delivery
// @Description Answers url_verification challenges and dispatches event_callback deliveries. Always acknowledges with 200 regardless of the internal processing outcome, so Slack's redelivery is driven solely by transport failures.
// @Tags Events
// @Accept json
// @Produce json
// @Param request body SlackEventRequest true "Event envelope"
// @Success 200 {object} EventResponse
// @Failure 400 {object} ErrorResponse
// @Router /slack/events [post]
func (h *WebhookHandler) HandleEvent(c *fiber.Ctx) error {
	var req SlackEventRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	if req.Type == "url_verification" {
		return c.Status(http.StatusOK).JSON(ChallengeResponse{Challenge: req.Challenge})
	}

	var probe eventKindProbe
	if len(req.Event) > 0 {
		if err := json.Unmarshal(req.Event, &probe); err != nil {
			h.log.Warn("unparseable inner event acknowledged",
				zap.String("event_id", req.EventID), zap.Error(err))
			return c.Status(http.StatusOK).JSON(EventResponse{Status: string(usecase.OutcomeSkipped)})
		}
	}

	env := domain.RawEnvelope{
		EventID: req.EventID,
		Kind:    domain.Kind(probe.Type),
		Body:    req.Event,
	}

	// The dispatcher swallows per-event failures; err here is informational.
	outcome, err := h.dispatchUC.Execute(c.UserContext(), env)
	if err != nil {
		h.log.Error("event processing failed, acknowledging anyway",
			zap.String("event_id", req.EventID),
			zap.Error(err))
	}

	return c.Status(http.StatusOK).JSON(EventResponse{Status: string(outcome)})
}
