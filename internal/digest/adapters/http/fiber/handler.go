package fiber

import (
	"context"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"slack-digest-service/internal/digest/core/domain"
	"slack-digest-service/internal/digest/core/usecase"
)

type RunDigestUseCase interface {
	Execute(ctx context.Context, in usecase.RunInput) (*domain.DailySummary, error)
}

type DigestHandler struct {
	runUC RunDigestUseCase
	log   *zap.Logger
}

func NewDigestHandler(runUC RunDigestUseCase, log *zap.Logger) *DigestHandler {
	return &DigestHandler{runUC: runUC, log: log}
}

// RunDigest godoc
// @Summary Run the digest pipeline on demand
// @Description Aggregates, posts and persists the digest for the given date (default: yesterday in the configured timezone). The response is whole-pipeline success or failure, never partial status per metric.
// @Tags Digest
// @Accept json
// @Produce json
// @Param request body RunDigestRequest false "Date override"
// @Success 200 {object} RunDigestResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "No channel configured"
// @Failure 500 {object} ErrorResponse
// @Router /digest/run [post]
func (h *DigestHandler) RunDigest(c *fiber.Ctx) error {
	var req RunDigestRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error: "invalid_json",
			})
		}
	}

	stored, err := h.runUC.Execute(c.UserContext(), usecase.RunInput{
		Date:  req.Date,
		Today: req.Today,
	})
	if err != nil {
		h.log.Error("manual digest run failed", zap.Error(err))

		status := http.StatusInternalServerError
		if errors.Is(err, usecase.ErrNoChannelConfigured) {
			status = http.StatusConflict
		}
		return c.Status(status).JSON(ErrorResponse{
			Error:   "digest_failed",
			Message: err.Error(),
		})
	}

	return c.Status(http.StatusOK).JSON(RunDigestResponse{
		Status: "ok",
		Summary: &SummaryBody{
			ChannelID:         stored.ChannelID,
			Date:              stored.Date,
			ReactionCount:     stored.ReactionCount,
			MemberJoinedCount: stored.MemberJoinedCount,
			MemberLeftCount:   stored.MemberLeftCount,
			MessageCount:      stored.MessageCount,
			FileCount:         stored.FileCount,
			MessageRef:        stored.MessageRef,
		},
	})
}
