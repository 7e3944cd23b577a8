package sentiment

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// AnalyzeRequest carries the text to score.
// @Description Sentiment analysis payload
type AnalyzeRequest struct {
	Text string `json:"text"`
}

type AnalyzeResponse struct {
	Score Score `json:"score"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"text_required"`
}

type Handler struct {
	analyzer *Analyzer
}

func NewHandler(analyzer *Analyzer) *Handler {
	return &Handler{analyzer: analyzer}
}

// Analyze godoc
// @Summary Score the sentiment of a piece of text
// @Description Stateless VADER polarity scoring; nothing is persisted.
// @Tags Sentiment
// @Accept json
// @Produce json
// @Param request body AnalyzeRequest true "Text to score"
// @Success 200 {object} AnalyzeResponse
// @Failure 400 {object} ErrorResponse
// @Router /sentiment [post]
func (h *Handler) Analyze(c *fiber.Ctx) error {
	var req AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_json"})
	}
	if req.Text == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "text_required"})
	}

	return c.Status(http.StatusOK).JSON(AnalyzeResponse{Score: h.analyzer.Analyze(req.Text)})
}
