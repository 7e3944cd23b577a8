package fiber

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"slack-digest-service/internal/digest/core/domain"
	"slack-digest-service/internal/digest/core/usecase"
)

type fakeRunUseCase struct {
	ExecuteFn func(ctx context.Context, in usecase.RunInput) (*domain.DailySummary, error)
	LastInput usecase.RunInput
}

func (f *fakeRunUseCase) Execute(ctx context.Context, in usecase.RunInput) (*domain.DailySummary, error) {
	f.LastInput = in
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, in)
	}
	return &domain.DailySummary{ChannelID: "C1", Date: "2024-01-15", MessageCount: 42}, nil
}

func setupTestApp(uc RunDigestUseCase) *fiber.App {
	app := fiber.New()
	h := NewDigestHandler(uc, zap.NewNop())
	app.Post("/digest/run", h.RunDigest)
	return app
}

func doRequest(t *testing.T, app *fiber.App, body string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(http.MethodPost, "/digest/run", reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	_ = resp.Body.Close()

	return resp, respBody
}

func TestRunDigest_Success(t *testing.T) {
	fakeUC := &fakeRunUseCase{}
	app := setupTestApp(fakeUC)

	resp, body := doRequest(t, app, `{"date":"2024-01-15"}`)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d (body: %s)", resp.StatusCode, string(body))
	}
	if fakeUC.LastInput.Date != "2024-01-15" {
		t.Fatalf("expected date passed through, got %q", fakeUC.LastInput.Date)
	}

	var out RunDigestResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if out.Status != "ok" {
		t.Fatalf("expected ok, got %s", out.Status)
	}
	if out.Summary == nil || out.Summary.MessageCount != 42 {
		t.Fatalf("expected summary in response, got %+v", out.Summary)
	}
}

func TestRunDigest_EmptyBodyUsesDefaults(t *testing.T) {
	fakeUC := &fakeRunUseCase{}
	app := setupTestApp(fakeUC)

	resp, _ := doRequest(t, app, "")

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 with empty body, got %d", resp.StatusCode)
	}
	if fakeUC.LastInput.Date != "" || fakeUC.LastInput.Today {
		t.Fatalf("expected default input, got %+v", fakeUC.LastInput)
	}
}

func TestRunDigest_NoChannelConfigured(t *testing.T) {
	fakeUC := &fakeRunUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.RunInput) (*domain.DailySummary, error) {
			return nil, usecase.ErrNoChannelConfigured
		},
	}
	app := setupTestApp(fakeUC)

	resp, body := doRequest(t, app, `{}`)

	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d (body: %s)", resp.StatusCode, string(body))
	}

	var out ErrorResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if out.Error != "digest_failed" {
		t.Fatalf("expected digest_failed, got %s", out.Error)
	}
	if out.Message == "" {
		t.Fatalf("caller must receive an error message")
	}
}

func TestRunDigest_InvalidJSON(t *testing.T) {
	fakeUC := &fakeRunUseCase{}
	app := setupTestApp(fakeUC)

	resp, _ := doRequest(t, app, `{not json`)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}
