package sentiment

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestAnalyze_PolaritySigns(t *testing.T) {
	a := NewAnalyzer()

	positive := a.Analyze("This release is great, I love it!")
	if positive.Compound <= 0 {
		t.Fatalf("expected positive compound, got %f", positive.Compound)
	}

	negative := a.Analyze("This is terrible and I hate it.")
	if negative.Compound >= 0 {
		t.Fatalf("expected negative compound, got %f", negative.Compound)
	}
}

func TestAnalyze_Stateless(t *testing.T) {
	a := NewAnalyzer()

	first := a.Analyze("absolutely wonderful")
	a.Analyze("the worst thing ever")
	again := a.Analyze("absolutely wonderful")

	if first != again {
		t.Fatalf("same input must score identically: %+v vs %+v", first, again)
	}
}

func TestHandler_Analyze(t *testing.T) {
	app := fiber.New()
	app.Post("/sentiment", NewHandler(NewAnalyzer()).Analyze)

	req := httptest.NewRequest(http.MethodPost, "/sentiment",
		bytes.NewReader([]byte(`{"text":"what a fantastic day"}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d (body: %s)", resp.StatusCode, string(body))
	}

	var out AnalyzeResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if out.Score.Compound <= 0 {
		t.Fatalf("expected positive score, got %+v", out.Score)
	}
}

func TestHandler_MissingText(t *testing.T) {
	app := fiber.New()
	app.Post("/sentiment", NewHandler(NewAnalyzer()).Analyze)

	req := httptest.NewRequest(http.MethodPost, "/sentiment", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	_ = resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}
