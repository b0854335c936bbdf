package gemini_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"health-tracker/pkg/gemini"
)

func TestNewClient(t *testing.T) {
	if _, err := gemini.NewClient(gemini.Config{}); err == nil {
		t.Fatal("expected error for missing api key")
	}

	c, err := gemini.NewClient(gemini.Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Model() != gemini.DefaultModel {
		t.Errorf("expected default model, got %s", c.Model())
	}
}

func TestClient_GenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req gemini.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		text := req.Contents[0].Parts[0].Text
		switch text {
		case "cause_500":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`quota exceeded`))
			return
		case "cause_slow":
			time.Sleep(200 * time.Millisecond)
		}

		if req.GenerationConfig == nil || req.GenerationConfig.TopK != 40 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{
					"content": {
						"parts": [
							{ "text": "mocked " },
							{ "text": "response" }
						],
						"role": "model"
					}
				}
			]
		}`))
	}))
	defer ts.Close()

	client, err := gemini.NewClient(gemini.Config{APIKey: "test-api-key", APIURL: ts.URL + "/"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	request := func(text string) gemini.GenerateRequest {
		return gemini.GenerateRequest{
			Contents:         []gemini.Content{{Role: gemini.RoleUser, Parts: []gemini.Part{{Text: text}}}},
			GenerationConfig: &gemini.GenerationConfig{Temperature: 0.2, TopK: 40},
		}
	}

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), request("Hello world"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		text, err := resp.Text()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != "mocked response" {
			t.Errorf("unexpected content response: %s", text)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), request("cause_500"))
		var apiErr *gemini.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if apiErr.StatusCode != http.StatusInternalServerError {
			t.Errorf("unexpected status %d", apiErr.StatusCode)
		}
	})

	t.Run("Context Deadline", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		if _, err := client.GenerateContent(ctx, request("cause_slow")); err == nil {
			t.Fatal("expected deadline error")
		}
	})
}

func TestGenerateResponse_Text(t *testing.T) {
	var nilResp *gemini.GenerateResponse
	if _, err := nilResp.Text(); !errors.Is(err, gemini.ErrEmptyResponse) {
		t.Errorf("expected ErrEmptyResponse for nil response, got %v", err)
	}

	blank := &gemini.GenerateResponse{Candidates: []gemini.Candidate{{Content: gemini.Content{Parts: []gemini.Part{{Text: "  "}}}}}}
	if _, err := blank.Text(); !errors.Is(err, gemini.ErrEmptyResponse) {
		t.Errorf("expected ErrEmptyResponse for blank text, got %v", err)
	}
}
