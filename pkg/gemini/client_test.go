package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"calendar-automation/pkg/gemini"
)

func TestBuildEventExtractionPrompt(t *testing.T) {
	rawText := "dentist appointment tomorrow at 10am"

	prompt := gemini.BuildEventExtractionPrompt(rawText)

	if !strings.Contains(prompt, "Event Title:") {
		t.Errorf("prompt missing block format instruction")
	}
	if !strings.Contains(prompt, "same as above") {
		t.Errorf("prompt missing shared-date instruction")
	}
	if !strings.HasSuffix(prompt, rawText) {
		t.Errorf("prompt must end with the user text")
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
		if text == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{"content": {"role": "model", "parts": [{"text": "Event Title: Standup\nDate: tomorrow\nTime: 9:00 AM\nDetails: N/A"}]}}
			]
		}`))
	}))
	defer ts.Close()

	client := gemini.NewClient("test-api-key", gemini.WithAPIURL(ts.URL))

	t.Run("successful generation", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), gemini.GenerateRequest{
			Contents: []gemini.Content{
				{Parts: []gemini.Part{{Text: "standup tomorrow morning"}}},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(resp.Text(), "Event Title: Standup") {
			t.Errorf("unexpected response text: %q", resp.Text())
		}
	})

	t.Run("server error surfaces", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), gemini.GenerateRequest{
			Contents: []gemini.Content{
				{Parts: []gemini.Part{{Text: "cause_500"}}},
			},
		})
		if err == nil {
			t.Fatalf("expected error for 500 response")
		}
	})

	t.Run("bad api key surfaces", func(t *testing.T) {
		badClient := gemini.NewClient("wrong-key", gemini.WithAPIURL(ts.URL))
		_, err := badClient.GenerateContent(context.Background(), gemini.GenerateRequest{
			Contents: []gemini.Content{
				{Parts: []gemini.Part{{Text: "anything"}}},
			},
		})
		if err == nil {
			t.Fatalf("expected error for unauthorized response")
		}
	})

	t.Run("empty candidates yields empty text", func(t *testing.T) {
		var resp gemini.GenerateResponse
		if resp.Text() != "" {
			t.Errorf("expected empty text, got %q", resp.Text())
		}
	})
}
