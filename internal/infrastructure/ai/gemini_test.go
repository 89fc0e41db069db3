package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newGeminiServer(t *testing.T, answer string) (*httptest.Server, *generateRequest) {
	t.Helper()
	var captured generateRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, ":generateContent") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("api key missing from query")
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		resp := generateResponse{}
		resp.Candidates = append(resp.Candidates, struct {
			Content content `json:"content"`
		}{Content: content{Parts: []contentPart{{Text: answer}}}})
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv, &captured
}

func newTestClient(baseURL string) *GeminiClient {
	return NewGeminiClient(Config{BaseURL: baseURL, APIKey: "test-key", Model: "gemini-1.5-flash"})
}

func TestGeminiClient_Generate(t *testing.T) {
	srv, captured := newGeminiServer(t, "The park is generally safe.")
	client := newTestClient(srv.URL)

	answer, err := client.Generate(context.Background(), "is the park safe?")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if answer != "The park is generally safe." {
		t.Fatalf("unexpected answer: %q", answer)
	}

	if len(captured.Contents) != 1 || len(captured.Contents[0].Parts) != 1 {
		t.Fatalf("unexpected request shape: %+v", captured)
	}
	if captured.Contents[0].Parts[0].Text != "is the park safe?" {
		t.Fatalf("prompt not forwarded: %+v", captured.Contents[0].Parts[0])
	}
}

func TestGeminiClient_LabelImage(t *testing.T) {
	srv, captured := newGeminiServer(t, "street, tree , crosswalk,")
	client := newTestClient(srv.URL)

	labels, err := client.LabelImage(context.Background(), "http://img/1.jpg")
	if err != nil {
		t.Fatalf("label failed: %v", err)
	}
	if len(labels) != 3 || labels[1] != "tree" {
		t.Fatalf("labels not parsed: %v", labels)
	}

	parts := captured.Contents[0].Parts
	if len(parts) != 2 || parts[1].FileData == nil || parts[1].FileData.FileURI != "http://img/1.jpg" {
		t.Fatalf("image reference not forwarded: %+v", parts)
	}
}

func TestGeminiClient_Transcribe(t *testing.T) {
	srv, captured := newGeminiServer(t, "hello from the city")
	client := newTestClient(srv.URL)

	text, err := client.Transcribe(context.Background(), "http://audio/1.ogg", "audio/ogg")
	if err != nil {
		t.Fatalf("transcribe failed: %v", err)
	}
	if text != "hello from the city" {
		t.Fatalf("unexpected transcript: %q", text)
	}

	parts := captured.Contents[0].Parts
	if len(parts) != 2 || parts[1].FileData == nil || parts[1].FileData.MimeType != "audio/ogg" {
		t.Fatalf("audio reference not forwarded: %+v", parts)
	}
}

func TestGeminiClient_EmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(generateResponse{})
	}))
	t.Cleanup(srv.Close)

	client := newTestClient(srv.URL)
	if _, err := client.Generate(context.Background(), "anything"); err != ErrEmptyResponse {
		t.Fatalf("expected ErrEmptyResponse, got %v", err)
	}
}

func TestGeminiClient_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)

	client := newTestClient(srv.URL)
	if _, err := client.Generate(context.Background(), "anything"); err == nil {
		t.Fatalf("expected error on provider 429")
	}
}
