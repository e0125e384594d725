package ollama

import (
	"net/http"
	"slices"
	"testing"
	"time"
)

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient()

	if client.BaseURL() != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", client.BaseURL(), DefaultBaseURL)
	}
	if client.Model() != DefaultModel {
		t.Errorf("Model = %q, want %q", client.Model(), DefaultModel)
	}
	if ctx := client.Context(); ctx == nil || len(ctx) != 0 {
		t.Errorf("Context = %v, want empty", ctx)
	}
}

func TestNewClient_Options(t *testing.T) {
	hc := &http.Client{Timeout: time.Second}
	client := NewClient(
		WithBaseURL("http://gpu-box:11434"),
		WithModel("mistral"),
		WithSystem("be brief"),
		WithHTTPClient(hc),
	)

	if client.BaseURL() != "http://gpu-box:11434" {
		t.Errorf("BaseURL = %q", client.BaseURL())
	}
	if client.Model() != "mistral" {
		t.Errorf("Model = %q", client.Model())
	}
	if client.config.system != "be brief" {
		t.Errorf("system = %q", client.config.system)
	}
	if client.config.httpClient != hc {
		t.Error("custom HTTP client not used")
	}
}

func TestClient_ContextIsolation(t *testing.T) {
	client := NewClient()

	tokens := []uint64{1, 2, 3}
	client.SetContext(tokens)

	// Mutating the caller's slice must not leak into the client.
	tokens[0] = 99
	if got := client.Context(); got[0] != 1 {
		t.Errorf("client context aliased caller slice: %v", got)
	}

	// Mutating the returned copy must not leak either.
	out := client.Context()
	out[1] = 99
	if got := client.Context(); got[1] != 2 {
		t.Errorf("Context() returned an aliased slice: %v", got)
	}

	client.ResetContext()
	if got := client.Context(); !slices.Equal(got, []uint64{}) {
		t.Errorf("after reset context = %v, want empty", got)
	}
}
