package ollama

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewGenerateRequest_Defaults(t *testing.T) {
	req := NewGenerateRequest("")

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	var wire struct {
		Model   string   `json:"model"`
		Prompt  string   `json:"prompt"`
		Suffix  string   `json:"suffix"`
		Format  string   `json:"format"`
		System  string   `json:"system"`
		Stream  bool     `json:"stream"`
		Raw     bool     `json:"raw"`
		Context []uint64 `json:"context"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}

	if wire.Model != DefaultModel {
		t.Errorf("model = %q, want %q", wire.Model, DefaultModel)
	}
	if wire.Format != "" {
		t.Errorf("format = %q, want empty", wire.Format)
	}
	if wire.Stream {
		t.Error("stream = true, want false")
	}
	if wire.Raw {
		t.Error("raw = true, want false")
	}
	if wire.Prompt != "" || wire.Suffix != "" || wire.System != "" {
		t.Errorf("expected empty text fields, got %+v", wire)
	}

	// The context must serialize as an empty array, not null.
	if !strings.Contains(string(data), `"context":[]`) {
		t.Errorf("serialized request missing empty context array: %s", data)
	}
}

func TestFormat_Valid(t *testing.T) {
	tests := []struct {
		format Format
		want   bool
	}{
		{FormatNone, true},
		{FormatJSON, true},
		{Format("yaml"), false},
		{Format("JSON"), false},
	}

	for _, tt := range tests {
		if got := tt.format.Valid(); got != tt.want {
			t.Errorf("Format(%q).Valid() = %v, want %v", tt.format, got, tt.want)
		}
	}
}

func TestFormat_WireValues(t *testing.T) {
	data, err := json.Marshal(struct {
		Format Format `json:"format"`
	}{FormatJSON})
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(data) != `{"format":"json"}` {
		t.Errorf("marshaled %s, want {\"format\":\"json\"}", data)
	}

	data, err = json.Marshal(struct {
		Format Format `json:"format"`
	}{FormatNone})
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(data) != `{"format":""}` {
		t.Errorf("marshaled %s, want {\"format\":\"\"}", data)
	}
}
