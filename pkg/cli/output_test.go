package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestOutput_JSON(t *testing.T) {
	var buf bytes.Buffer

	err := Output(map[string]any{"name": "test", "value": 123}, OutputOptions{
		Format: FormatJSON,
		Writer: &buf,
	})
	if err != nil {
		t.Fatalf("Output error: %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if result["name"] != "test" {
		t.Errorf("name = %v, want test", result["name"])
	}
}

func TestOutput_DefaultsToYAML(t *testing.T) {
	var buf bytes.Buffer

	err := Output(map[string]string{"key": "value"}, OutputOptions{Writer: &buf})
	if err != nil {
		t.Fatalf("Output error: %v", err)
	}
	if !strings.Contains(buf.String(), "key: value") {
		t.Errorf("default format should be YAML, got: %s", buf.String())
	}
}

func TestOutput_Raw(t *testing.T) {
	var buf bytes.Buffer

	err := Output("plain text\n", OutputOptions{Format: FormatRaw, Writer: &buf})
	if err != nil {
		t.Fatalf("Output error: %v", err)
	}
	if buf.String() != "plain text\n" {
		t.Errorf("raw output = %q", buf.String())
	}
}

func TestOutput_JQFilter(t *testing.T) {
	var buf bytes.Buffer

	data := map[string]any{
		"response": "hello",
		"context":  []int{1, 2, 3},
	}

	err := Output(data, OutputOptions{
		Format: FormatJSON,
		JQ:     ".response",
		Writer: &buf,
	})
	if err != nil {
		t.Fatalf("Output error: %v", err)
	}
	if strings.TrimSpace(buf.String()) != `"hello"` {
		t.Errorf("jq output = %q, want %q", strings.TrimSpace(buf.String()), `"hello"`)
	}
}

func TestOutput_JQMultipleResults(t *testing.T) {
	var buf bytes.Buffer

	err := Output(map[string]any{"context": []int{1, 2, 3}}, OutputOptions{
		Format: FormatJSON,
		JQ:     ".context[]",
		Writer: &buf,
	})
	if err != nil {
		t.Fatalf("Output error: %v", err)
	}

	var result []any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if len(result) != 3 {
		t.Errorf("got %d results, want 3", len(result))
	}
}

func TestOutput_InvalidJQ(t *testing.T) {
	err := Output(map[string]any{}, OutputOptions{
		Format: FormatJSON,
		JQ:     ".[broken",
		Writer: &bytes.Buffer{},
	})
	if err == nil {
		t.Fatal("expected error for invalid jq expression")
	}
}
