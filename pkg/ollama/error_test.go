package ollama

import (
	"errors"
	"fmt"
	"testing"
)

func TestAsError(t *testing.T) {
	base := statusError(502, "bad gateway")
	wrapped := fmt.Errorf("call failed: %w", base)

	e, ok := AsError(wrapped)
	if !ok {
		t.Fatal("AsError failed to extract wrapped *Error")
	}
	if e.HTTPStatus != 502 || !e.IsTransport() {
		t.Errorf("extracted %+v", e)
	}

	if _, ok := AsError(errors.New("plain")); ok {
		t.Error("AsError matched a plain error")
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := transportError("send request", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is failed to find the cause")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindTransport, "transport"},
		{KindDecode, "decode"},
		{Kind(0), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
