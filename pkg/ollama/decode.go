package ollama

import (
	"encoding/json"
	"time"

	"github.com/kaptinlin/jsonrepair"
)

// DecodeGenerateResponse parses the body of a non-streaming generate call.
//
// It fails (with a decode-kind *Error) only when the body is not valid JSON
// at all. Inside a valid body every field is read defensively: a missing or
// wrong-typed field takes its zero value, never an error. The response text
// is unwrapped once if the service double-JSON-encoded it.
func DecodeGenerateResponse(body []byte) (*GenerateResponse, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		if !json.Valid(body) {
			return nil, decodeError("unmarshal response body", err)
		}
		// Valid JSON that is not an object: every field is absent.
		fields = nil
	}

	return &GenerateResponse{
		TotalDuration:      durationField(fields, "total_duration"),
		LoadDuration:       durationField(fields, "load_duration"),
		PromptEvalCount:    intField(fields, "prompt_eval_count"),
		PromptEvalDuration: durationField(fields, "prompt_eval_duration"),
		EvalCount:          intField(fields, "eval_count"),
		EvalDuration:       durationField(fields, "eval_duration"),
		Context:            contextField(fields, "context"),
		Response:           unwrapResponse(stringField(fields, "response")),
	}, nil
}

// unwrapResponse resolves the service's double-encoding quirk: the response
// field sometimes arrives as a string that is itself a JSON object holding
// the real text under another "response" key. One bounded attempt only —
// parse once and fall back to the raw string, never recurse.
func unwrapResponse(raw string) string {
	var inner map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &inner); err != nil {
		return raw
	}
	var text string
	if err := json.Unmarshal(inner["response"], &text); err != nil {
		return raw
	}
	return text
}

// DecodeJSON decodes the generated text into v, for calls made with
// FormatJSON. Models emit slightly malformed JSON often enough that a plain
// unmarshal failing with a syntax error triggers one repair attempt before
// giving up.
func (r *GenerateResponse) DecodeJSON(v any) error {
	err := json.Unmarshal([]byte(r.Response), v)
	if err == nil {
		return nil
	}
	if _, ok := err.(*json.SyntaxError); ok {
		fixed, rerr := jsonrepair.JSONRepair(r.Response)
		if rerr != nil {
			return decodeError("repair generated JSON", rerr)
		}
		if err := json.Unmarshal([]byte(fixed), v); err != nil {
			return decodeError("unmarshal generated JSON", err)
		}
		return nil
	}
	return decodeError("unmarshal generated JSON", err)
}

func durationField(m map[string]json.RawMessage, key string) time.Duration {
	raw, ok := m[key]
	if !ok {
		return 0
	}
	var n int64
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0
	}
	return time.Duration(n)
}

func intField(m map[string]json.RawMessage, key string) int {
	raw, ok := m[key]
	if !ok {
		return 0
	}
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0
	}
	return n
}

func stringField(m map[string]json.RawMessage, key string) string {
	raw, ok := m[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func contextField(m map[string]json.RawMessage, key string) []uint64 {
	raw, ok := m[key]
	if !ok {
		return []uint64{}
	}
	var ctx []uint64
	if err := json.Unmarshal(raw, &ctx); err != nil || ctx == nil {
		return []uint64{}
	}
	return ctx
}
