package ollama

import "time"

// Format selects the output format the service is asked to produce.
// It is a closed set: only the values below are part of the protocol.
type Format string

const (
	// FormatNone requests free-form text output (the wire value is "").
	FormatNone Format = ""

	// FormatJSON asks the model to emit a JSON object.
	FormatJSON Format = "json"
)

// Valid reports whether f is one of the protocol's format values.
func (f Format) Valid() bool {
	return f == FormatNone || f == FormatJSON
}

// GenerateRequest is the wire request for a single generate call.
//
// All fields are always serialized; the service treats empty strings and
// empty arrays as "unset". Context carries the conversation state returned
// by the previous response and must not be populated by hand — the client
// stamps it in when the request is bound (see GenerateService).
type GenerateRequest struct {
	Model   string   `json:"model" yaml:"model"`
	Prompt  string   `json:"prompt" yaml:"prompt"`
	Suffix  string   `json:"suffix" yaml:"suffix,omitempty"`
	Format  Format   `json:"format" yaml:"format,omitempty"`
	System  string   `json:"system" yaml:"system,omitempty"`
	Stream  bool     `json:"stream" yaml:"stream,omitempty"`
	Raw     bool     `json:"raw" yaml:"raw,omitempty"`
	Context []uint64 `json:"context" yaml:"context,omitempty"`
}

// NewGenerateRequest returns a request for prompt with protocol defaults:
// default model, no suffix or system prompt, free-form output, non-streaming,
// non-raw, empty conversation context.
func NewGenerateRequest(prompt string) *GenerateRequest {
	return &GenerateRequest{
		Model:   DefaultModel,
		Prompt:  prompt,
		Format:  FormatNone,
		Context: []uint64{},
	}
}

// GenerateResponse is the decoded body of a non-streaming generate call.
//
// Durations are nanosecond counts on the wire. Response holds the generated
// text with the service's double-JSON-encoding quirk already resolved (see
// DecodeGenerateResponse).
type GenerateResponse struct {
	TotalDuration      time.Duration `json:"total_duration" yaml:"total_duration"`
	LoadDuration       time.Duration `json:"load_duration" yaml:"load_duration"`
	PromptEvalCount    int           `json:"prompt_eval_count" yaml:"prompt_eval_count"`
	PromptEvalDuration time.Duration `json:"prompt_eval_duration" yaml:"prompt_eval_duration"`
	EvalCount          int           `json:"eval_count" yaml:"eval_count"`
	EvalDuration       time.Duration `json:"eval_duration" yaml:"eval_duration"`
	Context            []uint64      `json:"context" yaml:"context"`
	Response           string        `json:"response" yaml:"response"`
}

// StreamEvent is one decoded line of a streaming generate call.
//
// Fragments carry Response and Done=false. Exactly one event per stream has
// Done=true; only that event populates DoneReason, Context and the metrics.
type StreamEvent struct {
	Model     string    `json:"model"`
	CreatedAt time.Time `json:"created_at"`
	Response  string    `json:"response"`
	Done      bool      `json:"done"`

	// Terminal-event fields.
	DoneReason         string        `json:"done_reason,omitempty"`
	Context            []uint64      `json:"context,omitempty"`
	TotalDuration      time.Duration `json:"total_duration,omitempty"`
	LoadDuration       time.Duration `json:"load_duration,omitempty"`
	PromptEvalCount    int           `json:"prompt_eval_count,omitempty"`
	PromptEvalDuration time.Duration `json:"prompt_eval_duration,omitempty"`
	EvalCount          int           `json:"eval_count,omitempty"`
	EvalDuration       time.Duration `json:"eval_duration,omitempty"`
}

// Model describes one installed model as reported by the service.
type Model struct {
	Name       string       `json:"name" yaml:"name"`
	ModifiedAt time.Time    `json:"modified_at" yaml:"modified_at"`
	Size       int64        `json:"size" yaml:"size"`
	Digest     string       `json:"digest" yaml:"digest"`
	Details    ModelDetails `json:"details" yaml:"details"`
}

// ModelDetails holds the packaging details of an installed model.
type ModelDetails struct {
	Format            string   `json:"format" yaml:"format"`
	Family            string   `json:"family" yaml:"family"`
	Families          []string `json:"families" yaml:"families"`
	ParameterSize     string   `json:"parameter_size" yaml:"parameter_size"`
	QuantizationLevel string   `json:"quantization_level" yaml:"quantization_level"`
}
