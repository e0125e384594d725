package ollama

import (
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the default service address.
	DefaultBaseURL = "http://localhost:11434"

	// DefaultModel is the model used when a request does not name one.
	DefaultModel = "llama3.2"

	// DefaultTimeout bounds blocking (non-streaming) calls. Streaming calls
	// are not bounded by it; cancel them through their context instead.
	DefaultTimeout = 300 * time.Second
)

// Client is a client for one logical conversation with the generate service.
//
// The conversation context (the opaque token sequence returned by the
// service) is the only mutable state; it is replaced after every successful
// call. A Client must not be used by concurrent calls — callers issue calls
// sequentially, matching the one-conversation-per-client model.
type Client struct {
	// Generate provides text generation operations.
	Generate *GenerateService

	// Models provides model inventory operations.
	Models *ModelService

	config  *clientConfig
	http    *httpClient
	context []uint64
}

// clientConfig holds the client configuration.
type clientConfig struct {
	baseURL    string
	model      string
	system     string
	httpClient *http.Client
	timeout    time.Duration
}

// Option is a function that configures the client.
type Option func(*clientConfig)

// WithBaseURL sets a custom service address.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithModel sets the model used when requests do not name one.
func WithModel(model string) Option {
	return func(c *clientConfig) {
		c.model = model
	}
}

// WithSystem sets a system instruction applied to requests that carry none.
func WithSystem(system string) Option {
	return func(c *clientConfig) {
		c.system = system
	}
}

// WithHTTPClient sets a custom HTTP client for blocking calls. Streaming
// calls always use an unbounded client so long generations are not cut off
// mid-stream by a whole-request timeout.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the blocking-call timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// NewClient creates a client for a locally running service with default
// settings, or for whatever the options select.
//
// Example:
//
//	client := ollama.NewClient()
//	client := ollama.NewClient(ollama.WithModel("mistral"), ollama.WithTimeout(60*time.Second))
func NewClient(opts ...Option) *Client {
	cfg := &clientConfig{
		baseURL: DefaultBaseURL,
		model:   DefaultModel,
		timeout: DefaultTimeout,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.httpClient == nil {
		cfg.httpClient = &http.Client{
			Timeout: cfg.timeout,
		}
	}

	c := &Client{
		config:  cfg,
		http:    newHTTPClient(cfg),
		context: []uint64{},
	}

	c.Generate = newGenerateService(c)
	c.Models = newModelService(c)

	return c
}

// BaseURL returns the configured service address.
func (c *Client) BaseURL() string {
	return c.config.baseURL
}

// Model returns the configured default model.
func (c *Client) Model() string {
	return c.config.model
}

// Context returns a copy of the current conversation context.
func (c *Client) Context() []uint64 {
	out := make([]uint64, len(c.context))
	copy(out, c.context)
	return out
}

// SetContext replaces the conversation context, for example to resume a
// conversation persisted by an earlier process.
func (c *Client) SetContext(context []uint64) {
	c.context = make([]uint64, len(context))
	copy(c.context, context)
}

// ResetContext clears the conversation context so the next call starts a
// fresh conversation.
func (c *Client) ResetContext() {
	c.context = []uint64{}
}
