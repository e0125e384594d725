package ollama

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// httpClient handles HTTP communication with the service.
//
// Blocking calls go through a client bounded by the configured timeout;
// streaming calls use a separate unbounded client, because http.Client's
// Timeout covers reading the whole body and would sever long generations.
type httpClient struct {
	client  *http.Client
	stream  *http.Client
	baseURL string
}

// newHTTPClient creates a new HTTP client pair from the configuration.
func newHTTPClient(cfg *clientConfig) *httpClient {
	return &httpClient{
		client:  cfg.httpClient,
		stream:  &http.Client{Transport: cfg.httpClient.Transport},
		baseURL: strings.TrimSuffix(cfg.baseURL, "/"),
	}
}

// post sends a JSON POST and returns the complete response body.
func (h *httpClient) post(ctx context.Context, path string, body any) ([]byte, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, decodeError("marshal request body", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, transportError("create request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, transportError("send request", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError("read response body", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusError(resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	return raw, nil
}

// get sends a GET and decodes the JSON response into result.
func (h *httpClient) get(ctx context.Context, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+path, nil)
	if err != nil {
		return transportError("create request", err)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return transportError("send request", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError("read response body", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	if err := json.Unmarshal(raw, result); err != nil {
		return decodeError("unmarshal response", err)
	}
	return nil
}

// postStream sends a JSON POST and returns the response with its body left
// open for line-by-line consumption. The caller owns the body.
func (h *httpClient) postStream(ctx context.Context, path string, body any) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, decodeError("marshal request body", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, transportError("create request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.stream.Do(req)
	if err != nil {
		return nil, transportError("send request", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		raw, _ := io.ReadAll(resp.Body)
		return nil, statusError(resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	return resp, nil
}

// lineReader frames a streaming response body into newline-delimited JSON
// records. Partial trailing data with no terminating newline is buffered
// until more bytes arrive; a non-empty tail at EOF is still delivered.
type lineReader struct {
	reader *bufio.Reader
	resp   *http.Response
}

// newLineReader creates a line reader over a streaming response.
func newLineReader(resp *http.Response) *lineReader {
	return &lineReader{
		reader: bufio.NewReader(resp.Body),
		resp:   resp,
	}
}

// next returns the next non-blank line with surrounding whitespace trimmed.
// Blank lines are skipped. It returns io.EOF at the normal end of stream.
func (r *lineReader) next() ([]byte, error) {
	for {
		line, err := r.reader.ReadBytes('\n')
		line = bytes.TrimSpace(line)
		if err != nil {
			if err == io.EOF {
				if len(line) > 0 {
					// Unterminated final line.
					return line, nil
				}
				return nil, io.EOF
			}
			return nil, err
		}
		if len(line) == 0 {
			continue
		}
		return line, nil
	}
}

// close releases the underlying connection.
func (r *lineReader) close() {
	r.resp.Body.Close()
}
