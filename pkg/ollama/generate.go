package ollama

import (
	"context"
	"encoding/json"
	"io"
	"iter"
)

const generatePath = "/api/generate"

// GenerateService provides text generation operations.
type GenerateService struct {
	client *Client
}

// newGenerateService creates a new generate service.
func newGenerateService(client *Client) *GenerateService {
	return &GenerateService{client: client}
}

// bind returns a copy of req ready to send: the stream flag is stamped in,
// empty model/system fields take the client's defaults, and the context is a
// snapshot of the client's current conversation context. The caller's req is
// never mutated, and context always serializes as an array, never null.
func (s *GenerateService) bind(req *GenerateRequest, stream bool) *GenerateRequest {
	bound := *req
	bound.Stream = stream
	if bound.Model == "" {
		bound.Model = s.client.config.model
	}
	if bound.System == "" {
		bound.System = s.client.config.system
	}
	bound.Context = s.client.Context()
	return &bound
}

// Create sends a non-streaming generate call and returns the complete
// decoded response. On success the client's conversation context is replaced
// by the context carried in the response; on failure it is left unchanged.
func (s *GenerateService) Create(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	body, err := s.client.http.post(ctx, generatePath, s.bind(req, false))
	if err != nil {
		return nil, err
	}

	resp, err := DecodeGenerateResponse(body)
	if err != nil {
		return nil, err
	}

	s.client.SetContext(resp.Context)
	return resp, nil
}

// CreateStream sends a streaming generate call and returns a lazy, ordered,
// forward-only sequence of events.
//
// The sequence is finite: it ends after the event with Done=true (anything
// the service sends past it is ignored) or at end of stream. A line that
// fails to decode appears as an error item and the sequence continues — the
// consumer decides whether to stop. The sequence is not restartable; each
// call issues a new request. Breaking out of the loop releases the
// underlying connection.
//
// When the terminal event arrives carrying a context, the client's
// conversation context is replaced by it; an abandoned or failed stream
// leaves the client's context unchanged.
//
// Example:
//
//	for event, err := range client.Generate.CreateStream(ctx, req) {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Print(event.Response)
//	}
func (s *GenerateService) CreateStream(ctx context.Context, req *GenerateRequest) iter.Seq2[*StreamEvent, error] {
	return func(yield func(*StreamEvent, error) bool) {
		resp, err := s.client.http.postStream(ctx, generatePath, s.bind(req, true))
		if err != nil {
			yield(nil, err)
			return
		}

		lines := newLineReader(resp)
		defer lines.close()

		for {
			data, err := lines.next()
			if err != nil {
				if err == io.EOF {
					return
				}
				// The connection is gone; this is the last item.
				yield(nil, decodeError("read stream", err))
				return
			}

			var event StreamEvent
			if err := json.Unmarshal(data, &event); err != nil {
				if !yield(nil, decodeError("unmarshal stream event", err)) {
					return
				}
				continue
			}

			if event.Done {
				if event.Context != nil {
					s.client.SetContext(event.Context)
				}
				yield(&event, nil)
				return
			}

			if !yield(&event, nil) {
				return
			}
		}
	}
}
