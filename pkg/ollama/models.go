package ollama

import "context"

const tagsPath = "/api/tags"

// ModelService provides model inventory operations.
type ModelService struct {
	client *Client
}

// newModelService creates a new model service.
func newModelService(client *Client) *ModelService {
	return &ModelService{client: client}
}

// List returns the models installed on the service.
func (s *ModelService) List(ctx context.Context) ([]Model, error) {
	var resp struct {
		Models []Model `json:"models"`
	}
	if err := s.client.http.get(ctx, tagsPath, &resp); err != nil {
		return nil, err
	}
	return resp.Models, nil
}
