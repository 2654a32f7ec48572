package genai

import "context"

// Client defines the narrow surface the rest of the service depends on. Any
// backend substitution implements this interface.
type Client interface {
	// GenerateContent sends a single non-streaming generation request.
	GenerateContent(ctx context.Context, req *GenerateContentRequest) (*GenerateContentResponse, error)
}

// Ensure HTTPClient implements Client.
var _ Client = (*HTTPClient)(nil)
