package openaichat

import "context"

// IOpenAIChat defines the interface for the chat-completions client
type IOpenAIChat interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}
