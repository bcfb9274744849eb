package gemini

import "context"

// IGemini defines the interface for the Gemini LLM client
type IGemini interface {
	GenerateContent(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
	Model() string
}
