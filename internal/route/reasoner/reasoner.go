package reasoner

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"delivery-route-optimizer/internal/route"
	"delivery-route-optimizer/pkg/llmprovider"
	pkgLog "delivery-route-optimizer/pkg/log"
)

// LLMReasoner implements route.Reasoner on top of the LLM provider
// manager. Stateless: safe for concurrent use.
type LLMReasoner struct {
	llm *llmprovider.Manager
	l   pkgLog.Logger
}

// New creates an LLM-backed reasoner.
func New(llm *llmprovider.Manager, l pkgLog.Logger) *LLMReasoner {
	return &LLMReasoner{llm: llm, l: l}
}

// adjustmentPayload is the JSON contract the model is instructed to follow.
type adjustmentPayload struct {
	OptimizedRoute []string `json:"optimized_route"`
	Explanation    string   `json:"explanation"`
}

// Reason asks the provider chain for a contextual adjustment. The
// returned signal is advisory; the coordinator validates it before use.
func (r *LLMReasoner) Reason(ctx context.Context, req route.Request) (*route.AdjustmentSignal, error) {
	resp, err := r.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: RouteRankingSystemPrompt,
		Messages: []llmprovider.Message{
			{Role: "user", Text: BuildRoutePrompt(req)},
		},
		// Low temperature for deterministic JSON output
		Temperature: 0.2,
		MaxTokens:   1024,
	})
	if err != nil {
		return nil, fmt.Errorf("reasoning request failed: %w", err)
	}

	signal, err := ParseAdjustment(resp.Text)
	if err != nil {
		r.l.Warnf(ctx, "failed to parse reasoner response: %v raw=%q", err, resp.Text)
		return nil, err
	}

	return signal, nil
}

// ParseAdjustment extracts an AdjustmentSignal from raw model output.
func ParseAdjustment(text string) (*route.AdjustmentSignal, error) {
	cleaned := sanitizeJSONResponse(text)

	var payload adjustmentPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse adjustment JSON: %w", err)
	}

	return &route.AdjustmentSignal{
		Reordering:  payload.OptimizedRoute,
		Explanation: strings.TrimSpace(payload.Explanation),
	}, nil
}

// sanitizeJSONResponse removes markdown code fences and leading/trailing
// prose that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	re := regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
	matches := re.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}
