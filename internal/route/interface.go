package route

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Optimize normalizes the raw request and produces a route decision.
	// Returns *ValidationError on malformed input; provider failures are
	// recovered internally and never returned.
	Optimize(ctx context.Context, raw RawRequest) (Decision, error)
}

// Reasoner is the capability interface over the external reasoning
// provider. Implementations must honor ctx cancellation; callers bound
// every invocation with a timeout. A nil signal with nil error is not
// allowed — failures return an error.
type Reasoner interface {
	Reason(ctx context.Context, req Request) (*AdjustmentSignal, error)
}
