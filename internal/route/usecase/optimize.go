package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"delivery-route-optimizer/internal/route"
)

// Optimize is the decide contract: baseline ordering first, then a
// bounded contextual adjustment from the reasoning provider. Provider
// failures are recovered here and never surfaced — only normalization
// errors reach the caller.
func (uc *implUseCase) Optimize(ctx context.Context, raw route.RawRequest) (route.Decision, error) {
	req, err := route.Normalize(raw, uc.cfg.Limits)
	if err != nil {
		return route.Decision{}, err
	}

	ordered := baselineOrder(req.Addresses)
	explanation := ""

	if signal := uc.consultReasoner(ctx, req); signal != nil {
		if adjusted, ok := applyAdjustment(req.Addresses, signal.Reordering); ok {
			ordered = adjusted
		} else if len(signal.Reordering) > 0 {
			uc.l.Warnf(ctx, "%v: reordering is not a permutation of the input, keeping baseline",
				route.ErrInvalidAdjustment)
		}
		// The explanation is validated independently of the reordering.
		explanation = strings.TrimSpace(signal.Explanation)
	}

	if explanation == "" {
		explanation = defaultExplanation(req)
	}

	return route.Decision{
		Route:       ordered,
		Explanation: explanation,
		Estimate:    uc.estimate(req),
	}, nil
}

// consultReasoner performs the bounded provider call: per-call timeout,
// at most one retry after a short backoff. Any failure returns nil and
// the caller keeps the baseline.
func (uc *implUseCase) consultReasoner(ctx context.Context, req route.Request) *route.AdjustmentSignal {
	if uc.reasoner == nil {
		return nil
	}

	const maxAttempts = 2

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-time.After(uc.cfg.ReasonerBackoff):
			case <-ctx.Done():
				return nil
			}
		}

		callCtx, cancel := context.WithTimeout(ctx, uc.cfg.ReasonerTimeout)
		signal, err := uc.reasoner.Reason(callCtx, req)
		cancel()

		if err == nil && signal != nil {
			return signal
		}

		uc.l.Warnf(ctx, "%v (attempt %d/%d): %v", route.ErrProviderUnavailable, attempt, maxAttempts, err)
	}

	return nil
}

// defaultExplanation synthesizes the baseline reasoning when the
// provider supplies none.
func defaultExplanation(req route.Request) string {
	b := fmt.Sprintf("Sorted by priority, highest first; conditions: %s weather, %s traffic.",
		req.Weather, req.Traffic)
	if len(req.SpecialRequirements) > 0 {
		b += " Special requirements considered: " + strings.Join(req.SpecialRequirements, ", ") + "."
	}
	return b
}
