package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"delivery-route-optimizer/internal/route"
)

func testConfig() Config {
	return Config{
		BaseStopMinutes: 25,
		SpreadFactor:    1.4,
		ReasonerTimeout: 100 * time.Millisecond,
		ReasonerBackoff: time.Millisecond,
	}
}

func addressStrings(addresses []route.Address) []string {
	out := make([]string, len(addresses))
	for i, a := range addresses {
		out[i] = a.Address
	}
	return out
}

func sameOrder(got []route.Address, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i].Address != want[i] {
			return false
		}
	}
	return true
}

func TestOptimize_BaselineOrdering(t *testing.T) {
	t.Run("Priority Scenario Rain Heavy", func(t *testing.T) {
		// Provider unavailable: the result must equal the baseline exactly.
		reasoner := &stubReasoner{
			reasonFunc: func(ctx context.Context, req route.Request) (*route.AdjustmentSignal, error) {
				return nil, errors.New("connection refused")
			},
		}
		uc := New(&mockLogger{}, reasoner, testConfig())

		out, err := uc.Optimize(context.Background(), route.RawRequest{
			Addresses: []route.Address{
				{Address: "A", Priority: 3},
				{Address: "B", Priority: 5},
				{Address: "C", Priority: 2},
			},
			Weather: "rain",
			Traffic: "heavy",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sameOrder(out.Route, []string{"B", "A", "C"}) {
			t.Errorf("expected [B A C], got %v", addressStrings(out.Route))
		}
		if out.Explanation == "" {
			t.Errorf("explanation must be non-empty on fallback")
		}
	})

	t.Run("Strictly Descending Input Preserved", func(t *testing.T) {
		uc := New(&mockLogger{}, nil, testConfig())

		out, err := uc.Optimize(context.Background(), route.RawRequest{
			Addresses: []route.Address{
				{Address: "First", Priority: 5},
				{Address: "Second", Priority: 4},
				{Address: "Third", Priority: 2},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sameOrder(out.Route, []string{"First", "Second", "Third"}) {
			t.Errorf("descending input must keep its order, got %v", addressStrings(out.Route))
		}
	})

	t.Run("Equal Priorities Stable", func(t *testing.T) {
		uc := New(&mockLogger{}, nil, testConfig())

		out, err := uc.Optimize(context.Background(), route.RawRequest{
			Addresses: []route.Address{
				{Address: "One", Priority: 3},
				{Address: "Two", Priority: 3},
				{Address: "Three", Priority: 3},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sameOrder(out.Route, []string{"One", "Two", "Three"}) {
			t.Errorf("equal priorities must keep input order, got %v", addressStrings(out.Route))
		}
	})

	t.Run("Single Address", func(t *testing.T) {
		uc := New(&mockLogger{}, nil, testConfig())

		out, err := uc.Optimize(context.Background(), route.RawRequest{
			Addresses: []route.Address{{Address: "Only Stop", Priority: 1}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sameOrder(out.Route, []string{"Only Stop"}) {
			t.Errorf("single address must map to itself, got %v", addressStrings(out.Route))
		}
		if out.Explanation == "" {
			t.Errorf("explanation must be non-empty")
		}
		if out.Estimate.LowerMinutes <= 0 || out.Estimate.LowerMinutes > out.Estimate.UpperMinutes {
			t.Errorf("invalid estimate bounds: %+v", out.Estimate)
		}
	})
}

func TestOptimize_AdjustmentAcceptance(t *testing.T) {
	input := []route.Address{
		{Address: "A", Priority: 3},
		{Address: "B", Priority: 5},
		{Address: "C", Priority: 2},
	}

	t.Run("Valid Permutation Accepted", func(t *testing.T) {
		reasoner := &stubReasoner{
			reasonFunc: func(ctx context.Context, req route.Request) (*route.AdjustmentSignal, error) {
				return &route.AdjustmentSignal{
					Reordering:  []string{"C", "B", "A"},
					Explanation: "Snow route: farthest low-priority stop first",
				}, nil
			},
		}
		uc := New(&mockLogger{}, reasoner, testConfig())

		out, err := uc.Optimize(context.Background(), route.RawRequest{Addresses: input})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sameOrder(out.Route, []string{"C", "B", "A"}) {
			t.Errorf("valid signal must replace baseline, got %v", addressStrings(out.Route))
		}
		if out.Explanation != "Snow route: farthest low-priority stop first" {
			t.Errorf("provider explanation must be used, got %q", out.Explanation)
		}
	})

	t.Run("Foreign Address Rejected", func(t *testing.T) {
		reasoner := &stubReasoner{
			reasonFunc: func(ctx context.Context, req route.Request) (*route.AdjustmentSignal, error) {
				return &route.AdjustmentSignal{
					Reordering: []string{"B", "A", "Z"},
				}, nil
			},
		}
		uc := New(&mockLogger{}, reasoner, testConfig())

		out, err := uc.Optimize(context.Background(), route.RawRequest{Addresses: input})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sameOrder(out.Route, []string{"B", "A", "C"}) {
			t.Errorf("foreign address must be rejected, got %v", addressStrings(out.Route))
		}
	})

	t.Run("Missing And Duplicated Addresses Rejected", func(t *testing.T) {
		for _, reordering := range [][]string{
			{"B", "A"},                // missing one
			{"B", "A", "C", "C"},      // extra
			{"B", "B", "C"},           // duplicate replacing A
			{},                        // empty hint
		} {
			reordering := reordering
			reasoner := &stubReasoner{
				reasonFunc: func(ctx context.Context, req route.Request) (*route.AdjustmentSignal, error) {
					return &route.AdjustmentSignal{Reordering: reordering}, nil
				},
			}
			uc := New(&mockLogger{}, reasoner, testConfig())

			out, err := uc.Optimize(context.Background(), route.RawRequest{Addresses: input})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !sameOrder(out.Route, []string{"B", "A", "C"}) {
				t.Errorf("reordering %v must be rejected, got %v", reordering, addressStrings(out.Route))
			}
		}
	})

	t.Run("Provider Explanation Without Reordering", func(t *testing.T) {
		reasoner := &stubReasoner{
			reasonFunc: func(ctx context.Context, req route.Request) (*route.AdjustmentSignal, error) {
				return &route.AdjustmentSignal{Explanation: "Priority order is already optimal."}, nil
			},
		}
		uc := New(&mockLogger{}, reasoner, testConfig())

		out, err := uc.Optimize(context.Background(), route.RawRequest{Addresses: input})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sameOrder(out.Route, []string{"B", "A", "C"}) {
			t.Errorf("baseline must stand, got %v", addressStrings(out.Route))
		}
		if out.Explanation != "Priority order is already optimal." {
			t.Errorf("non-empty provider explanation must be used, got %q", out.Explanation)
		}
	})
}

func TestOptimize_ReasonerPolicy(t *testing.T) {
	input := []route.Address{{Address: "A", Priority: 1}, {Address: "B", Priority: 2}}

	t.Run("Single Retry Then Fallback", func(t *testing.T) {
		reasoner := &stubReasoner{
			reasonFunc: func(ctx context.Context, req route.Request) (*route.AdjustmentSignal, error) {
				return nil, errors.New("timeout")
			},
		}
		logger := &mockLogger{}
		uc := New(logger, reasoner, testConfig())

		out, err := uc.Optimize(context.Background(), route.RawRequest{Addresses: input})
		if err != nil {
			t.Fatalf("provider failure must not surface: %v", err)
		}
		if reasoner.callCount != 2 {
			t.Errorf("expected exactly one retry (2 calls), got %d", reasoner.callCount)
		}
		if !sameOrder(out.Route, []string{"B", "A"}) {
			t.Errorf("fallback must equal baseline, got %v", addressStrings(out.Route))
		}
		if logger.warnCount == 0 {
			t.Errorf("provider failures must be logged")
		}
	})

	t.Run("Retry Succeeds", func(t *testing.T) {
		calls := 0
		reasoner := &stubReasoner{
			reasonFunc: func(ctx context.Context, req route.Request) (*route.AdjustmentSignal, error) {
				calls++
				if calls == 1 {
					return nil, errors.New("flaky")
				}
				return &route.AdjustmentSignal{Reordering: []string{"A", "B"}}, nil
			},
		}
		uc := New(&mockLogger{}, reasoner, testConfig())

		out, err := uc.Optimize(context.Background(), route.RawRequest{Addresses: input})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sameOrder(out.Route, []string{"A", "B"}) {
			t.Errorf("retry result must be applied, got %v", addressStrings(out.Route))
		}
	})

	t.Run("Timeout Honored", func(t *testing.T) {
		reasoner := &stubReasoner{
			reasonFunc: func(ctx context.Context, req route.Request) (*route.AdjustmentSignal, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			},
		}
		cfg := testConfig()
		cfg.ReasonerTimeout = 5 * time.Millisecond
		uc := New(&mockLogger{}, reasoner, cfg)

		start := time.Now()
		out, err := uc.Optimize(context.Background(), route.RawRequest{Addresses: input})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if elapsed := time.Since(start); elapsed > time.Second {
			t.Errorf("optimize took too long: %v", elapsed)
		}
		if !sameOrder(out.Route, []string{"B", "A"}) {
			t.Errorf("fallback must equal baseline, got %v", addressStrings(out.Route))
		}
	})

	t.Run("Nil Reasoner", func(t *testing.T) {
		uc := New(&mockLogger{}, nil, testConfig())

		out, err := uc.Optimize(context.Background(), route.RawRequest{Addresses: input})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sameOrder(out.Route, []string{"B", "A"}) {
			t.Errorf("nil reasoner must yield baseline, got %v", addressStrings(out.Route))
		}
	})
}

func TestOptimize_PermutationProperty(t *testing.T) {
	// For any valid request the output address multiset equals the input
	// multiset, whatever the provider answers.
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.Intn(20)
		input := make([]route.Address, n)
		for i := range input {
			// Deliberately allow duplicate address strings.
			input[i] = route.Address{
				Address:  fmt.Sprintf("Stop %d", rng.Intn(n)),
				Priority: 1 + rng.Intn(5),
			}
		}

		shuffled := addressStrings(input)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		// Alternate between valid hints, garbage hints, and failures.
		reasoner := &stubReasoner{
			reasonFunc: func(ctx context.Context, req route.Request) (*route.AdjustmentSignal, error) {
				switch trial % 3 {
				case 0:
					return &route.AdjustmentSignal{Reordering: shuffled}, nil
				case 1:
					return &route.AdjustmentSignal{Reordering: []string{"Nowhere"}}, nil
				default:
					return nil, errors.New("unavailable")
				}
			},
		}
		uc := New(&mockLogger{}, reasoner, testConfig())

		out, err := uc.Optimize(context.Background(), route.RawRequest{Addresses: input})
		if err != nil {
			t.Fatalf("trial %d: unexpected error: %v", trial, err)
		}

		if len(out.Route) != len(input) {
			t.Fatalf("trial %d: length changed: %d != %d", trial, len(out.Route), len(input))
		}

		inCounts := map[string]int{}
		for _, a := range input {
			inCounts[a.Address]++
		}
		for _, a := range out.Route {
			inCounts[a.Address]--
		}
		for addr, count := range inCounts {
			if count != 0 {
				t.Fatalf("trial %d: output is not a permutation, %q off by %d", trial, addr, count)
			}
		}

		if out.Estimate.LowerMinutes <= 0 || out.Estimate.LowerMinutes > out.Estimate.UpperMinutes {
			t.Fatalf("trial %d: invalid estimate bounds: %+v", trial, out.Estimate)
		}
		if out.Explanation == "" {
			t.Fatalf("trial %d: explanation must be non-empty", trial)
		}
	}
}

func TestOptimize_ValidationFailure(t *testing.T) {
	reasoner := &stubReasoner{}
	uc := New(&mockLogger{}, reasoner, testConfig())

	_, err := uc.Optimize(context.Background(), route.RawRequest{})
	if _, ok := route.AsValidationError(err); !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if reasoner.callCount != 0 {
		t.Errorf("reasoner must not be consulted on invalid input")
	}
}
