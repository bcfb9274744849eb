package usecase

import (
	"context"

	"delivery-route-optimizer/internal/route"
)

// Mock logger for testing
type mockLogger struct {
	warnCount int
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     { m.warnCount++ }
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   { m.warnCount++ }
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

// stubReasoner is a deterministic Reasoner for coordinator tests.
type stubReasoner struct {
	reasonFunc func(ctx context.Context, req route.Request) (*route.AdjustmentSignal, error)
	callCount  int
}

func (s *stubReasoner) Reason(ctx context.Context, req route.Request) (*route.AdjustmentSignal, error) {
	s.callCount++
	if s.reasonFunc == nil {
		return nil, nil
	}
	return s.reasonFunc(ctx, req)
}
