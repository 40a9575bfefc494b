// Package testutil provides shared helpers for tests: a deterministic
// plan.Generator double and a discard logger.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/fitcoach/fitcoach/internal/plan"
)

// MockGenerator is a deterministic plan.Generator for testing.
// Each method returns a canned response (or error) and records the call.
//
// Thread-safe for concurrent use.
type MockGenerator struct {
	mu sync.Mutex

	WorkoutResponse string
	DietResponse    string
	TipsResponse    string

	WorkoutErr error
	DietErr    error
	TipsErr    error

	calls []MockCall
}

// MockCall records a single generator invocation.
type MockCall struct {
	Method  string // "workout", "diet" or "tips"
	Request any    // the request struct as passed in
}

// NewMockGenerator creates a mock with simple canned responses per method.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{
		WorkoutResponse: "mock workout plan",
		DietResponse:    "mock diet plan",
		TipsResponse:    "mock cricket tips",
	}
}

// WorkoutPlan implements plan.Generator.
func (m *MockGenerator) WorkoutPlan(_ context.Context, req plan.WorkoutRequest) (string, error) {
	m.record("workout", req)
	if m.WorkoutErr != nil {
		return "", fmt.Errorf("generating workout plan: %w", m.WorkoutErr)
	}
	return m.WorkoutResponse, nil
}

// DietPlan implements plan.Generator.
func (m *MockGenerator) DietPlan(_ context.Context, req plan.DietRequest) (string, error) {
	m.record("diet", req)
	if m.DietErr != nil {
		return "", fmt.Errorf("generating diet plan: %w", m.DietErr)
	}
	return m.DietResponse, nil
}

// CricketTips implements plan.Generator.
func (m *MockGenerator) CricketTips(_ context.Context, req plan.TipsRequest) (string, error) {
	m.record("tips", req)
	if m.TipsErr != nil {
		return "", fmt.Errorf("generating cricket tips: %w", m.TipsErr)
	}
	return m.TipsResponse, nil
}

func (m *MockGenerator) record(method string, req any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, MockCall{Method: method, Request: req})
}

// Calls returns a copy of all recorded calls.
func (m *MockGenerator) Calls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]MockCall, len(m.calls))
	copy(cp, m.calls)
	return cp
}

// Reset clears recorded calls (keeps canned responses).
func (m *MockGenerator) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
}

var _ plan.Generator = (*MockGenerator)(nil)
