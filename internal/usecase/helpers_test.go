package usecase

import (
	"context"
	"sync"
	"testing"
	"time"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// 09:00 in Toronto.
var testNow = time.Date(2025, 3, 9, 13, 0, 0, 0, time.UTC)

var testBusiness = BusinessProfile{
	Name:    "Canadian Fitness Repair",
	Email:   "canadianfitnessrepair@gmail.com",
	Phone:   "289-925-7239",
	Website: "https://canadianfitnessrepair.com",
}

func newTestRenderer(t *testing.T, now time.Time) *TemplateRenderer {
	t.Helper()
	r, err := NewTemplateRenderer(RendererConfig{Business: testBusiness, Clock: fixedClock{now: now}})
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	return r
}

type sleepRecorder struct {
	mu    sync.Mutex
	calls []time.Duration
}

func (s *sleepRecorder) sleep(_ context.Context, d time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, d)
	return nil
}

func (s *sleepRecorder) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

type metricsRecorder struct {
	mu       sync.Mutex
	channels map[string]int
	runs     map[string]int
}

func newMetricsRecorder() *metricsRecorder {
	return &metricsRecorder{channels: map[string]int{}, runs: map[string]int{}}
}

func (m *metricsRecorder) ObserveChannel(channel, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.channels[channel+"/"+outcome]++
}

func (m *metricsRecorder) ObserveRun(workflow, status string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs[workflow+"/"+status]++
}

func floatPtr(v float64) *float64 { return &v }
