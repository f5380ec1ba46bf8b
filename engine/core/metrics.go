package core

import (
	"sort"
	"sync"
	"time"
)

const AVG_COUNT uint8 = 30

type opMetrics struct {
	avgCounter uint8
	msTimes    [AVG_COUNT]float64
	filled     uint8
	msAvg      float64
	count      int64
	totalMS    float64
}

// Metrics keeps a rolling average of the last AVG_COUNT timings per named operation.
// Safe for concurrent use; a nil *Metrics ignores every call.
type Metrics struct {
	mu  sync.Mutex
	ops map[string]*opMetrics
}

func NewMetrics() *Metrics {
	return &Metrics{ops: make(map[string]*opMetrics)}
}

// Record adds one timing sample for op.
func (m *Metrics) Record(op string, elapsed time.Duration) {
	if m == nil {
		return
	}
	ms := float64(elapsed) / float64(time.Millisecond)

	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.ops[op]
	if !ok {
		s = &opMetrics{}
		m.ops[op] = s
	}
	s.msTimes[s.avgCounter] = ms
	s.avgCounter++
	s.avgCounter %= AVG_COUNT
	if s.filled < AVG_COUNT {
		s.filled++
	}

	s.msAvg = 0
	for i := uint8(0); i < s.filled; i++ {
		s.msAvg += s.msTimes[i]
	}
	s.msAvg /= float64(s.filled)

	s.count++
	s.totalMS += ms
}

// Average returns the rolling average of op in milliseconds.
func (m *Metrics) Average(op string) float64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.ops[op]; ok {
		return s.msAvg
	}
	return 0
}

// Count returns how many samples were recorded for op.
func (m *Metrics) Count(op string) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.ops[op]; ok {
		return s.count
	}
	return 0
}

// Total returns the summed time of op in milliseconds.
func (m *Metrics) Total(op string) float64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.ops[op]; ok {
		return s.totalMS
	}
	return 0
}

// Ops lists the recorded operation names in sorted order.
func (m *Metrics) Ops() []string {
	if m == nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.ops))
	for name := range m.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
