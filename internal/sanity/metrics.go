package sanity

import (
	"sync/atomic"
	"time"
)

// Metrics tracks content store call metrics
type Metrics struct {
	queryCalls    int64
	mutationCalls int64
	callErrors    int64
	callLatency   int64 // Total latency in nanoseconds
}

var globalMetrics = &Metrics{}

// GetMetrics returns the current metrics snapshot
func GetMetrics() Metrics {
	return Metrics{
		queryCalls:    atomic.LoadInt64(&globalMetrics.queryCalls),
		mutationCalls: atomic.LoadInt64(&globalMetrics.mutationCalls),
		callErrors:    atomic.LoadInt64(&globalMetrics.callErrors),
		callLatency:   atomic.LoadInt64(&globalMetrics.callLatency),
	}
}

// ResetMetrics resets all metrics (useful for testing)
func ResetMetrics() {
	atomic.StoreInt64(&globalMetrics.queryCalls, 0)
	atomic.StoreInt64(&globalMetrics.mutationCalls, 0)
	atomic.StoreInt64(&globalMetrics.callErrors, 0)
	atomic.StoreInt64(&globalMetrics.callLatency, 0)
}

func recordQuery(duration time.Duration, err error) {
	atomic.AddInt64(&globalMetrics.queryCalls, 1)
	record(duration, err)
}

func recordMutation(duration time.Duration, err error) {
	atomic.AddInt64(&globalMetrics.mutationCalls, 1)
	record(duration, err)
}

func record(duration time.Duration, err error) {
	atomic.AddInt64(&globalMetrics.callLatency, duration.Nanoseconds())
	if err != nil {
		atomic.AddInt64(&globalMetrics.callErrors, 1)
	}
}

func (m Metrics) QueryCalls() int64    { return m.queryCalls }
func (m Metrics) MutationCalls() int64 { return m.mutationCalls }
func (m Metrics) Errors() int64        { return m.callErrors }

// AverageLatency returns the average latency in milliseconds
func (m Metrics) AverageLatency() float64 {
	total := m.queryCalls + m.mutationCalls
	if total == 0 {
		return 0
	}
	avgNs := float64(m.callLatency) / float64(total)
	return avgNs / 1e6
}

// ErrorRate returns the error rate as a percentage
func (m Metrics) ErrorRate() float64 {
	total := m.queryCalls + m.mutationCalls
	if total == 0 {
		return 0
	}
	return float64(m.callErrors) / float64(total) * 100
}
