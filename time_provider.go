package apphook

import "time"

// TimeProvider is the clock used to time lifecycle calls. It allows injecting a custom
// time source for testing.
type TimeProvider interface {
	// Now returns the current time.
	Now() time.Time
}

// DefaultTimeProvider is the standard TimeProvider using the system clock.
type DefaultTimeProvider struct{}

// NewDefaultTimeProvider creates a new DefaultTimeProvider.
func NewDefaultTimeProvider() *DefaultTimeProvider {
	return &DefaultTimeProvider{}
}

// Now returns the current system time.
func (p *DefaultTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider is a TimeProvider that returns a controlled time.
// Useful for testing recorded durations.
type MockTimeProvider struct {
	fixedTime time.Time
	step      time.Duration
}

// NewMockTimeProvider creates a MockTimeProvider with the given fixed time.
func NewMockTimeProvider(t time.Time) *MockTimeProvider {
	return &MockTimeProvider{fixedTime: t}
}

// WithStep makes every call to Now advance the clock by step after returning. A hook call
// timed with two Now calls then always takes exactly step.
func (m *MockTimeProvider) WithStep(step time.Duration) *MockTimeProvider {
	m.step = step
	return m
}

// SetTime updates the time returned by Now().
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.fixedTime = t
}

// Advance moves the clock forward by d.
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.fixedTime = m.fixedTime.Add(d)
}

// Now returns the current mock time, then applies the configured step.
func (m *MockTimeProvider) Now() time.Time {
	now := m.fixedTime
	m.fixedTime = m.fixedTime.Add(m.step)
	return now
}

// Compile-time check that MockTimeProvider implements TimeProvider.
var _ TimeProvider = (*MockTimeProvider)(nil)
