package shared

import "time"

// Clock abstracts wall-clock reads so planning deadlines can be driven in tests
type Clock interface {
	Now() time.Time
}

// RealClock reads the system time
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

// NewRealClock creates a RealClock instance
func NewRealClock() Clock {
	return RealClock{}
}

// MockClock is a manually advanced clock for tests
type MockClock struct {
	CurrentTime time.Time
}

// NewMockClock creates a MockClock at startTime (now if zero)
func NewMockClock(startTime time.Time) *MockClock {
	if startTime.IsZero() {
		startTime = time.Now()
	}
	return &MockClock{CurrentTime: startTime}
}

func (m *MockClock) Now() time.Time {
	return m.CurrentTime
}

// Advance moves the mock clock forward by d
func (m *MockClock) Advance(d time.Duration) {
	m.CurrentTime = m.CurrentTime.Add(d)
}

// Deadline is an absolute instant observed through a Clock
type Deadline struct {
	clock Clock
	at    time.Time
}

// NewDeadline creates a deadline at the given instant
func NewDeadline(clock Clock, at time.Time) Deadline {
	if clock == nil {
		clock = NewRealClock()
	}
	return Deadline{clock: clock, at: at}
}

// NoDeadline never passes
func NoDeadline() Deadline {
	return Deadline{}
}

// Passed reports whether the deadline instant has been reached
func (d Deadline) Passed() bool {
	if d.clock == nil {
		return false
	}
	return !d.clock.Now().Before(d.at)
}

// Remaining returns the time left before the deadline, never negative
func (d Deadline) Remaining() time.Duration {
	if d.clock == nil {
		return time.Duration(1<<63 - 1)
	}
	left := d.at.Sub(d.clock.Now())
	if left < 0 {
		return 0
	}
	return left
}

// Budget groups the planning deadlines, all measured from a common start.
//
// Search keeps looking for alternatives until Soft once it has a complete
// route, stops unconditionally at Hard, and evaluation stops at Evaluate.
type Budget struct {
	Clock    Clock
	Start    time.Time
	Soft     time.Duration
	Hard     time.Duration
	Evaluate time.Duration
}

// SoftDeadline returns Start+Soft
func (b Budget) SoftDeadline() Deadline {
	return NewDeadline(b.Clock, b.Start.Add(b.Soft))
}

// HardDeadline returns Start+Hard
func (b Budget) HardDeadline() Deadline {
	return NewDeadline(b.Clock, b.Start.Add(b.Hard))
}

// EvaluateDeadline returns Start+Evaluate
func (b Budget) EvaluateDeadline() Deadline {
	return NewDeadline(b.Clock, b.Start.Add(b.Evaluate))
}

// Elapsed returns the time since Start
func (b Budget) Elapsed() time.Duration {
	clock := b.Clock
	if clock == nil {
		clock = NewRealClock()
	}
	return clock.Now().Sub(b.Start)
}
