package chrono

import (
	"sync"
	"time"
)

// Clock is the interface that anything depending on the system clock should use.
type Clock interface {
	Now() time.Time
}

// StandardClock is the Clock backed by the system time in UTC.
type StandardClock struct{}

func NewStandardClock() StandardClock {
	return StandardClock{}
}

func (StandardClock) Now() time.Time {
	return time.Now().UTC()
}

// FakeClock is a manually advanced Clock for tests.
type FakeClock struct {
	mutex sync.Mutex
	now   time.Time
}

func NewFakeClock(now time.Time) *FakeClock {
	return &FakeClock{now: now}
}

func (c *FakeClock) Now() time.Time {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.now
}

func (c *FakeClock) Advance(d time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.now = c.now.Add(d)
}

func (c *FakeClock) Set(now time.Time) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.now = now
}
