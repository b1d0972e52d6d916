package game

// Clock drives the match from whatever loop the host provides: an ebiten
// Update, a headless for-loop, or a test harness. It is not safe for
// concurrent use; all callbacks fire on the goroutine calling Advance.
type Clock struct {
	events []*TickEvent
}

// TickEvent is a repeating callback registered on a Clock.
type TickEvent struct {
	interval  float64
	elapsed   float64
	fn        func(dt float64)
	cancelled bool
}

// NewClock returns an empty clock.
func NewClock() *Clock { return &Clock{} }

// Schedule registers fn to fire every interval seconds of advanced time.
func (c *Clock) Schedule(interval float64, fn func(dt float64)) *TickEvent {
	ev := &TickEvent{interval: interval, fn: fn}
	c.events = append(c.events, ev)
	return ev
}

// Advance moves time forward by dt seconds. Events fire in registration
// order; an event that has fallen behind fires repeatedly until caught
// up, always with its own interval as the dt argument.
func (c *Clock) Advance(dt float64) {
	// Snapshot so callbacks may schedule without firing this pass.
	evs := c.events
	for _, ev := range evs {
		if ev.cancelled {
			continue
		}
		ev.elapsed += dt
		for ev.elapsed >= ev.interval && !ev.cancelled {
			ev.elapsed -= ev.interval
			ev.fn(ev.interval)
		}
	}
	c.compact()
}

// Cancel stops an event. Cancelling twice, or cancelling from inside the
// event's own callback, is fine.
func (c *Clock) Cancel(ev *TickEvent) {
	if ev != nil {
		ev.cancelled = true
	}
}

// CancelAll stops every registered event.
func (c *Clock) CancelAll() {
	for _, ev := range c.events {
		ev.cancelled = true
	}
	c.events = c.events[:0]
}

func (c *Clock) compact() {
	live := c.events[:0]
	for _, ev := range c.events {
		if !ev.cancelled {
			live = append(live, ev)
		}
	}
	c.events = live
}
