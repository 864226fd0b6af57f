package glassfx

// TickFunc is called once per frame with the frame timestamp and the
// seconds since the previous frame.
type TickFunc func(now, dt float64)

type TickHandle struct {
	fn        TickFunc
	cancelled bool
}

// Cancel removes the callback. Safe to call more than once and from inside a tick.
func (h *TickHandle) Cancel() {
	if h == nil {
		return
	}
	h.cancelled = true
	h.fn = nil
}

func (h *TickHandle) Cancelled() bool {
	return h == nil || h.cancelled
}

// Ticker is the per-frame callback queue. Callbacks run in the order they were added.
type Ticker struct {
	handles []*TickHandle

	last    float64
	started bool
}

func NewTicker() *Ticker {
	return new(Ticker)
}

func (t *Ticker) Add(fn TickFunc) *TickHandle {
	h := &TickHandle{fn: fn}
	t.handles = append(t.handles, h)
	return h
}

func (t *Ticker) Len() int {
	n := 0
	for _, h := range t.handles {
		if !h.cancelled {
			n++
		}
	}
	return n
}

func (t *Ticker) Tick(now float64) {
	if !t.started {
		t.last = now
		t.started = true
	}
	dt := max(now-t.last, 0)
	t.last = now

	// handles added during this tick run next tick
	count := len(t.handles)
	for i := 0; i < count; i++ {
		h := t.handles[i]
		if !h.cancelled {
			h.fn(now, dt)
		}
	}

	alive := t.handles[:0]
	for _, h := range t.handles {
		if !h.cancelled {
			alive = append(alive, h)
		}
	}
	clear(t.handles[len(alive):])
	t.handles = alive
}
