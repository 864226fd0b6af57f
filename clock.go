package glassfx

import (
	"math"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
)

var globalTimer time.Duration

func UpdateDelta() time.Duration {
	return time.Second / time.Duration(eb.TPS())
}

func UpdateGlobalTimer() {
	globalTimer += UpdateDelta()
}

func GlobalTimerNow() time.Duration {
	return globalTimer
}

// GlobalTimerSeconds is the global timer as a timestamp in seconds.
func GlobalTimerSeconds() float64 {
	return f64(globalTimer) / f64(time.Second)
}

// MaxClockDelta caps a single tick so coming back from a hidden window
// doesn't jump the animation.
const MaxClockDelta = 0.1

// FrameState is what the clock produces each tick.
type FrameState struct {
	// seconds since the clock was created
	ElapsedSeconds float64
	// never reset, grows by delta*speed
	Progress float64
	// 0.5 + 0.5*sin(Progress*0.5), in [0, 1]
	WaveValue float64
}

// ContinuousClock turns wall clock timestamps into FrameState.
type ContinuousClock struct {
	Speed float64

	start    float64
	last     float64
	started  bool
	progress float64
}

func NewContinuousClock(startTimestamp, speed float64) *ContinuousClock {
	return &ContinuousClock{
		Speed: speed,
		start: startTimestamp,
	}
}

func (c *ContinuousClock) Tick(timestamp float64) FrameState {
	if !c.started {
		c.last = timestamp
		c.started = true
	}

	delta := Clamp(timestamp-c.last, 0, MaxClockDelta)
	c.last = timestamp

	c.progress += delta * c.Speed

	return c.State(timestamp)
}

func (c *ContinuousClock) State(timestamp float64) FrameState {
	return FrameState{
		ElapsedSeconds: timestamp - c.start,
		Progress:       c.progress,
		WaveValue:      0.5 + 0.5*math.Sin(c.progress*0.5),
	}
}
