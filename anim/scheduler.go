package anim

import (
	"context"
	"math"
	"time"
)

const (
	// DefaultFPS is the nominal frame rate used to turn seconds into frames.
	DefaultFPS = 1000
	// DefaultInterval is the tick interval of the shared timer.
	DefaultInterval = time.Millisecond
)

// Clock tells the scheduler the time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock reading the wall clock.
func SystemClock() Clock {
	return systemClock{}
}

// Scheduler drives every registered Animation from one shared timer. The
// timer runs exactly while at least one animation is registered.
//
// A Scheduler is not safe for concurrent use. Use Do to reach it from other
// goroutines while Run is active.
type Scheduler struct {
	clock    Clock
	fps      float64
	interval time.Duration
	queue    []*Animation
	ticker   *time.Ticker
	calls    chan func()
}

// NewScheduler creates a Scheduler. Non-positive fps, intervals below one
// millisecond and a nil clock fall back to the defaults.
func NewScheduler(fps float64, interval time.Duration, clock Clock) *Scheduler {
	s := new(Scheduler)
	s.fps = fps
	if s.fps <= 0 {
		s.fps = DefaultFPS
	}
	s.interval = interval
	if s.interval < time.Millisecond {
		s.interval = DefaultInterval
	}
	s.clock = clock
	if s.clock == nil {
		s.clock = SystemClock()
	}
	s.calls = make(chan func())
	return s
}

// FPS returns the nominal frame rate.
func (s *Scheduler) FPS() float64 { return s.fps }

// Interval returns the tick interval.
func (s *Scheduler) Interval() time.Duration { return s.interval }

// Len returns the number of registered animations.
func (s *Scheduler) Len() int { return len(s.queue) }

// Active reports whether the shared timer is running.
func (s *Scheduler) Active() bool { return s.ticker != nil }

// Animations returns the registered animations in registration order.
func (s *Scheduler) Animations() []*Animation {
	return append([]*Animation(nil), s.queue...)
}

func (s *Scheduler) frameCount(d Duration) int {
	if !d.UseSeconds() {
		return int(d.amount)
	}
	n := int(math.Ceil(s.fps * d.amount))
	if n < 1 {
		n = 1
	}
	return n
}

// register queues a, starts the timer if needed and begins the run. It
// returns false if a is already queued.
func (s *Scheduler) register(a *Animation) bool {
	if s.indexOf(a) >= 0 {
		return false
	}
	s.queue = append(s.queue, a)
	s.startTimer()
	tracer().Debugf("registered %s, %d running", a, len(s.queue))
	a.begin(s.clock.Now())
	return true
}

// Deregister removes a from the running set and completes it. The timer
// stops with the last animation. It returns false if a was not registered.
func (s *Scheduler) Deregister(a *Animation) bool {
	i := s.indexOf(a)
	if !a.animated || i < 0 {
		return false
	}
	s.queue = append(s.queue[:i:i], s.queue[i+1:]...)
	a.finish(s.clock.Now())
	if len(s.queue) == 0 {
		s.stopTimer()
	}
	return true
}

// StopAll deregisters every animation registered at the time of the call.
func (s *Scheduler) StopAll() {
	for _, a := range s.Animations() {
		s.Deregister(a)
	}
}

// Tick advances every registered animation by one frame, catching time based
// animations up with the clock first. Finished animations are deregistered.
func (s *Scheduler) Tick() {
	for _, a := range s.Animations() {
		if !a.animated || s.indexOf(a) < 0 {
			continue
		}
		if a.currentFrame < a.totalFrames {
			if a.duration.UseSeconds() {
				s.correct(a)
			}
			a.advance()
		}
		if a.animated && a.currentFrame >= a.totalFrames {
			s.Deregister(a)
		}
	}
}

// correct skips frames of a if it has fallen behind the clock. It never moves
// past the second to last frame, leaving the last one to advance.
func (s *Scheduler) correct(a *Animation) {
	total := float64(a.totalFrames)
	current := float64(a.currentFrame)
	durationMs := a.duration.amount * 1000
	actualMs := float64(s.clock.Now().Sub(a.startTime)) / float64(time.Millisecond)

	var skip float64
	if actualMs < durationMs {
		expectedMs := current * durationMs / total
		if expectedMs > 0 {
			skip = math.Round((actualMs/expectedMs - 1) * current)
		}
	} else {
		skip = total - (current + 1)
	}
	if math.IsNaN(skip) || math.IsInf(skip, 0) || skip <= 0 {
		return
	}
	if current+skip > total-1 {
		skip = total - 1 - current
	}
	a.currentFrame += int(skip)
	tracer().Debugf("%s skipped %d frames", a, int(skip))
}

func (s *Scheduler) indexOf(a *Animation) int {
	for i, x := range s.queue {
		if x == a {
			return i
		}
	}
	return -1
}

func (s *Scheduler) startTimer() {
	if s.ticker == nil {
		s.ticker = time.NewTicker(s.interval)
	}
}

func (s *Scheduler) stopTimer() {
	if s.ticker != nil {
		s.ticker.Stop()
		s.ticker = nil
	}
}

// Run ticks the scheduler whenever its timer fires and executes functions
// passed to Do, until ctx is cancelled. All registered animations are then
// stopped.
func (s *Scheduler) Run(ctx context.Context) error {
	tracer().Infof("scheduler running at %g fps, tick %v", s.fps, s.interval)
	for {
		var tick <-chan time.Time
		if s.ticker != nil {
			tick = s.ticker.C
		}
		select {
		case <-ctx.Done():
			s.StopAll()
			return ctx.Err()
		case fn := <-s.calls:
			fn()
		case <-tick:
			s.Tick()
		}
	}
}

// Do runs fn on the goroutine executing Run and waits for it to return.
// It must not be called from that goroutine.
func (s *Scheduler) Do(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	call := func() {
		defer close(done)
		fn()
	}
	select {
	case s.calls <- call:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
