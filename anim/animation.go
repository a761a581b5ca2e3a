package anim

import (
	"fmt"
	"regexp"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/matt-g-everett/ledanim/easing"
	"github.com/matt-g-everett/ledanim/event"
)

// Notifications emitted by an Animation.
const (
	// EventStart fires once the animation is registered and reports itself
	// as animated, before its attributes are resolved.
	EventStart event.Kind = "start"
	// EventAttribute fires once per resolved property with an AttributeSetup.
	EventAttribute event.Kind = "attribute"
	// EventTween fires after each applied frame with the current frame number.
	EventTween event.Kind = "tween"
	// EventComplete fires when the animation leaves the scheduler, with Stats.
	EventComplete event.Kind = "complete"
)

var (
	noNegatives = regexp.MustCompile(`(?i)width|height|opacity|padding`)
	pixelUnits  = regexp.MustCompile(`(?i)width|height|top$|bottom$|left$|right$`)
)

// DefaultUnit returns the unit assumed for a property without an explicit one.
func DefaultUnit(property string) string {
	if pixelUnits.MatchString(property) {
		return "px"
	}
	return ""
}

// NonNegative reports whether values of property are floored at zero.
func NonNegative(property string) bool {
	return noNegatives.MatchString(property)
}

// Target is the thing being animated.
type Target interface {
	// Value returns the current value of property.
	Value(property string) Value
	// SetValue writes v, expressed in unit, to property.
	SetValue(property string, v Value, unit string)
}

// Duration is the length of an animation, either in seconds or in frames.
type Duration struct {
	amount float64
	frames bool
}

// Seconds creates a wall-clock Duration. Frame skipping keeps it in time.
func Seconds(s float64) Duration {
	return Duration{amount: s}
}

// Frames creates a Duration of exactly n frames.
func Frames(n int) Duration {
	if n < 0 {
		n = 0
	}
	return Duration{amount: float64(n), frames: true}
}

// UseSeconds reports whether d is measured in seconds.
func (d Duration) UseSeconds() bool {
	return !d.frames
}

// Amount returns the number of seconds or frames.
func (d Duration) Amount() float64 {
	return d.amount
}

func (d Duration) String() string {
	if d.frames {
		return fmt.Sprintf("%d frames", int(d.amount))
	}
	return fmt.Sprintf("%gs", d.amount)
}

// AttributeSetup is the payload of EventAttribute.
type AttributeSetup struct {
	Property  string
	Attribute RuntimeAttribute
}

// Stats is the payload of EventComplete.
type Stats struct {
	Duration time.Duration
	Frames   int
	FPS      float64
}

func (s Stats) String() string {
	return fmt.Sprintf("duration: %v, frames: %d, fps: %.1f", s.Duration, s.Frames, s.FPS)
}

// An Animation tweens the properties of a single Target.
type Animation struct {
	id         string
	sched      *Scheduler
	target     Target
	attributes Attributes
	duration   Duration
	method     easing.Func
	hub        *event.Hub

	currentFrame int
	totalFrames  int
	frames       int
	startTime    time.Time
	animated     bool
	runtime      map[string]RuntimeAttribute
	order        []string
}

// NewAnimation creates an Animation of target driven by s. A nil method
// tweens linearly.
func NewAnimation(s *Scheduler, target Target, attributes Attributes, d Duration, method easing.Func) *Animation {
	a := new(Animation)
	a.id = uuid.NewString()
	a.sched = s
	a.target = target
	a.attributes = attributes
	a.duration = d
	a.method = method
	if a.method == nil {
		a.method = easing.Linear
	}
	a.hub = event.NewHub()
	a.runtime = make(map[string]RuntimeAttribute)
	return a
}

// ID returns the unique identifier of a.
func (a *Animation) ID() string { return a.id }

// Target returns the animated target.
func (a *Animation) Target() Target { return a.target }

// Duration returns the configured duration.
func (a *Animation) Duration() Duration { return a.duration }

// CurrentFrame returns the frame last applied.
func (a *Animation) CurrentFrame() int { return a.currentFrame }

// TotalFrames returns the number of frames of the current run.
func (a *Animation) TotalFrames() int { return a.totalFrames }

// IsAnimated reports whether a is registered with its scheduler.
func (a *Animation) IsAnimated() bool { return a.animated }

// StartTime returns when the current run was registered.
func (a *Animation) StartTime() time.Time { return a.startTime }

// Subscribe registers h for notifications of the given kind.
func (a *Animation) Subscribe(kind event.Kind, h event.Handler) event.ID {
	return a.hub.Subscribe(kind, h)
}

// Unsubscribe removes a subscription made with Subscribe.
func (a *Animation) Unsubscribe(kind event.Kind, id event.ID) bool {
	return a.hub.Unsubscribe(kind, id)
}

// LastError returns the last failure of a subscriber, or nil.
func (a *Animation) LastError() error {
	return a.hub.LastError()
}

// RuntimeAttributes returns the values resolved for the current run.
func (a *Animation) RuntimeAttributes() map[string]RuntimeAttribute {
	out := make(map[string]RuntimeAttribute, len(a.runtime))
	for k, v := range a.runtime {
		out[k] = v
	}
	return out
}

func (a *Animation) String() string {
	return "#<Anim:" + a.id + ">"
}

// Start registers a with its scheduler. It returns false if a is already running.
func (a *Animation) Start() bool {
	if a.animated {
		return false
	}
	a.currentFrame = 0
	a.totalFrames = a.sched.frameCount(a.duration)
	return a.sched.register(a)
}

// Stop removes a from its scheduler. With finish set the end values are
// written exactly before the animation completes. It returns false if a was
// not running.
func (a *Animation) Stop(finish bool) bool {
	if !a.animated {
		return false
	}
	if finish {
		a.currentFrame = a.totalFrames
		for _, name := range a.order {
			ra := a.runtime[name]
			a.apply(name, ra.End, ra.Unit)
		}
		a.notify(EventTween, a.currentFrame)
	}
	a.sched.Deregister(a)
	return true
}

// begin is called by the scheduler once a is queued. Observers of the start
// and attribute notifications may stop a, which ends the setup early.
func (a *Animation) begin(now time.Time) {
	a.runtime = make(map[string]RuntimeAttribute, len(a.attributes))
	a.order = a.order[:0]
	a.animated = true
	a.frames = 0
	a.startTime = now
	a.notify(EventStart, nil)
	names := make([]string, 0, len(a.attributes))
	for name := range a.attributes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if !a.animated {
			return
		}
		a.setRuntimeAttribute(name)
	}
}

func (a *Animation) setRuntimeAttribute(name string) bool {
	tw := a.attributes[name]
	if !tw.Valid() {
		tracer().Debugf("%s: property %q has neither to nor by, skipped", a, name)
		return false
	}
	var start, end Value
	if tw.from != nil {
		start = *tw.from
	} else {
		start = a.target.Value(name)
	}
	change := tw.to
	if change == nil {
		change = tw.by
	}
	if change.IsVector() && !start.IsVector() {
		start = start.broadcast(change.Len())
	}
	if tw.to != nil {
		end = *tw.to
	} else {
		end = start.Add(*tw.by)
	}
	unit := DefaultUnit(name)
	if tw.unit != nil {
		unit = *tw.unit
	}
	ra := RuntimeAttribute{Start: start, End: end, Unit: unit}
	a.runtime[name] = ra
	a.order = append(a.order, name)
	a.notify(EventAttribute, AttributeSetup{Property: name, Attribute: ra})
	return true
}

// advance moves a on by one frame and applies the eased values.
func (a *Animation) advance() {
	a.currentFrame++
	a.frames++
	t, d := float64(a.currentFrame), float64(a.totalFrames)
	for _, name := range a.order {
		ra := a.runtime[name]
		v := ra.Start.Map(func(i int, b float64) float64 {
			return a.method(t, b, ra.End.Component(i)-b, d)
		})
		a.apply(name, v, ra.Unit)
	}
	a.notify(EventTween, a.currentFrame)
}

func (a *Animation) apply(name string, v Value, unit string) {
	if NonNegative(name) {
		v = v.Map(func(_ int, x float64) float64 {
			if x > 0 {
				return x
			}
			return 0
		})
	}
	a.target.SetValue(name, v, unit)
}

// finish is called by the scheduler once a has been removed.
func (a *Animation) finish(now time.Time) {
	elapsed := now.Sub(a.startTime)
	stats := Stats{Duration: elapsed, Frames: a.frames}
	if elapsed > 0 {
		stats.FPS = float64(a.frames) / elapsed.Seconds()
	}
	a.animated = false
	a.frames = 0
	tracer().Debugf("%s complete: %s", a, stats)
	a.notify(EventComplete, stats)
}

func (a *Animation) notify(kind event.Kind, payload interface{}) {
	a.hub.Notify(event.Event{Kind: kind, Source: a, Payload: payload})
}
