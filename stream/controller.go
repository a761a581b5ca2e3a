package stream

import (
	"fmt"

	"github.com/matt-g-everett/ledanim/anim"
	"github.com/matt-g-everett/ledanim/event"
)

// Controller that cycles through a playlist of animations, starting the next
// one whenever the current one completes.
//
// Like the scheduler it belongs to, a Controller is used from the scheduler
// goroutine only.
type Controller struct {
	names      []string
	animations map[string]*anim.Animation
	current    int
	playing    bool
}

// NewController creates an instance of a Controller with an empty playlist.
func NewController() *Controller {
	c := new(Controller)
	c.animations = make(map[string]*anim.Animation)
	c.current = -1
	return c
}

// Add appends a to the playlist under name.
func (c *Controller) Add(name string, a *anim.Animation) error {
	if _, ok := c.animations[name]; ok {
		return fmt.Errorf("stream: animation %q already added", name)
	}
	index := len(c.names)
	c.names = append(c.names, name)
	c.animations[name] = a
	a.Subscribe(anim.EventComplete, func(event.Event) error {
		c.cycleAnimation(index)
		return nil
	})
	return nil
}

// Names returns the playlist in order.
func (c *Controller) Names() []string {
	return append([]string(nil), c.names...)
}

// Get returns the animation added under name.
func (c *Controller) Get(name string) (*anim.Animation, bool) {
	a, ok := c.animations[name]
	return a, ok
}

// Current returns the name of the animation last started by the controller.
func (c *Controller) Current() string {
	if c.current < 0 {
		return ""
	}
	return c.names[c.current]
}

// Playing reports whether the playlist advances on completion.
func (c *Controller) Playing() bool {
	return c.playing
}

// Play jumps to the named animation, stopping the current one, and keeps
// cycling from there.
func (c *Controller) Play(name string) error {
	index := -1
	for i, n := range c.names {
		if n == name {
			index = i
			break
		}
	}
	if index < 0 {
		return fmt.Errorf("stream: unknown animation %q", name)
	}
	c.playing = false
	if c.current >= 0 {
		c.animations[c.names[c.current]].Stop(false)
	}
	a := c.animations[name]
	a.Stop(false)
	c.current = index
	c.playing = true
	a.Start()
	tracer().Infof("playing %s", name)
	return nil
}

// Start plays the playlist from the beginning.
func (c *Controller) Start() error {
	if len(c.names) == 0 {
		return fmt.Errorf("stream: empty playlist")
	}
	return c.Play(c.names[0])
}

// Stop halts cycling. With finish set the current animation jumps to its end.
func (c *Controller) Stop(finish bool) {
	c.playing = false
	if c.current >= 0 {
		c.animations[c.names[c.current]].Stop(finish)
	}
}

func (c *Controller) cycleAnimation(completed int) {
	if !c.playing || completed != c.current {
		return
	}
	c.current = (c.current + 1) % len(c.names)
	next := c.names[c.current]
	tracer().Debugf("cycling to %s", next)
	c.animations[next].Start()
}
