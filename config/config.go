// Package config reads the YAML configuration of ledanim.
package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/matt-g-everett/ledanim/anim"
	"github.com/matt-g-everett/ledanim/easing"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v2"
)

func tracer() tracing.Trace {
	return tracing.Select("ledanim.config")
}

// Defaults applied to zero values.
const (
	DefaultFrameMs = 33
	DefaultPixels  = 500
	DefaultListen  = ":3000"
	DefaultTopic   = "home/xmastree/stream"
)

// Config is the top level configuration.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		ClientID string `yaml:"clientId"`
		Topics   struct {
			Stream string `yaml:"stream"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Scheduler struct {
		FPS        float64 `yaml:"fps"`
		IntervalMs int     `yaml:"intervalMs"`
	} `yaml:"scheduler"`
	Stream struct {
		Pixels  int `yaml:"pixels"`
		FrameMs int `yaml:"frameMs"`
	} `yaml:"stream"`
	API struct {
		Listen string `yaml:"listen"`
	} `yaml:"api"`
	Animations []Animation `yaml:"animations"`
}

// Animation is one entry of the playlist.
type Animation struct {
	Name       string           `yaml:"name"`
	Easing     string           `yaml:"easing"`
	Seconds    float64          `yaml:"seconds"`
	Frames     int              `yaml:"frames"`
	Properties map[string]Tween `yaml:"properties"`
}

// Tween configures one property. Single element lists are scalars, longer
// lists vectors.
type Tween struct {
	From []float64 `yaml:"from"`
	To   []float64 `yaml:"to"`
	By   []float64 `yaml:"by"`
	Unit *string   `yaml:"unit"`
}

// Load reads the configuration file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a configuration from r, applies defaults and validates it.
func Decode(r io.Reader) (Config, error) {
	var c Config
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&c); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("config: decoding: %w", err)
	}
	c.applyDefaults()
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Scheduler.FPS <= 0 {
		c.Scheduler.FPS = anim.DefaultFPS
	}
	if c.Scheduler.IntervalMs <= 0 {
		c.Scheduler.IntervalMs = int(anim.DefaultInterval / time.Millisecond)
	}
	if c.Stream.Pixels <= 0 {
		c.Stream.Pixels = DefaultPixels
	}
	if c.Stream.FrameMs <= 0 {
		c.Stream.FrameMs = DefaultFrameMs
	}
	if c.API.Listen == "" {
		c.API.Listen = DefaultListen
	}
	if c.Mqtt.ClientID == "" {
		c.Mqtt.ClientID = "ledanim"
	}
	if c.Mqtt.Topics.Stream == "" {
		c.Mqtt.Topics.Stream = DefaultTopic
	}
}

func (c *Config) validate() error {
	seen := make(map[string]bool, len(c.Animations))
	for i, a := range c.Animations {
		if a.Name == "" {
			return fmt.Errorf("config: animation %d has no name", i)
		}
		if seen[a.Name] {
			return fmt.Errorf("config: duplicate animation %q", a.Name)
		}
		seen[a.Name] = true
		if a.Seconds != 0 && a.Frames != 0 {
			return fmt.Errorf("config: animation %q sets both seconds and frames", a.Name)
		}
		if a.Seconds < 0 || a.Frames < 0 {
			return fmt.Errorf("config: animation %q has a negative duration", a.Name)
		}
		if _, err := easing.Lookup(a.Easing); err != nil {
			return fmt.Errorf("config: animation %q: %w", a.Name, err)
		}
	}
	return nil
}

// Interval returns the scheduler tick interval.
func (c Config) Interval() time.Duration {
	return time.Duration(c.Scheduler.IntervalMs) * time.Millisecond
}

// FrameInterval returns the interval between streamed frames.
func (c Config) FrameInterval() time.Duration {
	return time.Duration(c.Stream.FrameMs) * time.Millisecond
}

// Duration returns the animation length. Frames win over seconds.
func (a Animation) Duration() anim.Duration {
	if a.Frames > 0 {
		return anim.Frames(a.Frames)
	}
	return anim.Seconds(a.Seconds)
}

// Method returns the easing curve of a.
func (a Animation) Method() (easing.Func, error) {
	return easing.Lookup(a.Easing)
}

// Attributes converts the configured properties.
func (a Animation) Attributes() anim.Attributes {
	attrs := make(anim.Attributes, len(a.Properties))
	for name, p := range a.Properties {
		attrs[name] = p.Tween()
	}
	return attrs
}

// Tween converts p. Without to or by the zero Tween is returned, which
// animations skip.
func (p Tween) Tween() anim.Tween {
	var tw anim.Tween
	switch {
	case len(p.To) > 0:
		tw = anim.To(value(p.To))
	case len(p.By) > 0:
		tw = anim.By(value(p.By))
	default:
		tracer().Infof("tween without to or by is ignored")
		return tw
	}
	if len(p.From) > 0 {
		tw = tw.From(value(p.From))
	}
	if p.Unit != nil {
		tw = tw.Unit(*p.Unit)
	}
	return tw
}

func value(xs []float64) anim.Value {
	if len(xs) == 1 {
		return anim.Scalar(xs[0])
	}
	return anim.Vector(xs...)
}
