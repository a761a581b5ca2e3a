package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matt-g-everett/ledanim/anim"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
mqtt:
  url: tcp://broker:1883
  username: tree
  topics:
    stream: lights/stream
scheduler:
  fps: 60
stream:
  pixels: 100
animations:
  - name: sweep
    easing: easeBoth
    seconds: 2
    properties:
      offset: {from: [0], by: [80]}
      color: {to: [255, 0, 0]}
      width: {to: [20], unit: ""}
  - name: blink
    frames: 10
    properties:
      brightness: {to: [0]}
      broken: {from: [1]}
`

func TestDecode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ledanim.config")
	defer teardown()

	c, err := Decode(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, "tcp://broker:1883", c.Mqtt.URL)
	assert.Equal(t, "lights/stream", c.Mqtt.Topics.Stream)
	assert.Equal(t, "ledanim", c.Mqtt.ClientID)
	assert.Equal(t, 60.0, c.Scheduler.FPS)
	assert.Equal(t, time.Millisecond, c.Interval())
	assert.Equal(t, 100, c.Stream.Pixels)
	assert.Equal(t, 33*time.Millisecond, c.FrameInterval())
	assert.Equal(t, ":3000", c.API.Listen)
	require.Len(t, c.Animations, 2)

	sweep := c.Animations[0]
	assert.Equal(t, anim.Seconds(2), sweep.Duration())
	fn, err := sweep.Method()
	require.NoError(t, err)
	assert.Equal(t, 50.0, fn(15, 0, 100, 30))

	blink := c.Animations[1]
	assert.Equal(t, anim.Frames(10), blink.Duration())
	attrs := blink.Attributes()
	assert.True(t, attrs["brightness"].Valid())
	assert.False(t, attrs["broken"].Valid())
}

func TestTweensResolve(t *testing.T) {
	c, err := Decode(strings.NewReader(sample))
	require.NoError(t, err)

	s := newTarget()
	sched := anim.NewScheduler(0, 0, nil)
	a := anim.NewAnimation(sched, s, c.Animations[0].Attributes(), anim.Frames(1), nil)
	require.True(t, a.Start())
	ra := a.RuntimeAttributes()
	a.Stop(false)

	assert.Equal(t, anim.RuntimeAttribute{Start: anim.Scalar(0), End: anim.Scalar(80), Unit: ""}, ra["offset"])
	assert.Equal(t, anim.Vector(255, 0, 0), ra["color"].End)
	assert.Equal(t, anim.RuntimeAttribute{Start: anim.Scalar(0), End: anim.Scalar(20), Unit: ""}, ra["width"])
}

func TestValidation(t *testing.T) {
	cases := map[string]string{
		"unnamed":   "animations:\n  - seconds: 1\n",
		"duplicate": "animations:\n  - name: a\n  - name: a\n",
		"both":      "animations:\n  - name: a\n    seconds: 1\n    frames: 2\n",
		"negative":  "animations:\n  - name: a\n    frames: -2\n",
		"easing":    "animations:\n  - name: a\n    easing: wobble\n",
		"syntax":    "animations: [\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))
	c, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, c.Animations, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	empty, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultPixels, empty.Stream.Pixels)
}

type target map[string]anim.Value

func newTarget() target { return target{} }

func (t target) Value(p string) anim.Value {
	if v, ok := t[p]; ok {
		return v
	}
	return anim.Scalar(0)
}

func (t target) SetValue(p string, v anim.Value, _ string) { t[p] = v }
