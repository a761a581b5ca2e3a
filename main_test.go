package main

import (
	"strings"
	"testing"

	"github.com/matt-g-everett/ledanim/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const playlist = `
stream:
  pixels: 30
animations:
  - name: sweep
    easing: easeBoth
    seconds: 2
    properties:
      offset: {from: [0], by: [20]}
      color: {to: [255, 0, 0], unit: ""}
  - name: blink
    frames: 10
    properties:
      brightness: {}
`

func TestDumpPlaylist(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader(playlist))
	require.NoError(t, err)
	out := dumpPlaylist(cfg)
	assert.Contains(t, out, "sweep (2s, easeBoth)")
	assert.Contains(t, out, "offset from [0] by [20]")
	assert.Contains(t, out, `color to [255 0 0] unit ""`)
	assert.Contains(t, out, "blink (10 frames, easeNone)")
	assert.Contains(t, out, "brightness (ignored)")
}

func TestNewApp(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader(playlist))
	require.NoError(t, err)
	a, err := newApp(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"sweep", "blink"}, a.Controller.Names())
	assert.Equal(t, 30, a.Strip.Len())

	require.NoError(t, a.Controller.Start())
	sweep, ok := a.Controller.Get("sweep")
	require.True(t, ok)
	assert.Equal(t, 2000, sweep.TotalFrames())
	a.Controller.Stop(true)
	assert.Equal(t, 20.0, a.Strip.Value("offset").Float())
}
