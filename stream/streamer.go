package stream

import (
	"context"
	"fmt"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/ledanim/anim"
	"github.com/matt-g-everett/ledanim/strip"
)

// Streamer that streams RGB data frames to an ledrx device.
type Streamer struct {
	client   mqtt.Client
	topic    string
	sched    *anim.Scheduler
	strip    *strip.Strip
	interval time.Duration
	sent     uint64
}

// NewStreamer creates an instance of a Streamer publishing s on topic every
// interval.
func NewStreamer(client mqtt.Client, topic string, sched *anim.Scheduler, s *strip.Strip, interval time.Duration) *Streamer {
	st := new(Streamer)
	st.client = client
	st.topic = topic
	st.sched = sched
	st.strip = s
	st.interval = interval
	return st
}

// Sent returns the number of frames published.
func (s *Streamer) Sent() uint64 {
	return s.sent
}

// SendFrame sends a frame as binary over MQTT to an ledrx device.
func (s *Streamer) SendFrame(f *strip.Frame) error {
	b, err := f.MarshalBinary()
	if err != nil {
		return fmt.Errorf("stream: encoding frame: %w", err)
	}
	token := s.client.Publish(s.topic, 2, false, b)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("stream: publishing to %s: %w", s.topic, err)
	}
	s.sent++
	return nil
}

// Run renders the strip on the scheduler goroutine and sends the frame, once
// per interval, until ctx is cancelled.
func (s *Streamer) Run(ctx context.Context) error {
	publishTimer := time.NewTicker(s.interval)
	defer publishTimer.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-publishTimer.C:
			var f *strip.Frame
			if err := s.sched.Do(ctx, func() { f = s.strip.Render() }); err != nil {
				return err
			}
			if err := s.SendFrame(f); err != nil {
				tracer().Errorf("%v", err)
			}
		}
	}
}
