// Package stream plays animations on an LED strip and publishes the rendered
// frames to an ledrx device over MQTT.
package stream

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("ledanim.stream")
}
