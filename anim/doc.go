/*
Package anim tweens numeric properties of a Target over time.

An Animation describes how a set of properties moves from their current (or
given) values to target values. Animations do nothing on their own: they are
registered with a Scheduler which owns a single timer and advances every
running animation by one frame per tick. Time based animations are kept in step
with the wall clock by skipping frames when ticks arrive late.

A Scheduler and everything registered with it belongs to one goroutine. Either
drive it by calling Tick from that goroutine, or let Run own the timer and
hand work to it through Do.
*/
package anim

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("ledanim.anim")
}
