package event

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ledanim.event")
	defer teardown()

	h := NewHub()
	var got []int
	h.Subscribe("tick", func(Event) error { got = append(got, 1); return nil })
	h.Subscribe("tick", func(Event) error { got = append(got, 2); return nil })
	h.Subscribe("other", func(Event) error { got = append(got, 99); return nil })
	h.Notify(Event{Kind: "tick"})
	assert.Equal(t, []int{1, 2}, got)
}

func TestFailingHandlerDoesNotStopOthers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ledanim.event")
	defer teardown()

	h := NewHub()
	boom := errors.New("boom")
	calls := 0
	h.Subscribe("tick", func(Event) error { return boom })
	h.Subscribe("tick", func(Event) error { panic("worse") })
	h.Subscribe("tick", func(e Event) error {
		calls++
		assert.Equal(t, 7, e.Payload)
		return nil
	})
	assert.NotPanics(t, func() { h.Notify(Event{Kind: "tick", Payload: 7}) })
	assert.Equal(t, 1, calls)
	require.Error(t, h.LastError())
	assert.Contains(t, h.LastError().Error(), "worse")
}

func TestUnsubscribe(t *testing.T) {
	h := NewHub()
	calls := 0
	id := h.Subscribe("tick", func(Event) error { calls++; return nil })
	h.Subscribe("tick", func(Event) error { calls += 10; return nil })
	assert.True(t, h.Unsubscribe("tick", id))
	assert.False(t, h.Unsubscribe("tick", id))
	h.Notify(Event{Kind: "tick"})
	assert.Equal(t, 10, calls)
	assert.Equal(t, 1, h.UnsubscribeAll("tick"))
	assert.Equal(t, 0, h.Subscribers("tick"))
	h.Notify(Event{Kind: "tick"})
	assert.Equal(t, 10, calls)
}

func TestSubscribeDuringNotify(t *testing.T) {
	h := NewHub()
	calls := 0
	h.Subscribe("tick", func(Event) error {
		h.Subscribe("tick", func(Event) error { calls++; return nil })
		return nil
	})
	h.Notify(Event{Kind: "tick"})
	assert.Equal(t, 0, calls)
	h.Notify(Event{Kind: "tick"})
	assert.Equal(t, 1, calls)
}
