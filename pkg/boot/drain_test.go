package boot_test

import (
	"testing"

	"github.com/kjkrol/sdlskel/internal/platform"
	"github.com/kjkrol/sdlskel/pkg/boot"
	"github.com/stretchr/testify/assert"
)

func queue(events ...platform.Event) boot.Poller {
	return func() (platform.Event, bool) {
		if len(events) == 0 {
			return nil, false
		}
		e := events[0]
		events = events[1:]
		return e, true
	}
}

func TestDrainAll(t *testing.T) {
	var handled []platform.Event
	poll := queue(platform.KeyPress{Code: 1}, platform.Quit{}, platform.KeyPress{Code: 2})

	n := boot.DrainAll().Drain(poll, func(e platform.Event) { handled = append(handled, e) })

	assert.Equal(t, 3, n)
	assert.Equal(t, []platform.Event{platform.KeyPress{Code: 1}, platform.Quit{}, platform.KeyPress{Code: 2}}, handled)
}

func TestDrainAll_EmptyQueue(t *testing.T) {
	n := boot.DrainAll().Drain(queue(), func(platform.Event) { t.Fatal("unexpected event") })
	assert.Zero(t, n)
}

func TestDrainMax(t *testing.T) {
	poll := queue(platform.KeyPress{Code: 1}, platform.KeyPress{Code: 2}, platform.KeyPress{Code: 3})
	count := func(platform.Event) {}

	assert.Equal(t, 2, boot.DrainMax(2).Drain(poll, count))
	assert.Equal(t, 1, boot.DrainMax(2).Drain(poll, count))
	assert.Equal(t, 0, boot.DrainMax(2).Drain(poll, count))
}

func TestDrainMax_NonPositiveMeansOne(t *testing.T) {
	poll := queue(platform.KeyPress{Code: 1}, platform.KeyPress{Code: 2})
	assert.Equal(t, 1, boot.DrainMax(0).Drain(poll, func(platform.Event) {}))
}
