package boot

import "github.com/kjkrol/sdlskel/internal/platform"

type Poller func() (platform.Event, bool)

type DrainStrategy interface {
	Drain(poll Poller, handle func(platform.Event)) int
}

type DrainAllStrategy struct{}

func (DrainAllStrategy) Drain(poll Poller, handle func(platform.Event)) int {
	count := 0
	for {
		event, ok := poll()
		if !ok {
			return count
		}
		handle(event)
		count++
	}
}

// DrainMaxStrategy stops after Max events; the rest stay queued for the next iteration.
type DrainMaxStrategy struct {
	Max int
}

func (s DrainMaxStrategy) Drain(poll Poller, handle func(platform.Event)) int {
	max := s.Max
	if max <= 0 {
		max = 1
	}
	count := 0
	for count < max {
		event, ok := poll()
		if !ok {
			return count
		}
		handle(event)
		count++
	}
	return count
}

func DrainAll() DrainStrategy {
	return DrainAllStrategy{}
}

func DrainMax(max int) DrainStrategy {
	return DrainMaxStrategy{Max: max}
}
