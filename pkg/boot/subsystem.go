package boot

import (
	"fmt"
	"sync"

	"github.com/kjkrol/sdlskel/internal/platform"
)

// Subsystem owns an initialized platform. Release may be called any number of times;
// the platform is shut down once.
type Subsystem struct {
	platform platform.Platform
	once     sync.Once
}

func Acquire(p platform.Platform) (*Subsystem, error) {
	if err := p.Init(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSubsystemInit, p.LastError())
	}
	return &Subsystem{platform: p}, nil
}

func (s *Subsystem) Release() {
	s.once.Do(s.platform.Shutdown)
}

// OpenWindow creates the window. The returned Window must be closed before Release.
func (s *Subsystem) OpenWindow(conf platform.WindowConfig) (*Window, error) {
	w, err := s.platform.CreateWindow(conf)
	if err != nil || w == nil {
		return nil, fmt.Errorf("%w: %s", ErrWindowCreate, s.platform.LastError())
	}
	return &Window{handle: w, conf: conf}, nil
}

type Window struct {
	handle platform.Window
	conf   platform.WindowConfig
	once   sync.Once
}

func (w *Window) Config() platform.WindowConfig {
	return w.conf
}

func (w *Window) Close() {
	w.once.Do(w.handle.Destroy)
}
