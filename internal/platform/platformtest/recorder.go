// Package platformtest provides a scripted platform.Platform for tests.
package platformtest

import (
	"errors"

	"github.com/kjkrol/sdlskel/internal/platform"
)

const (
	CallInit          = "init"
	CallCreateWindow  = "create_window"
	CallPollEvent     = "poll_event"
	CallDestroyWindow = "destroy_window"
	CallShutdown      = "shutdown"
)

// Recorder records every platform call in order. Batches holds the events handed out
// per drain: PollEvent walks the current batch, then reports an empty queue once and
// moves on to the next batch. When all batches are consumed it keeps returning Quit so a
// misbehaving loop cannot spin forever in tests.
type Recorder struct {
	InitErr   string
	CreateErr string
	Batches   [][]platform.Event

	Calls   []string
	Windows []platform.WindowConfig

	batch   int
	pos     int
	lastErr string
}

func New(batches ...[]platform.Event) *Recorder {
	return &Recorder{Batches: batches}
}

func (r *Recorder) Name() string { return "Test" }

func (r *Recorder) Init() error {
	r.Calls = append(r.Calls, CallInit)
	if r.InitErr != "" {
		r.lastErr = r.InitErr
		return errors.New(r.InitErr)
	}
	return nil
}

func (r *Recorder) CreateWindow(conf platform.WindowConfig) (platform.Window, error) {
	r.Calls = append(r.Calls, CallCreateWindow)
	r.Windows = append(r.Windows, conf)
	if r.CreateErr != "" {
		r.lastErr = r.CreateErr
		return nil, errors.New(r.CreateErr)
	}
	return &window{r: r}, nil
}

func (r *Recorder) PollEvent() (platform.Event, bool) {
	r.Calls = append(r.Calls, CallPollEvent)
	if r.batch >= len(r.Batches) {
		return platform.Quit{}, true
	}
	current := r.Batches[r.batch]
	if r.pos < len(current) {
		event := current[r.pos]
		r.pos++
		return event, true
	}
	r.batch++
	r.pos = 0
	return nil, false
}

func (r *Recorder) Shutdown() {
	r.Calls = append(r.Calls, CallShutdown)
}

func (r *Recorder) LastError() string { return r.lastErr }

func (r *Recorder) ErrorLabel() string { return "Test_Error" }

// Count returns how many times call was recorded.
func (r *Recorder) Count(call string) int {
	n := 0
	for _, c := range r.Calls {
		if c == call {
			n++
		}
	}
	return n
}

// Lifecycle returns the recorded calls without polls.
func (r *Recorder) Lifecycle() []string {
	out := make([]string, 0, len(r.Calls))
	for _, c := range r.Calls {
		if c != CallPollEvent {
			out = append(out, c)
		}
	}
	return out
}

// Drains returns how many batches have been fully consumed.
func (r *Recorder) Drains() int {
	return r.batch
}

type window struct {
	r *Recorder
}

func (w *window) Destroy() {
	w.r.Calls = append(w.r.Calls, CallDestroyWindow)
}
