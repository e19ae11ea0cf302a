package platform

const (
	DefaultWidth  = 640
	DefaultHeight = 480
)

type WindowConfig struct {
	Title  string
	Width  int
	Height int
	OpenGL bool
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{Width: DefaultWidth, Height: DefaultHeight, OpenGL: true}
}

// Platform is the windowing layer the application boots on. Implementations are not
// safe for concurrent use and must be driven from the thread that called Init.
type Platform interface {
	Name() string
	Init() error
	CreateWindow(conf WindowConfig) (Window, error)
	// PollEvent returns the next queued event without blocking. It reports false
	// once the queue is empty.
	PollEvent() (Event, bool)
	Shutdown()
	LastError() string
	// ErrorLabel prefixes LastError in diagnostics, e.g. "SDL_Error".
	ErrorLabel() string
}

type Window interface {
	Destroy()
}
