//go:build !glfw

package platform

import (
	"github.com/Zyko0/go-sdl3/bin/binsdl"
	"github.com/Zyko0/go-sdl3/sdl"
	"go.uber.org/zap"
)

type library interface {
	Unload()
}

type sdlPlatform struct {
	logger  *zap.Logger
	lib     library
	lastErr string
}

// New returns the SDL3 backend. The SDL shared library is embedded and loaded on Init.
func New(logger *zap.Logger) Platform {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &sdlPlatform{logger: logger.Named("sdl")}
}

func (p *sdlPlatform) Name() string { return "SDL3" }

func (p *sdlPlatform) Init() error {
	p.lib = binsdl.Load()
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		p.lastErr = err.Error()
		p.lib.Unload()
		p.lib = nil
		return err
	}
	p.logger.Debug("subsystem initialized")
	return nil
}

func (p *sdlPlatform) CreateWindow(conf WindowConfig) (Window, error) {
	var flags sdl.WindowFlags
	if conf.OpenGL {
		flags |= sdl.WINDOW_OPENGL
	}
	window, err := sdl.CreateWindow(conf.Title, conf.Width, conf.Height, flags)
	if err != nil {
		p.lastErr = err.Error()
		return nil, err
	}
	if window == nil {
		p.lastErr = "SDL_CreateWindow returned no window"
		return nil, errNoWindow
	}
	p.logger.Debug("window created",
		zap.String("title", conf.Title),
		zap.Int("width", conf.Width),
		zap.Int("height", conf.Height))
	return &sdlWindow{window: window}, nil
}

func (p *sdlPlatform) PollEvent() (Event, bool) {
	var event sdl.Event
	if !sdl.PollEvent(&event) {
		return nil, false
	}
	return convert(event), true
}

func (p *sdlPlatform) Shutdown() {
	sdl.Quit()
	if p.lib != nil {
		p.lib.Unload()
		p.lib = nil
	}
	p.logger.Debug("subsystem shut down")
}

func (p *sdlPlatform) LastError() string { return p.lastErr }

func (p *sdlPlatform) ErrorLabel() string { return "SDL_Error" }

func convert(event sdl.Event) Event {
	switch event.Type {
	case sdl.EVENT_QUIT:
		return Quit{}
	case sdl.EVENT_WINDOW_CLOSE_REQUESTED:
		return WindowClose{}
	case sdl.EVENT_KEY_DOWN:
		code, label := decodeKeyEvent(event.KeyboardEvent())
		return KeyPress{Code: code, Label: label}
	case sdl.EVENT_KEY_UP:
		code, label := decodeKeyEvent(event.KeyboardEvent())
		return KeyRelease{Code: code, Label: label}
	default:
		return UnexpectedEvent{Type: uint32(event.Type)}
	}
}

func decodeKeyEvent(keyEvent *sdl.KeyboardEvent) (uint64, string) {
	return uint64(keyEvent.Scancode), keyEvent.Key.KeyName()
}

type sdlWindow struct {
	window *sdl.Window
}

func (w *sdlWindow) Destroy() {
	w.window.Destroy()
}
