//go:build glfw

package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

type glfwPlatform struct {
	logger  *zap.Logger
	queue   []Event
	pumped  bool
	lastErr string
}

// New returns the GLFW backend. Closing the only window is reported as Quit.
func New(logger *zap.Logger) Platform {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &glfwPlatform{logger: logger.Named("glfw")}
}

func (p *glfwPlatform) Name() string { return "GLFW" }

func (p *glfwPlatform) Init() error {
	if err := glfw.Init(); err != nil {
		p.lastErr = err.Error()
		return err
	}
	p.logger.Debug("subsystem initialized")
	return nil
}

func (p *glfwPlatform) CreateWindow(conf WindowConfig) (Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfw.False)
	if conf.OpenGL {
		glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
	} else {
		glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	}
	window, err := glfw.CreateWindow(conf.Width, conf.Height, conf.Title, nil, nil)
	if err != nil {
		p.lastErr = err.Error()
		return nil, err
	}
	if window == nil {
		p.lastErr = "glfwCreateWindow returned no window"
		return nil, errNoWindow
	}
	window.SetCloseCallback(func(*glfw.Window) {
		p.queue = append(p.queue, Quit{})
	})
	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, _ glfw.ModifierKey) {
		if scancode < 0 {
			return
		}
		code, label := uint64(scancode), glfw.GetKeyName(key, scancode)
		switch action {
		case glfw.Press:
			p.queue = append(p.queue, KeyPress{Code: code, Label: label})
		case glfw.Release:
			p.queue = append(p.queue, KeyRelease{Code: code, Label: label})
		}
	})
	p.logger.Debug("window created",
		zap.String("title", conf.Title),
		zap.Int("width", conf.Width),
		zap.Int("height", conf.Height))
	return &glfwWindow{window: window}, nil
}

// PollEvent pumps GLFW once per drain; callbacks fill the queue, which is then handed
// out one event at a time.
func (p *glfwPlatform) PollEvent() (Event, bool) {
	if len(p.queue) == 0 && !p.pumped {
		glfw.PollEvents()
		p.pumped = true
	}
	if len(p.queue) == 0 {
		p.pumped = false
		return nil, false
	}
	event := p.queue[0]
	p.queue[0] = nil
	p.queue = p.queue[1:]
	return event, true
}

func (p *glfwPlatform) Shutdown() {
	glfw.Terminate()
	p.queue = nil
	p.logger.Debug("subsystem shut down")
}

func (p *glfwPlatform) LastError() string { return p.lastErr }

func (p *glfwPlatform) ErrorLabel() string { return "GLFW_Error" }

type glfwWindow struct {
	window *glfw.Window
}

func (w *glfwWindow) Destroy() {
	w.window.Destroy()
}
