package boot

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kjkrol/sdlskel/internal/platform"
	"go.uber.org/zap"
)

type Config struct {
	Window platform.WindowConfig
	// Strategy drains the event queue once per loop iteration. Defaults to DrainAll.
	Strategy DrainStrategy
	// IdleSleep is slept after every iteration. Zero keeps the loop a busy poll.
	IdleSleep time.Duration
	// OnEvent, if set, sees every polled event, the quit event included.
	OnEvent func(platform.Event)
	// OnState, if set, is called on every state transition.
	OnState func(State)
	// Diagnostics receives the failure lines. Defaults to os.Stderr.
	Diagnostics io.Writer
	Logger      *zap.Logger
}

type App struct {
	platform platform.Platform
	conf     Config
	logger   *zap.Logger
	state    State
}

func New(p platform.Platform, conf Config) *App {
	if conf.Strategy == nil {
		conf.Strategy = DrainAll()
	}
	if conf.Diagnostics == nil {
		conf.Diagnostics = os.Stderr
	}
	logger := conf.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		platform: p,
		conf:     conf,
		logger:   logger.Named("boot"),
		state:    Uninitialized,
	}
}

func (a *App) State() State {
	return a.state
}

// Run boots the platform, opens the window and polls events until a quit event
// arrives. It returns the process exit status.
func (a *App) Run() int {
	err := a.run()
	if err != nil {
		a.report(err)
	}
	a.setState(Terminated)
	return ExitCode(err)
}

func (a *App) run() error {
	sub, err := Acquire(a.platform)
	if err != nil {
		return err
	}
	defer sub.Release()
	a.setState(SubsystemReady)

	win, err := sub.OpenWindow(a.conf.Window)
	if err != nil {
		a.setState(ShuttingDown)
		sub.Release()
		return err
	}
	defer win.Close()
	a.setState(WindowReady)

	a.setState(Running)
	a.loop()

	a.setState(ShuttingDown)
	win.Close()
	sub.Release()
	return nil
}

func (a *App) loop() {
	quit := false
	handle := func(event platform.Event) {
		if a.conf.OnEvent != nil {
			a.conf.OnEvent(event)
		}
		if _, ok := event.(platform.Quit); ok {
			quit = true
		}
	}
	iterations := 0
	for !quit {
		a.conf.Strategy.Drain(a.platform.PollEvent, handle)
		iterations++
		if !quit && a.conf.IdleSleep > 0 {
			time.Sleep(a.conf.IdleSleep)
		}
	}
	a.logger.Debug("quit event received", zap.Int("iterations", iterations))
}

func (a *App) report(err error) {
	switch {
	case errors.Is(err, ErrSubsystemInit):
		fmt.Fprintf(a.conf.Diagnostics, "%s could not initialize! %s: %s\n", a.platform.Name(), a.platform.ErrorLabel(), a.platform.LastError())
	case errors.Is(err, ErrWindowCreate):
		fmt.Fprintf(a.conf.Diagnostics, "Window could not be created! %s: %s\n", a.platform.ErrorLabel(), a.platform.LastError())
	default:
		fmt.Fprintln(a.conf.Diagnostics, err)
	}
	a.logger.Debug("boot failed", zap.Error(err))
}

func (a *App) setState(s State) {
	a.logger.Debug("state", zap.Stringer("from", a.state), zap.Stringer("to", s))
	a.state = s
	if a.conf.OnState != nil {
		a.conf.OnState(s)
	}
}
