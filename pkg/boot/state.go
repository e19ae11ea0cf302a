package boot

type State int

const (
	Uninitialized State = iota
	SubsystemReady
	WindowReady
	Running
	ShuttingDown
	Terminated
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case SubsystemReady:
		return "subsystem-ready"
	case WindowReady:
		return "window-ready"
	case Running:
		return "running"
	case ShuttingDown:
		return "shutting-down"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}
