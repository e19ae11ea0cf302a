package platform

type Event interface{}

type Quit struct{}
type WindowClose struct{}
type KeyPress struct {
	Code  uint64
	Label string
}
type KeyRelease struct {
	Code  uint64
	Label string
}
type UnexpectedEvent struct {
	Type uint32
}
