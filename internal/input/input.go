package input

import (
	"errors"
	"time"
)

type Key int

const (
	KeyRune Key = iota
	KeyEsc
	KeyCtrlC
	KeySpace
	KeyEnter
)

type Event struct {
	Key  Key
	Rune rune // Set when Key is KeyRune
	Time time.Time
}

// Quit reports if the event should end the game.
func (e Event) Quit() bool {
	return e.Key == KeyEsc || e.Key == KeyCtrlC
}

// Start reports if the event is the start control.
func (e Event) Start() bool {
	return e.Key == KeySpace || e.Key == KeyEnter
}

var ErrClosed = errors.New("input closed")

// Source delivers key presses. The channel is closed when the source ends.
type Source interface {
	Events() <-chan Event
	Close() error
}
