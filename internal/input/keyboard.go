package input

import (
	"fmt"
	"sync"
	"time"

	"github.com/eiannone/keyboard"
)

// KeyboardSource reads the controlling terminal directly.
type KeyboardSource struct {
	events chan Event
	done   chan struct{}
	once   sync.Once
}

func OpenKeyboard(buffer int) (*KeyboardSource, error) {
	keyChannel, err := keyboard.GetKeys(buffer)
	if nil != err {
		return nil, fmt.Errorf("unable to open keyboard: %w", err)
	}
	s := &KeyboardSource{
		events: make(chan Event, buffer),
		done:   make(chan struct{}),
	}
	go func() {
		defer close(s.events)
		for {
			select {
			case <-s.done:
				return
			case key, ok := <-keyChannel:
				if !ok || nil != key.Err {
					return
				}
				select {
				case s.events <- translate(key, time.Now()):
				case <-s.done:
					return
				}
			}
		}
	}()
	return s, nil
}

func translate(key keyboard.KeyEvent, now time.Time) Event {
	ev := Event{Time: now, Rune: key.Rune}
	switch key.Key {
	case keyboard.KeyEsc:
		ev.Key = KeyEsc
	case keyboard.KeyCtrlC:
		ev.Key = KeyCtrlC
	case keyboard.KeySpace:
		ev.Key = KeySpace
	case keyboard.KeyEnter:
		ev.Key = KeyEnter
	default:
		if key.Rune == ' ' {
			ev.Key = KeySpace
		}
	}
	return ev
}

func (s *KeyboardSource) Events() <-chan Event {
	return s.events
}

func (s *KeyboardSource) Close() error {
	err := ErrClosed
	s.once.Do(func() {
		close(s.done)
		err = keyboard.Close()
	})
	return err
}
