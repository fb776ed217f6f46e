package input

import (
	"io"
	"sync"
	"time"
	"unicode/utf8"
)

// StreamSource decodes key presses from a raw terminal byte stream, such as
// an SSH channel.
type StreamSource struct {
	events chan Event
	done   chan struct{}
	once   sync.Once
	now    func() time.Time
}

func NewStream(r io.Reader, buffer int) *StreamSource {
	s := &StreamSource{
		events: make(chan Event, buffer),
		done:   make(chan struct{}),
		now:    time.Now,
	}
	go s.read(r)
	return s
}

func (s *StreamSource) read(r io.Reader) {
	defer close(s.events)
	buf := make([]byte, 256)
	for {
		n, err := r.Read(buf)
		for _, ev := range Decode(buf[:n], s.now()) {
			select {
			case s.events <- ev:
			case <-s.done:
				return
			}
		}
		if nil != err {
			return
		}
	}
}

// Decode turns one read of terminal input into events. Escape sequences
// (arrows, function keys) are dropped, a lone ESC is a quit.
func Decode(chunk []byte, now time.Time) []Event {
	events := []Event{}
	for i := 0; i < len(chunk); {
		b := chunk[i]
		switch {
		case b == 0x1b && i+1 < len(chunk) && (chunk[i+1] == '[' || chunk[i+1] == 'O'):
			i += 2
			for i < len(chunk) && (chunk[i] < 0x40 || chunk[i] > 0x7e) {
				i++
			}
			i++
			continue
		case b == 0x1b:
			events = append(events, Event{Key: KeyEsc, Time: now})
		case b == 0x03:
			events = append(events, Event{Key: KeyCtrlC, Time: now})
		case b == '\r' || b == '\n':
			events = append(events, Event{Key: KeyEnter, Time: now})
		case b == ' ':
			events = append(events, Event{Key: KeySpace, Rune: ' ', Time: now})
		case b < 0x20 || b == 0x7f:
			// other control bytes are not bound to anything
		default:
			r, size := utf8.DecodeRune(chunk[i:])
			events = append(events, Event{Key: KeyRune, Rune: r, Time: now})
			i += size
			continue
		}
		i++
	}
	return events
}

func (s *StreamSource) Events() <-chan Event {
	return s.events
}

func (s *StreamSource) Close() error {
	err := ErrClosed
	s.once.Do(func() {
		close(s.done)
		err = nil
	})
	return err
}
