package server

import (
	"testing"

	"github.com/charmbracelet/ssh"
)

func TestWindowFollowsChanges(t *testing.T) {
	w := &window{size: ssh.Window{Width: 80, Height: 24}}
	if cols, rows, err := w.Size(); cols != 80 || rows != 24 || nil != err {
		t.Errorf("Size() = %d, %d, %v, want 80, 24, nil", cols, rows, err)
	}

	changes := make(chan ssh.Window, 3)
	changes <- ssh.Window{Width: 100, Height: 40}
	changes <- ssh.Window{Width: 120, Height: 50}
	close(changes)
	w.follow(changes)

	if cols, rows, _ := w.Size(); cols != 120 || rows != 50 {
		t.Errorf("Size() = %d, %d after resizes, want 120, 50", cols, rows)
	}
}
