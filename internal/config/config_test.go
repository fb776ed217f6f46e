package config

import (
	"testing"
	"time"
)

func TestParseDefaults(t *testing.T) {
	c, err := Parse([]string{})
	if nil != err {
		t.Fatalf("Parse() error = %v", err)
	}
	if c.Command != CommandPlay {
		t.Errorf("Command = %q, want %q", c.Command, CommandPlay)
	}
	if c.BPM != 120 || c.Speed != 2 || c.Keys != "asdf" || c.FPS != 60 {
		t.Errorf("defaults = %+v", c)
	}
	if c.Hold != 80*time.Millisecond {
		t.Errorf("Hold = %v, want 80ms", c.Hold)
	}
	if c.Repeat != 600*time.Millisecond {
		t.Errorf("Repeat = %v, want 600ms", c.Repeat)
	}
	if c.LogFile != "lanes.log" {
		t.Errorf("LogFile = %q, want lanes.log", c.LogFile)
	}
}

func TestParseServe(t *testing.T) {
	c, err := Parse([]string{"--bpm", "90", "serve", "--port", "2300"})
	if nil != err {
		t.Fatalf("Parse() error = %v", err)
	}
	if c.Command != CommandServe || c.Port != "2300" || c.BPM != 90 {
		t.Errorf("got %+v", c)
	}
}

func TestParseRejects(t *testing.T) {
	tests := [][]string{
		{"--bpm", "0"},
		{"--bpm", "-10"},
		{"--speed", "0"},
		{"--fps", "0"},
		{"--keys", "asd"},
		{"--keys", "asda"},
		{"--keys", "as f"},
		{"--keys", "aAdf"},
		{"--nope"},
	}
	for _, args := range tests {
		if _, err := Parse(args); nil == err {
			t.Errorf("Parse(%q) accepted invalid flags", args)
		}
	}
}

func TestKeyLane(t *testing.T) {
	c := &Config{Keys: "asdf"}
	tests := map[rune]int{
		'a': 0,
		's': 1,
		'd': 2,
		'f': 3,
		'F': 3,
		'g': -1,
		' ': -1,
	}
	for r, expected := range tests {
		if got := c.KeyLane(r); got != expected {
			t.Errorf("KeyLane(%q) = %d, want %d", r, got, expected)
		}
	}
}

func TestFramePeriod(t *testing.T) {
	c := &Config{FPS: 50}
	if got := c.FramePeriod(); got != 20*time.Millisecond {
		t.Errorf("FramePeriod() = %v, want 20ms", got)
	}
}
