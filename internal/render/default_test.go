package render

import (
	"bytes"
	"context"
	"image/color"
	"strings"
	"testing"
	"time"
)

func newTestRenderer(cols, rows int) (*DefaultRenderer, *bytes.Buffer) {
	var out bytes.Buffer
	r := NewDefaultRenderer(&out)
	r.Resize(cols, rows)
	return r, &out
}

func TestFlushWritesOnlyChanges(t *testing.T) {
	r, out := newTestRenderer(10, 3)
	if err := r.Flush(); nil != err {
		t.Fatal(err)
	}
	out.Reset()

	r.Fill(1, 2, "hi")
	if err := r.Flush(); nil != err {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "\033[2;3H") || !strings.Contains(out.String(), "hi") {
		t.Errorf("flush = %q, want a move to 2;3 and the text", out.String())
	}

	out.Reset()
	r.Clear()
	r.Fill(1, 2, "hi")
	if err := r.Flush(); nil != err {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Errorf("unchanged frame wrote %q", out.String())
	}

	r.Clear()
	if err := r.Flush(); nil != err {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "  ") {
		t.Errorf("clearing did not blank the old text: %q", out.String())
	}
}

func TestFillColor(t *testing.T) {
	r, out := newTestRenderer(5, 1)
	r.FillColor(0, 0, color.RGBA{255, 107, 107, 255}, "x")
	r.Flush()
	if !strings.Contains(out.String(), "\033[38;2;255;107;107mx") {
		t.Errorf("flush = %q, want a truecolor x", out.String())
	}
}

func TestFillClips(t *testing.T) {
	r, _ := newTestRenderer(4, 2)
	r.Fill(-1, 0, "nope")
	r.Fill(2, 0, "nope")
	r.Fill(0, -2, "abcdef")
	r.Fill(1, 3, "xyz")
	if got := string([]rune{r.back[0].r, r.back[1].r, r.back[2].r, r.back[3].r}); got != "cdef" {
		t.Errorf("row 0 = %q, want cdef", got)
	}
	if got := r.back[7].r; got != 'x' {
		t.Errorf("row 1 col 3 = %q, want x", got)
	}
}

func TestResize(t *testing.T) {
	r, _ := newTestRenderer(4, 2)
	if r.Resize(4, 2) {
		t.Error("Resize() to the same size reported a change")
	}
	if !r.Resize(8, 3) {
		t.Error("Resize() to a new size reported no change")
	}
	if cols, rows := r.Size(); cols != 8 || rows != 3 {
		t.Errorf("Size() = %d, %d, want 8, 3", cols, rows)
	}
}

func TestDecorationsExpire(t *testing.T) {
	r, _ := newTestRenderer(4, 1)
	calls := []int{}
	r.AddDecoration(&Decoration{Frames: 3, Render: func(remaining int) {
		calls = append(calls, remaining)
	}})
	for i := 0; i < 5; i++ {
		r.tickDecorations()
	}
	if len(calls) != 3 || calls[0] != 3 || calls[2] != 1 {
		t.Errorf("decoration rendered with %v, want [3 2 1]", calls)
	}
	if len(r.decorations) != 0 {
		t.Errorf("%d decorations left, want 0", len(r.decorations))
	}
}

func TestRenderLoopStops(t *testing.T) {
	r, _ := newTestRenderer(4, 1)
	frames := 0
	err := r.RenderLoop(context.Background(), time.Millisecond, func(now time.Time) bool {
		frames++
		return frames < 3
	})
	if nil != err || frames != 3 {
		t.Errorf("RenderLoop() = %v after %d frames, want nil after 3", err, frames)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := r.RenderLoop(ctx, time.Millisecond, func(time.Time) bool { return true }); err != context.Canceled {
		t.Errorf("RenderLoop() on a cancelled context = %v", err)
	}
}
