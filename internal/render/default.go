package render

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"
	"time"
)

var White = color.RGBA{255, 255, 255, 255}

type cell struct {
	r rune
	c color.RGBA
}

var blank = cell{r: ' ', c: White}

// DefaultRenderer draws into a cell buffer and writes only the cells that
// changed since the previous frame.
type DefaultRenderer struct {
	out         io.Writer
	buffer      strings.Builder
	rows, cols  int
	back, front []cell
	decorations []*Decoration
}

func NewDefaultRenderer(out io.Writer) *DefaultRenderer {
	return &DefaultRenderer{out: out}
}

func (r *DefaultRenderer) Init() error {
	_, err := fmt.Fprintf(r.out, "%s%s%s",
		"\033[?1049h", // Enable alternate buffer
		"\033[?25l",   // Make the cursor invisible
		"\033[2J",     // Clear the screen
	)
	return err
}

func (r *DefaultRenderer) Deinit() error {
	_, err := fmt.Fprintf(r.out, "%s%s%s",
		"\033[0m",     // Reset colors
		"\033[?1049l", // Disable alternate buffer
		"\033[?25h",   // Make the cursor visible
	)
	return err
}

// Resize reallocates the buffers when the terminal size changed, forcing the
// next flush to redraw everything.
func (r *DefaultRenderer) Resize(columns, rows int) bool {
	if columns == r.cols && rows == r.rows {
		return false
	}
	if columns < 0 {
		columns = 0
	}
	if rows < 0 {
		rows = 0
	}
	r.cols, r.rows = columns, rows
	r.back = make([]cell, columns*rows)
	r.front = make([]cell, columns*rows)
	r.Clear()
	r.buffer.WriteString("\033[0m\033[2J")
	return true
}

func (r *DefaultRenderer) Size() (int, int) {
	return r.cols, r.rows
}

func (r *DefaultRenderer) Clear() {
	for i := range r.back {
		r.back[i] = blank
	}
}

func (r *DefaultRenderer) AddDecoration(d *Decoration) {
	r.decorations = append(r.decorations, d)
}

func (r *DefaultRenderer) tickDecorations() {
	nd := r.decorations[:0]
	for _, d := range r.decorations {
		if d.Frames <= 0 {
			continue
		}
		d.Render(d.Frames)
		d.Frames--
		nd = append(nd, d)
	}
	for i := len(nd); i < len(r.decorations); i++ {
		r.decorations[i] = nil
	}
	r.decorations = nd
}

func (r *DefaultRenderer) RenderLoop(ctx context.Context, period time.Duration, render func(now time.Time) bool) error {
	timer := time.NewTimer(0)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}

		now := time.Now()
		deadline := now.Add(period)

		r.Clear()
		if !render(now) {
			return nil
		}
		r.tickDecorations()
		if err := r.Flush(); nil != err {
			return err
		}

		timer.Reset(time.Until(deadline))
	}
}

func (r *DefaultRenderer) Fill(row, column int, message string) {
	r.FillColor(row, column, White, message)
}

// FillColor writes message starting at a zero based row and column, clipping
// whatever falls outside the screen.
func (r *DefaultRenderer) FillColor(row, column int, c color.RGBA, message string) {
	if row < 0 || row >= r.rows {
		return
	}
	col := column
	for _, ch := range message {
		if col >= r.cols {
			return
		}
		if col >= 0 {
			r.back[row*r.cols+col] = cell{r: ch, c: c}
		}
		col++
	}
}

func (r *DefaultRenderer) moveTo(row, column int) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.Itoa(row + 1))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(column + 1))
	r.buffer.WriteString("H")
}

func (r *DefaultRenderer) setColor(c color.RGBA) {
	r.buffer.WriteString("\033[38;2;")
	r.buffer.WriteString(strconv.Itoa(int(c.R)))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(int(c.G)))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(int(c.B)))
	r.buffer.WriteString("m")
}

func (r *DefaultRenderer) Flush() error {
	cursor := -1
	var current *color.RGBA
	for i, c := range r.back {
		if c == r.front[i] {
			continue
		}
		if i != cursor {
			r.moveTo(i/r.cols, i%r.cols)
		}
		if nil == current || *current != c.c {
			cc := c.c
			current = &cc
			r.setColor(cc)
		}
		r.buffer.WriteRune(c.r)
		r.front[i] = c
		cursor = i + 1
		// The terminal wraps to the next row on its own, except past the last column
		if cursor%r.cols == 0 {
			cursor = -1
		}
	}
	if r.buffer.Len() == 0 {
		return nil
	}
	_, err := io.WriteString(r.out, r.buffer.String())
	r.buffer.Reset()
	return err
}
