package render

import (
	"context"
	"image/color"
	"time"
)

type Renderer interface {
	Init() error
	Deinit() error
	Resize(columns, rows int) bool
	Size() (columns, rows int)
	Clear()
	AddDecoration(d *Decoration)
	RenderLoop(ctx context.Context, period time.Duration, render func(now time.Time) bool) error
	Fill(row, column int, message string)
	FillColor(row, column int, color color.RGBA, message string)
	Flush() error
}

// Decoration is drawn for a number of frames after it was added.
type Decoration struct {
	Frames int
	Render func(remaining int)
}
