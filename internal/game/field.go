package game

// Field is the logical playfield. Positions are expressed in these units and
// scaled to the terminal by the renderer.
type Field struct {
	Width, Height float64
	TargetY       float64 // The line notes should be hit on
	SpawnY        float64 // Where new notes appear, above the visible area
	Speed         float64 // Units a note falls per frame
}

const LaneCount = 4

func DefaultField() Field {
	return Field{
		Width:   800,
		Height:  600,
		TargetY: 500,
		SpawnY:  -20,
		Speed:   2,
	}
}

// LaneX is the horizontal center of a lane target.
func (f Field) LaneX(lane int) float64 {
	return f.Width / (LaneCount + 1) * float64(lane+1)
}

// Visible reports if a note at y is still above the bottom edge.
func (f Field) Visible(y float64) bool {
	return y <= f.Height
}
