package game

type Note struct {
	ID   uint64  // Spawn order within the session
	Lane int     // The lane this note falls in
	Y    float64 // Vertical position in field units, grows downward
}

// Distance from the note to the target line, always positive
func (n *Note) Distance(targetY float64) float64 {
	d := n.Y - targetY
	if d < 0 {
		return -d
	}
	return d
}
