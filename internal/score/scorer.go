package score

import (
	"git.lost.host/meutraa/lanes/internal/game"
)

type Scorer interface {
	// Judge maps a distance from the target line to a judgement
	Judge(distance float64) (game.Judgement, bool)

	// Closest finds the note in a lane nearest to the target line
	Closest(session *game.Session, lane int) (*game.Note, float64)

	// Press applies a key down in a lane to the session
	Press(session *game.Session, lane int) Result

	// Release marks a lane key as no longer held
	Release(session *game.Session, lane int)
}

type Result struct {
	Ignored   bool       // The key was already held
	Note      *game.Note // The note that was hit, nil on a miss
	Distance  float64
	Judgement game.Judgement
	Points    uint64
}

func (r Result) Hit() bool {
	return nil != r.Note
}
