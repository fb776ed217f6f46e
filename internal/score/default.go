package score

import (
	"math"

	"git.lost.host/meutraa/lanes/internal/game"
)

type DefaultScorer struct{}

func (s *DefaultScorer) Judge(distance float64) (game.Judgement, bool) {
	for i := 0; i < len(game.Judgements)-1; i++ {
		judgement := game.Judgements[i]
		if distance < judgement.Distance {
			return judgement, true
		}
	}
	return game.Judgements[len(game.Judgements)-1], false
}

func (s *DefaultScorer) Closest(session *game.Session, lane int) (*game.Note, float64) {
	var closestNote *game.Note
	distance := math.Inf(1)

	for _, note := range session.Notes {
		if note.Lane != lane {
			continue
		}
		d := note.Distance(session.Field.TargetY)
		if d < distance {
			distance = d
			closestNote = note
		}
	}
	return closestNote, distance
}

func (s *DefaultScorer) Press(session *game.Session, lane int) Result {
	if lane < 0 || lane >= game.LaneCount {
		return Result{Ignored: true}
	}
	if session.Held(lane) {
		return Result{Ignored: true}
	}
	session.SetHeld(lane, true)

	note, distance := s.Closest(session, lane)
	judgement, ok := s.Judge(distance)
	if nil == note || !ok {
		// Pressing with nothing in reach breaks the combo but leaves notes alone
		session.Miss()
		return Result{Distance: distance, Judgement: judgement}
	}

	session.Remove(note)
	return Result{
		Note:      note,
		Distance:  distance,
		Judgement: judgement,
		Points:    session.Award(judgement),
	}
}

func (s *DefaultScorer) Release(session *game.Session, lane int) {
	session.SetHeld(lane, false)
}
