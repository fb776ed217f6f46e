package game

import (
	"time"
)

// Rand is the subset of *rand.Rand the spawner needs.
type Rand interface {
	Intn(n int) int
}

// Session is the whole mutable state of one play through. It is owned by a
// single frame loop, nothing in here is safe for concurrent use.
type Session struct {
	Field Field
	BPM   float64
	Notes []*Note // Active notes, in spawn order

	Score    uint64
	Combo    uint64
	MaxCombo uint64
	Counts   [RatingCount]uint64 // Indexed by Rating

	Started   bool
	LastSpawn time.Time

	held   [LaneCount]bool
	nextID uint64
	rng    Rand
}

// Tick is what happened to the notes during one Update.
type Tick struct {
	Spawned *Note
	Missed  []*Note
}

func NewSession(field Field, bpm float64, rng Rand) *Session {
	return &Session{
		Field: field,
		BPM:   bpm,
		rng:   rng,
	}
}

func (s *Session) SpawnInterval() time.Duration {
	return time.Duration(60000 / s.BPM * float64(time.Millisecond))
}

// Start begins spawning. The first note appears right away.
func (s *Session) Start(now time.Time) *Note {
	if s.Started {
		return nil
	}
	s.Started = true
	s.LastSpawn = now
	return s.spawn()
}

// Update advances the session by one frame: notes fall, notes that left the
// field are missed, and a new note is spawned when the interval elapsed.
func (s *Session) Update(now time.Time) Tick {
	var tick Tick
	if !s.Started {
		return tick
	}

	kept := s.Notes[:0]
	for _, note := range s.Notes {
		note.Y += s.Field.Speed
		if !s.Field.Visible(note.Y) {
			tick.Missed = append(tick.Missed, note)
			s.miss()
			continue
		}
		kept = append(kept, note)
	}
	// Drop references held by the tail of the reused backing array
	for i := len(kept); i < len(s.Notes); i++ {
		s.Notes[i] = nil
	}
	s.Notes = kept

	if now.Sub(s.LastSpawn) >= s.SpawnInterval() {
		tick.Spawned = s.spawn()
		s.LastSpawn = now
	}
	return tick
}

func (s *Session) spawn() *Note {
	s.nextID++
	note := &Note{
		ID:   s.nextID,
		Lane: s.rng.Intn(LaneCount),
		Y:    s.Field.SpawnY,
	}
	s.Notes = append(s.Notes, note)
	return note
}

// Add places a note directly into the active set.
func (s *Session) Add(lane int, y float64) *Note {
	s.nextID++
	note := &Note{ID: s.nextID, Lane: lane, Y: y}
	s.Notes = append(s.Notes, note)
	return note
}

// Remove takes a note out of the active set, reporting if it was there.
func (s *Session) Remove(n *Note) bool {
	for i, note := range s.Notes {
		if note != n {
			continue
		}
		copy(s.Notes[i:], s.Notes[i+1:])
		s.Notes[len(s.Notes)-1] = nil
		s.Notes = s.Notes[:len(s.Notes)-1]
		return true
	}
	return false
}

func (s *Session) miss() {
	s.Counts[Miss]++
	s.Combo = 0
}

// Miss records a miss that did not come from a note leaving the field.
func (s *Session) Miss() {
	s.miss()
}

// Award credits a hit with the given judgement. Combo bonus uses the combo
// before this hit.
func (s *Session) Award(j Judgement) uint64 {
	points := j.Points + s.Combo*2
	s.Score += points
	s.Combo++
	if s.Combo > s.MaxCombo {
		s.MaxCombo = s.Combo
	}
	s.Counts[j.Rating]++
	return points
}

func (s *Session) Held(lane int) bool {
	if lane < 0 || lane >= LaneCount {
		return false
	}
	return s.held[lane]
}

func (s *Session) SetHeld(lane int, held bool) {
	if lane < 0 || lane >= LaneCount {
		return
	}
	s.held[lane] = held
}
