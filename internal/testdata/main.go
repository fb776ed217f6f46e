package testdata

import (
	"encoding/json"
	"math/rand"

	"git.lost.host/meutraa/lanes/internal/game"
)

// Notes on the field at the moment of a press, target line at 500
const data = `[
	{"Lane": 0, "Y": 492},
	{"Lane": 0, "Y": 120},
	{"Lane": 1, "Y": 478},
	{"Lane": 1, "Y": 530},
	{"Lane": 2, "Y": 460},
	{"Lane": 3, "Y": 300}
]`

func GetSession() (*game.Session, error) {
	var notes []game.Note
	if err := json.Unmarshal([]byte(data), &notes); nil != err {
		return nil, err
	}
	s := game.NewSession(game.DefaultField(), 120, rand.New(rand.NewSource(1)))
	s.Started = true
	for _, n := range notes {
		s.Add(n.Lane, n.Y)
	}
	return s, nil
}
