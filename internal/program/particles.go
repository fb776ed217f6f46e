package program

import (
	"math"
	"math/rand"
	"time"

	"git.lost.host/meutraa/lanes/internal/game"
)

const particleCount = 20

type particle struct {
	x, y  float64 // x as a fraction of the width, y in field units
	speed float64
}

type particles struct {
	field game.Field
	rng   *rand.Rand
	list  []particle
}

func newParticles(field game.Field, rng *rand.Rand) *particles {
	p := &particles{field: field, rng: rng}
	for i := 0; i < particleCount; i++ {
		p.list = append(p.list, particle{
			x:     rng.Float64(),
			y:     rng.Float64() * field.Height,
			speed: rng.Float64()*2 + 0.5,
		})
	}
	return p
}

func (p *particles) update() {
	for i := range p.list {
		pt := &p.list[i]
		pt.y += pt.speed
		if pt.y > p.field.Height {
			pt.y = -10
			pt.x = p.rng.Float64()
		}
	}
}

// brightness twinkles each particle on its own phase.
func (p *particles) brightness(pt particle, now time.Time) float64 {
	ms := float64(now.UnixNano()) / float64(time.Millisecond)
	return math.Sin(ms*0.001+pt.x*p.field.Width*0.01)*0.5 + 0.5
}
