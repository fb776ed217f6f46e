package program

import (
	"fmt"
	"strings"
	"time"

	"git.lost.host/meutraa/lanes/internal/game"
	"git.lost.host/meutraa/lanes/internal/theme"
)

func (p *Program) Render(now time.Time) {
	p.renderParticles(now)
	p.renderStatic()
	if !p.Session.Started {
		p.renderTitle()
		return
	}
	p.renderNotes()
	p.renderHUD()
}

func (p *Program) renderParticles(now time.Time) {
	sym := p.Theme.RenderParticle()
	for _, pt := range p.particles.list {
		row := p.layout.Row(pt.y)
		if !p.layout.InField(row) {
			continue
		}
		col := int(pt.x * float64(p.layout.Columns))
		b := p.particles.brightness(pt, now)
		p.renderer.FillColor(row, col, theme.Fade(theme.Dim, theme.Background, b), sym)
	}
}

// renderStatic draws the lane targets and the hit bar.
func (p *Program) renderStatic() {
	keys := p.cfg.LaneKeys()
	for i := 0; i < game.LaneCount; i++ {
		col := p.layout.LaneCols[i]
		c := p.Theme.LaneColor(i)
		bar := p.Theme.RenderHitField(i)
		p.renderer.FillColor(p.layout.HitRow, col-len([]rune(bar))/2, theme.Fade(c, theme.Background, 0.3), bar)

		target := p.Theme.RenderTarget(i, keys[i], p.pulses[i] > 0)
		p.renderer.FillColor(p.layout.HitRow+1, col-len([]rune(target))/2, c, target)
	}
}

func (p *Program) renderNotes() {
	for _, note := range p.Session.Notes {
		row := p.layout.Row(note.Y)
		if !p.layout.InField(row) {
			continue
		}
		sym := p.Theme.RenderNote(note.Lane)
		col := p.layout.LaneCols[note.Lane] - len([]rune(sym))/2
		p.renderer.FillColor(row, col, p.Theme.LaneColor(note.Lane), sym)
	}
}

func (p *Program) renderHUD() {
	s := p.Session
	p.renderer.Fill(0, 1, fmt.Sprintf("Score: %8d    Combo: %4d    Max: %4d", s.Score, s.Combo, s.MaxCombo))

	side := p.layout.SideCol
	for i, j := range game.Judgements {
		p.renderer.FillColor(p.layout.FieldTop+2+i, side,
			p.Theme.RatingColor(j.Rating), fmt.Sprintf("%9s %6d", j.Rating, s.Counts[j.Rating]))
	}
	p.renderer.Fill(p.layout.FieldTop+3+len(game.Judgements), side, fmt.Sprintf("%9s %6.0f", "BPM", s.BPM))

	keys := strings.ToUpper(string(p.cfg.LaneKeys()))
	p.renderer.FillColor(p.layout.Rows-1, 1, theme.Dim, fmt.Sprintf("keys %s    esc quits", strings.Join(strings.Split(keys, ""), " ")))
}

func (p *Program) renderTitle() {
	mid := p.layout.Rows / 3
	lines := []string{
		"L A N E S",
		"",
		"press SPACE to start",
		"esc quits",
	}
	for i, line := range lines {
		p.renderer.Fill(mid+i, p.layout.Middle-len(line)/2, line)
	}
}
