package program

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"git.lost.host/meutraa/lanes/internal/audio"
	"git.lost.host/meutraa/lanes/internal/config"
	"git.lost.host/meutraa/lanes/internal/game"
	"git.lost.host/meutraa/lanes/internal/input"
	"git.lost.host/meutraa/lanes/internal/logging"
	"git.lost.host/meutraa/lanes/internal/render"
	"git.lost.host/meutraa/lanes/internal/score"
	"git.lost.host/meutraa/lanes/internal/theme"
	"github.com/charmbracelet/log"
)

const (
	ratingFrames = 50 // Rating text rises 2 units and fades 2% per frame
	pulseFrames  = 10
)

// SizeFunc reports the terminal size in columns and rows.
type SizeFunc func() (int, int, error)

type Options struct {
	Config   *config.Config
	Source   input.Source
	Renderer render.Renderer
	Size     SizeFunc
	Feedback audio.Feedback
	Logger   *log.Logger
}

type Program struct {
	Session *game.Session
	Scorer  score.Scorer
	Theme   theme.Theme

	cfg      *config.Config
	source   input.Source
	renderer render.Renderer
	size     SizeFunc
	feedback audio.Feedback
	logger   *log.Logger

	holds     *input.HoldTracker
	particles *particles
	layout    Layout
	pulses    [game.LaneCount]int

	quit, closed bool
}

func New(o Options) *Program {
	seed := o.Config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	field := o.Config.Field()

	feedback := o.Feedback
	if nil == feedback {
		feedback = audio.Silent{}
	}
	logger := o.Logger
	if nil == logger {
		logger = logging.Discard()
	}

	return &Program{
		Session: game.NewSession(field, o.Config.BPM, rng),
		Scorer:  &score.DefaultScorer{},
		Theme:   &theme.DefaultTheme{},

		cfg:       o.Config,
		source:    o.Source,
		renderer:  o.Renderer,
		size:      o.Size,
		feedback:  feedback,
		logger:    logger,
		holds:     input.NewHoldTracker(o.Config.Repeat, o.Config.Hold),
		particles: newParticles(field, rng),
	}
}

// Run plays until the player quits, the input ends or ctx is cancelled.
// An input that ended returns input.ErrClosed.
func (p *Program) Run(ctx context.Context) error {
	if err := p.renderer.Init(); nil != err {
		return fmt.Errorf("unable to init renderer: %w", err)
	}
	defer func() {
		if err := p.renderer.Deinit(); nil != err {
			p.logger.Warn("unable to restore terminal", "err", err)
		}
	}()

	p.logger.Info("session ready", "bpm", p.Session.BPM, "interval", p.Session.SpawnInterval())
	err := p.renderer.RenderLoop(ctx, p.cfg.FramePeriod(), p.Frame)
	p.logger.Info("session over",
		"score", p.Session.Score,
		"max_combo", p.Session.MaxCombo,
		"perfect", p.Session.Counts[game.Perfect],
		"great", p.Session.Counts[game.Great],
		"good", p.Session.Counts[game.Good],
		"miss", p.Session.Counts[game.Miss],
	)
	if nil != err {
		return err
	}
	if p.closed {
		return input.ErrClosed
	}
	return nil
}

// Frame runs one input, update and draw step, returning false to stop.
func (p *Program) Frame(now time.Time) bool {
	if err := p.Resize(); nil != err {
		p.logger.Error("unable to get terminal size", "err", err)
		return false
	}

	p.HandleInput(now)
	if p.quit || p.closed {
		return false
	}

	p.Update(now)
	p.Render(now)
	return true
}

func (p *Program) Resize() error {
	columns, rows, err := p.size()
	if nil != err {
		return err
	}
	if p.renderer.Resize(columns, rows) {
		p.logger.Debug("resized", "columns", columns, "rows", rows)
	}
	p.layout = NewLayout(p.Session.Field, columns, rows, p.cfg.Spacing)
	return nil
}

// HandleInput drains every key press queued since the last frame.
func (p *Program) HandleInput(now time.Time) {
	for _, lane := range p.holds.Released(now) {
		p.Scorer.Release(p.Session, lane)
	}
	for {
		select {
		case ev, ok := <-p.source.Events():
			if !ok {
				p.closed = true
				return
			}
			p.Handle(ev)
		default:
			return
		}
	}
}

func (p *Program) Handle(ev input.Event) {
	if ev.Quit() {
		p.quit = true
		return
	}
	if !p.Session.Started {
		if ev.Start() {
			p.Session.Start(ev.Time)
			p.logger.Debug("started")
		}
		return
	}
	if ev.Key != input.KeyRune {
		return
	}
	lane := p.cfg.KeyLane(ev.Rune)
	if lane < 0 {
		return
	}
	if p.holds.Press(lane, ev.Time) {
		// A fresh press after a gap, whatever the last frame concluded
		p.Scorer.Release(p.Session, lane)
	}

	result := p.Scorer.Press(p.Session, lane)
	if result.Ignored {
		return
	}
	p.pulses[lane] = pulseFrames
	p.feedback.Judged(result.Judgement.Rating)

	y := p.Session.Field.TargetY
	if result.Hit() {
		y = result.Note.Y
		p.logger.Debug("hit", "lane", lane, "note", result.Note.ID,
			"distance", result.Distance, "rating", result.Judgement.Rating, "points", result.Points)
	} else {
		p.logger.Debug("miss", "lane", lane)
	}
	p.addRating(lane, y, result.Judgement.Rating)
}

func (p *Program) Update(now time.Time) {
	tick := p.Session.Update(now)
	for _, note := range tick.Missed {
		p.feedback.Judged(game.Miss)
		p.logger.Debug("fell through", "lane", note.Lane, "note", note.ID)
	}
	for i := range p.pulses {
		if p.pulses[i] > 0 {
			p.pulses[i]--
		}
	}
	p.particles.update()
}

func (p *Program) addRating(lane int, y float64, rating game.Rating) {
	col := p.layout.LaneCols[lane]
	text := rating.String()
	c := p.Theme.RatingColor(rating)
	p.renderer.AddDecoration(&render.Decoration{
		Frames: ratingFrames,
		Render: func(remaining int) {
			risen := y - float64(ratingFrames-remaining)*2
			row := p.layout.Row(risen)
			if !p.layout.InField(row) {
				return
			}
			alpha := float64(remaining) / ratingFrames
			p.renderer.FillColor(row, col-len(text)/2, theme.Fade(c, theme.Background, alpha), text)
		},
	})
}
