package theme

import (
	"image/color"
	"strings"
	"unicode"

	"git.lost.host/meutraa/lanes/internal/game"
)

type DefaultTheme struct {
}

func (t *DefaultTheme) LaneColor(lane int) color.RGBA {
	if lane < 0 || lane >= len(laneColors) {
		return Background
	}
	return laneColors[lane]
}

func (t *DefaultTheme) RatingColor(rating game.Rating) color.RGBA {
	col, ok := ratingColors[rating]
	if !ok {
		return ratingColors[game.Miss]
	}
	return col
}

func (t *DefaultTheme) RenderNote(lane int) string {
	return noteSym
}

func (t *DefaultTheme) RenderTarget(lane int, key rune, pressed bool) string {
	k := string(unicode.ToUpper(key))
	if pressed {
		return "▐" + k + "▌"
	}
	return "[" + k + "]"
}

func (t *DefaultTheme) RenderHitField(lane int) string {
	return strings.Repeat(barSym, 5)
}

func (t *DefaultTheme) RenderParticle() string {
	return particleSym
}

const (
	noteSym     = "▄▄▄"
	barSym      = "─"
	particleSym = "·"
)

var (
	Background = color.RGBA{26, 26, 46, 255}
	Dim        = color.RGBA{90, 90, 120, 255}

	laneColors = [game.LaneCount]color.RGBA{
		{255, 107, 107, 255}, // red
		{78, 205, 196, 255},  // teal
		{69, 183, 209, 255},  // blue
		{249, 202, 36, 255},  // yellow
	}
	ratingColors = map[game.Rating]color.RGBA{
		game.Perfect: {255, 255, 255, 255},
		game.Great:   {130, 236, 130, 255},
		game.Good:    {120, 170, 255, 255},
		game.Miss:    {236, 30, 0, 255},
	}
)

// Fade mixes c toward bg, alpha 1 keeps c and 0 gives bg.
func Fade(c, bg color.RGBA, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	mix := func(a, b uint8) uint8 {
		return uint8(float64(b) + (float64(a)-float64(b))*alpha + 0.5)
	}
	return color.RGBA{mix(c.R, bg.R), mix(c.G, bg.G), mix(c.B, bg.B), 255}
}
