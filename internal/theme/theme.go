package theme

import (
	"image/color"

	"git.lost.host/meutraa/lanes/internal/game"
)

type Theme interface {
	LaneColor(lane int) color.RGBA
	RatingColor(rating game.Rating) color.RGBA
	RenderNote(lane int) string
	RenderTarget(lane int, key rune, pressed bool) string
	RenderHitField(lane int) string
	RenderParticle() string
}
