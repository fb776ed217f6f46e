package config

import "unicode"

func (c *Config) LaneKeys() []rune {
	return []rune(c.Keys)
}

// KeyLane returns the lane bound to r, or -1. Matching ignores case so caps
// lock does not stop the game.
func (c *Config) KeyLane(r rune) int {
	r = unicode.ToLower(r)
	for i, k := range c.LaneKeys() {
		if r == unicode.ToLower(k) {
			return i
		}
	}
	return -1
}
