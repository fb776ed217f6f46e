package config

import (
	"errors"
	"fmt"
	"time"
	"unicode"

	"git.lost.host/meutraa/lanes/internal/game"
	"gopkg.in/alecthomas/kingpin.v2"
)

const (
	CommandPlay  = "play"
	CommandServe = "serve"
)

type Config struct {
	Command string

	BPM      float64
	Speed    float64
	Keys     string
	FPS      float64
	Spacing  uint
	Hold     time.Duration
	Repeat   time.Duration // Keyboard delay before the first auto repeat
	Seed     int64
	Mute     bool
	LogFile  string
	LogLevel string

	// Only used by serve
	Host    string
	Port    string
	HostKey string
}

func newApp(c *Config) *kingpin.Application {
	app := kingpin.New("lanes", "Four lane falling note rhythm game for the terminal")
	app.Version("0.3.0")

	app.Flag("bpm", "Tempo, one note spawns per beat").Default("120").Short('b').Float64Var(&c.BPM)
	app.Flag("speed", "Field units a note falls per frame").Default("2").Short('s').Float64Var(&c.Speed)
	app.Flag("keys", "Lane keys, left to right").Default("asdf").Short('k').StringVar(&c.Keys)
	app.Flag("fps", "Frames per second").Default("60").Short('R').Float64Var(&c.FPS)
	app.Flag("spacing", "Columns between lanes").Default("6").Short('S').UintVar(&c.Spacing)
	app.Flag("hold", "Gap between auto repeats after which a held key counts as released").Default("80ms").DurationVar(&c.Hold)
	app.Flag("repeat-delay", "Keyboard delay before the first auto repeat, a second press of a key inside it is taken as a hold").Default("600ms").DurationVar(&c.Repeat)
	app.Flag("seed", "Lane RNG seed, 0 seeds from the clock").Default("0").Int64Var(&c.Seed)
	app.Flag("mute", "Disable hit sounds").Short('m').BoolVar(&c.Mute)
	app.Flag("log-level", "debug, info, warn or error").Default("info").StringVar(&c.LogLevel)

	play := app.Command(CommandPlay, "Play in this terminal").Default()
	play.Flag("log-file", "Write logs here, the terminal is busy").Default("lanes.log").StringVar(&c.LogFile)

	serve := app.Command(CommandServe, "Host games over SSH")
	serve.Flag("host", "Listen host").Default("::").Envar("LANES_HOST").StringVar(&c.Host)
	serve.Flag("port", "Listen port").Default("2222").Envar("LANES_PORT").StringVar(&c.Port)
	serve.Flag("host-key", "SSH host key path, created when missing").Default(".ssh/lanes_host_key").Envar("LANES_HOST_KEY").StringVar(&c.HostKey)

	return app
}

// Parse reads the command line, without the program name.
func Parse(args []string) (*Config, error) {
	c := &Config{}
	command, err := newApp(c).Parse(args)
	if nil != err {
		return nil, err
	}
	c.Command = command
	if err := c.Validate(); nil != err {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.BPM <= 0 {
		return fmt.Errorf("bpm must be positive, got %v", c.BPM)
	}
	if c.Speed <= 0 {
		return fmt.Errorf("speed must be positive, got %v", c.Speed)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %v", c.FPS)
	}
	keys := []rune(c.Keys)
	if len(keys) != game.LaneCount {
		return fmt.Errorf("need %d lane keys, got %q", game.LaneCount, c.Keys)
	}
	seen := map[rune]bool{}
	for _, k := range keys {
		// KeyLane ignores case, so must this check
		k = unicode.ToLower(k)
		if seen[k] {
			return fmt.Errorf("lane key %q bound twice", k)
		}
		if k == ' ' {
			return errors.New("space starts the game and cannot be a lane key")
		}
		seen[k] = true
	}
	return nil
}

func (c *Config) FramePeriod() time.Duration {
	return time.Duration(float64(time.Second) / c.FPS)
}

func (c *Config) Field() game.Field {
	f := game.DefaultField()
	f.Speed = c.Speed
	return f
}
