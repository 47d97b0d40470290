package settings

import (
	"os"
	"time"

	"github.com/restartfu/gophig"
	"github.com/strafe-rl/strafe/bot"
	"github.com/strafe-rl/strafe/physics"
	"github.com/strafe-rl/strafe/strategy"
)

// Settings is the on-disk TOML configuration. Zero values are replaced with
// defaults on load and the file is rewritten, so new fields show up in old
// config files automatically.
type Settings struct {
	Physics struct {
		Gravity           float64
		AirDrag           float64
		GroundRestitution float64
		WallRestitution   float64
		BounceFriction    float64
		MaxCarSpeed       float64
		MaxBallSpeed      float64
		LookaheadHorizon  float64
		TickRate          float64
	}
	Selector struct {
		SwitchMargin float64
	}
	Driver struct {
		BudgetMillis int
		HistorySize  int
	}
	Match struct {
		KickoffSeconds float64
		ReplaySeconds  float64
		MatchSeconds   float64
	}
	Logging struct {
		Level string
	}
	Debug struct {
		Statsview     bool
		StatsviewAddr string
	}
	Sentry struct {
		Dsn string
	}
}

// Default returns the settings a fresh install runs with.
func Default() Settings {
	var s Settings
	p := physics.DefaultOptions()
	s.Physics.Gravity = float64(p.Gravity)
	s.Physics.AirDrag = float64(p.AirDrag)
	s.Physics.GroundRestitution = float64(p.GroundRestitution)
	s.Physics.WallRestitution = float64(p.WallRestitution)
	s.Physics.BounceFriction = float64(p.BounceFriction)
	s.Physics.MaxCarSpeed = float64(p.MaxCarSpeed)
	s.Physics.MaxBallSpeed = float64(p.MaxBallSpeed)
	s.Physics.LookaheadHorizon = float64(p.LookaheadHorizon)
	s.Physics.TickRate = float64(1 / p.TickDelta)
	s.Selector.SwitchMargin = float64(strategy.DefaultOptions().SwitchMargin)
	d := bot.DefaultOptions()
	s.Driver.BudgetMillis = int(d.Budget / time.Millisecond)
	s.Driver.HistorySize = d.HistorySize
	l := bot.DefaultLoopbackOptions()
	s.Match.KickoffSeconds = float64(l.KickoffSeconds)
	s.Match.ReplaySeconds = float64(l.ReplaySeconds)
	s.Match.MatchSeconds = float64(l.MatchSeconds)
	s.Logging.Level = "debug"
	s.Debug.StatsviewAddr = "localhost:8080"
	return s
}

// Load reads the settings file, creating it with defaults when missing. Any
// field left zero in the file falls back to its default, and the file is
// rewritten so it always shows the full set of knobs.
func Load(path string) (Settings, error) {
	var s Settings
	conf := gophig.NewGophig[Settings](path, gophig.TOMLMarshaler{}, 0777)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := conf.SaveConf(Default()); err != nil {
			return s, err
		}
	}
	s, err := conf.LoadConf()
	if err != nil {
		return s, err
	}
	s.fillDefaults()
	if err := conf.SaveConf(s); err != nil {
		return s, err
	}
	return s, nil
}

func (s *Settings) fillDefaults() {
	def := Default()
	if s.Physics.Gravity == 0 {
		s.Physics.Gravity = def.Physics.Gravity
	}
	if s.Physics.AirDrag == 0 {
		s.Physics.AirDrag = def.Physics.AirDrag
	}
	if s.Physics.GroundRestitution == 0 {
		s.Physics.GroundRestitution = def.Physics.GroundRestitution
	}
	if s.Physics.WallRestitution == 0 {
		s.Physics.WallRestitution = def.Physics.WallRestitution
	}
	if s.Physics.BounceFriction == 0 {
		s.Physics.BounceFriction = def.Physics.BounceFriction
	}
	if s.Physics.MaxCarSpeed == 0 {
		s.Physics.MaxCarSpeed = def.Physics.MaxCarSpeed
	}
	if s.Physics.MaxBallSpeed == 0 {
		s.Physics.MaxBallSpeed = def.Physics.MaxBallSpeed
	}
	if s.Physics.LookaheadHorizon == 0 {
		s.Physics.LookaheadHorizon = def.Physics.LookaheadHorizon
	}
	if s.Physics.TickRate == 0 {
		s.Physics.TickRate = def.Physics.TickRate
	}
	if s.Selector.SwitchMargin == 0 {
		s.Selector.SwitchMargin = def.Selector.SwitchMargin
	}
	if s.Driver.BudgetMillis == 0 {
		s.Driver.BudgetMillis = def.Driver.BudgetMillis
	}
	if s.Driver.HistorySize == 0 {
		s.Driver.HistorySize = def.Driver.HistorySize
	}
	if s.Match.KickoffSeconds == 0 {
		s.Match.KickoffSeconds = def.Match.KickoffSeconds
	}
	if s.Match.ReplaySeconds == 0 {
		s.Match.ReplaySeconds = def.Match.ReplaySeconds
	}
	if s.Match.MatchSeconds == 0 {
		s.Match.MatchSeconds = def.Match.MatchSeconds
	}
	if s.Logging.Level == "" {
		s.Logging.Level = def.Logging.Level
	}
	if s.Debug.StatsviewAddr == "" {
		s.Debug.StatsviewAddr = def.Debug.StatsviewAddr
	}
}

// PhysicsOptions converts the physics section into simulator options.
func (s Settings) PhysicsOptions() physics.Options {
	opts := physics.DefaultOptions()
	opts.Gravity = float32(s.Physics.Gravity)
	opts.AirDrag = float32(s.Physics.AirDrag)
	opts.GroundRestitution = float32(s.Physics.GroundRestitution)
	opts.WallRestitution = float32(s.Physics.WallRestitution)
	opts.BounceFriction = float32(s.Physics.BounceFriction)
	opts.MaxCarSpeed = float32(s.Physics.MaxCarSpeed)
	opts.MaxBallSpeed = float32(s.Physics.MaxBallSpeed)
	opts.LookaheadHorizon = float32(s.Physics.LookaheadHorizon)
	opts.TickDelta = float32(1 / s.Physics.TickRate)
	return opts
}

// SelectorOptions converts the selector section into selector options.
func (s Settings) SelectorOptions() strategy.Options {
	return strategy.Options{SwitchMargin: float32(s.Selector.SwitchMargin)}
}

// DriverOptions converts the driver section into tick driver options.
func (s Settings) DriverOptions() bot.Options {
	return bot.Options{
		Budget:      time.Duration(s.Driver.BudgetMillis) * time.Millisecond,
		HistorySize: s.Driver.HistorySize,
	}
}

// LoopbackOptions converts the match section into loopback host options.
func (s Settings) LoopbackOptions() bot.LoopbackOptions {
	return bot.LoopbackOptions{
		TickDelta:      float32(1 / s.Physics.TickRate),
		KickoffSeconds: float32(s.Match.KickoffSeconds),
		ReplaySeconds:  float32(s.Match.ReplaySeconds),
		MatchSeconds:   float32(s.Match.MatchSeconds),
	}
}
