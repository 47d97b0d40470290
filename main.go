package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
	"github.com/strafe-rl/strafe/bot"
	"github.com/strafe-rl/strafe/game"
	"github.com/strafe-rl/strafe/physics"
	"github.com/strafe-rl/strafe/settings"
	"github.com/strafe-rl/strafe/state"
)

func main() {
	cfg, err := settings.Load("strafe.toml")
	if err != nil {
		log.Fatalf("error reading config: %v", err)
	}

	lg := logrus.New()
	lg.Formatter = &logrus.TextFormatter{ForceColors: true}
	lg.Level = logLevel(cfg.Logging.Level)

	if cfg.Sentry.Dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.Dsn}); err != nil {
			lg.WithError(err).Warn("sentry disabled")
		}
		defer sentry.Flush(time.Second * 5)
	}
	if cfg.Debug.Statsview {
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(cfg.Debug.StatsviewAddr))
		mgr := statsview.New()
		go mgr.Start()
	}

	sim := physics.NewSimulator(cfg.PhysicsOptions())
	bridge := bot.NewLoopbackBridge(sim, cfg.LoopbackOptions(), kickoffCars(), lg.WithField("host", "loopback"))
	driver := bot.NewDriver(bridge, sim, cfg.DriverOptions(), lg)
	driver.AddCar(1, cfg.SelectorOptions())

	fmt.Println("Strafe is driving the blue car in a loopback match!")

	go func() {
		if err := driver.Run(); err != nil {
			lg.WithError(err).Fatal("tick loop stopped")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	blue, orange := bridge.Score()
	lg.WithFields(logrus.Fields{"blue": blue, "orange": orange}).Info("match stopped")
}

// kickoffCars seeds the straight-back kickoff: our car on blue, a stationary
// dummy on orange.
func kickoffCars() []state.CarState {
	blue := state.CarState{
		ID:       1,
		Team:     state.TeamBlue,
		Hitbox:   game.CarHitbox(),
		Boost:    100 / 3.0,
		OnGround: true,
		HasDodge: true,
	}
	blue.Pos = mgl32.Vec3{0, -4608, game.CarRestHeight}
	blue.Rot = mgl32.Vec3{0, math.Pi / 2, 0}

	orange := blue
	orange.ID = 2
	orange.Team = state.TeamOrange
	orange.Pos = mgl32.Vec3{0, 4608, game.CarRestHeight}
	orange.Rot = mgl32.Vec3{0, -math.Pi / 2, 0}

	return []state.CarState{blue, orange}
}

func logLevel(name string) logrus.Level {
	lvl, err := logrus.ParseLevel(name)
	if err != nil {
		return logrus.DebugLevel
	}
	return lvl
}
