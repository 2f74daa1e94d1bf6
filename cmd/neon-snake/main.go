package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/lixenwraith/neon-snake/audio"
	"github.com/lixenwraith/neon-snake/config"
	"github.com/lixenwraith/neon-snake/constants"
	"github.com/lixenwraith/neon-snake/engine"
	"github.com/lixenwraith/neon-snake/input"
	"github.com/lixenwraith/neon-snake/render"
	"github.com/lixenwraith/neon-snake/systems"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	seedFlag   = flag.Uint64("seed", 0, "RNG seed; 0 uses the config, then the clock")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to logs/neon-snake.log")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
)

func main() {
	os.Exit(realMain())
}

// realMain returns the process exit code so deferred cleanup runs before exit
func realMain() int {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Error("stdout is not a terminal")
		fmt.Fprintln(os.Stderr, "neon-snake: stdout is not a terminal")
		return 1
	}

	if err := run(); err != nil {
		log.WithError(err).Error("Exiting with error")
		fmt.Fprintf(os.Stderr, "neon-snake: %v\n", err)
		return 1
	}
	return 0
}

func run() (err error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if *seedFlag != 0 {
		seed = *seedFlag
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	keys := input.DefaultKeyTable()
	if err := keys.ApplyBindings(cfg.Keys); err != nil {
		return errors.Wrap(err, "key bindings")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}

	// Panic recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			log.Errorf("Crashed: %v\n%s", r, debug.Stack())
			fmt.Fprintf(os.Stderr, "\n\x1b[31mNEON-SNAKE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			err = errors.Errorf("crashed: %v", r)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse()
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground))

	// Audio degrades to silence on any failure
	var player systems.SoundPlayer
	audioCfg := cfg.AudioConfig()
	if *muteFlag {
		audioCfg.Enabled = false
	}
	sound := audio.NewSoundManager(audioCfg)
	if err := sound.Initialize(); err != nil {
		log.WithError(err).Warn("Audio unavailable, continuing without sound")
	} else {
		player = sound
		defer sound.Cleanup()
	}

	w, h := screen.Size()
	ctx := engine.NewGameContext(input.ViewportForScreen(w, h), seed, engine.NewMonotonicTimeProvider())
	ctx.State.SetIntensity(cfg.Intensity)
	log.WithFields(log.Fields{"seed": seed, "cols": ctx.Viewport.Cols(), "rows": ctx.Viewport.Rows()}).Info("Game context ready")

	sim := systems.NewSimulation(ctx, player)
	renderer := render.NewTerminalRenderer(screen, ctx.Clock)
	handler := input.NewHandler(ctx, keys)

	loop := engine.NewGameLoop(ctx, sim, renderer)
	loop.MaxFrameDelta = cfg.MaxFrameDelta

	events := make(chan tcell.Event, constants.InputEventBuffer)
	go pollEvents(screen, events)

	if err := loop.Run(context.Background(), events, handler.HandleEvent); err != nil {
		return errors.Wrap(err, "game loop")
	}
	frames, steps := loop.Stats()
	log.WithFields(log.Fields{"frames": frames, "steps": steps, "score": ctx.State.Score()}).Info("Game ended")
	return nil
}

// pollEvents forwards terminal events until the screen is finalized
func pollEvents(screen tcell.Screen, events chan<- tcell.Event) {
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		ev := screen.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		events <- ev
	}
}
