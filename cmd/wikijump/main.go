package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/wikijump/audio"
	"github.com/lixenwraith/wikijump/config"
	"github.com/lixenwraith/wikijump/content"
	"github.com/lixenwraith/wikijump/diag"
	"github.com/lixenwraith/wikijump/engine"
	"github.com/lixenwraith/wikijump/input"
	"github.com/lixenwraith/wikijump/layout"
	"github.com/lixenwraith/wikijump/parameter"
	"github.com/lixenwraith/wikijump/render"
)

// options are command-line overrides applied after the config file and environment
type options struct {
	configPath string
	start      string
	logPath    string
	logLevel   string
	mute       bool
	font       bool
	dir        string
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("wikijump", flag.ContinueOnError)
	fs.StringVar(&o.configPath, "config", "", "TOML config file")
	fs.StringVar(&o.start, "start", "", "start page: article title, file path or file: identifier")
	fs.StringVar(&o.logPath, "log", "", "append logs to this file")
	fs.StringVar(&o.logLevel, "log-level", "", "debug, info, warn or error")
	fs.BoolVar(&o.mute, "mute", false, "disable sound")
	fs.BoolVar(&o.font, "font", false, "measure words with Go font outlines instead of cells")
	fs.StringVar(&o.dir, "dir", "", "directory for relative file identifiers")
	err := fs.Parse(args)
	if err == nil && fs.NArg() > 0 && o.start == "" {
		o.start = fs.Arg(0)
	}
	return o, err
}

func (o options) apply(cfg *config.Config) {
	if o.start != "" {
		cfg.Session.Start = o.start
	}
	if o.logPath != "" {
		cfg.Log.File = o.logPath
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.mute {
		cfg.Audio.Enabled = false
	}
	if o.font {
		cfg.Render.Metrics = config.MetricsFont
	}
	if o.dir != "" {
		cfg.Content.Root = o.dir
	}
}

// startPage qualifies a start that names a local file
// With a content root and the default start, the first document found under the root opens
func startPage(cfg content.Config, start string) (string, error) {
	files := &content.FileResolver{Root: cfg.Root}
	if cfg.Root == "" || start != parameter.StartPage {
		return files.Qualify(start), nil
	}
	found, err := files.Discover()
	if err != nil {
		return "", err
	}
	if len(found) == 0 {
		return start, nil
	}
	return found[0], nil
}

// setupLogging installs a file logger when a path is configured
// Logging stays silent otherwise, stdout belongs to the terminal
func setupLogging(cfg config.LogConfig) (io.Closer, error) {
	if cfg.File == "" {
		return nil, nil
	}
	level, err := diag.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	log, closer, err := diag.OpenFile(cfg.File, level)
	if err != nil {
		return nil, err
	}
	diag.SetLogger(log)
	return closer, nil
}

func main() {
	var screen tcell.Screen

	// Restore the terminal before printing anything if the game crashes
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mWIKIJUMP CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	opts.apply(&cfg)
	if cfg.Session.Start, err = startPage(cfg.Content, cfg.Session.Start); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	logCloser, err := setupLogging(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	if logCloser != nil {
		defer logCloser.Close()
	}
	log := diag.Logger()

	keymap, err := cfg.Keymap()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	screen, err = tcell.NewScreen()
	if err == nil {
		err = screen.Init()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.HideCursor()

	measurer, measurerCloser := config.Measurer(cfg.Render.Metrics)
	defer measurerCloser.Close()

	session := engine.NewSession(
		cfg.Engine(),
		content.NewRouter(cfg.Content),
		layout.NewEngine(cfg.Layout, measurer),
	)
	renderer := render.NewRenderer(cfg.Render.CellWidth, cfg.Render.CellHeight)
	tracker := input.NewTracker(cfg.Input.HoldInitial, cfg.Input.HoldRepeat)

	// The game runs without sound when the device cannot be opened
	sound := audio.NewSoundManager(cfg.Audio)
	if err := sound.Initialize(); err != nil {
		log.Warn("audio unavailable, continuing without sound", "error", err)
	}
	defer sound.Cleanup()

	log.Info("session starting", "start", cfg.Session.Start, "metrics", cfg.Render.Metrics)

	eventChan := make(chan tcell.Event, 256)
	go func() {
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
				return
			}
			eventChan <- ev
		}
	}()

	ctx := context.Background()
	draw := func() {
		_, h := screen.Size()
		renderer.Draw(screen, session.Snapshot(renderer.ViewRadius(h)))
		screen.Show()
	}

	ticker := time.NewTicker(cfg.Session.TickInterval)
	defer ticker.Stop()

	var pending []input.Event
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				pending = append(pending, tracker.Key(keymap, ev)...)
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			pending = append(pending, tracker.Expire(now)...)

			// Fetches block the tick, so show the loading frame first
			if st := session.State(); st == engine.StateLoading || st == engine.StateTransitioning {
				draw()
			}
			session.Tick(ctx, pending)
			pending = pending[:0]

			sound.PlayCues(session.Cues())
			if session.Terminated() {
				log.Info("session ended", "hops", session.Hops())
				return
			}
			draw()
		}
	}
}
