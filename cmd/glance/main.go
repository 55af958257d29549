package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/glance/internal/config"
	"github.com/xonecas/glance/internal/document"
	"github.com/xonecas/glance/internal/highlight"
	"github.com/xonecas/glance/internal/screen"
	"github.com/xonecas/glance/internal/tui"
	"github.com/xonecas/glance/internal/viewport"
)

type flags struct {
	config  string
	wrap    bool
	backend string
	lang    string
	dump    bool
	clickX  int
	clickY  int
}

func main() {
	var f flags
	flag.StringVar(&f.config, "config", "", "config file (default ~/.config/glance/config.toml)")
	flag.BoolVar(&f.wrap, "wrap", false, "start in wrap mode")
	flag.StringVar(&f.backend, "backend", "tea", "terminal backend: tea or tcell")
	flag.StringVar(&f.lang, "lang", "", "syntax language, overrides detection")
	flag.BoolVar(&f.dump, "dump", false, "render one frame on the configured pixel canvas and exit")
	flag.IntVar(&f.clickX, "click-x", -1, "with -dump, hit-test this pixel column")
	flag.IntVar(&f.clickY, "click-y", -1, "with -dump, hit-test this pixel row")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: glance [flags] [file]\n\nReads stdin when no file is given.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(f, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "glance: %v\n", err)
		os.Exit(1)
	}
}

func run(f flags, args []string) error {
	cfg, err := config.Load(f.config)
	if err != nil {
		return err
	}
	if f.wrap {
		cfg.Viewport.Wrap = true
		cfg.Viewport.ScrollX = 0
	}
	if f.lang != "" {
		cfg.UI.Language = f.lang
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	doc, name, err := loadDocument(args)
	if err != nil {
		return err
	}
	lang := cfg.UI.Language
	if lang == "" {
		lang = highlight.DetectLanguage(name)
	}
	if lang == "none" {
		lang = ""
	}
	log.Info().Str("file", name).Int("lines", doc.Len()).Str("language", lang).Msg("loaded")

	mode := viewport.NoWrap
	if cfg.Viewport.Wrap {
		mode = viewport.Wrap
	}

	switch {
	case f.dump:
		return dump(os.Stdout, doc, cfg, mode, f.clickX, f.clickY)
	case f.backend == "tcell":
		return runTcell(doc, name, lang, cfg, mode)
	case f.backend == "tea":
		return runTea(doc, name, lang, cfg, mode)
	default:
		return fmt.Errorf("unknown backend %q", f.backend)
	}
}

// setupLogging points the global logger at the log file; the terminal
// belongs to the UI.
func setupLogging(cfg *config.Config) (func(), error) {
	zerolog.SetGlobalLevel(cfg.Log.ZerologLevel())
	path, err := cfg.LogPath()
	if err != nil {
		return nil, fmt.Errorf("log path: %w", err)
	}
	lf, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	log.Logger = zerolog.New(lf).With().Timestamp().Logger()
	return func() { _ = lf.Close() }, nil
}

func loadDocument(args []string) (*document.Document, string, error) {
	switch len(args) {
	case 0:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		return document.Load(string(data)), "stdin", nil
	case 1:
		doc, err := document.LoadFile(args[0])
		if err != nil {
			return nil, "", err
		}
		return doc, filepath.Base(args[0]), nil
	default:
		return nil, "", errors.New("expected at most one file")
	}
}

func runTea(doc *document.Document, name, lang string, cfg *config.Config, mode viewport.Mode) error {
	m := tui.New(doc, tui.Options{
		Name:     name,
		Mode:     mode,
		ScrollY:  cfg.Viewport.ScrollY,
		ScrollX:  cfg.Viewport.ScrollX,
		Sentinel: cfg.Viewport.SentinelRune(),
		Language: lang,
		Theme:    cfg.UI.SyntaxThemeOrDefault(),
	})
	opts := []tea.ProgramOption{tea.WithFilter(tui.MouseEventFilter)}
	if name == "stdin" {
		// The document came through stdin, so keys and mouse come from the tty.
		tty, err := os.Open("/dev/tty")
		if err != nil {
			return fmt.Errorf("open tty: %w", err)
		}
		defer tty.Close()
		opts = append(opts, tea.WithInput(tty))
	}
	p := tea.NewProgram(m, opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func runTcell(doc *document.Document, name, lang string, cfg *config.Config, mode viewport.Mode) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("tcell init: %w", err)
	}
	defer s.Fini()

	// Placeholder geometry; the host sizes it to the screen.
	geom, err := viewport.ComputeGeometry(1, 1, 1, 1)
	if err != nil {
		return err
	}
	vp, err := viewport.New(doc, geom, mode)
	if err != nil {
		return err
	}

	theme := cfg.UI.SyntaxThemeOrDefault()
	var colors highlight.Colors
	if lang != "" {
		colors = highlight.Colorize(doc, lang, theme)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err = screen.Run(ctx, s, vp, screen.Options{
		Name:     name,
		Mode:     mode,
		ScrollY:  cfg.Viewport.ScrollY,
		ScrollX:  cfg.Viewport.ScrollX,
		Sentinel: cfg.Viewport.SentinelRune(),
		Colors:   colors,
		Palette:  highlight.ThemePalette(theme),
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
