package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/iw2rmb/amanita"
	"github.com/iw2rmb/amanita/buffer"
	"github.com/iw2rmb/amanita/editor"
	"github.com/iw2rmb/amanita/internal/config"
	"github.com/iw2rmb/amanita/internal/sysclip"
	"github.com/iw2rmb/amanita/internal/tui"
	"github.com/iw2rmb/amanita/storage"
)

var errNotTerminal = errors.New("stdin and stdout must be a terminal")

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "amanita:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("amanita", flag.ContinueOnError)
	configPath := fs.String("config", "", "config file (default $XDG_CONFIG_HOME/amanita/config.toml)")
	showVersion := fs.Bool("version", false, "print the version and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *showVersion {
		fmt.Println(amanita.UserAgent())
		return nil
	}

	path := *configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	log, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := storage.FileStore{}
	bufs, err := loadBuffers(ctx, store, fs.Args(), cfg.TabWidth)
	if err != nil {
		return err
	}

	edCfg := editor.Config{
		HistoryLimit: cfg.HistoryLimit,
		TabWidth:     cfg.TabWidth,
		Store:        store,
		Logger:       log,
	}
	if cfg.SystemClipboard {
		clip, err := sysclip.New()
		if err != nil {
			log.WithError(err).Warn("system clipboard disabled")
		} else {
			edCfg.Clipboard = clip
		}
	}
	ed, err := editor.New(edCfg, bufs...)
	if err != nil {
		return err
	}

	m := tui.New(tui.Config{
		Editor:      ed,
		KeyMap:      tui.DefaultKeyMap(),
		Style:       tui.DefaultStyle(),
		ShowStatus:  cfg.ShowStatus,
		LineNumbers: cfg.LineNumbers,
		Context:     ctx,
		Logger:      log,
	})
	log.WithField("buffers", len(bufs)).Info("starting")
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// loadBuffers opens one buffer per path, or a single unnamed buffer when
// no path is given. Each stored tab is expanded to one indentation step.
func loadBuffers(ctx context.Context, store storage.Store, paths []string, tabWidth int) ([]*buffer.Buffer, error) {
	if len(paths) == 0 {
		return []*buffer.Buffer{buffer.New("", buffer.Options{})}, nil
	}
	bufs := make([]*buffer.Buffer, 0, len(paths))
	for _, p := range paths {
		text, err := store.Load(ctx, p)
		if err != nil {
			return nil, err
		}
		bufs = append(bufs, buffer.New(storage.ExpandTabs(text, tabWidth), buffer.Options{Path: p}))
	}
	return bufs, nil
}

// newLogger returns the file logger named by the config. The terminal
// belongs to the editor, so without a log file everything is discarded.
func newLogger(cfg config.Config) (logrus.FieldLogger, func(), error) {
	l := logrus.New()
	l.SetLevel(cfg.Level())
	if cfg.LogFile == "" {
		l.SetOutput(io.Discard)
		return l, func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	l.SetOutput(f)
	l.SetFormatter(&logrus.JSONFormatter{})
	return l.WithField("version", amanita.Version()), func() { _ = f.Close() }, nil
}
