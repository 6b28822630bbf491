package main

import (
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	khiin "github.com/wippyai/khiin-bridge"
	"github.com/wippyai/khiin-bridge/bridge"
	"github.com/wippyai/khiin-bridge/engine"
	"github.com/wippyai/khiin-bridge/handle"
	"github.com/wippyai/khiin-bridge/protocol"
	"github.com/wippyai/khiin-bridge/server"
	"github.com/wippyai/khiin-bridge/settings"
)

func main() {
	env, err := settings.ParseEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var (
		dbPath       = flag.String("db", env.DB, "Path to the engine data file (.db dictionary or .wasm engine)")
		keyScript    = flag.String("keys", "", "Keys to send, e.g. 'khiin{space}{enter}'")
		interactive  = flag.Bool("i", false, "Interactive mode with TUI")
		socket       = flag.String("serve", env.Socket, "Serve framed Commands on this unix socket")
		settingsPath = flag.String("settings", env.Settings, "Path to the settings YAML file")
		logLevel     = flag.String("log-level", env.LogLevel, "Log level (debug, info, warn, error)")
		strict       = flag.Bool("strict", false, "Answer malformed requests with ERROR_INVALID_REQUEST")
	)
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: khiin -db <file> -keys <script>")
		fmt.Fprintln(os.Stderr, "       khiin -db <file> -i  (interactive mode)")
		fmt.Fprintln(os.Stderr, "       khiin -db <file> -serve <socket>")
		os.Exit(1)
	}

	log, err := newLogger(*logLevel, *interactive)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	khiin.SetLogger(log)

	prefs, err := settings.Load(*settingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := []bridge.Option{bridge.WithLogger(log)}
	if *strict {
		opts = append(opts, bridge.WithStrictDecode())
	}
	b := bridge.New(engine.Open, opts...)
	defer b.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch {
	case *socket != "":
		err = serve(ctx, b, server.Config{
			Engine:      *dbPath,
			Settings:    prefs,
			IdleTimeout: env.IdleTimeout,
			MaxFrame:    env.MaxFrame,
		}, *socket)
	case *interactive:
		err = runTUI(ctx, b, *dbPath, prefs, *settingsPath)
	default:
		err = run(ctx, os.Stdout, b, *dbPath, prefs, *keyScript)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(level string, quiet bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	if quiet {
		// The TUI owns the terminal
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	if lvl == zapcore.DebugLevel {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

// load creates the engine and applies prefs. It returns the engine's
// effective config.
func load(ctx context.Context, b *bridge.Bridge, path string, prefs *settings.Settings) (handle.Handle, *protocol.AppConfig, error) {
	h, err := b.Create(ctx, path)
	if err != nil {
		return handle.Invalid, nil, err
	}
	resp, err := b.Send(h, &protocol.Request{Type: protocol.CmdSetConfig, Config: prefs.ToAppConfig()})
	if err != nil {
		_ = b.Shutdown(h)
		return handle.Invalid, nil, err
	}
	cfg := resp.Config
	if cfg == nil {
		cfg = prefs.ToAppConfig()
	}
	return h, cfg, nil
}

func run(ctx context.Context, w io.Writer, b *bridge.Bridge, path string, prefs *settings.Settings, script string) error {
	events, err := parseKeys(script)
	if err != nil {
		return err
	}

	h, _, err := load(ctx, b, path, prefs)
	if err != nil {
		return err
	}
	defer b.Shutdown(h)

	var committed strings.Builder
	last := &protocol.Response{}
	for _, ev := range events {
		req := protocol.EncodeRequest(&protocol.Request{Type: protocol.CmdSendKey, KeyEvent: ev})
		resp, err := protocol.DecodeResponse(b.Submit(h, req))
		if err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		if resp.Error != protocol.ErrNone {
			return fmt.Errorf("engine reported %v", resp.Error)
		}
		if resp.Committed {
			committed.WriteString(resp.Preedit.Text())
		}
		last = resp
	}

	printResponse(w, committed.String(), last)
	return nil
}

func printResponse(w io.Writer, committed string, resp *protocol.Response) {
	fmt.Fprintf(w, "Committed: %s\n", committed)
	fmt.Fprintf(w, "State: %v\n", resp.EditState)
	if !resp.Committed && resp.Preedit != nil {
		fmt.Fprintf(w, "Preedit: %s (caret %d)\n", resp.Preedit.Text(), resp.Preedit.Caret)
	}
	if cl := resp.CandidateList; cl != nil {
		fmt.Fprintf(w, "Candidates:\n")
		for i, c := range cl.Candidates {
			cursor := "  "
			if int32(i) == cl.Focused {
				cursor = "> "
			}
			fmt.Fprintf(w, "%s%d. %s", cursor, i+1, c.Value)
			if c.Annotation != "" {
				fmt.Fprintf(w, " (%s)", c.Annotation)
			}
			fmt.Fprintln(w)
		}
	}
}

func runTUI(ctx context.Context, b *bridge.Bridge, path string, prefs *settings.Settings, settingsPath string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("interactive mode needs a terminal")
	}

	h, cfg, err := load(ctx, b, path, prefs)
	if err != nil {
		return err
	}
	defer b.Shutdown(h)

	m := newInteractiveModel(b, h, path, cfg)
	if err := runInteractive(ctx, m); err != nil {
		return err
	}

	if settingsPath == "" {
		return nil
	}
	prefs.Apply(m.config)
	return prefs.Save(settingsPath)
}

func serve(ctx context.Context, b *bridge.Bridge, cfg server.Config, socket string) error {
	if err := os.Remove(socket); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove stale socket: %w", err)
	}
	ln, err := net.Listen("unix", socket)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	defer os.Remove(socket)

	return server.New(b, cfg).Serve(ctx, ln)
}
