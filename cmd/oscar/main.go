package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/oscar"
	"github.com/fwojciec/oscar/banner"
	"github.com/fwojciec/oscar/goquery"
	"github.com/fwojciec/oscar/harvest"
	oscarhttp "github.com/fwojciec/oscar/http"
	oscarslog "github.com/fwojciec/oscar/slog"
	"github.com/fwojciec/oscar/sqlite"
	"golang.org/x/time/rate"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	SnapshotService oscar.SnapshotService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("oscar"),
		kong.Description("Harvest and query Banner course catalogs."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'oscar --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd = kongCtx.Command()

	deps.Logger = newLogger(stderr, cli.Verbose)
	deps.Parser = oscarslog.NewLoggingParser(newParser(cli, deps.Logger), deps.Logger)

	client := oscarhttp.NewClient(oscarhttp.WithBaseURL(cli.BaseURL))
	deps.Terms = oscarslog.NewLoggingTermService(
		oscarhttp.NewTermService(client, goquery.NewTermParser()),
		deps.Logger,
	)

	// Parsing a local file needs no storage.
	if isCommand(cmd, "parse") {
		return kongCtx.Run(deps)
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set OSCAR_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.SnapshotService = sqlite.NewSnapshotService(m.DB)
	deps.DB = m.DB
	deps.Snapshots = m.SnapshotService

	if isCommand(cmd, "fetch") {
		deps.Harvester = &harvest.Harvester{
			Retriever:   oscarslog.NewLoggingRetriever(oscarhttp.NewRetriever(client), deps.Logger),
			Parser:      deps.Parser,
			Snapshots:   m.SnapshotService,
			RateLimiter: newLimiter(cli.Fetch.RPS),
			Concurrency: cli.Fetch.Concurrency,
			Logger: func(format string, args ...any) {
				deps.Logger.Warn(fmt.Sprintf(format, args...))
			},
		}
	}

	return kongCtx.Run(deps)
}

// isCommand reports whether the kong command path starts with name.
func isCommand(path, name string) bool {
	return strings.HasPrefix(path+" ", name+" ")
}

// newLogger returns a text logger on w. Service logs are emitted at info
// level, so they only appear with --verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newLimiter paces requests at rps per second. A non-positive rps disables pacing.
func newLimiter(rps float64) *rate.Limiter {
	if rps <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Limit(rps), 1)
}

// newParser builds the course block parser for the selected command.
func newParser(cli *CLI, logger *slog.Logger) oscar.Parser {
	if !cli.Parse.SkipMalformed && !cli.Fetch.SkipMalformed {
		return banner.NewParser()
	}
	return banner.NewParser(banner.WithSkipMalformed(func(index int, err error) {
		logger.Warn("skipped course block", "index", index, "err", err)
	}))
}

func defaultDBPath() string {
	if path := os.Getenv("OSCAR_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "oscar.db"
	}
	dir := filepath.Join(home, ".oscar")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "oscar.db")
}
