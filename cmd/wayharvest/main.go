package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/wayharvest/wayharvest"
	"github.com/wayharvest/wayharvest/goquery"
	"github.com/wayharvest/wayharvest/harvest"
	wayhttp "github.com/wayharvest/wayharvest/http"
	"github.com/wayharvest/wayharvest/readability"
	wayslog "github.com/wayharvest/wayharvest/slog"
	"github.com/wayharvest/wayharvest/sqlite"
	"github.com/wayharvest/wayharvest/trafilatura"
)

func main() {
	// Ctrl-C must not kill a harvest outright: cancellation stops the fetch
	// phase, and cleaning plus the final save still run on what was collected.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

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
	RunService  wayharvest.RunService
	PageService wayharvest.PageService
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
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wayharvest"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'wayharvest --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.DB != "" {
		m.DBPath = cli.DB
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Pass --db or set WAYHARVEST_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.RunService = sqlite.NewRunService(m.DB)
	m.PageService = sqlite.NewPageService(m.DB)
	deps.DB = m.DB
	deps.Runs = m.RunService
	deps.Pages = m.PageService
	deps.Snapshots = wayhttp.NewCDXSource()

	// Wire the harvester only for the export command; it owns an HTTP client
	// that nothing else needs.
	if cmd == "export" {
		fetcher := wayhttp.NewFetcher(wayhttp.WithTimeout(cli.Export.Timeout))
		defer fetcher.Close()

		var (
			source    wayharvest.SnapshotSource = deps.Snapshots
			client    wayharvest.Fetcher        = fetcher
			extractor wayharvest.Extractor      = wayharvest.NewCascade(
				trafilatura.NewExtractor(),
				readability.NewExtractor(),
				goquery.NewExtractor(),
			)
		)

		if cli.Export.Verbose {
			logger := slog.New(slog.NewTextHandler(stderr, nil))
			source = wayslog.NewLoggingSnapshotSource(source, logger)
			client = wayslog.NewLoggingFetcher(client, logger)
			extractor = wayslog.NewLoggingExtractor(extractor, logger)
		}

		deps.Harvester = &harvest.Harvester{
			Snapshots: source,
			Fetcher:   client,
			Extractor: extractor,
			Limiter:   harvest.NewLimiter(cli.Export.Rate),
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("WAYHARVEST_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "wayharvest.db"
	}
	dir := filepath.Join(home, ".wayharvest")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "wayharvest.db")
}
