package main

import (
	"context"
	"io"
	"time"

	"github.com/wayharvest/wayharvest"
	"github.com/wayharvest/wayharvest/harvest"
	"github.com/wayharvest/wayharvest/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Runs      wayharvest.RunService
	Pages     wayharvest.PageService
	Snapshots wayharvest.SnapshotSource
	Harvester *harvest.Harvester
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB string `help:"Database path (defaults to $WAYHARVEST_DB, then ~/.wayharvest/wayharvest.db)"`

	Export    ExportCmd    `cmd:"" help:"Harvest a site's archived pages into clean text"`
	Snapshots SnapshotsCmd `cmd:"" help:"List archived captures without harvesting"`
	Runs      RunsCmd      `cmd:"" help:"List recorded harvest runs"`
	Pages     PagesCmd     `cmd:"" help:"Show stored pages for a run"`
	Delete    DeleteCmd    `cmd:"" help:"Delete a run and its pages"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Site          string        `arg:"" help:"Domain or domain/path to harvest (e.g. example.com)"`
	From          string        `help:"Earliest capture date (DD/MM/YYYY)"`
	To            string        `help:"Latest capture date (DD/MM/YYYY)"`
	Limit         int           `short:"n" help:"Max snapshots to harvest"`
	Format        []string      `short:"f" default:"csv,json,xlsx" enum:"csv,json,xlsx" help:"Output formats (repeatable)"`
	Dir           string        `short:"d" default:"." help:"Output directory"`
	Out           string        `short:"o" default:"wayback_export" help:"Output file prefix"`
	Concurrency   int           `short:"c" default:"4" help:"Concurrent fetch limit"`
	Rate          float64       `default:"1" help:"Max requests per second against the archive"`
	Timeout       time.Duration `default:"15s" help:"Per-fetch timeout"`
	ChunkSize     int           `default:"500" help:"Pages per intermediate chunk save"`
	MinPages      int           `default:"3" help:"Pages a repeated line needs to count as boilerplate"`
	Ratio         float64       `default:"0.15" help:"Share of pages that marks a repeated line as boilerplate"`
	MinLineLength int           `default:"20" help:"Drop kept lines shorter than this many characters"`
	MinWords      int           `default:"3" help:"Drop kept lines with fewer words than this"`
	Floor         int           `default:"100" help:"Fall back to junk-only filtering when a cleaned page shrinks below this many characters"`
	Verbose       bool          `short:"v" help:"Log fetches and extraction to stderr"`
}

// SnapshotsCmd is the "snapshots" subcommand.
type SnapshotsCmd struct {
	Site  string `arg:"" help:"Domain or domain/path to query"`
	From  string `help:"Earliest capture date (DD/MM/YYYY)"`
	To    string `help:"Latest capture date (DD/MM/YYYY)"`
	Limit int    `short:"n" help:"Max snapshots to list"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct {
	Site string `help:"Only show runs for this site"`
}

// PagesCmd is the "pages" subcommand.
type PagesCmd struct {
	RunID string `arg:"" name:"run-id" help:"Run ID"`
	Full  bool   `help:"Print each page's full clean text"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	RunID string `arg:"" name:"run-id" help:"Run ID"`
	Force bool   `help:"Confirm deletion"`
}
