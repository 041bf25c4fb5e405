package main

import (
	"context"
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/wayharvest/wayharvest"
	"github.com/wayharvest/wayharvest/clean"
	"github.com/wayharvest/wayharvest/excelize"
	"github.com/wayharvest/wayharvest/fs"
	"github.com/wayharvest/wayharvest/harvest"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	from, err := parseDateFlag(c.From)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: invalid --from date %q: expected DD/MM/YYYY. Example: --from 15/02/2004\n", c.From)
		return err
	}
	to, err := parseDateFlag(c.To)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: invalid --to date %q: expected DD/MM/YYYY. Example: --to 31/12/2010\n", c.To)
		return err
	}

	query := wayharvest.SnapshotQuery{
		Site:  wayharvest.NormalizeSite(c.Site),
		From:  from,
		To:    to,
		Limit: c.Limit,
	}

	// Record the run up front so an interrupted harvest still shows up in
	// 'wayharvest runs'.
	var run *wayharvest.Run
	if deps.Runs != nil {
		run = &wayharvest.Run{Site: query.Site, From: from, To: to}
		if err := deps.Runs.CreateRun(deps.Ctx, run); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", wayharvest.ErrorMessage(err))
			return err
		}
	}

	h := deps.Harvester
	if h.Writers == nil {
		writers, err := buildWriters(c.Format, c.Dir)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", wayharvest.ErrorMessage(err))
			return err
		}
		h.Writers = writers
	}
	h.OutputPrefix = c.Out
	h.ChunkSize = c.ChunkSize
	if c.Concurrency > 0 {
		h.Concurrency = c.Concurrency
	}
	h.Clean = clean.Options{
		MinPages:      c.MinPages,
		Ratio:         c.Ratio,
		MinLineLength: c.MinLineLength,
		MinWords:      c.MinWords,
		Floor:         c.Floor,
	}

	// The index query can take a while on large sites; spin until the first
	// progress event arrives.
	spin := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(deps.Stderr))
	spin.Suffix = " querying web.archive.org"
	spin.Start()
	defer spin.Stop()

	progress := func(event harvest.ProgressEvent) {
		switch event.Type {
		case harvest.ProgressStarted:
			spin.Stop()
			fmt.Fprintf(deps.Stdout, "Found %d snapshots\n", event.Total)
		case harvest.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "\r  [%d/%d] %-60s", event.Completed, event.Total, harvest.TruncateURL(event.URL, 60))
		case harvest.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", harvest.TruncateURL(event.URL, 60), event.Error)
		case harvest.ProgressChunkSaved:
			if event.Error != nil {
				fmt.Fprintf(deps.Stderr, "  chunk %d not saved: %v\n", event.Chunk, event.Error)
			}
		case harvest.ProgressCleaning:
			fmt.Fprintf(deps.Stdout, "\nRemoving boilerplate from %d pages\n", event.Total)
		case harvest.ProgressFinished:
			// Summary printed after the run completes
		}
	}

	result, err := h.Run(deps.Ctx, query, progress)
	spin.Stop()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wayharvest.ErrorMessage(err))
		return err
	}

	if result.Snapshots == 0 {
		fmt.Fprintln(deps.Stdout, "No snapshots found.")
	} else {
		fmt.Fprintf(deps.Stdout, "Saved %d pages (%s, %d boilerplate lines removed)\n",
			result.Collected, harvest.FormatBytes(result.Bytes), result.BoilerplateLines)
		if result.Failed > 0 {
			fmt.Fprintf(deps.Stdout, "  %d snapshots failed\n", result.Failed)
		}
		if result.Interrupted {
			fmt.Fprintln(deps.Stdout, "Interrupted: partial results were cleaned and saved.")
		}
	}

	// The output files are already on disk; bookkeeping failures must not
	// fail the command, and a canceled ctx must not skip it.
	if run != nil {
		saveCtx := context.WithoutCancel(deps.Ctx)
		now := time.Now().UTC()
		upd := wayharvest.RunUpdate{
			FinishedAt:  &now,
			Collected:   &result.Collected,
			Failed:      &result.Failed,
			Interrupted: &result.Interrupted,
		}
		if _, err := deps.Runs.UpdateRun(saveCtx, run.ID, upd); err != nil {
			fmt.Fprintf(deps.Stderr, "warning: run not recorded: %s\n", wayharvest.ErrorMessage(err))
		}
		if deps.Pages != nil && len(result.Pages) > 0 {
			if err := deps.Pages.CreatePages(saveCtx, run.ID, result.Pages); err != nil {
				fmt.Fprintf(deps.Stderr, "warning: pages not recorded: %s\n", wayharvest.ErrorMessage(err))
			}
		}
	}

	return nil
}

// parseDateFlag parses the DD/MM/YYYY form used by --from and --to. An empty
// value means the bound was not given.
func parseDateFlag(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("02/01/2006", value)
	if err != nil {
		return time.Time{}, wayharvest.Errorf(wayharvest.EINVALID, "invalid date %q, expected DD/MM/YYYY", value)
	}
	return t, nil
}

// buildWriters maps format flags to record writers. Multiple formats fan out
// through a MultiWriter so every chunk and the final batch land in all of
// them.
func buildWriters(formats []string, dir string) (wayharvest.RecordWriter, error) {
	var writers wayharvest.MultiWriter
	seen := make(map[string]bool)
	for _, format := range formats {
		if seen[format] {
			continue
		}
		seen[format] = true
		switch format {
		case "csv":
			writers = append(writers, fs.NewCSVWriter(dir))
		case "json":
			writers = append(writers, fs.NewJSONWriter(dir))
		case "xlsx":
			writers = append(writers, excelize.NewWriter(dir))
		default:
			return nil, wayharvest.Errorf(wayharvest.EINVALID, "unknown format %q", format)
		}
	}
	if len(writers) == 1 {
		return writers[0], nil
	}
	return writers, nil
}
