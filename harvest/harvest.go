// Package harvest orchestrates a harvest run: snapshot discovery, parallel
// fetching and extraction, corpus-wide boilerplate cleaning, and record
// output. Boilerplate is a property of the whole batch, so the pipeline has
// three strict phases with a barrier between extraction and cleaning.
package harvest

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/wayharvest/wayharvest"
	"github.com/wayharvest/wayharvest/clean"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of parallel snapshot fetches.
const DefaultConcurrency = 4

// DefaultChunkSize is the number of collected pages between intermediate
// chunk saves.
const DefaultChunkSize = 500

// DefaultOutputPrefix names the output files when the caller does not.
const DefaultOutputPrefix = "wayback_export"

// Harvester coordinates one harvest run.
type Harvester struct {
	Snapshots wayharvest.SnapshotSource
	Fetcher   wayharvest.Fetcher
	Extractor wayharvest.Extractor

	// Writers receives chunk and final record batches. Optional.
	Writers wayharvest.RecordWriter

	// Limiter throttles archive requests. Optional.
	Limiter wayharvest.Limiter

	// Clean configures the boilerplate engine; zero values take the
	// package defaults.
	Clean clean.Options

	// OutputPrefix names output batches: {prefix}_chunk_{i} for
	// intermediate saves, {prefix}_all for the final save.
	OutputPrefix string

	Concurrency int
	ChunkSize   int

	// RetryDelays overrides the fetch backoff; nil means DefaultRetryDelays.
	RetryDelays []time.Duration
}

// Result holds the outcome of a harvest run.
type Result struct {
	// Snapshots is the number of captures the archive index returned.
	Snapshots int

	// Collected is the number of pages that yielded text.
	Collected int

	// Failed counts snapshots that could not be fetched or yielded nothing.
	Failed int

	// Bytes is the total clean text size.
	Bytes int

	// BoilerplateLines is the size of the boilerplate set, loose
	// expansions included.
	BoilerplateLines int

	// Interrupted reports that the run was cut short. The pages collected
	// before the stop were still cleaned and saved.
	Interrupted bool

	// Pages are the cleaned pages in batch order.
	Pages []*wayharvest.Page
}

// ProgressEvent reports progress during a harvest run. For ProgressChunkSaved
// events Completed carries the record count of the chunk and Error any write
// failure; chunk failures do not stop the run since every record reaches the
// final save.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Chunk     int
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressChunkSaved
	ProgressCleaning
	ProgressFinished
)

// ProgressFunc is a callback for reporting harvest progress.
type ProgressFunc func(event ProgressEvent)

// pageResult holds the outcome of processing a single snapshot.
type pageResult struct {
	position int
	snapshot wayharvest.Snapshot
	title    string
	text     string
	err      error
}

// Run executes a full harvest: list the snapshots, fetch and extract every
// page in parallel, build the corpus boilerplate set, clean every page, and
// write the final records. If ctx is canceled mid-run, the pages collected
// so far become the corpus: cleaning and the final save still complete, so
// an aborted run yields output for whatever it managed to fetch.
func (h *Harvester) Run(ctx context.Context, query wayharvest.SnapshotQuery, progress ProgressFunc) (*Result, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	snapshots, err := h.Snapshots.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("snapshot discovery: %w", err)
	}

	result := &Result{Snapshots: len(snapshots)}
	if len(snapshots) == 0 {
		return result, nil
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: len(snapshots),
		})
	}

	pages := h.collectPages(ctx, snapshots, result, progress)

	// Whatever was collected is the corpus, interrupted or not; the
	// remaining phases must outlive the canceled context.
	result.Interrupted = ctx.Err() != nil
	ctx = context.WithoutCancel(ctx)

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressCleaning,
			Total: len(pages),
		})
	}

	boilerplate := h.buildBoilerplate(pages)
	result.BoilerplateLines = boilerplate.Len()

	h.cleanPages(pages, boilerplate)

	result.Collected = len(pages)
	result.Pages = pages
	for _, page := range pages {
		result.Bytes += len(page.CleanText)
	}

	if h.Writers != nil && len(pages) > 0 {
		records := make([]wayharvest.Record, len(pages))
		for i, page := range pages {
			records[i] = page.Record()
		}
		name := h.outputPrefix() + "_all"
		if err := h.Writers.WriteRecords(ctx, name, records); err != nil {
			return result, fmt.Errorf("final save: %w", err)
		}
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: result.Collected,
			Total:     result.Snapshots,
		})
	}

	return result, nil
}

// collectPages runs phase one: the fetch-and-extract worker pool. Results
// stream back in completion order for progress reporting and chunk saves,
// then compact into batch order. Pages that yield no text are dropped
// silently; transient fetch noise is expected here.
func (h *Harvester) collectPages(ctx context.Context, snapshots []wayharvest.Snapshot, result *Result, progress ProgressFunc) []*wayharvest.Page {
	concurrency := h.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan pageResult, len(snapshots))

	var completed atomic.Int64
	total := len(snapshots)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, snap := range snapshots {
			// Stop dispatching once the run is canceled; undispatched
			// snapshots are neither collected nor failed.
			if gctx.Err() != nil {
				break
			}
			i, snap := i, snap
			g.Go(func() error {
				resultCh <- h.processSnapshot(gctx, i, snap)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	chunks := h.newChunker(ctx)

	results := make([]*pageResult, len(snapshots))
	for res := range resultCh {
		completed.Add(1)
		res := res
		results[res.position] = &res

		if res.err != nil || res.text == "" {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: int(completed.Load()),
					Total:     total,
					URL:       res.snapshot.ArchiveURL(),
					Error:     res.err,
				})
			}
			continue
		}

		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Load()),
				Total:     total,
				URL:       res.snapshot.ArchiveURL(),
			})
		}

		chunks.add(res, progress)
	}
	chunks.flush(progress)

	pages := make([]*wayharvest.Page, 0, total)
	for _, res := range results {
		if res == nil || res.err != nil || res.text == "" {
			continue
		}
		pages = append(pages, &wayharvest.Page{
			Seq:         len(pages),
			Timestamp:   res.snapshot.Timestamp,
			OriginalURL: res.snapshot.OriginalURL,
			ArchiveURL:  res.snapshot.ArchiveURL(),
			Title:       res.title,
			RawText:     res.text,
		})
	}
	return pages
}

// processSnapshot fetches and extracts a single capture.
func (h *Harvester) processSnapshot(ctx context.Context, position int, snap wayharvest.Snapshot) pageResult {
	result := pageResult{
		position: position,
		snapshot: snap,
	}

	if h.Limiter != nil {
		if err := h.Limiter.Wait(ctx); err != nil {
			result.err = err
			return result
		}
	}

	delays := h.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	fetchFn := func(ctx context.Context, url string) (string, error) {
		return h.Fetcher.Fetch(ctx, url)
	}
	html, err := FetchWithRetryDelays(ctx, snap.ArchiveURL(), fetchFn, delays)
	if err != nil {
		result.err = err
		return result
	}

	extracted, err := h.Extractor.Extract(html)
	if err != nil {
		result.err = err
		return result
	}

	result.title = extracted.Title
	result.text = extracted.Text
	return result
}

// buildBoilerplate is the phase-two barrier: every collected page is indexed
// before any page is cleaned.
func (h *Harvester) buildBoilerplate(pages []*wayharvest.Page) *clean.Boilerplate {
	ix := clean.NewIndex()
	for _, page := range pages {
		ix.AddPage(page.RawText)
	}
	return ix.Boilerplate(h.Clean)
}

// cleanPages runs phase three: each page's clean text is derived in parallel
// from its own raw text and the shared, now read-only boilerplate set.
func (h *Harvester) cleanPages(pages []*wayharvest.Page, boilerplate *clean.Boilerplate) {
	cleaner := clean.NewCleaner(boilerplate, h.Clean)

	concurrency := h.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	var g errgroup.Group
	g.SetLimit(concurrency)
	for _, page := range pages {
		page := page
		g.Go(func() error {
			page.CleanText = cleaner.Clean(page.RawText)
			return nil
		})
	}
	_ = g.Wait()
}

func (h *Harvester) outputPrefix() string {
	if h.OutputPrefix == "" {
		return DefaultOutputPrefix
	}
	return h.OutputPrefix
}

// chunker buffers collected records and writes them out every ChunkSize
// pages, so a long or interrupted run leaves recoverable raw output behind
// as it goes. Chunk records carry raw text only; clean text does not exist
// until the whole batch is in.
type chunker struct {
	ctx     context.Context
	writers wayharvest.RecordWriter
	prefix  string
	size    int
	batch   []wayharvest.Record
	index   int
}

func (h *Harvester) newChunker(ctx context.Context) *chunker {
	size := h.ChunkSize
	if size <= 0 {
		size = DefaultChunkSize
	}
	return &chunker{
		// Chunk saves are the crash-recovery artifact; they must survive
		// the run's cancellation.
		ctx:     context.WithoutCancel(ctx),
		writers: h.Writers,
		prefix:  h.outputPrefix(),
		size:    size,
	}
}

func (c *chunker) add(res pageResult, progress ProgressFunc) {
	if c.writers == nil {
		return
	}
	page := wayharvest.Page{
		Timestamp:   res.snapshot.Timestamp,
		OriginalURL: res.snapshot.OriginalURL,
		ArchiveURL:  res.snapshot.ArchiveURL(),
		Title:       res.title,
		RawText:     res.text,
	}
	c.batch = append(c.batch, page.Record())
	if len(c.batch) >= c.size {
		c.flush(progress)
	}
}

// flush writes buffered records as the next numbered chunk. Failures are
// reported through progress and otherwise ignored; the records stay in
// memory and reach the final save regardless.
func (c *chunker) flush(progress ProgressFunc) {
	if c.writers == nil || len(c.batch) == 0 {
		return
	}
	c.index++
	name := fmt.Sprintf("%s_chunk_%d", c.prefix, c.index)
	err := c.writers.WriteRecords(c.ctx, name, c.batch)
	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressChunkSaved,
			Chunk:     c.index,
			Completed: len(c.batch),
			Error:     err,
		})
	}
	c.batch = nil
}
