package main

import (
	"fmt"

	"github.com/wayharvest/wayharvest"
)

// Run executes the pages command.
func (c *PagesCmd) Run(deps *Dependencies) error {
	run, err := deps.Runs.FindRunByID(deps.Ctx, c.RunID)
	if err != nil {
		if wayharvest.ErrorCode(err) == wayharvest.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: run %q not found. Use 'wayharvest runs' to see recorded runs.\n", c.RunID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", wayharvest.ErrorMessage(err))
		return err
	}

	pages, err := deps.Pages.FindPages(deps.Ctx, wayharvest.PageFilter{RunID: &run.ID})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wayharvest.ErrorMessage(err))
		return err
	}

	if len(pages) == 0 {
		fmt.Fprintf(deps.Stderr, "error: run %q has no stored pages.\n", c.RunID)
		return wayharvest.Errorf(wayharvest.ENOTFOUND, "run %q has no stored pages", c.RunID)
	}

	if c.Full {
		// Print full clean text, one header per page
		for _, page := range pages {
			fmt.Fprintf(deps.Stdout, "=== %s (%s)\n\n%s\n\n", page.OriginalURL, wayharvest.ReadableTimestamp(page.Timestamp), page.CleanText)
		}
		return nil
	}

	// Print summary listing
	fmt.Fprintf(deps.Stdout, "Pages for %s (%d total):\n\n", run.Site, len(pages))
	for i, page := range pages {
		title := page.Title
		if title == "" {
			title = page.OriginalURL
		}
		fmt.Fprintf(deps.Stdout, "  %d. %s\n     %s  %s\n", i+1, title, wayharvest.ReadableTimestamp(page.Timestamp), page.OriginalURL)
	}

	return nil
}
