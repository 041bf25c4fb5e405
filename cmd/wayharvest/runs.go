package main

import (
	"fmt"

	"github.com/wayharvest/wayharvest"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	filter := wayharvest.RunFilter{}
	if c.Site != "" {
		site := wayharvest.NormalizeSite(c.Site)
		filter.Site = &site
	}

	runs, err := deps.Runs.FindRuns(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wayharvest.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs found. Use 'wayharvest export' to create one.")
		return nil
	}

	for _, r := range runs {
		line := fmt.Sprintf("%s  %s  %s  %d pages, %d failed",
			r.ID, r.StartedAt.Format("2006-01-02 15:04"), r.Site, r.Collected, r.Failed)
		if r.Interrupted {
			line += "  (interrupted)"
		}
		fmt.Fprintln(deps.Stdout, line)
	}

	return nil
}
