package main

import (
	"fmt"

	"github.com/wayharvest/wayharvest"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return wayharvest.Errorf(wayharvest.EINVALID, "use --force to confirm deletion")
	}

	run, err := deps.Runs.FindRunByID(deps.Ctx, c.RunID)
	if err != nil {
		if wayharvest.ErrorCode(err) == wayharvest.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: run %q not found. Use 'wayharvest runs' to see recorded runs.\n", c.RunID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", wayharvest.ErrorMessage(err))
		return err
	}

	if err := deps.Runs.DeleteRun(deps.Ctx, run.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wayharvest.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted run %s (%s)\n", run.ID, run.Site)
	return nil
}
