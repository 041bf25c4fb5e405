package main

import (
	"fmt"

	"github.com/wayharvest/wayharvest"
)

// Run executes the snapshots command.
func (c *SnapshotsCmd) Run(deps *Dependencies) error {
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

	snapshots, err := deps.Snapshots.List(deps.Ctx, query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wayharvest.ErrorMessage(err))
		return err
	}

	if len(snapshots) == 0 {
		fmt.Fprintln(deps.Stdout, "No snapshots found.")
		return nil
	}

	for _, snap := range snapshots {
		fmt.Fprintln(deps.Stdout, snap.ArchiveURL())
	}

	return nil
}
