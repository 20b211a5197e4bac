package main

import (
	"github.com/abelbrown/pressdeck/internal/server"
	"github.com/abelbrown/pressdeck/internal/tui"
)

// runTUI hands the aggregation pipeline to the terminal browser.
func runTUI(run server.RefreshFunc) error {
	return tui.Run(tui.Aggregate(run))
}
