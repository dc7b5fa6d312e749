package main

import (
	"fmt"
	"io"

	"mcl/internal/driver"
)

// printDirTimings prints per-file totals and the sum over the directory.
func printDirTimings(out io.Writer, results []driver.ParseDirResult) {
	total := 0.0
	for i := range results {
		r := &results[i]
		if r.Timing == nil {
			continue
		}
		note := ""
		if r.Cached {
			note = "  // cached"
		}
		fmt.Fprintf(out, "  %-40s %7.2f ms%s\n", r.Path, r.Timing.TotalMS, note)
		total += r.Timing.TotalMS
	}
	fmt.Fprintf(out, "  %-40s %7.2f ms\n", "total", total)
}
