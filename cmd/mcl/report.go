package main

import (
	"fmt"
	"io"

	"mcl/internal/diag"
	"mcl/internal/diagfmt"
	"mcl/internal/source"
)

// printDiagnostics выводит bag в формате из [diagnostics].format.
func printDiagnostics(w io.Writer, bag *diag.Bag, fs *source.FileSet, s *settings, format string) error {
	if bag == nil || bag.Len() == 0 {
		return nil
	}
	bag.Sort()
	switch format {
	case "", "pretty":
		diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
			Color:     s.color,
			Context:   2,
			ShowNotes: true,
		})
		return nil
	case "json":
		return diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
		})
	case "short":
		if out := diag.FormatShortDiagnostics(bag.Items(), fs, true); out != "" {
			_, err := fmt.Fprintln(w, out)
			return err
		}
		return nil
	default:
		return fmt.Errorf("unknown diagnostics format: %s", format)
	}
}
