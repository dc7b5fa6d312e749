package main

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"mcl/internal/driver"
	"mcl/internal/source"
	"mcl/internal/ui"
)

type checkOutcome struct {
	fileSet *source.FileSet
	results []driver.ParseDirResult
	err     error
}

func runCheckWithUI(ctx context.Context, out io.Writer, title string, files []string, dir string, opts driver.Options, jobs int) (*source.FileSet, []driver.ParseDirResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		fs, results, err := driver.ParseDir(ctx, dir, opts, jobs, driver.ChannelSink{Ch: events})
		outcomeCh <- checkOutcome{fileSet: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(out), tea.WithContext(ctx))
	_, uiErr := program.Run()
	// UI мог выйти раньше (ошибка, q или ctrl+c): дочитываем события, чтобы ParseDir не встал на записи в канал
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}
