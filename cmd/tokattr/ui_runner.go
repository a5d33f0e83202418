package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"tokattr/internal/pack"
	"tokattr/internal/ui"
)

type packOutcome struct {
	result pack.Result
	err    error
}

func runPackWithUI(ctx context.Context, title string, req *pack.Request) (pack.Result, error) {
	if req == nil {
		return pack.Result{}, fmt.Errorf("missing pack request")
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	events := make(chan pack.Event, 256)
	outcomeCh := make(chan packOutcome, 1)

	go func() {
		reqCopy := *req
		reqCopy.Progress = pack.ChannelSink{Ch: events}
		res, err := pack.Run(ctx, &reqCopy)
		outcomeCh <- packOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, req.Files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	// UI закрыт раньше времени: останавливаем pack и дочитываем события
	cancel()
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
