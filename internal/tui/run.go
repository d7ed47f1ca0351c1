package tui

import (
	"context"
	"fmt"

	"github.com/Misgexx/Fairtrack/internal/autosave"
	"github.com/Misgexx/Fairtrack/internal/model"
	"github.com/Misgexx/Fairtrack/internal/storage"
	tea "github.com/charmbracelet/bubbletea"
)

// Result reports how an editing session ended.
type Result struct {
	Record model.Record
	Saved  bool
}

// RunEditor runs the full-screen editing session for a record. Edits
// autosave on the debounce schedule while the session is open. Saving on
// exit flushes the latest snapshot; abandoning cancels any pending write
// and drops edits younger than the quiet interval.
func RunEditor(ctx context.Context, store storage.Store, rec model.Record) (Result, error) {
	errCh := make(chan error, 8)
	scheduler := autosave.NewScheduler(store, autosave.WithErrorHandler(func(err error) {
		// Non-blocking: a full channel just drops the notice, never the
		// editing session.
		select {
		case errCh <- err:
		default:
		}
	}))

	m := NewEditorModel(rec, scheduler, errCh)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	final, err := p.Run()
	if err != nil {
		scheduler.Close()
		return Result{Record: rec}, fmt.Errorf("editor failed: %w", err)
	}

	editor, ok := final.(EditorModel)
	if !ok {
		scheduler.Close()
		return Result{Record: rec}, fmt.Errorf("unexpected editor model type %T", final)
	}

	if editor.Saved() {
		if err := scheduler.Flush(context.Background()); err != nil {
			scheduler.Close()
			return Result{Record: editor.Record()}, err
		}
	}
	scheduler.Close()

	return Result{Record: editor.Record(), Saved: editor.Saved()}, nil
}
