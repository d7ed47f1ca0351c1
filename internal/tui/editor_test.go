package tui

import (
	"testing"
	"time"

	"github.com/Misgexx/Fairtrack/internal/autosave"
	"github.com/Misgexx/Fairtrack/internal/model"
	"github.com/Misgexx/Fairtrack/internal/storage"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEditor(t *testing.T, rec model.Record) EditorModel {
	t.Helper()
	// A long quiet interval keeps the scheduler from writing mid-test.
	scheduler := autosave.NewScheduler(storage.NewMemoryStore(),
		autosave.WithQuietInterval(time.Hour))
	t.Cleanup(scheduler.Close)
	return NewEditorModel(rec, scheduler, make(chan error, 1))
}

func press(t *testing.T, m EditorModel, msg tea.Msg) EditorModel {
	t.Helper()
	updated, _ := m.Update(msg)
	out, ok := updated.(EditorModel)
	require.True(t, ok)
	return out
}

func keyRune(r rune) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// focusOn advances focus until the wanted field is current.
func focusOn(t *testing.T, m EditorModel, kind fieldKind, followUpID string) EditorModel {
	t.Helper()
	for range m.targets {
		cur := m.targets[m.focus]
		if cur.kind == kind && cur.followUpID == followUpID {
			return m
		}
		m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}
	t.Fatalf("field %d (%s) not reachable", kind, followUpID)
	return m
}

func TestEditor_TypingEditsCompany(t *testing.T) {
	m := newTestEditor(t, model.NewRecord(""))
	m = focusOn(t, m, fieldCompany, "")

	for _, r := range "Initech" {
		m = press(t, m, keyRune(r))
	}
	assert.Equal(t, "Initech", m.Record().Company)
}

func TestEditor_CyclePositionTypeRevealsOtherField(t *testing.T) {
	m := newTestEditor(t, model.NewRecord("Initech"))
	m = focusOn(t, m, fieldPositionType, "")

	// Internship → Co-op → Research → Other.
	for range 3 {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}
	require.Equal(t, model.PositionOther, m.Record().PositionType)

	found := false
	for _, target := range m.targets {
		if target.kind == fieldPositionOther {
			found = true
		}
	}
	assert.True(t, found, "positionOther should join the focus order")

	// Leaving Other removes the field and clears the record value.
	m = focusOn(t, m, fieldPositionOther, "")
	m = press(t, m, keyRune('X'))
	require.Equal(t, "X", m.Record().PositionOther)

	m = focusOn(t, m, fieldPositionType, "")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.NotEqual(t, model.PositionOther, m.Record().PositionType)
	assert.Empty(t, m.Record().PositionOther)
}

func TestEditor_AddAndRemoveFollowUp(t *testing.T) {
	m := newTestEditor(t, model.NewRecord("Initech"))
	m = focusOn(t, m, fieldAddFollowUp, "")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Len(t, m.Record().FollowUps, 1)
	id := m.Record().FollowUps[0].ID
	assert.Contains(t, m.fuNotes, id)

	m = focusOn(t, m, fieldFollowUpRemove, id)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, m.Record().FollowUps)
	assert.NotContains(t, m.fuNotes, id)
}

func TestEditor_OnePickerOpenAtATime(t *testing.T) {
	rec := model.NewRecord("Initech")
	add := model.NewAddFollowUp()
	rec = model.ApplyEdit(rec, add)
	m := newTestEditor(t, rec)

	// Open the follow-up picker.
	m = focusOn(t, m, fieldFollowUpWhen, add.Item.ID)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, add.Item.ID, m.activePicker)

	// Committing closes it and opening the reminder picker replaces any
	// other: the single activePicker field makes overlap impossible.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Empty(t, m.activePicker)
	require.False(t, m.Record().FollowUps[0].When.IsZero())

	m = focusOn(t, m, fieldReminder, "")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, reminderPickerID, m.activePicker)
}

func TestEditor_PickerToggleAndDismiss(t *testing.T) {
	m := newTestEditor(t, model.NewRecord("Initech"))
	m = focusOn(t, m, fieldReminder, "")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, reminderPickerID, m.activePicker)

	// Esc dismisses without touching the date.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, m.activePicker)
	assert.True(t, m.Record().Reminder.IsZero())
	assert.False(t, m.Saved(), "dismissing a picker must not exit the session")
}

func TestEditor_SaveBlockedWithoutCompany(t *testing.T) {
	m := newTestEditor(t, model.NewRecord("   "))

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.Saved())
	assert.NotEmpty(t, m.validationMsg)

	// Filling in the company unblocks the exit.
	m = focusOn(t, m, fieldCompany, "")
	m = press(t, m, keyRune('A'))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.Saved())
}

func TestEditor_AbandonSetsAborted(t *testing.T) {
	m := newTestEditor(t, model.NewRecord("Initech"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, m.Aborted())
	assert.False(t, m.Saved())
}

func TestEditor_AutosaveFailureShowsNotice(t *testing.T) {
	m := newTestEditor(t, model.NewRecord("Initech"))
	m = press(t, m, autosaveFailedMsg{err: assert.AnError})
	assert.Contains(t, m.notice, "Autosave failed")
}
