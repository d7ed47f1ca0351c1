// Package tui implements the interactive editing session for one
// company's interaction record.
package tui

import (
	"fmt"
	"strings"

	"github.com/Misgexx/Fairtrack/internal/autosave"
	"github.com/Misgexx/Fairtrack/internal/model"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// fieldKind identifies one focusable element of the form.
type fieldKind int

const (
	fieldCompany fieldKind = iota
	fieldPositionType
	fieldPositionOther
	fieldRecruiterName
	fieldRecruiterEmail
	fieldRecruiterLinkedIn
	fieldNotes
	fieldAddFollowUp
	fieldFollowUpWhen
	fieldFollowUpMethod
	fieldFollowUpNote
	fieldFollowUpRemove
	fieldStatus
	fieldStatusOther
	fieldPriority
	fieldReminder
)

// focusTarget is one entry in the form's focus order. FollowUpID is set
// only for per-follow-up fields.
type focusTarget struct {
	followUpID string
	kind       fieldKind
}

// reminderPickerID marks the reminder's date picker in activePicker.
// Follow-up pickers use the follow-up id, so one field covers them all
// and at most one picker can ever be open.
const reminderPickerID = "REMINDER"

// EditorModel is the bubbletea model for the record editing session.
type EditorModel struct {
	scheduler *autosave.Scheduler
	errCh     chan error

	inputs  map[fieldKind]*textinput.Model
	fuNotes map[string]*textinput.Model
	notes   textarea.Model

	// activePicker holds the id of the one open date picker, or "" when
	// none is open. Exclusivity is structural: opening one replaces any
	// other.
	activePicker string
	picker       DatePickerModel

	record        model.Record
	targets       []focusTarget
	notice        string
	validationMsg string
	theme         Theme
	keymap        KeyMap
	focus         int
	width         int
	saved         bool
	aborted       bool
}

// NewEditorModel builds the editing session for a record.
func NewEditorModel(rec model.Record, scheduler *autosave.Scheduler, errCh chan error) EditorModel {
	theme := DefaultTheme

	newInput := func(placeholder, value string, limit int) *textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = limit
		ti.SetValue(value)
		ti.Prompt = ""
		return &ti
	}

	inputs := map[fieldKind]*textinput.Model{
		fieldCompany:           newInput("Company name", rec.Company, 80),
		fieldPositionOther:     newInput("Specify other position type", rec.PositionOther, 80),
		fieldRecruiterName:     newInput("Recruiter name", rec.Recruiter.Name, 80),
		fieldRecruiterEmail:    newInput("Recruiter email", rec.Recruiter.Email, 120),
		fieldRecruiterLinkedIn: newInput("LinkedIn profile URL", rec.Recruiter.LinkedIn, 200),
		fieldStatusOther:       newInput("Describe your status", rec.StatusOther, 80),
	}

	notes := textarea.New()
	notes.Placeholder = "Conversation highlights, roles, feedback, next steps…"
	notes.SetValue(rec.Notes)
	notes.SetHeight(4)

	fuNotes := make(map[string]*textinput.Model, len(rec.FollowUps))
	for _, f := range rec.FollowUps {
		fuNotes[f.ID] = newInput("e.g., Send thank-you referencing resume comment", f.Note, 200)
	}

	m := EditorModel{
		record:    rec,
		scheduler: scheduler,
		errCh:     errCh,
		theme:     theme,
		keymap:    DefaultKeyMap(),
		inputs:    inputs,
		fuNotes:   fuNotes,
		notes:     notes,
	}
	m.rebuildTargets()
	m.applyFocus()
	return m
}

// Record returns the current record.
func (m EditorModel) Record() model.Record {
	return m.record
}

// Saved reports whether the session ended through save-and-exit.
func (m EditorModel) Saved() bool {
	return m.saved
}

// Aborted reports whether the session was abandoned.
func (m EditorModel) Aborted() bool {
	return m.aborted
}

// Init starts cursor blinking and the autosave failure listener.
func (m EditorModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.listenForAutosaveErrors())
}

func (m EditorModel) listenForAutosaveErrors() tea.Cmd {
	return func() tea.Msg {
		err, ok := <-m.errCh
		if !ok {
			return nil
		}
		return autosaveFailedMsg{err: err}
	}
}

// rebuildTargets recomputes the focus order from the record: the
// guarded free-text fields appear only while their enum is Other, and
// each follow-up contributes its own four fields in insertion order.
func (m *EditorModel) rebuildTargets() {
	targets := []focusTarget{
		{kind: fieldCompany},
		{kind: fieldPositionType},
	}
	if m.record.PositionType == model.PositionOther {
		targets = append(targets, focusTarget{kind: fieldPositionOther})
	}
	targets = append(targets,
		focusTarget{kind: fieldRecruiterName},
		focusTarget{kind: fieldRecruiterEmail},
		focusTarget{kind: fieldRecruiterLinkedIn},
		focusTarget{kind: fieldNotes},
		focusTarget{kind: fieldAddFollowUp},
	)
	for _, f := range m.record.FollowUps {
		targets = append(targets,
			focusTarget{kind: fieldFollowUpWhen, followUpID: f.ID},
			focusTarget{kind: fieldFollowUpMethod, followUpID: f.ID},
			focusTarget{kind: fieldFollowUpNote, followUpID: f.ID},
			focusTarget{kind: fieldFollowUpRemove, followUpID: f.ID},
		)
	}
	targets = append(targets, focusTarget{kind: fieldStatus})
	if m.record.Status == model.StatusOther {
		targets = append(targets, focusTarget{kind: fieldStatusOther})
	}
	targets = append(targets,
		focusTarget{kind: fieldPriority},
		focusTarget{kind: fieldReminder},
	)

	m.targets = targets
	if m.focus >= len(targets) {
		m.focus = len(targets) - 1
	}
	if m.focus < 0 {
		m.focus = 0
	}
}

func (m *EditorModel) current() focusTarget {
	return m.targets[m.focus]
}

// applyFocus focuses the text input behind the current target, if any,
// and blurs everything else.
func (m *EditorModel) applyFocus() {
	for _, ti := range m.inputs {
		ti.Blur()
	}
	for _, ti := range m.fuNotes {
		ti.Blur()
	}
	m.notes.Blur()

	t := m.current()
	switch t.kind {
	case fieldNotes:
		m.notes.Focus()
	case fieldFollowUpNote:
		if ti, ok := m.fuNotes[t.followUpID]; ok {
			ti.Focus()
		}
	default:
		if ti, ok := m.inputs[t.kind]; ok {
			ti.Focus()
		}
	}
}

// dispatch applies an edit and notifies the autosave scheduler. This is
// the single path every form event takes.
func (m *EditorModel) dispatch(e model.Edit) {
	m.record = model.ApplyEdit(m.record, e)
	m.scheduler.RecordChanged(m.record)
	m.validationMsg = ""
}

// togglePicker opens the picker for id, closing any other open picker,
// or closes it when it is already open.
func (m *EditorModel) togglePicker(id string, initial model.Date) {
	if m.activePicker == id {
		m.activePicker = ""
		return
	}
	m.activePicker = id
	m.picker = NewDatePickerModel(initial, m.theme)
}

// commitPicker writes the highlighted date into the field that owns the
// open picker and closes it.
func (m *EditorModel) commitPicker() {
	when := m.picker.Value()
	if m.activePicker == reminderPickerID {
		m.dispatch(model.SetReminder{When: when})
	} else {
		m.dispatch(model.SetFollowUpDate{ID: m.activePicker, When: when})
	}
	m.activePicker = ""
}

// Update handles messages.
func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.notes.SetWidth(min(msg.Width-6, 76))
		return m, nil

	case autosaveFailedMsg:
		m.notice = fmt.Sprintf("Autosave failed (%v); changes kept, will retry", msg.err)
		return m, m.listenForAutosaveErrors()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m EditorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Abandon always wins: pending autosaves are dropped by the caller.
	if key.Matches(msg, m.keymap.Abandon) {
		m.aborted = true
		return m, tea.Quit
	}

	// While a picker is open it owns the keyboard; enter commits, esc
	// dismisses without touching the date.
	if m.activePicker != "" {
		switch {
		case key.Matches(msg, m.keymap.Activate):
			m.commitPicker()
			return m, nil
		case msg.String() == "esc":
			m.activePicker = ""
			return m, nil
		default:
			var cmd tea.Cmd
			m.picker, cmd = m.picker.Update(msg)
			return m, cmd
		}
	}

	switch {
	case key.Matches(msg, m.keymap.SaveQuit):
		if err := m.record.Validate(); err != nil {
			m.validationMsg = "Missing info: please enter a company name."
			return m, nil
		}
		m.saved = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Next):
		m.focus = (m.focus + 1) % len(m.targets)
		m.applyFocus()
		return m, nil

	case key.Matches(msg, m.keymap.Prev):
		m.focus = (m.focus - 1 + len(m.targets)) % len(m.targets)
		m.applyFocus()
		return m, nil
	}

	return m.handleFieldKey(msg)
}

func (m EditorModel) handleFieldKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t := m.current()

	switch t.kind {
	case fieldPositionType:
		if v, ok := cycle(model.PositionTypes, m.record.PositionType, msg, m.keymap); ok {
			m.dispatch(model.SetPositionType{Value: v})
			if ti := m.inputs[fieldPositionOther]; v != model.PositionOther {
				ti.SetValue("")
			}
			m.rebuildTargets()
		}
		return m, nil

	case fieldStatus:
		if v, ok := cycle(model.Statuses, m.record.Status, msg, m.keymap); ok {
			m.dispatch(model.SetStatus{Value: v})
			if ti := m.inputs[fieldStatusOther]; v != model.StatusOther {
				ti.SetValue("")
			}
			m.rebuildTargets()
		}
		return m, nil

	case fieldPriority:
		if v, ok := cycle(model.Priorities, m.record.Priority, msg, m.keymap); ok {
			m.dispatch(model.SetPriority{Value: v})
		}
		return m, nil

	case fieldFollowUpMethod:
		f, ok := m.record.FindFollowUp(t.followUpID)
		if !ok {
			return m, nil
		}
		if v, ok := cycle(model.FollowUpMethods, f.Method, msg, m.keymap); ok {
			m.dispatch(model.SetFollowUpMethod{ID: t.followUpID, Method: v})
		}
		return m, nil

	case fieldReminder:
		if key.Matches(msg, m.keymap.Activate) {
			m.togglePicker(reminderPickerID, m.record.Reminder)
		} else if msg.String() == "backspace" || msg.String() == "delete" {
			m.dispatch(model.ClearReminder{})
		}
		return m, nil

	case fieldFollowUpWhen:
		if key.Matches(msg, m.keymap.Activate) {
			f, _ := m.record.FindFollowUp(t.followUpID)
			m.togglePicker(t.followUpID, f.When)
		}
		return m, nil

	case fieldAddFollowUp:
		if key.Matches(msg, m.keymap.Activate) {
			add := model.NewAddFollowUp()
			m.dispatch(add)
			ti := textinput.New()
			ti.Placeholder = "e.g., Send thank-you referencing resume comment"
			ti.CharLimit = 200
			ti.Prompt = ""
			m.fuNotes[add.Item.ID] = &ti
			m.rebuildTargets()
		}
		return m, nil

	case fieldFollowUpRemove:
		if key.Matches(msg, m.keymap.Activate) {
			m.dispatch(model.RemoveFollowUp{ID: t.followUpID})
			delete(m.fuNotes, t.followUpID)
			if m.activePicker == t.followUpID {
				m.activePicker = ""
			}
			m.rebuildTargets()
			m.applyFocus()
		}
		return m, nil

	case fieldNotes:
		var cmd tea.Cmd
		m.notes, cmd = m.notes.Update(msg)
		if m.notes.Value() != m.record.Notes {
			m.dispatch(model.SetNotes{Value: m.notes.Value()})
		}
		return m, cmd

	case fieldFollowUpNote:
		ti, ok := m.fuNotes[t.followUpID]
		if !ok {
			return m, nil
		}
		updated, cmd := ti.Update(msg)
		*ti = updated
		f, found := m.record.FindFollowUp(t.followUpID)
		if found && updated.Value() != f.Note {
			m.dispatch(model.SetFollowUpNote{ID: t.followUpID, Note: updated.Value()})
		}
		return m, cmd

	default:
		return m.handleTextField(t.kind, msg)
	}
}

// handleTextField routes a key to a plain text input and mirrors its
// value into the record as an edit event.
func (m EditorModel) handleTextField(kind fieldKind, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ti, ok := m.inputs[kind]
	if !ok {
		return m, nil
	}
	updated, cmd := ti.Update(msg)
	*ti = updated
	value := updated.Value()

	switch kind {
	case fieldCompany:
		if value != m.record.Company {
			m.dispatch(model.SetCompany{Value: value})
		}
	case fieldPositionOther:
		if value != m.record.PositionOther {
			m.dispatch(model.SetPositionOther{Value: value})
		}
	case fieldRecruiterName:
		if value != m.record.Recruiter.Name {
			m.dispatch(model.SetRecruiterName{Value: value})
		}
	case fieldRecruiterEmail:
		if value != m.record.Recruiter.Email {
			m.dispatch(model.SetRecruiterEmail{Value: value})
		}
	case fieldRecruiterLinkedIn:
		if value != m.record.Recruiter.LinkedIn {
			m.dispatch(model.SetRecruiterLinkedIn{Value: value})
		}
	case fieldStatusOther:
		if value != m.record.StatusOther {
			m.dispatch(model.SetStatusOther{Value: value})
		}
	}
	return m, cmd
}

// cycle steps through the options list on left/right, wrapping at the
// ends. Reports whether a key produced a new value.
func cycle[T comparable](options []T, current T, msg tea.KeyMsg, km KeyMap) (T, bool) {
	idx := 0
	for i, o := range options {
		if o == current {
			idx = i
			break
		}
	}

	switch {
	case key.Matches(msg, km.CycleRight):
		return options[(idx+1)%len(options)], true
	case key.Matches(msg, km.CycleLeft):
		return options[(idx-1+len(options))%len(options)], true
	}
	var zero T
	return zero, false
}

// View renders the whole form.
func (m EditorModel) View() string {
	var b strings.Builder

	title := m.record.Company
	if strings.TrimSpace(title) == "" {
		title = "Company"
	}
	b.WriteString(m.theme.Title.Render(title))
	b.WriteString("  ")
	if m.scheduler.Dirty() {
		b.WriteString(m.theme.Hint.Render("● editing…"))
	} else {
		b.WriteString(m.theme.Saved.Render("✓ saved"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.viewCompanyCard())
	b.WriteString(m.viewRecruiterCard())
	b.WriteString(m.viewNotesCard())
	b.WriteString(m.viewFollowUpsCard())
	b.WriteString(m.viewStatusCard())
	b.WriteString(m.viewPriorityReminderCard())

	if m.validationMsg != "" {
		b.WriteString(m.theme.Danger.Render(m.validationMsg))
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString(m.theme.Notice.Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Hint.Render("Tab next · ←/→ options · Enter toggle date · Esc save+exit · Ctrl+C discard"))

	return b.String()
}

func (m EditorModel) focusMarker(t focusTarget) string {
	cur := m.current()
	if cur.kind == t.kind && cur.followUpID == t.followUpID {
		return m.theme.Focused.Render("▸ ")
	}
	return "  "
}

func (m EditorModel) viewChips(current string, options []string) string {
	parts := make([]string, 0, len(options))
	for _, o := range options {
		style := m.theme.Chip
		if o == current {
			style = m.theme.ChipActive
		}
		parts = append(parts, style.Render(o))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func chipStrings[T ~string](options []T) []string {
	out := make([]string, len(options))
	for i, o := range options {
		out[i] = string(o)
	}
	return out
}

func (m EditorModel) viewCompanyCard() string {
	var b strings.Builder
	b.WriteString(m.focusMarker(focusTarget{kind: fieldCompany}))
	b.WriteString(m.theme.Label.Render("Company"))
	b.WriteString("\n")
	b.WriteString(m.inputs[fieldCompany].View())
	b.WriteString("\n\n")

	b.WriteString(m.focusMarker(focusTarget{kind: fieldPositionType}))
	b.WriteString(m.theme.Label.Render("Position Type"))
	b.WriteString("\n")
	b.WriteString(m.viewChips(string(m.record.PositionType), chipStrings(model.PositionTypes)))
	b.WriteString("\n")

	if m.record.PositionType == model.PositionOther {
		b.WriteString(m.focusMarker(focusTarget{kind: fieldPositionOther}))
		b.WriteString(m.inputs[fieldPositionOther].View())
		b.WriteString("\n")
	}

	return m.theme.Card.Render(b.String()) + "\n"
}

func (m EditorModel) viewRecruiterCard() string {
	var b strings.Builder
	b.WriteString(m.theme.Section.Render("Recruiter"))
	b.WriteString("\n")

	rows := []struct {
		kind  fieldKind
		label string
	}{
		{fieldRecruiterName, "Name"},
		{fieldRecruiterEmail, "Email"},
		{fieldRecruiterLinkedIn, "LinkedIn"},
	}
	for _, row := range rows {
		b.WriteString(m.focusMarker(focusTarget{kind: row.kind}))
		b.WriteString(m.theme.Label.Render(row.label))
		b.WriteString("  ")
		b.WriteString(m.inputs[row.kind].View())
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Hint.Render("Tip: paste the profile URL from the recruiter's LinkedIn QR."))

	return m.theme.Card.Render(b.String()) + "\n"
}

func (m EditorModel) viewNotesCard() string {
	var b strings.Builder
	b.WriteString(m.focusMarker(focusTarget{kind: fieldNotes}))
	b.WriteString(m.theme.Section.Render("Notes"))
	b.WriteString("\n")
	b.WriteString(m.notes.View())
	return m.theme.Card.Render(b.String()) + "\n"
}

func (m EditorModel) viewFollowUpsCard() string {
	var b strings.Builder
	b.WriteString(m.theme.Section.Render("Follow-ups"))
	b.WriteString("   ")
	b.WriteString(m.focusMarker(focusTarget{kind: fieldAddFollowUp}))
	b.WriteString(m.theme.Focused.Render("+ Add"))
	b.WriteString("\n")

	if len(m.record.FollowUps) == 0 {
		b.WriteString(m.theme.Hint.Render("No follow-ups yet. Add a specific action (email, LinkedIn, call) with a date."))
	}

	for _, f := range m.record.FollowUps {
		b.WriteString("\n")
		b.WriteString(m.focusMarker(focusTarget{kind: fieldFollowUpWhen, followUpID: f.ID}))
		b.WriteString(m.theme.Label.Render("When  "))
		if f.When.IsZero() {
			b.WriteString(m.theme.Hint.Render("Select date"))
		} else {
			b.WriteString(f.When.String())
		}
		b.WriteString("\n")

		if m.activePicker == f.ID {
			b.WriteString(m.picker.View())
			b.WriteString("\n")
		}

		b.WriteString(m.focusMarker(focusTarget{kind: fieldFollowUpMethod, followUpID: f.ID}))
		b.WriteString(m.viewChips(string(f.Method), chipStrings(model.FollowUpMethods)))
		b.WriteString("\n")

		b.WriteString(m.focusMarker(focusTarget{kind: fieldFollowUpNote, followUpID: f.ID}))
		b.WriteString(m.theme.Label.Render("Note  "))
		if ti, ok := m.fuNotes[f.ID]; ok {
			b.WriteString(ti.View())
		}
		b.WriteString("\n")

		b.WriteString(m.focusMarker(focusTarget{kind: fieldFollowUpRemove, followUpID: f.ID}))
		b.WriteString(m.theme.Danger.Render("Remove"))
		b.WriteString("\n")
	}

	return m.theme.Card.Render(b.String()) + "\n"
}

func (m EditorModel) viewStatusCard() string {
	var b strings.Builder
	b.WriteString(m.focusMarker(focusTarget{kind: fieldStatus}))
	b.WriteString(m.theme.Section.Render("Application Status"))
	b.WriteString("\n")
	b.WriteString(m.viewChips(string(m.record.Status), chipStrings(model.Statuses)))
	b.WriteString("\n")

	if m.record.Status == model.StatusOther {
		b.WriteString(m.focusMarker(focusTarget{kind: fieldStatusOther}))
		b.WriteString(m.inputs[fieldStatusOther].View())
		b.WriteString("\n")
	}

	return m.theme.Card.Render(b.String()) + "\n"
}

func (m EditorModel) viewPriorityReminderCard() string {
	var b strings.Builder
	b.WriteString(m.focusMarker(focusTarget{kind: fieldPriority}))
	b.WriteString(m.theme.Section.Render("Priority (optional)"))
	b.WriteString("\n")
	b.WriteString(m.viewChips(string(m.record.Priority), chipStrings(model.Priorities)))
	b.WriteString("\n\n")

	b.WriteString(m.focusMarker(focusTarget{kind: fieldReminder}))
	b.WriteString(m.theme.Section.Render("Reminder (optional)"))
	b.WriteString("  ")
	if m.record.Reminder.IsZero() {
		b.WriteString(m.theme.Hint.Render("Select date"))
	} else {
		b.WriteString(m.record.Reminder.String())
	}
	b.WriteString("\n")

	if m.activePicker == reminderPickerID {
		b.WriteString(m.picker.View())
		b.WriteString("\n")
	}

	b.WriteString(m.theme.Hint.Render("Reminders are nudges; follow-ups are specific actions."))

	return m.theme.Card.Render(b.String()) + "\n"
}
