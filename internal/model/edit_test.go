package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyEdit_TouchesOnlyNamedField(t *testing.T) {
	base := NewRecord("Initech")
	base = ApplyEdit(base, SetNotes{Value: "booth 12, long line"})
	base = ApplyEdit(base, SetRecruiterName{Value: "Sam"})

	tests := []struct {
		edit  Edit
		check func(t *testing.T, before, after Record)
		name  string
	}{
		{
			name: "set company",
			edit: SetCompany{Value: "Initech Global"},
			check: func(t *testing.T, before, after Record) {
				assert.Equal(t, "Initech Global", after.Company)
				assert.Equal(t, before.Notes, after.Notes)
				assert.Equal(t, before.Recruiter, after.Recruiter)
				assert.Equal(t, before.Status, after.Status)
			},
		},
		{
			name: "set notes",
			edit: SetNotes{Value: "updated"},
			check: func(t *testing.T, before, after Record) {
				assert.Equal(t, "updated", after.Notes)
				assert.Equal(t, before.Company, after.Company)
				assert.Equal(t, before.Recruiter, after.Recruiter)
			},
		},
		{
			name: "set recruiter email",
			edit: SetRecruiterEmail{Value: "sam@initech.com"},
			check: func(t *testing.T, before, after Record) {
				assert.Equal(t, "sam@initech.com", after.Recruiter.Email)
				assert.Equal(t, before.Recruiter.Name, after.Recruiter.Name)
				assert.Equal(t, before.Recruiter.LinkedIn, after.Recruiter.LinkedIn)
				assert.Equal(t, before.Notes, after.Notes)
			},
		},
		{
			name: "set priority",
			edit: SetPriority{Value: PriorityHigh},
			check: func(t *testing.T, before, after Record) {
				assert.Equal(t, PriorityHigh, after.Priority)
				assert.Equal(t, before.Status, after.Status)
				assert.Equal(t, before.Reminder, after.Reminder)
			},
		},
		{
			name: "set reminder",
			edit: SetReminder{When: Date("2026-09-15")},
			check: func(t *testing.T, before, after Record) {
				assert.Equal(t, Date("2026-09-15"), after.Reminder)
				assert.Equal(t, before.Priority, after.Priority)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			after := ApplyEdit(base, tt.edit)
			tt.check(t, base, after)
		})
	}
}

func TestApplyEdit_NeverMutatesInput(t *testing.T) {
	r := NewRecord("Hooli")
	r = ApplyEdit(r, NewAddFollowUp())
	require.Len(t, r.FollowUps, 1)
	id := r.FollowUps[0].ID

	snapshot := r

	_ = ApplyEdit(r, SetFollowUpNote{ID: id, Note: "send thank-you"})
	_ = ApplyEdit(r, RemoveFollowUp{ID: id})
	_ = ApplyEdit(r, SetCompany{Value: "Hooli XYZ"})

	assert.Equal(t, snapshot, r)
	assert.Equal(t, "", r.FollowUps[0].Note)
}

func TestSetPositionType_ClearsOtherOnLeaving(t *testing.T) {
	r := NewRecord("Pied Piper")
	r = ApplyEdit(r, SetPositionType{Value: PositionOther})
	r = ApplyEdit(r, SetPositionOther{Value: "Apprenticeship"})
	require.Equal(t, "Apprenticeship", r.PositionOther)

	r = ApplyEdit(r, SetPositionType{Value: PositionFullTime})
	assert.Equal(t, PositionFullTime, r.PositionType)
	assert.Empty(t, r.PositionOther)

	// Re-entering Other starts from a clean slate.
	r = ApplyEdit(r, SetPositionType{Value: PositionOther})
	assert.Empty(t, r.PositionOther)
}

func TestSetStatus_ClearsOtherOnLeaving(t *testing.T) {
	r := NewRecord("Pied Piper")
	r = ApplyEdit(r, SetStatus{Value: StatusOther})
	r = ApplyEdit(r, SetStatusOther{Value: "Waitlisted"})
	require.Equal(t, "Waitlisted", r.StatusOther)

	r = ApplyEdit(r, SetStatus{Value: StatusInterview})
	assert.Equal(t, StatusInterview, r.Status)
	assert.Empty(t, r.StatusOther)
}

func TestFollowUps_AddThenRemoveRestoresSequence(t *testing.T) {
	r := NewRecord("Aviato")
	r = ApplyEdit(r, NewAddFollowUp())
	r = ApplyEdit(r, NewAddFollowUp())
	require.Len(t, r.FollowUps, 2)
	before := r.FollowUps

	add := NewAddFollowUp()
	r2 := ApplyEdit(r, add)
	require.Len(t, r2.FollowUps, 3)

	r3 := ApplyEdit(r2, RemoveFollowUp{ID: add.Item.ID})
	assert.Equal(t, before, r3.FollowUps)
}

func TestFollowUps_EditOneNeverTouchesSiblings(t *testing.T) {
	r := NewRecord("Aviato")
	first := NewAddFollowUp()
	second := NewAddFollowUp()
	r = ApplyEdit(r, first)
	r = ApplyEdit(r, second)

	r = ApplyEdit(r, SetFollowUpMethod{ID: second.Item.ID, Method: MethodCall})
	r = ApplyEdit(r, SetFollowUpDate{ID: second.Item.ID, When: Date("2026-10-01")})
	r = ApplyEdit(r, SetFollowUpNote{ID: second.Item.ID, Note: "ask about referral"})

	got, ok := r.FindFollowUp(first.Item.ID)
	require.True(t, ok)
	assert.Equal(t, MethodEmail, got.Method)
	assert.True(t, got.When.IsZero())
	assert.Empty(t, got.Note)

	// Insertion order survives the sibling edits.
	assert.Equal(t, first.Item.ID, r.FollowUps[0].ID)
	assert.Equal(t, second.Item.ID, r.FollowUps[1].ID)
}

func TestFollowUps_AbsentIDIsNoOp(t *testing.T) {
	r := NewRecord("Aviato")
	r = ApplyEdit(r, NewAddFollowUp())

	tests := []struct {
		edit Edit
		name string
	}{
		{name: "remove missing", edit: RemoveFollowUp{ID: "nope"}},
		{name: "set date on missing", edit: SetFollowUpDate{ID: "nope", When: Date("2026-01-01")}},
		{name: "set method on missing", edit: SetFollowUpMethod{ID: "nope", Method: MethodCall}},
		{name: "set note on missing", edit: SetFollowUpNote{ID: "nope", Note: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			after := ApplyEdit(r, tt.edit)
			assert.Equal(t, r, after)
		})
	}
}

func TestNewFollowUp_Defaults(t *testing.T) {
	f := NewFollowUp()
	assert.NotEmpty(t, f.ID)
	assert.Equal(t, MethodEmail, f.Method)
	assert.True(t, f.When.IsZero())
	assert.Empty(t, f.Note)

	assert.NotEqual(t, f.ID, NewFollowUp().ID)
}

func TestClearReminder(t *testing.T) {
	r := NewRecord("Initech")
	r = ApplyEdit(r, SetReminder{When: Date("2026-09-15")})
	require.False(t, r.Reminder.IsZero())

	r = ApplyEdit(r, ClearReminder{})
	assert.True(t, r.Reminder.IsZero())
}

func TestRecord_Validate(t *testing.T) {
	tests := []struct {
		name    string
		company string
		wantErr bool
	}{
		{name: "valid", company: "Initech", wantErr: false},
		{name: "empty", company: "", wantErr: true},
		{name: "whitespace only", company: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRecord(tt.company)
			err := r.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
