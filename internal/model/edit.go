package model

// Edit is a single form event applied to a record. Every edit is total:
// it never fails, so the form stays usable under incomplete input.
// Validation happens only at commit points via Record.Validate.
type Edit interface {
	apply(r Record) Record
}

// ApplyEdit returns a new record with the edit applied. The input record
// is never mutated; fields not named by the edit are carried over as-is.
func ApplyEdit(r Record, e Edit) Record {
	return e.apply(r)
}

// copyFollowUps clones the follow-up slice so an edit to one record can
// never be observed through another.
func copyFollowUps(in []FollowUp) []FollowUp {
	if in == nil {
		return nil
	}
	out := make([]FollowUp, len(in))
	copy(out, in)
	return out
}

// SetCompany sets the company name.
type SetCompany struct {
	Value string
}

func (e SetCompany) apply(r Record) Record {
	r.Company = e.Value
	return r
}

// SetPositionType sets the position type. Leaving Other clears the
// free-text description so it cannot leak into later snapshots.
type SetPositionType struct {
	Value PositionType
}

func (e SetPositionType) apply(r Record) Record {
	r.PositionType = e.Value
	if e.Value != PositionOther {
		r.PositionOther = ""
	}
	return r
}

// SetPositionOther sets the free-text position description. Inert unless
// the position type is Other.
type SetPositionOther struct {
	Value string
}

func (e SetPositionOther) apply(r Record) Record {
	r.PositionOther = e.Value
	return r
}

// SetRecruiterName sets the recruiter's name.
type SetRecruiterName struct {
	Value string
}

func (e SetRecruiterName) apply(r Record) Record {
	r.Recruiter.Name = e.Value
	return r
}

// SetRecruiterEmail sets the recruiter's email.
type SetRecruiterEmail struct {
	Value string
}

func (e SetRecruiterEmail) apply(r Record) Record {
	r.Recruiter.Email = e.Value
	return r
}

// SetRecruiterLinkedIn sets the recruiter's LinkedIn profile URL.
type SetRecruiterLinkedIn struct {
	Value string
}

func (e SetRecruiterLinkedIn) apply(r Record) Record {
	r.Recruiter.LinkedIn = e.Value
	return r
}

// SetNotes sets the free-form notes.
type SetNotes struct {
	Value string
}

func (e SetNotes) apply(r Record) Record {
	r.Notes = e.Value
	return r
}

// AddFollowUp appends a follow-up. Construct with NewAddFollowUp so the
// entry gets a fresh id at construction time; applying keeps ApplyEdit
// free of side effects.
type AddFollowUp struct {
	Item FollowUp
}

// NewAddFollowUp returns an edit appending a fresh default follow-up.
func NewAddFollowUp() AddFollowUp {
	return AddFollowUp{Item: NewFollowUp()}
}

func (e AddFollowUp) apply(r Record) Record {
	out := make([]FollowUp, 0, len(r.FollowUps)+1)
	out = append(out, r.FollowUps...)
	out = append(out, e.Item)
	r.FollowUps = out
	return r
}

// RemoveFollowUp deletes a follow-up by id. An absent id is a no-op, not
// an error: deletion racing an in-flight edit is expected and harmless.
type RemoveFollowUp struct {
	ID string
}

func (e RemoveFollowUp) apply(r Record) Record {
	if _, ok := r.FindFollowUp(e.ID); !ok {
		return r
	}
	out := make([]FollowUp, 0, len(r.FollowUps)-1)
	for _, f := range r.FollowUps {
		if f.ID != e.ID {
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		out = nil
	}
	r.FollowUps = out
	return r
}

// SetFollowUpDate sets the date of one follow-up. Absent id is a no-op.
type SetFollowUpDate struct {
	ID   string
	When Date
}

func (e SetFollowUpDate) apply(r Record) Record {
	return updateFollowUp(r, e.ID, func(f FollowUp) FollowUp {
		f.When = e.When
		return f
	})
}

// SetFollowUpMethod sets the method of one follow-up. Absent id is a no-op.
type SetFollowUpMethod struct {
	ID     string
	Method FollowUpMethod
}

func (e SetFollowUpMethod) apply(r Record) Record {
	return updateFollowUp(r, e.ID, func(f FollowUp) FollowUp {
		f.Method = e.Method
		return f
	})
}

// SetFollowUpNote sets the note of one follow-up. Absent id is a no-op.
type SetFollowUpNote struct {
	ID   string
	Note string
}

func (e SetFollowUpNote) apply(r Record) Record {
	return updateFollowUp(r, e.ID, func(f FollowUp) FollowUp {
		f.Note = e.Note
		return f
	})
}

// updateFollowUp rewrites a single entry by id, cloning the slice so
// sibling entries are untouched and prior records stay frozen.
func updateFollowUp(r Record, id string, fn func(FollowUp) FollowUp) Record {
	if _, ok := r.FindFollowUp(id); !ok {
		return r
	}
	out := copyFollowUps(r.FollowUps)
	for i, f := range out {
		if f.ID == id {
			out[i] = fn(f)
			break
		}
	}
	r.FollowUps = out
	return r
}

// SetStatus sets the application status. Leaving Other clears the
// free-text status description.
type SetStatus struct {
	Value Status
}

func (e SetStatus) apply(r Record) Record {
	r.Status = e.Value
	if e.Value != StatusOther {
		r.StatusOther = ""
	}
	return r
}

// SetStatusOther sets the free-text status description. Inert unless the
// status is Other.
type SetStatusOther struct {
	Value string
}

func (e SetStatusOther) apply(r Record) Record {
	r.StatusOther = e.Value
	return r
}

// SetPriority sets the priority.
type SetPriority struct {
	Value Priority
}

func (e SetPriority) apply(r Record) Record {
	r.Priority = e.Value
	return r
}

// SetReminder sets the reminder date.
type SetReminder struct {
	When Date
}

func (e SetReminder) apply(r Record) Record {
	r.Reminder = e.When
	return r
}

// ClearReminder removes the reminder date.
type ClearReminder struct{}

func (e ClearReminder) apply(r Record) Record {
	r.Reminder = ""
	return r
}
