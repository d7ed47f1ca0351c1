package model

import (
	"encoding/json"
	"fmt"
)

// Payload is the normalized snapshot persisted for a record. Guarded
// free-text fields are omitted entirely (not written as empty strings)
// when their enum is not Other, and the reminder is omitted when unset.
// The scheduler writes this snapshot, never the live record.
type Payload struct {
	ID           string       `json:"id"`
	Company      string       `json:"company"`
	PositionType PositionType `json:"positionType"`
	// PositionOther appears only while positionType is Other.
	PositionOther *string            `json:"positionOther,omitempty"`
	Recruiter     RecruiterPayload   `json:"recruiter"`
	Notes         string             `json:"notes"`
	FollowUps     []FollowUpPayload  `json:"followUps"`
	Application   ApplicationPayload `json:"application"`
	Priority      Priority           `json:"priority"`
	Reminder      *ReminderPayload   `json:"reminder,omitempty"`
}

// RecruiterPayload is the persisted recruiter contact.
type RecruiterPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	LinkedIn string `json:"linkedIn"`
}

// FollowUpPayload is one persisted follow-up entry.
type FollowUpPayload struct {
	ID     string         `json:"id"`
	When   string         `json:"when"`
	Method FollowUpMethod `json:"method"`
	Note   string         `json:"note"`
}

// ApplicationPayload is the persisted application status pair.
type ApplicationPayload struct {
	Status Status `json:"status"`
	// StatusOther appears only while status is Other.
	StatusOther *string `json:"statusOther,omitempty"`
}

// ReminderPayload is the persisted reminder nudge.
type ReminderPayload struct {
	When string `json:"when"`
}

// ToPayload produces the persistable snapshot of a record.
func ToPayload(r Record) Payload {
	p := Payload{
		ID:           r.ID,
		Company:      r.Company,
		PositionType: r.PositionType,
		Recruiter: RecruiterPayload{
			Name:     r.Recruiter.Name,
			Email:    r.Recruiter.Email,
			LinkedIn: r.Recruiter.LinkedIn,
		},
		Notes:       r.Notes,
		Application: ApplicationPayload{Status: r.Status},
		Priority:    r.Priority,
	}
	if r.PositionType == PositionOther {
		v := r.PositionOther
		p.PositionOther = &v
	}
	if r.Status == StatusOther {
		v := r.StatusOther
		p.Application.StatusOther = &v
	}
	if !r.Reminder.IsZero() {
		p.Reminder = &ReminderPayload{When: r.Reminder.String()}
	}
	p.FollowUps = make([]FollowUpPayload, 0, len(r.FollowUps))
	for _, f := range r.FollowUps {
		p.FollowUps = append(p.FollowUps, FollowUpPayload{
			ID:     f.ID,
			When:   f.When.String(),
			Method: f.Method,
			Note:   f.Note,
		})
	}
	return p
}

// Marshal encodes the payload as the UTF-8 JSON value stored under the
// record's key.
func (p Payload) Marshal() ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record payload: %w", err)
	}
	return data, nil
}

// ParsePayload decodes a stored snapshot back into a record. Omitted
// optional fields come back unset, matching what ToPayload dropped.
func ParsePayload(data []byte) (Record, error) {
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return Record{}, fmt.Errorf("failed to parse record payload: %w", err)
	}
	return p.Record(), nil
}

// Record reconstructs the in-memory record from a snapshot.
func (p Payload) Record() Record {
	r := Record{
		ID:           p.ID,
		Company:      p.Company,
		PositionType: p.PositionType,
		Recruiter: Recruiter{
			Name:     p.Recruiter.Name,
			Email:    p.Recruiter.Email,
			LinkedIn: p.Recruiter.LinkedIn,
		},
		Notes:    p.Notes,
		Status:   p.Application.Status,
		Priority: p.Priority,
	}
	if p.PositionOther != nil {
		r.PositionOther = *p.PositionOther
	}
	if p.Application.StatusOther != nil {
		r.StatusOther = *p.Application.StatusOther
	}
	if p.Reminder != nil {
		r.Reminder = Date(p.Reminder.When)
	}
	if len(p.FollowUps) > 0 {
		r.FollowUps = make([]FollowUp, 0, len(p.FollowUps))
		for _, f := range p.FollowUps {
			r.FollowUps = append(r.FollowUps, FollowUp{
				ID:     f.ID,
				When:   Date(f.When),
				Method: f.Method,
				Note:   f.Note,
			})
		}
	}
	return r
}
