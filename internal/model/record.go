// Package model defines the interaction record tracked for each company
// and the pure edit functions that produce new records from form events.
package model

import (
	"strings"

	"github.com/Misgexx/Fairtrack/internal/common"
	"github.com/google/uuid"
)

// PositionType is the kind of role discussed with a company.
type PositionType string

// Position types.
const (
	PositionFullTime   PositionType = "Full-time"
	PositionInternship PositionType = "Internship"
	PositionCoOp       PositionType = "Co-op"
	PositionResearch   PositionType = "Research"
	PositionOther      PositionType = "Other"
)

// PositionTypes lists all position types in display order.
var PositionTypes = []PositionType{
	PositionFullTime,
	PositionInternship,
	PositionCoOp,
	PositionResearch,
	PositionOther,
}

// Status is the application status with a company.
type Status string

// Application statuses.
const (
	StatusNotApplied Status = "Not Applied"
	StatusApplied    Status = "Applied"
	StatusAssessment Status = "Assessment"
	StatusInterview  Status = "Interview"
	StatusOffer      Status = "Offer"
	StatusRejected   Status = "Rejected"
	StatusOther      Status = "Other"
)

// Statuses lists all application statuses in display order.
var Statuses = []Status{
	StatusNotApplied,
	StatusApplied,
	StatusAssessment,
	StatusInterview,
	StatusOffer,
	StatusRejected,
	StatusOther,
}

// Priority is how important a company is to the user.
type Priority string

// Priorities.
const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
	PriorityNone   Priority = "None"
)

// Priorities lists all priorities in display order.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow, PriorityNone}

// FollowUpMethod is how a follow-up action will be carried out.
type FollowUpMethod string

// Follow-up methods.
const (
	MethodEmail    FollowUpMethod = "Email"
	MethodLinkedIn FollowUpMethod = "LinkedIn"
	MethodCall     FollowUpMethod = "Call"
	MethodOther    FollowUpMethod = "Other"
)

// FollowUpMethods lists all follow-up methods in display order.
var FollowUpMethods = []FollowUpMethod{MethodEmail, MethodLinkedIn, MethodCall, MethodOther}

// Recruiter holds the contact captured at the booth. All fields are
// optional; email format is only checked at the sign-in screens, not here.
type Recruiter struct {
	Name     string
	Email    string
	LinkedIn string
}

// FollowUp is one planned action for a company. Entries are identified by
// ID; order among siblings is insertion order and never renumbers.
type FollowUp struct {
	ID     string
	When   Date
	Method FollowUpMethod
	Note   string
}

// NewFollowUp returns a follow-up with a fresh id, the default method,
// and empty date and note.
func NewFollowUp() FollowUp {
	return FollowUp{
		ID:     uuid.NewString(),
		Method: MethodEmail,
	}
}

// Record is the canonical in-memory state of one company's tracked
// interaction. Records are values: edits never mutate in place, they
// produce a new record via ApplyEdit.
type Record struct {
	ID            string
	Company       string
	PositionType  PositionType
	PositionOther string // meaningful only while PositionType == PositionOther
	Recruiter     Recruiter
	Notes         string
	FollowUps     []FollowUp
	Status        Status
	StatusOther   string // meaningful only while Status == StatusOther
	Priority      Priority
	Reminder      Date
}

// NewRecord creates an empty record for a company. The company name comes
// from the add-company step; everything else starts at its default.
func NewRecord(company string) Record {
	return Record{
		ID:           uuid.NewString(),
		Company:      company,
		PositionType: PositionInternship,
		Status:       StatusNotApplied,
		Priority:     PriorityNone,
	}
}

// Validate enforces commit-point rules only. Edits are total and never
// validate; this runs when the user leaves the screen or taps continue.
func (r Record) Validate() error {
	if strings.TrimSpace(r.Company) == "" {
		return &common.ValidationError{Field: "company", Reason: "company name is required"}
	}
	return nil
}

// FindFollowUp returns the follow-up with the given id, if present.
func (r Record) FindFollowUp(id string) (FollowUp, bool) {
	for _, f := range r.FollowUps {
		if f.ID == id {
			return f, true
		}
	}
	return FollowUp{}, false
}
