package domain

import "time"

type Event struct {
	ID                     uint       `json:"id"`
	Title                  string     `json:"title"`
	Description            string     `json:"description"`
	StartingAt             time.Time  `json:"startingAt"`
	EndingAt               *time.Time `json:"endingAt,omitempty"`
	Duration               string     `json:"duration,omitempty"`
	BranchID               *uint      `json:"branchId,omitempty"`
	TemplateID             *uint      `json:"templateId,omitempty"`
	LocationID             *uint      `json:"locationId,omitempty"`
	RegistrationRequired   bool       `json:"registrationRequired"`
	InvitationsSendingAt   *time.Time `json:"invitationsSendingAt,omitempty"`
	RegistrationsClosingAt *time.Time `json:"registrationsClosingAt,omitempty"`
	CreatedAt              time.Time  `json:"createdAt"`
	CreatedByAccountID     uint       `json:"createdByAccountId"`
	CreatedByFirstName     string     `json:"createdByFirstName"`
	CreatedByLastName      string     `json:"createdByLastName"`

	// The remaining fields are derived per render and never sent back to the
	// backend: the count comes from the registrations endpoint, the recruiter
	// list from the event roster, the names from the lookup collections.
	RegistrationsCount int         `json:"registrationsCount"`
	Recruiters         []Recruiter `json:"recruiters,omitempty"`
	LocationName       string      `json:"locationName,omitempty"`
	BranchName         string      `json:"branchName,omitempty"`
}

// Registration is a candidate's enrollment in a specific event.
type Registration struct {
	CandidateID uint   `json:"candidateId"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
}

// EventForm carries the writable event fields. Timestamps are already in wire
// format here; conversion from form entry formats happens at the HTTP layer.
type EventForm struct {
	Title                  string     `json:"title"`
	Description            string     `json:"description"`
	StartingAt             time.Time  `json:"startingAt"`
	EndingAt               *time.Time `json:"endingAt,omitempty"`
	Duration               string     `json:"duration,omitempty"`
	BranchID               *uint      `json:"branchId,omitempty"`
	TemplateID             *uint      `json:"templateId,omitempty"`
	LocationID             *uint      `json:"locationId,omitempty"`
	RegistrationRequired   bool       `json:"registrationRequired"`
	InvitationsSendingAt   *time.Time `json:"invitationsSendingAt,omitempty"`
	RegistrationsClosingAt *time.Time `json:"registrationsClosingAt,omitempty"`
}
