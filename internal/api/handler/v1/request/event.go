package request

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/talentbinder/dashboard/internal/domain"
)

var durationExp = regexp.MustCompile(`^\d{1,2}:\d{2}(:\d{2})?$`)

type EventRequest struct {
	Title                  string `json:"title"`
	Description            string `json:"description"`
	StartingAt             string `json:"startingAt"`
	EndingAt               string `json:"endingAt,omitempty"`
	Duration               string `json:"duration,omitempty"`
	BranchID               *uint  `json:"branchId,omitempty"`
	TemplateID             *uint  `json:"templateId,omitempty"`
	LocationID             *uint  `json:"locationId,omitempty"`
	RegistrationRequired   bool   `json:"registrationRequired"`
	InvitationsSendingAt   string `json:"invitationsSendingAt,omitempty"`
	RegistrationsClosingAt string `json:"registrationsClosingAt,omitempty"`

	// RecruiterIDs are staged assignments, flushed after the event is created.
	// Only honored on create.
	RecruiterIDs []uint `json:"recruiterIds,omitempty"`
}

func (req *EventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Description, validation.Length(0, 2000)),
		validation.Field(&req.StartingAt, validation.Required),
		validation.Field(&req.Duration, validation.Match(durationExp)),
	)
}

// ToForm converts browser entry formats to the wire format the backend
// expects.
func (req *EventRequest) ToForm() (domain.EventForm, error) {
	startingAt, err := parseFormTime(req.StartingAt)
	if err != nil {
		return domain.EventForm{}, err
	}
	endingAt, err := parseFormTimePtr(req.EndingAt)
	if err != nil {
		return domain.EventForm{}, err
	}
	invitationsSendingAt, err := parseFormTimePtr(req.InvitationsSendingAt)
	if err != nil {
		return domain.EventForm{}, err
	}
	registrationsClosingAt, err := parseFormTimePtr(req.RegistrationsClosingAt)
	if err != nil {
		return domain.EventForm{}, err
	}

	return domain.EventForm{
		Title:                  req.Title,
		Description:            req.Description,
		StartingAt:             startingAt,
		EndingAt:               endingAt,
		Duration:               normalizeDuration(req.Duration),
		BranchID:               req.BranchID,
		TemplateID:             req.TemplateID,
		LocationID:             req.LocationID,
		RegistrationRequired:   req.RegistrationRequired,
		InvitationsSendingAt:   invitationsSendingAt,
		RegistrationsClosingAt: registrationsClosingAt,
	}, nil
}

type RosterMemberRequest struct {
	RecruiterID uint `json:"recruiterId"`
}

type RegistrationRequest struct {
	CandidateID uint `json:"candidateId"`
}
