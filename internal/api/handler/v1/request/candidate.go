package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/talentbinder/dashboard/internal/backend"
	"github.com/talentbinder/dashboard/internal/domain"
)

type CandidateRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Status    string `json:"status"`

	// ApprenticeshipIDs are staged assignments, flushed after the candidate is
	// created. Only honored on create.
	ApprenticeshipIDs []uint `json:"apprenticeshipIds,omitempty"`
}

func (req *CandidateRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FirstName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.LastName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Status, validation.In(
			domain.CandidateStatusFavorite,
			domain.CandidateStatusNormal,
			domain.CandidateStatusEliminated,
		)),
	)
}

func (req *CandidateRequest) ToForm() backend.CandidateForm {
	return backend.CandidateForm{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Status:    req.Status,
	}
}

type ApprenticeshipMemberRequest struct {
	ApprenticeshipID uint `json:"apprenticeshipId"`
}
