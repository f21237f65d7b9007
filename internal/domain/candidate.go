package domain

import "time"

// Candidate statuses. "Favorit" and "Eliminiert" drive badge rendering in the
// dashboard, so the literal German values are part of the contract.
const (
	CandidateStatusFavorite   = "Favorit"
	CandidateStatusNormal     = "Normal"
	CandidateStatusEliminated = "Eliminiert"
)

type Candidate struct {
	ID              uint             `json:"id"`
	FirstName       string           `json:"firstName"`
	LastName        string           `json:"lastName"`
	Email           string           `json:"email"`
	Status          string           `json:"status"`
	Apprenticeships []Apprenticeship `json:"apprenticeships"`
	CreatedAt       time.Time        `json:"createdAt"`
}

func ValidCandidateStatus(status string) bool {
	switch status {
	case CandidateStatusFavorite, CandidateStatusNormal, CandidateStatusEliminated:
		return true
	}
	return false
}
