package response

import "github.com/talentbinder/dashboard/internal/domain"

type EventListResponse struct {
	Events []domain.Event `json:"events"`
}

type RecruiterListResponse struct {
	Recruiters []domain.Recruiter `json:"recruiters"`
}

type RegistrationListResponse struct {
	Count         int                   `json:"count"`
	Registrations []domain.Registration `json:"registrations"`
}

type CandidateListResponse struct {
	Candidates []domain.Candidate `json:"candidates"`
}

type ApprenticeshipListResponse struct {
	Apprenticeships []domain.Apprenticeship `json:"apprenticeships"`
}

type UserListResponse struct {
	Users []domain.User `json:"users"`
}

type ReportListResponse struct {
	Reports []domain.Report `json:"reports"`
}

type BranchListResponse struct {
	Branches []domain.Branch `json:"branches"`
}

type LocationListResponse struct {
	Locations []domain.Location `json:"locations"`
}

type EventTypeListResponse struct {
	EventTypes []domain.EventType `json:"eventTypes"`
}
