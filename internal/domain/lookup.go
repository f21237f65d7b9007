package domain

type Apprenticeship struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	BranchID uint   `json:"branchId,omitempty"`
}

type Branch struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type Location struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// EventType is a reusable event template that pre-fills the creation form.
type EventType struct {
	TemplateID            uint   `json:"templateId"`
	Title                 string `json:"title"`
	Description           string `json:"description,omitempty"`
	LocationID            *uint  `json:"locationId,omitempty"`
	RegistrationsRequired bool   `json:"registrationsRequired"`
	StartingAt            string `json:"startingAt,omitempty"`
	EndingAt              string `json:"endingAt,omitempty"`
}
