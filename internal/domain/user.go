package domain

import "time"

// RoleAdmin is the role with unrestricted access to candidate, user and
// audit-log views ("Berufsbilder" in this domain).
const RoleAdmin = "berufsbilder"

type User struct {
	ID        uint       `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Role      string     `json:"role"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// Recruiter is an account assigned as responsible party for an event.
type Recruiter struct {
	AccountID uint   `json:"accountId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}
