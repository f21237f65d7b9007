package response

import "github.com/talentbinder/dashboard/internal/domain"

type SessionResponse struct {
	User domain.Session `json:"user"`
}

type AdminStatusResponse struct {
	IsAdmin bool `json:"isAdmin"`
}

type LDAPStatusResponse struct {
	Available bool `json:"ldapAvailable"`
}
