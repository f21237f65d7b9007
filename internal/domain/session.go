package domain

// Session is the authenticated identity mirrored in memory for synchronous
// checks. The backing HTTP-only cookie stays opaque to the dashboard.
type Session struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Admin bool   `json:"isAdmin"`
}

func (s Session) IsAdmin() bool {
	return s.Admin || s.Role == RoleAdmin
}
