package domain

import "time"

// Attendance values for a report, as shown in the dashboard.
const (
	AttendanceRegistered  = "Angemeldet"
	AttendancePresent     = "Anwesend"
	AttendanceAbsent      = "Abwesend"
	AttendanceSpontaneous = "Spontan"
)

// Report is a per-candidate, per-event, per-author assessment filed after an
// event. A candidate may accumulate one report per recruiter; only the author
// (or an admin) may edit a given report.
type Report struct {
	AttendanceID       uint      `json:"attendanceId"`
	EventID            uint      `json:"eventId"`
	EventTitle         string    `json:"eventTitle"`
	CandidateID        uint      `json:"candidateId"`
	CandidateFirstName string    `json:"candidateFirstName"`
	CandidateLastName  string    `json:"candidateLastName"`
	CandidateEmail     string    `json:"candidateEmail"`
	Status             string    `json:"status"`
	Attendance         string    `json:"attendance"`
	Comment            string    `json:"comment,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	CreatedBy          uint      `json:"createdBy"`
}

type ReportForm struct {
	CandidateID uint   `json:"candidateId"`
	Status      string `json:"status"`
	Attendance  string `json:"attendance"`
	Comment     string `json:"comment,omitempty"`
}

func ValidAttendance(attendance string) bool {
	switch attendance {
	case AttendanceRegistered, AttendancePresent, AttendanceAbsent, AttendanceSpontaneous:
		return true
	}
	return false
}
