package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/talentbinder/dashboard/internal/domain"
)

type ReportRequest struct {
	CandidateID uint   `json:"candidateId"`
	Status      string `json:"status"`
	Attendance  string `json:"attendance"`
	Comment     string `json:"comment,omitempty"`
}

func (req *ReportRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required, validation.In(
			domain.CandidateStatusFavorite,
			domain.CandidateStatusNormal,
			domain.CandidateStatusEliminated,
		)),
		validation.Field(&req.Attendance, validation.Required, validation.In(
			domain.AttendanceRegistered,
			domain.AttendancePresent,
			domain.AttendanceAbsent,
			domain.AttendanceSpontaneous,
		)),
		validation.Field(&req.Comment, validation.Length(0, 2000)),
	)
}

func (req *ReportRequest) ToForm() domain.ReportForm {
	return domain.ReportForm{
		CandidateID: req.CandidateID,
		Status:      req.Status,
		Attendance:  req.Attendance,
		Comment:     req.Comment,
	}
}
