package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/talentbinder/dashboard/internal/domain"
)

type ReportClient struct {
	c *Client
}

func NewReportClient(c *Client) *ReportClient {
	return &ReportClient{c: c}
}

type reportPayload struct {
	AttendanceID       uint   `json:"attendanceId"`
	AttendanceIDSnake  uint   `json:"attendance_id"`
	ReportID           uint   `json:"reportId"`
	EventID            uint   `json:"eventId"`
	EventTitle         string `json:"eventTitle"`
	CandidateID        uint   `json:"candidateId"`
	CandidateIDSnake   uint   `json:"candidate_id"`
	CandidateFirstName string `json:"candidateFirstName"`
	CandidateLastName  string `json:"candidateLastName"`
	CandidateEmail     string `json:"candidateEmail"`
	Status             string `json:"status"`
	Attendance         string `json:"attendance"`
	Comment            string `json:"comment"`
	CreatedAt          string `json:"createdAt"`
	CreatedBy          uint   `json:"createdBy"`
	CreatedBySnake     uint   `json:"created_by"`
}

func (p reportPayload) toDomain() domain.Report {
	attendanceID := p.AttendanceID
	if attendanceID == 0 {
		attendanceID = p.AttendanceIDSnake
	}
	if attendanceID == 0 {
		attendanceID = p.ReportID
	}

	candidateID := p.CandidateID
	if candidateID == 0 {
		candidateID = p.CandidateIDSnake
	}

	createdBy := p.CreatedBy
	if createdBy == 0 {
		createdBy = p.CreatedBySnake
	}

	return domain.Report{
		AttendanceID:       attendanceID,
		EventID:            p.EventID,
		EventTitle:         p.EventTitle,
		CandidateID:        candidateID,
		CandidateFirstName: p.CandidateFirstName,
		CandidateLastName:  p.CandidateLastName,
		CandidateEmail:     p.CandidateEmail,
		Status:             p.Status,
		Attendance:         p.Attendance,
		Comment:            p.Comment,
		CreatedAt:          parseTime(p.CreatedAt),
		CreatedBy:          createdBy,
	}
}

func (rc *ReportClient) EventReports(ctx context.Context, eventID uint) ([]domain.Report, error) {
	resp, raw, err := rc.c.do(ctx, http.MethodGet, fmt.Sprintf("/events/%d/attendance", eventID), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("reports.EventReports -> %w", err)
	}

	var envelope struct {
		Reports []reportPayload `json:"reports"`
	}
	if err := decodeEnvelope(resp, raw, &envelope); err != nil {
		return nil, err
	}

	reports := make([]domain.Report, 0, len(envelope.Reports))
	for _, p := range envelope.Reports {
		reports = append(reports, p.toDomain())
	}

	return reports, nil
}

func (rc *ReportClient) Create(ctx context.Context, eventID uint, form domain.ReportForm) (domain.Report, error) {
	body := map[string]any{
		"candidate_id": form.CandidateID,
		"status":       form.Status,
		"attendance":   form.Attendance,
		"comment":      form.Comment,
	}
	resp, raw, err := rc.c.do(ctx, http.MethodPost, fmt.Sprintf("/events/%d/attendance", eventID), nil, body)
	if err != nil {
		return domain.Report{}, fmt.Errorf("reports.Create -> %w", err)
	}

	var envelope struct {
		Report reportPayload `json:"report"`
	}
	if err := decodeEnvelope(resp, raw, &envelope); err != nil {
		return domain.Report{}, err
	}

	return envelope.Report.toDomain(), nil
}

func (rc *ReportClient) Update(ctx context.Context, eventID, candidateID uint, form domain.ReportForm) (domain.Report, error) {
	body := map[string]any{
		"status":     form.Status,
		"attendance": form.Attendance,
		"comment":    form.Comment,
	}
	resp, raw, err := rc.c.do(ctx, http.MethodPut, fmt.Sprintf("/events/%d/attendance/%d", eventID, candidateID), nil, body)
	if err != nil {
		return domain.Report{}, fmt.Errorf("reports.Update -> %w", err)
	}

	var envelope struct {
		Report reportPayload `json:"report"`
	}
	if err := decodeEnvelope(resp, raw, &envelope); err != nil {
		return domain.Report{}, err
	}

	return envelope.Report.toDomain(), nil
}

func (rc *ReportClient) Delete(ctx context.Context, eventID, candidateID uint) error {
	resp, raw, err := rc.c.do(ctx, http.MethodDelete, fmt.Sprintf("/events/%d/attendance/%d", eventID, candidateID), nil, nil)
	if err != nil {
		return fmt.Errorf("reports.Delete -> %w", err)
	}

	return decodeEnvelope(resp, raw, nil)
}
