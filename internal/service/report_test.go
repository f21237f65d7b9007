package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentbinder/dashboard/internal/domain"
)

type fakeReportAPI struct {
	reports []domain.Report
	updated bool
}

func (f *fakeReportAPI) EventReports(ctx context.Context, eventID uint) ([]domain.Report, error) {
	return f.reports, nil
}

func (f *fakeReportAPI) Create(ctx context.Context, eventID uint, form domain.ReportForm) (domain.Report, error) {
	return domain.Report{AttendanceID: 1, CandidateID: form.CandidateID}, nil
}

func (f *fakeReportAPI) Update(ctx context.Context, eventID, candidateID uint, form domain.ReportForm) (domain.Report, error) {
	f.updated = true
	return domain.Report{AttendanceID: 1, CandidateID: candidateID, Status: form.Status}, nil
}

func (f *fakeReportAPI) Delete(ctx context.Context, eventID, candidateID uint) error {
	return nil
}

func validForm(candidateID uint) domain.ReportForm {
	return domain.ReportForm{
		CandidateID: candidateID,
		Status:      domain.CandidateStatusNormal,
		Attendance:  domain.AttendancePresent,
	}
}

func TestListEventReports_DedupesByAttendanceID(t *testing.T) {
	api := &fakeReportAPI{reports: []domain.Report{
		{AttendanceID: 1}, {AttendanceID: 2}, {AttendanceID: 1},
	}}
	svc := NewReportService(api, &fakeSessions{})

	reports, err := svc.ListEventReports(context.Background(), 1)
	require.NoError(t, err)

	assert.Len(t, reports, 2)
}

func TestCreateReport_RejectsInvalidValues(t *testing.T) {
	svc := NewReportService(&fakeReportAPI{}, &fakeSessions{})

	_, err := svc.CreateReport(context.Background(), 1, domain.ReportForm{
		CandidateID: 4,
		Status:      "Superstar",
		Attendance:  domain.AttendancePresent,
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, msgInvalidStatus, ve.Message)

	_, err = svc.CreateReport(context.Background(), 1, domain.ReportForm{
		CandidateID: 4,
		Status:      domain.CandidateStatusNormal,
		Attendance:  "vielleicht",
	})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, msgInvalidAttendance, ve.Message)
}

func TestUpdateReport_OnlyAuthorMayEdit(t *testing.T) {
	api := &fakeReportAPI{reports: []domain.Report{
		{AttendanceID: 1, CandidateID: 4, CreatedBy: 9},
	}}
	svc := NewReportService(api, &fakeSessions{
		session: &domain.Session{ID: 3, Role: "recruiter"},
	})

	_, err := svc.UpdateReport(context.Background(), "tok", 1, 4, validForm(4))
	assert.ErrorIs(t, err, ErrForbidden)
	assert.False(t, api.updated)
}

func TestUpdateReport_AuthorEditsOwnReport(t *testing.T) {
	api := &fakeReportAPI{reports: []domain.Report{
		{AttendanceID: 1, CandidateID: 4, CreatedBy: 3},
		{AttendanceID: 2, CandidateID: 4, CreatedBy: 9},
	}}
	svc := NewReportService(api, &fakeSessions{
		session: &domain.Session{ID: 3, Role: "recruiter"},
	})

	_, err := svc.UpdateReport(context.Background(), "tok", 1, 4, validForm(4))
	require.NoError(t, err)
	assert.True(t, api.updated)
}

func TestUpdateReport_AdminEditsAnyReport(t *testing.T) {
	api := &fakeReportAPI{reports: []domain.Report{
		{AttendanceID: 1, CandidateID: 4, CreatedBy: 9},
	}}
	svc := NewReportService(api, &fakeSessions{
		session: &domain.Session{ID: 3, Role: domain.RoleAdmin},
	})

	_, err := svc.UpdateReport(context.Background(), "tok", 1, 4, validForm(4))
	require.NoError(t, err)
	assert.True(t, api.updated)
}

func TestUpdateReport_NoSession(t *testing.T) {
	svc := NewReportService(&fakeReportAPI{}, &fakeSessions{})

	_, err := svc.UpdateReport(context.Background(), "tok", 1, 4, validForm(4))
	assert.ErrorIs(t, err, ErrAuthenticationRequired)
}
