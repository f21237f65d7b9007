package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentbinder/dashboard/internal/backend"
	"github.com/talentbinder/dashboard/internal/domain"
)

type fakeCandidateAPI struct {
	candidates      []domain.Candidate
	lastParams      backend.CandidateListParams
	createdForm     backend.CandidateForm
	apprenticeships map[uint][]domain.Apprenticeship
	addErr          map[uint]error
	adds            []uint
}

func (f *fakeCandidateAPI) GetAll(ctx context.Context, params backend.CandidateListParams) ([]domain.Candidate, error) {
	f.lastParams = params
	return f.candidates, nil
}

func (f *fakeCandidateAPI) Create(ctx context.Context, form backend.CandidateForm) (domain.Candidate, error) {
	f.createdForm = form
	return domain.Candidate{ID: 50, Status: form.Status}, nil
}

func (f *fakeCandidateAPI) Update(ctx context.Context, id uint, form backend.CandidateForm) error {
	return nil
}

func (f *fakeCandidateAPI) Delete(ctx context.Context, id uint) error {
	return nil
}

func (f *fakeCandidateAPI) Apprenticeships(ctx context.Context, candidateID uint) ([]domain.Apprenticeship, error) {
	return f.apprenticeships[candidateID], nil
}

func (f *fakeCandidateAPI) AddApprenticeship(ctx context.Context, candidateID, apprenticeshipID uint) error {
	if err := f.addErr[apprenticeshipID]; err != nil {
		return err
	}
	if f.apprenticeships == nil {
		f.apprenticeships = make(map[uint][]domain.Apprenticeship)
	}
	f.apprenticeships[candidateID] = append(f.apprenticeships[candidateID], domain.Apprenticeship{ID: apprenticeshipID})
	f.adds = append(f.adds, apprenticeshipID)
	return nil
}

func (f *fakeCandidateAPI) RemoveApprenticeship(ctx context.Context, candidateID, apprenticeshipID uint) error {
	members := f.apprenticeships[candidateID]
	for i, m := range members {
		if m.ID == apprenticeshipID {
			f.apprenticeships[candidateID] = append(members[:i], members[i+1:]...)
			break
		}
	}
	return nil
}

func TestListCandidates_PassesParamsAndDedupes(t *testing.T) {
	api := &fakeCandidateAPI{candidates: []domain.Candidate{
		{ID: 1}, {ID: 2}, {ID: 1},
	}}
	svc := NewCandidateService(api)

	params := backend.CandidateListParams{Search: "anna", Status: "Favorit", SortBy: "created_at"}
	candidates, err := svc.ListCandidates(context.Background(), params)
	require.NoError(t, err)

	assert.Len(t, candidates, 2)
	assert.Equal(t, params, api.lastParams)
}

func TestCreateCandidate_DefaultsStatus(t *testing.T) {
	api := &fakeCandidateAPI{}
	svc := NewCandidateService(api)

	_, err := svc.CreateCandidate(context.Background(), backend.CandidateForm{FirstName: "Anna"}, nil)
	require.NoError(t, err)

	assert.Equal(t, domain.CandidateStatusNormal, api.createdForm.Status)
}

func TestCreateCandidate_FlushesPendingWithPartialSuccess(t *testing.T) {
	api := &fakeCandidateAPI{
		addErr: map[uint]error{12: errors.New("gone")},
	}
	svc := NewCandidateService(api)

	created, err := svc.CreateCandidate(context.Background(), backend.CandidateForm{FirstName: "Anna"}, []uint{7, 12})
	require.NoError(t, err)

	assert.Equal(t, uint(50), created.ID)
	assert.Equal(t, []uint{7}, api.adds)
}

func TestCreateCandidate_RejectsDuplicateStagedApprenticeship(t *testing.T) {
	api := &fakeCandidateAPI{}
	svc := NewCandidateService(api)

	_, err := svc.CreateCandidate(context.Background(), backend.CandidateForm{FirstName: "Anna"}, []uint{7, 7})

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, msgDuplicateApprenticeship, ve.Message)
	// Staging fails before the candidate reaches the backend.
	assert.Empty(t, api.createdForm.FirstName)
}

func TestAddApprenticeship_RejectsDuplicateLocally(t *testing.T) {
	api := &fakeCandidateAPI{
		apprenticeships: map[uint][]domain.Apprenticeship{3: {{ID: 7}}},
	}
	svc := NewCandidateService(api)

	_, err := svc.AddApprenticeship(context.Background(), 3, 7)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, msgDuplicateApprenticeship, ve.Message)
	assert.Empty(t, api.adds)
}

func TestAddApprenticeship_ReturnsServerTruth(t *testing.T) {
	api := &fakeCandidateAPI{
		apprenticeships: map[uint][]domain.Apprenticeship{3: {{ID: 7}}},
	}
	svc := NewCandidateService(api)

	members, err := svc.AddApprenticeship(context.Background(), 3, 8)
	require.NoError(t, err)

	assert.Equal(t, []domain.Apprenticeship{{ID: 7}, {ID: 8}}, members)
}
