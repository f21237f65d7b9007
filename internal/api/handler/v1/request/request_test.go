package request

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequestValidate(t *testing.T) {
	valid := RegisterRequest{
		Email:           "anna@example.ch",
		Password:        "abcdef12",
		ConfirmPassword: "abcdef12",
		FirstName:       "Anna",
		LastName:        "Muster",
	}
	assert.NoError(t, valid.Validate())

	// The last name is optional, the first name is not.
	noLastName := valid
	noLastName.LastName = ""
	assert.NoError(t, noLastName.Validate())

	noFirstName := valid
	noFirstName.FirstName = ""
	assert.Error(t, noFirstName.Validate())

	lettersOnly := valid
	lettersOnly.Password = "abcdefgh"
	lettersOnly.ConfirmPassword = "abcdefgh"
	assert.ErrorIs(t, lettersOnly.Validate(), errInvalidPassword)

	tooShort := valid
	tooShort.Password = "ab1"
	tooShort.ConfirmPassword = "ab1"
	assert.ErrorIs(t, tooShort.Validate(), errInvalidPassword)

	mismatch := valid
	mismatch.ConfirmPassword = "abcdef13"
	assert.ErrorIs(t, mismatch.Validate(), errConfirmPasswordMismatch)
}

func TestEventRequestToForm_TimeConversions(t *testing.T) {
	req := EventRequest{
		Title:      "Infotag",
		StartingAt: "2026-03-14T09:30",
		EndingAt:   "2026-03-14",
		Duration:   "01:30",
	}

	form, err := req.ToForm()
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC), form.StartingAt)
	require.NotNil(t, form.EndingAt)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), *form.EndingAt)
	assert.Equal(t, "01:30:00", form.Duration)
}

func TestEventRequestToForm_RFC3339PassesThrough(t *testing.T) {
	req := EventRequest{
		Title:      "Messe",
		StartingAt: "2026-05-01T08:00:00Z",
		Duration:   "02:00:00",
	}

	form, err := req.ToForm()
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC), form.StartingAt)
	assert.Equal(t, "02:00:00", form.Duration)
	assert.Nil(t, form.EndingAt)
}

func TestEventRequestToForm_RejectsGarbageTimestamp(t *testing.T) {
	req := EventRequest{Title: "Messe", StartingAt: "morgen"}

	_, err := req.ToForm()
	assert.Error(t, err)
}

func TestEventRequestValidate(t *testing.T) {
	assert.Error(t, (&EventRequest{StartingAt: "2026-03-14T09:30"}).Validate())
	assert.Error(t, (&EventRequest{Title: "Infotag", StartingAt: "2026-03-14T09:30", Duration: "90min"}).Validate())
	assert.NoError(t, (&EventRequest{Title: "Infotag", StartingAt: "2026-03-14T09:30", Duration: "01:30"}).Validate())
}
