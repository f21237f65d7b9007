package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthClient_RegisterSendsNameFields(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &body))
		w.Write([]byte(`{"success":true,"user":{"id":1,"email":"anna@example.ch"}}`))
	})

	ac := NewAuthClient(client)
	sess, _, err := ac.Register(context.Background(), Credentials{
		Email:     "anna@example.ch",
		Password:  "abcdef12",
		FirstName: "Anna",
		LastName:  "Muster",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), sess.ID)

	assert.Equal(t, "Anna", body["first_name"])
	assert.Equal(t, "Muster", body["last_name"])
}

func TestAuthClient_LoginOmitsNameFields(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &body))
		w.Write([]byte(`{"success":true,"user":{"id":1}}`))
	})

	ac := NewAuthClient(client)
	_, _, err := ac.Login(context.Background(), Credentials{Email: "anna@example.ch", Password: "abcdef12"})
	require.NoError(t, err)

	assert.NotContains(t, body, "first_name")
	assert.NotContains(t, body, "last_name")
}
