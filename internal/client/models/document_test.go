package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_RoundTrip(t *testing.T) {
	in := []CartLine{
		{Product: Product{ID: 1, Name: "Aspirin", Price: 9.5}, Quantity: 2},
		{Product: Product{ID: 7, Name: "Bandage", Price: 3.25}, Quantity: 1},
	}

	raw, err := MarshalDocument(in)
	require.NoError(t, err)

	var out []CartLine
	require.NoError(t, UnmarshalDocument(raw, &out))
	assert.Equal(t, in, out)
}

func TestDocument_UnknownVersionRejected(t *testing.T) {
	raw, err := json.Marshal(map[string]any{
		"schema_version": 99,
		"data":           []any{},
	})
	require.NoError(t, err)

	var out []Order
	err = UnmarshalDocument(raw, &out)
	require.ErrorIs(t, err, ErrUnknownSchema)
}

func TestDocument_MalformedEnvelopeRejected(t *testing.T) {
	var out []Account
	require.Error(t, UnmarshalDocument([]byte(`{"schema_version":`), &out))
}

func TestAccount_ProfileStripsPassword(t *testing.T) {
	now := time.Now().UTC()
	a := Account{ID: "u1", Name: "Ann", Email: "ann@x.com", PasswordHash: "h", CreatedAt: now}

	p := a.Profile()
	assert.Equal(t, Profile{ID: "u1", Name: "Ann", Email: "ann@x.com", CreatedAt: now}, p)

	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "password")
}
