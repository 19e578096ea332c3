package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeforeCreateAssignsID(t *testing.T) {
	b := &Base{}
	require.NoError(t, b.BeforeCreate(nil))
	assert.Len(t, b.ID, 36)

	keep := &Base{ID: "abc123"}
	require.NoError(t, keep.BeforeCreate(nil))
	assert.Equal(t, "abc123", keep.ID)
}

func TestUserNeverSerializesPassword(t *testing.T) {
	u := User{Base: Base{ID: "u1"}, Email: "a@b.c", Password: "$2a$10$hash", Role: RoleUser}

	body, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "password")
	assert.NotContains(t, string(body), "$2a$10$hash")
}

func TestUserProfileFields(t *testing.T) {
	u := User{
		Base:       Base{ID: "u1"},
		Email:      "a@b.c",
		Password:   "secret",
		Role:       RoleAdmin,
		Timestamps: Timestamps{CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)},
	}

	body, err := json.Marshal(u.Profile())
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(body, &fields))

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{
		"id", "email", "name", "phone", "role", "address",
		"apartment", "city", "state", "zipCode", "country", "createdAt",
	}, keys)
	assert.Len(t, UserProfileColumns, len(keys))
}
