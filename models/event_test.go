package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEventDate(t *testing.T) {
	got, err := ParseEventDate("4-7-2025")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.July, 4, 0, 0, 0, 0, time.Local), got)

	got, err = ParseEventDate("28-12-2026")
	require.NoError(t, err)
	assert.Equal(t, 28, got.Day())
	assert.Equal(t, time.December, got.Month())
}

func TestParseEventDateRejectsGarbage(t *testing.T) {
	for _, s := range []string{
		"",
		"sometime soon",
		"2026/01/05",
		"1-2",
		"1-2-3-4",
		"x-7-2025",
		"4-y-2025",
		"4-7-z",
		"0-7-2025",
		"32-7-2025",
		"4-13-2025",
	} {
		_, err := ParseEventDate(s)
		assert.ErrorIs(t, err, ErrInvalidInput, "input %q", s)
	}
}

func TestHasParticipant(t *testing.T) {
	e := Event{Participants: []string{"a", "b"}}
	assert.True(t, e.HasParticipant("a"))
	assert.False(t, e.HasParticipant("c"))

	empty := Event{}
	assert.False(t, empty.HasParticipant("a"))
}

func TestEventPatchIsEmpty(t *testing.T) {
	assert.True(t, (&EventPatch{}).IsEmpty())

	title := "x"
	assert.False(t, (&EventPatch{Title: &title}).IsEmpty())

	max := 5
	assert.False(t, (&EventPatch{MaxParticipants: &max}).IsEmpty())
}
