package vault

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureList() *List {
	return NewList(
		Credential{Name: "brad", Secret: "supersecret"},
		Credential{Name: "sarah", Secret: "1234password"},
	)
}

func TestLookupSecret(t *testing.T) {
	t.Parallel()
	list := fixtureList()

	entry, found := list.LookupSecret("supersecret")
	require.True(t, found)
	assert.Equal(t, "brad", entry.Name)
	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.CreatedAt.IsZero())

	entry, found = list.LookupSecret("1234password")
	require.True(t, found)
	assert.Equal(t, "sarah", entry.Name)
}

func TestLookupSecretAbsent(t *testing.T) {
	t.Parallel()
	list := fixtureList()

	entry, found := list.LookupSecret("nonexistent")
	assert.False(t, found)
	assert.Equal(t, Entry{}, entry)
	// the list is never mutated by a lookup.
	assert.Equal(t, 2, list.Len())
}

func TestLookupSecretExactMatch(t *testing.T) {
	t.Parallel()
	list := fixtureList()

	// case-sensitive, no normalization.
	_, found := list.LookupSecret("SUPERSECRET")
	assert.False(t, found)
	_, found = list.LookupSecret(" supersecret")
	assert.False(t, found)
	_, found = list.LookupSecret("supersecret ")
	assert.False(t, found)
}

func TestLookupSecretFirstMatchWins(t *testing.T) {
	t.Parallel()
	list := NewList(
		Credential{Name: "first", Secret: "shared"},
		Credential{Name: "second", Secret: "shared"},
	)
	entry, found := list.LookupSecret("shared")
	require.True(t, found)
	assert.Equal(t, "first", entry.Name)
}

func TestAddAssignsIdentity(t *testing.T) {
	t.Parallel()
	list := NewList()
	entry := list.Add(Credential{Name: "brad", Secret: "supersecret"})
	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.CreatedAt.IsZero())
	assert.Equal(t, 1, list.Len())

	given := Credential{ID: "fixed", Name: "sarah", Secret: "x", CreatedAt: time.Unix(10, 0)}
	entry = list.Add(given)
	assert.Equal(t, "fixed", entry.ID)
	assert.Equal(t, time.Unix(10, 0), entry.CreatedAt)
}

func TestEntriesAreRedacted(t *testing.T) {
	t.Parallel()
	entries := fixtureList().Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "brad", entries[0].Name)
	assert.Equal(t, "sarah", entries[1].Name)
}

func TestCreatedAtString(t *testing.T) {
	t.Parallel()
	entry := Entry{CreatedAt: time.Date(2024, 3, 9, 14, 30, 5, 0, time.UTC)}

	out, err := entry.CreatedAtString("")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-09 14:30:05", out)

	out, err = entry.CreatedAtString("%Y/%m/%d")
	require.NoError(t, err)
	assert.Equal(t, "2024/03/09", out)

	_, err = entry.CreatedAtString("%Q")
	assert.Error(t, err)
}
