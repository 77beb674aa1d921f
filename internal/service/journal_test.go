package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidewell/tidewell/internal/repository"
)

func TestJournalWordCountComputedAtWrite(t *testing.T) {
	env := setupEnv(t)

	entry, err := env.journal.Create(JournalInput{
		Content: "# Today\n\nFelt **calm** after the morning walk.",
	})
	require.NoError(t, err)
	// "Today Felt calm after the morning walk." = 7 words
	assert.Equal(t, 7, entry.WordCount)

	stored, err := env.journal.ByID(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, stored.WordCount)
}

func TestJournalUpdateRecomputesWordCountOnlyWithContent(t *testing.T) {
	env := setupEnv(t)

	entry, err := env.journal.Create(JournalInput{Content: "one two three"})
	require.NoError(t, err)
	assert.Equal(t, 3, entry.WordCount)

	// Updating the title alone leaves the count untouched.
	title := "Later"
	require.NoError(t, env.journal.Update(entry.ID, repository.JournalUpdate{Title: &title}))

	stored, err := env.journal.ByID(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.WordCount)
	require.NotNil(t, stored.Title)
	assert.Equal(t, "Later", *stored.Title)

	// Updating the content recomputes it.
	content := "now there are exactly five"
	require.NoError(t, env.journal.Update(entry.ID, repository.JournalUpdate{Content: &content}))

	stored, err = env.journal.ByID(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.WordCount)
}

func TestJournalStats(t *testing.T) {
	env := setupEnv(t)

	_, err := env.journal.Create(JournalInput{Content: "four words right here"})
	require.NoError(t, err)
	_, err = env.journal.Create(JournalInput{Content: "two words"})
	require.NoError(t, err)

	stats, err := env.journal.Stats(7)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Entries)
	assert.Equal(t, 6, stats.TotalWords)
	assert.InDelta(t, 3.0, stats.AverageWords, 0.001)
}
