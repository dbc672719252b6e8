package adapter

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "tgrep.dev/pkg/tgrep/internal/model"
)

func TestResultStore_StartsIdle(t *testing.T) {
	store := NewResultStore()

	outcome := store.Current()
	assert.Equal(t, m.Idle, outcome.Status)
	assert.Empty(t, outcome.Matches)
	assert.Zero(t, outcome.Generation)
}

func TestResultStore_PublishAppendsForCurrentGeneration(t *testing.T) {
	store := NewResultStore()

	require.True(t, store.Reset(1, "foo", m.Running))
	require.True(t, store.Publish(1, 1, m.Match{Path: "a.txt", Line: 1, Text: "foo"}))
	require.True(t, store.Publish(1, 1, m.Match{Path: "a.txt", Line: 3, Text: "foobar"}))
	require.True(t, store.SetStatus(1, m.Completed, ""))

	outcome := store.Current()
	assert.Equal(t, m.Generation(1), outcome.Generation)
	assert.Equal(t, "foo", outcome.Pattern)
	assert.Equal(t, m.Completed, outcome.Status)
	assert.Equal(t, 2, outcome.FilesScanned)
	require.Len(t, outcome.Matches, 2)
	assert.Equal(t, 1, outcome.Matches[0].Line)
	assert.Equal(t, 3, outcome.Matches[1].Line)
}

func TestResultStore_RejectsStaleGenerations(t *testing.T) {
	store := NewResultStore()

	require.True(t, store.Reset(1, "foo", m.Running))
	require.True(t, store.Reset(2, "food", m.Running))

	assert.False(t, store.Publish(1, 1, m.Match{Path: "late.txt", Line: 7, Text: "foo"}))
	assert.False(t, store.SetStatus(1, m.Completed, ""))
	assert.False(t, store.Reset(1, "foo", m.Running))

	outcome := store.Current()
	assert.Equal(t, m.Generation(2), outcome.Generation)
	assert.Equal(t, "food", outcome.Pattern)
	assert.Equal(t, m.Running, outcome.Status)
	assert.Empty(t, outcome.Matches)
}

func TestResultStore_NewerGenerationReplacesOutcome(t *testing.T) {
	store := NewResultStore()

	require.True(t, store.Reset(1, "foo", m.Running))
	require.True(t, store.Publish(1, 1, m.Match{Path: "a.txt", Line: 1, Text: "foo"}))
	require.True(t, store.Publish(3, 1, m.Match{Path: "b.txt", Line: 2, Text: "bar"}))

	outcome := store.Current()
	assert.Equal(t, m.Generation(3), outcome.Generation)
	assert.Equal(t, m.Running, outcome.Status)
	require.Len(t, outcome.Matches, 1)
	assert.Equal(t, m.Path("b.txt"), outcome.Matches[0].Path)
}

func TestResultStore_TerminalStatusFreezesGeneration(t *testing.T) {
	store := NewResultStore()

	require.True(t, store.Reset(1, "foo", m.Running))
	require.True(t, store.SetStatus(1, m.Failed, "no such path: /does/not/exist"))

	assert.False(t, store.Publish(1, 1, m.Match{Path: "a.txt", Line: 1}))
	assert.False(t, store.SetStatus(1, m.Completed, ""))

	outcome := store.Current()
	assert.Equal(t, m.Failed, outcome.Status)
	assert.Equal(t, "no such path: /does/not/exist", outcome.Reason)
	assert.Empty(t, outcome.Matches)
}

func TestResultStore_SnapshotIsIsolatedFromLaterPublishes(t *testing.T) {
	store := NewResultStore()

	require.True(t, store.Reset(1, "x", m.Running))
	require.True(t, store.Publish(1, 1, m.Match{Path: "a.txt", Line: 1}))

	snapshot := store.Current()
	require.True(t, store.Publish(1, 1, m.Match{Path: "a.txt", Line: 2}))

	assert.Len(t, snapshot.Matches, 1)
	assert.Len(t, store.Current().Matches, 2)

	// Appending to a snapshot must not leak into the store.
	_ = append(snapshot.Matches, m.Match{Path: "rogue.txt"})
	assert.Equal(t, m.Path("a.txt"), store.Current().Matches[1].Path)
}

func TestResultStore_ConcurrentReadersSeeConsistentSnapshots(t *testing.T) {
	store := NewResultStore()
	require.True(t, store.Reset(1, "x", m.Running))

	const writes = 200

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		for i := range writes {
			store.Publish(1, 1, m.Match{Path: m.Path(fmt.Sprintf("f%03d", i)), Line: i + 1})
		}

		store.SetStatus(1, m.Completed, "")
	}()

	for range 4 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for {
				outcome := store.Current()
				// Each published batch adds one file and one match together.
				assert.Equal(t, outcome.FilesScanned, len(outcome.Matches))

				for i, match := range outcome.Matches {
					assert.Equal(t, i+1, match.Line)
				}

				if outcome.Status == m.Completed {
					return
				}
			}
		}()
	}

	wg.Wait()
	assert.Len(t, store.Current().Matches, writes)
}
