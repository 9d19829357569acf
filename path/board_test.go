package path_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bendworks/loopline/path"
)

// restoreChain builds a board holding the chain keys[0]–keys[1]–…–keys[n-1]
// through the snapshot contract.
func restoreChain(size int, keys ...string) *path.Board {
	conns := make(map[string][]string, len(keys))
	for i, key := range keys {
		links := []string{}
		if i > 0 {
			links = append(links, keys[i-1])
		}
		if i < len(keys)-1 {
			links = append(links, keys[i+1])
		}
		conns[key] = links
	}
	b := path.NewBoard(size)
	b.Restore(keys, conns)

	return b
}

// TestBoard_EraseRemovesBacklinks checks Erase drops the cell and every
// neighbor's link back to it.
func TestBoard_EraseRemovesBacklinks(t *testing.T) {
	b := restoreChain(4, "0,0", "0,1", "0,2")
	b.Erase("0,1")

	assert.False(t, b.Drawn("0,1"))
	assert.Equal(t, 0, b.Degree("0,0"))
	assert.Equal(t, 0, b.Degree("0,2"))
}

// TestBoard_CleanupOrphansFixedPoint verifies transitive orphan removal and
// idempotence: a second run changes nothing.
func TestBoard_CleanupOrphansFixedPoint(t *testing.T) {
	b := restoreChain(4, "0,0", "0,1", "0,2")
	b.Erase("0,1") // strands both chain ends

	b.CleanupOrphans()
	once := b.Connections()
	assert.Empty(t, once)

	b.CleanupOrphans()
	assert.Equal(t, once, b.Connections())
}

// TestBoard_SnapshotRestoreRoundTrip checks a snapshot rebuilds an
// indistinguishable graph.
func TestBoard_SnapshotRestoreRoundTrip(t *testing.T) {
	b := restoreChain(4, "1,0", "1,1", "2,1", "2,2")

	cells := b.DrawnCells()
	conns := b.Connections()

	restored := path.NewBoard(4)
	restored.Restore(cells, conns)
	assert.Equal(t, b.DrawnCells(), restored.DrawnCells())
	assert.Equal(t, b.Connections(), restored.Connections())
}

// TestBoard_AccessorsCopy ensures Connections and Links hand out copies the
// caller can mutate freely.
func TestBoard_AccessorsCopy(t *testing.T) {
	b := restoreChain(4, "0,0", "0,1")

	conns := b.Connections()
	conns["0,0"][0] = "9,9"
	links := b.Links("0,0")
	require.Len(t, links, 1)
	assert.Equal(t, "0,1", links[0])

	links[0] = "8,8"
	assert.Equal(t, "0,1", b.Links("0,0")[0])
}

// TestBoard_Clear empties everything.
func TestBoard_Clear(t *testing.T) {
	b := restoreChain(4, "0,0", "0,1", "0,2")
	b.Clear()
	assert.Zero(t, b.DrawnCount())
	assert.Empty(t, b.Connections())
}
