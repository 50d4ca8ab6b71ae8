package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"detectivequest/internal/clues"
)

func TestOf(t *testing.T) {
	var idx clues.Index
	idx.Insert("Zebra")
	idx.Insert("Apple")
	idx.Insert("Zebra")

	r := Of(&idx)
	assert.Equal(t, 2, r.Count)
	assert.Equal(t, []string{"Apple", "Zebra"}, r.Clues)

	// a second snapshot sees the same, untouched index
	again := Of(&idx)
	assert.Equal(t, r, again)
	assert.Equal(t, 2, idx.Len())
}

func TestOf_Empty(t *testing.T) {
	var idx clues.Index
	r := Of(&idx)
	assert.True(t, r.Empty())
	assert.Empty(t, r.Clues)
}

func TestWrite(t *testing.T) {
	var idx clues.Index
	idx.Insert("Book open")

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "Clues collected so far", Of(&idx)))
	assert.Equal(t, "Clues collected so far (1 in total):\n  • Book open\n", buf.String())
}

func TestWrite_Empty(t *testing.T) {
	var idx clues.Index

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "Clues", Of(&idx)))
	assert.Equal(t, "Clues (0 in total):\n  No clues collected yet...\n", buf.String())
}
