package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEdit_MapCol_Insertion(t *testing.T) {
	e := Insertion(Position{Line: 1, Col: 3}, 2)
	require.Equal(t, 2, e.Delta())
	require.True(t, e.IsInsertion())

	require.Equal(t, 0, e.MapCol(0))
	require.Equal(t, 2, e.MapCol(2))
	require.Equal(t, 5, e.MapCol(3), "column at the insertion point moves past the text")
	require.Equal(t, 9, e.MapCol(7))
}

func TestEdit_MapCol_Deletion(t *testing.T) {
	e := Deletion(1, 2, 5)
	require.Equal(t, -3, e.Delta())

	require.Equal(t, 1, e.MapCol(1))
	require.Equal(t, 2, e.MapCol(2))
	require.Equal(t, 2, e.MapCol(4), "columns inside the deleted span collapse to its start")
	require.Equal(t, 2, e.MapCol(5))
	require.Equal(t, 7, e.MapCol(10))
}

func TestEdit_MapCol_Replacement(t *testing.T) {
	// "**bold**" -> "bold": span [0,8) replaced by 4 runes, inner text began at 2.
	e := Edit{Line: 1, Start: 0, End: 8, NewLen: 4, Keep: 2}
	require.Equal(t, -4, e.Delta())

	require.Equal(t, 0, e.MapCol(0))
	require.Equal(t, 0, e.MapCol(1), "inside the opening delimiter")
	require.Equal(t, 0, e.MapCol(2))
	require.Equal(t, 3, e.MapCol(5), "same surviving character")
	require.Equal(t, 4, e.MapCol(7), "inside the closing delimiter")
	require.Equal(t, 4, e.MapCol(8))
	require.Equal(t, 6, e.MapCol(10))
}
