package rooms

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hallMap() *Room {
	return &Room{
		Name: "Hall",
		Left: &Room{
			Name:  "Library",
			Clue:  "Book open",
			Right: &Room{Name: "Kitchen"},
		},
	}
}

func TestVisit(t *testing.T) {
	root := hallMap()

	v := root.Visit()
	assert.Equal(t, "Hall", v.Name)
	assert.False(t, v.HasClue)
	assert.True(t, v.HasLeft)
	assert.False(t, v.HasRight)
	assert.Equal(t, "Library", v.LeftName)
	assert.Empty(t, v.RightName)
	assert.False(t, v.Terminal())

	lib := root.Left.Visit()
	assert.True(t, lib.HasClue)
	assert.Equal(t, "Book open", lib.Clue)
	assert.Equal(t, "Kitchen", lib.RightName)

	kitchen := root.Left.Right.Visit()
	assert.True(t, kitchen.Terminal())
	assert.True(t, root.Left.Right.Terminal())
}

func TestRelease_VisitsEveryRoomOnce(t *testing.T) {
	root, err := Mansion().Supply(context.Background())
	require.NoError(t, err)

	total := root.Count()
	assert.Equal(t, 15, total)

	var all []*Room
	var collect func(*Room)
	collect = func(r *Room) {
		if r == nil {
			return
		}
		all = append(all, r)
		collect(r.Left)
		collect(r.Right)
	}
	collect(root)

	assert.Equal(t, total, root.Release())
	for _, r := range all {
		assert.Nil(t, r.Left, "room %s still links left", r.Name)
		assert.Nil(t, r.Right, "room %s still links right", r.Name)
	}
	assert.Equal(t, 1, root.Count())
}

func TestRelease_Nil(t *testing.T) {
	var r *Room
	assert.Equal(t, 0, r.Release())
}

func TestBuild(t *testing.T) {
	root, err := Build(&Spec{
		Name:  " Hall ",
		Left:  &Spec{Name: "Library", Clue: " Book open "},
		Right: &Spec{Name: "Kitchen"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Hall", root.Name)
	assert.Equal(t, "Book open", root.Left.Clue)
	assert.Equal(t, "Kitchen", root.Right.Name)
}

func TestBuild_Errors(t *testing.T) {
	_, err := Build(nil)
	assert.ErrorIs(t, err, ErrNoRoot)

	_, err = Build(&Spec{Name: "Hall", Left: &Spec{Name: "  "}})
	assert.ErrorIs(t, err, ErrEmptyName)
	assert.Contains(t, err.Error(), "Hall.left")

	_, err = Build(&Spec{Name: "Hall", Left: &Spec{Name: "Attic"}, Right: &Spec{Name: "Attic"}})
	assert.ErrorIs(t, err, ErrDuplicateRoom)
}

func TestFileSupplier(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "map.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`
name: Hall
left:
  name: Library
  clue: Book open
  right:
    name: Kitchen
`), 0o644))

	root, err := FileSupplier{Path: yamlPath}.Supply(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, root.Count())
	assert.Equal(t, "Book open", root.Left.Clue)

	jsonPath := filepath.Join(dir, "map.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"name":"Hall","right":{"name":"Cellar","clue":"Wet boots"}}`), 0o644))

	root, err = FileSupplier{Path: jsonPath}.Supply(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Cellar", root.Right.Name)
	assert.Equal(t, "Wet boots", root.Right.Clue)

	_, err = FileSupplier{Path: filepath.Join(dir, "missing.yaml")}.Supply(context.Background())
	assert.Error(t, err)

	emptyPath := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(emptyPath, []byte(""), 0o644))
	_, err = FileSupplier{Path: emptyPath}.Supply(context.Background())
	assert.ErrorIs(t, err, ErrEmptyName)
}
