package clues

import (
	"slices"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func collect(x *Index) []string {
	var out []string
	for text := range x.All() {
		out = append(out, text)
	}
	return out
}

func TestInsert_OrderIndependent(t *testing.T) {
	var x Index
	assert.True(t, x.Insert("Zebra"))
	assert.True(t, x.Insert("Apple"))

	if diff := cmp.Diff([]string{"Apple", "Zebra"}, collect(&x)); diff != "" {
		t.Errorf("unexpected order (-want +got):\n%s", diff)
	}
}

func TestInsert_Idempotent(t *testing.T) {
	var x Index
	assert.True(t, x.Insert("Book open"))
	assert.Equal(t, 1, x.Len())

	assert.False(t, x.Insert("Book open"))
	assert.Equal(t, 1, x.Len())
	assert.Equal(t, []string{"Book open"}, collect(&x))
}

func TestAll_SortedDistinct(t *testing.T) {
	for _, test := range []struct {
		name   string
		inputs []string
	}{
		{"empty", nil},
		{"single", []string{"knife"}},
		{"ascending chain", []string{"a", "b", "c", "d", "e"}},
		{"descending chain", []string{"e", "d", "c", "b", "a"}},
		{"duplicates", []string{"m", "c", "m", "x", "c", "a", "x"}},
		{"byte order", []string{"apple", "Banana", "banana", "Apple", "a", ""}},
		{"mixed", []string{"wine glass", "clock 23:45", "muddy floor", "poison book", "clock 23:45"}},
	} {
		t.Run(test.name, func(t *testing.T) {
			var x Index
			for _, in := range test.inputs {
				x.Insert(in)
			}

			want := slices.Clone(test.inputs)
			sort.Strings(want)
			want = slices.Compact(want)

			got := collect(&x)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("in-order (-want +got):\n%s", diff)
			}
			assert.Equal(t, len(want), x.Len())
			for _, in := range test.inputs {
				assert.True(t, x.Contains(in))
			}
		})
	}
}

func TestAll_Restartable(t *testing.T) {
	var x Index
	for _, in := range []string{"b", "a", "c"} {
		x.Insert(in)
	}
	first := collect(&x)
	second := collect(&x)
	assert.Equal(t, first, second)
	assert.Equal(t, 3, x.Len())
}

func TestAll_StopsEarly(t *testing.T) {
	var x Index
	for _, in := range []string{"d", "b", "f", "a", "c"} {
		x.Insert(in)
	}
	var got []string
	for text := range x.All() {
		got = append(got, text)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestContains(t *testing.T) {
	var x Index
	assert.False(t, x.Contains("anything"))
	x.Insert("m")
	x.Insert("a")
	assert.True(t, x.Contains("a"))
	assert.False(t, x.Contains("z"))
}

func TestRelease(t *testing.T) {
	var x Index
	for _, in := range []string{"m", "c", "x", "a", "e", "m"} {
		x.Insert(in)
	}
	assert.Equal(t, 5, x.Release())
	assert.Equal(t, 0, x.Len())
	assert.Empty(t, collect(&x))
	assert.Equal(t, 0, x.Release())
}
