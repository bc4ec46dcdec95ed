package alphanum

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLess(t *testing.T) {
	assert.True(t, Less("img2", "img10"))
	assert.False(t, Less("img10", "img2"))
	assert.False(t, Less("img7", "img007"))
	assert.True(t, Less("a1", "aa"))

	assert.True(t, ScalarLess(2, 10))
	assert.True(t, ScalarLess(1.2, 3.14))
	assert.False(t, ScalarLess(true, false))

	assert.True(t, ValueLess(version{1, 9}, version{1, 10}))
}

func TestLessFunc(t *testing.T) {
	s := []string{"x10", "x9", "x100", "x1"}
	less := LessFunc(Compare)

	sort.Slice(s, func(i, j int) bool { return less(s[i], s[j]) })
	assert.Equal(t, []string{"x1", "x9", "x10", "x100"}, s)
}

func TestInverse(t *testing.T) {
	inverse := Inverse(Comparator[string](Compare))

	assert.Positive(t, inverse("a2", "a10"))
	assert.Negative(t, inverse("a10", "a2"))
	assert.Zero(t, inverse("a7", "a07"))
}

func TestSort(t *testing.T) {
	type test struct {
		input    []string
		wantAsc  []string
		wantDesc []string
	}

	tests := map[string]test{
		"Files": {
			input:    []string{"z10.txt", "z2.txt", "z1.txt", "Z3.txt", "z100.txt"},
			wantAsc:  []string{"Z3.txt", "z1.txt", "z2.txt", "z10.txt", "z100.txt"},
			wantDesc: []string{"z100.txt", "z10.txt", "z2.txt", "z1.txt", "Z3.txt"},
		},
		"Versions": {
			input:    []string{"1.10.0", "1.2.10", "1.2.9", "1.9"},
			wantAsc:  []string{"1.2.9", "1.2.10", "1.9", "1.10.0"},
			wantDesc: []string{"1.10.0", "1.9", "1.2.10", "1.2.9"},
		},
		"EqualKeepOrder": {
			input:    []string{"a07", "a7", "a007"},
			wantAsc:  []string{"a07", "a7", "a007"},
			wantDesc: []string{"a07", "a7", "a007"},
		},
		"Empty": {
			input:    []string{},
			wantAsc:  []string{},
			wantDesc: []string{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			asc := append([]string{}, tt.input...)
			Sort(asc)
			assert.Equal(t, tt.wantAsc, asc)
			assert.True(t, IsSorted(asc))

			desc := append([]string{}, tt.input...)
			SortReverse(desc)
			assert.Equal(t, tt.wantDesc, desc)
		})
	}
}

func TestStringSlice(t *testing.T) {
	s := StringSlice{"Alpha 10", "Alpha 2", "Alpha 2A", "Alpha 1"}
	want := StringSlice{"Alpha 1", "Alpha 2", "Alpha 2A", "Alpha 10"}

	sort.Sort(s)
	assert.Equal(t, want, s)

	s = StringSlice{"Alpha 10", "Alpha 2", "Alpha 2A", "Alpha 1"}
	s.Sort()
	assert.Equal(t, want, s)
	assert.True(t, sort.IsSorted(s))
}

func TestIsSorted(t *testing.T) {
	assert.True(t, IsSorted(nil))
	assert.True(t, IsSorted([]string{"a1", "a2", "a10"}))
	assert.False(t, IsSorted([]string{"a1", "a10", "a2"}))
}

func TestSortFunc(t *testing.T) {
	type file struct {
		name string
		size int
	}

	byName := func(a, b file) int { return Compare(a.name, b.name) }

	files := []file{{"part10", 3}, {"part2", 1}, {"part1", 2}}
	SortFunc(files, byName, false)
	assert.Equal(t, []file{{"part1", 2}, {"part2", 1}, {"part10", 3}}, files)

	SortFunc(files, byName, true)
	assert.Equal(t, []file{{"part10", 3}, {"part2", 1}, {"part1", 2}}, files)
}
