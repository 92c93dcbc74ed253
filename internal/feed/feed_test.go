package feed

import (
	"fmt"
	"slices"
	"testing"
)

func TestNewestFirst(t *testing.T) {
	f := New()
	f.Add("one")
	f.Add("two")
	f.Add("three")

	got := f.Entries()
	expected := []string{"three", "two", "one"}
	if !slices.Equal(got, expected) {
		t.Errorf("Entries() = %q, expected %q", got, expected)
	}
	if f.Latest() != "three" {
		t.Errorf("Latest() = %q, expected %q", f.Latest(), "three")
	}
}

func TestRecent(t *testing.T) {
	f := New()
	for i := range 5 {
		f.Add(fmt.Sprintf("m%d", i))
	}

	tests := []struct {
		n        int
		expected []string
	}{
		{n: 2, expected: []string{"m4", "m3"}},
		{n: 0, expected: []string{}},
		{n: -1, expected: []string{}},
		{n: 10, expected: []string{"m4", "m3", "m2", "m1", "m0"}},
	}

	for _, tc := range tests {
		if got := f.Recent(tc.n); !slices.Equal(got, tc.expected) {
			t.Errorf("Recent(%d) = %q, expected %q", tc.n, got, tc.expected)
		}
	}
}

func TestUnbounded(t *testing.T) {
	f := New()
	for i := range 10000 {
		f.Add(fmt.Sprintf("m%d", i))
	}
	if f.Len() != 10000 {
		t.Errorf("Len() = %d, expected 10000", f.Len())
	}
}

func TestEntriesIsACopy(t *testing.T) {
	f := New()
	f.Add("a")
	got := f.Entries()
	got[0] = "changed"
	if f.Latest() != "a" {
		t.Error("Entries() should not expose internal storage")
	}
}

func TestEmpty(t *testing.T) {
	f := New()
	if f.Latest() != "" || f.Len() != 0 || len(f.Entries()) != 0 {
		t.Error("empty feed should have no entries")
	}
}
