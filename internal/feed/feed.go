// Package feed holds the tutorial's message log.
package feed

// Feed is an append-only list of messages, newest first.
// It has no capacity limit; views decide how many entries to show.
type Feed struct {
	entries []string
}

// New creates an empty feed.
func New() *Feed {
	return &Feed{}
}

// Add records a message as the newest entry.
func (f *Feed) Add(msg string) {
	f.entries = append(f.entries, msg)
}

// Len returns the number of entries.
func (f *Feed) Len() int {
	return len(f.entries)
}

// Latest returns the newest entry, or "" if the feed is empty.
func (f *Feed) Latest() string {
	if len(f.entries) == 0 {
		return ""
	}
	return f.entries[len(f.entries)-1]
}

// Entries returns a copy of all entries, newest first.
func (f *Feed) Entries() []string {
	return f.Recent(len(f.entries))
}

// Recent returns up to n entries, newest first.
func (f *Feed) Recent(n int) []string {
	n = min(max(n, 0), len(f.entries))
	out := make([]string, n)
	for i := range n {
		out[i] = f.entries[len(f.entries)-1-i]
	}
	return out
}
