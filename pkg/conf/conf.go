package conf

import (
	"github.com/arthur-debert/cupidconf/pkg/glob"
)

// Entry is one stored key/value pair.
type Entry struct {
	Key   string
	Value string
}

// Conf is an ordered multi-map of configuration entries. Keys may
// repeat; entries keep the order they had in the input file.
type Conf struct {
	entries []Entry
}

// Len returns the number of entries.
func (c *Conf) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Entries returns a copy of all entries in file order.
func (c *Conf) Entries() []Entry {
	if c == nil || len(c.entries) == 0 {
		return nil
	}
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Keys returns the distinct keys in first-appearance order.
func (c *Conf) Keys() []string {
	if c == nil || len(c.entries) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(c.entries))
	var keys []string
	for _, e := range c.entries {
		if !seen[e.Key] {
			seen[e.Key] = true
			keys = append(keys, e.Key)
		}
	}
	return keys
}

// Get returns the value of the first entry (in file order) whose key
// matches keyPattern as a glob pattern. A pattern with no wildcard
// characters behaves as exact equality. The second result is false when
// no key matches.
func (c *Conf) Get(keyPattern string) (string, bool) {
	if c == nil {
		return "", false
	}
	for _, e := range c.entries {
		if glob.Match(keyPattern, e.Key) {
			return e.Value, true
		}
	}
	return "", false
}

// GetList returns the values of every entry whose key matches keyPattern
// as a glob pattern, in file order. It returns nil when nothing matches;
// callers treat a nil result and "key not found" identically.
func (c *Conf) GetList(keyPattern string) []string {
	if c == nil {
		return nil
	}
	var values []string
	for _, e := range c.entries {
		if glob.Match(keyPattern, e.Key) {
			values = append(values, e.Value)
		}
	}
	return values
}

// ValueInList reports whether candidate matches any of the glob patterns
// stored as values under key. The key is compared by exact string
// equality, never glob-expanded — the mirror image of Get and GetList,
// where the key side carries the wildcards. For a config containing
//
//	ignore = *.txt
//	ignore = build_*
//
// ValueInList("ignore", "notes.txt") is true. The scan stops at the
// first matching pattern.
func (c *Conf) ValueInList(key, candidate string) bool {
	if c == nil {
		return false
	}
	for _, e := range c.entries {
		if e.Key == key && glob.Match(e.Value, candidate) {
			return true
		}
	}
	return false
}

// add appends an entry. Only the loader calls this; a Conf is immutable
// once it is handed to a caller.
func (c *Conf) add(key, value string) {
	c.entries = append(c.entries, Entry{Key: key, Value: value})
}
