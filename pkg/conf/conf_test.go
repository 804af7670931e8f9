// pkg/conf/conf_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test store ordering, lookup precedence, and the glob/exact
// asymmetry between key-pattern and value-pattern queries

package conf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildConf constructs a store directly, bypassing the loader.
func buildConf(pairs ...[2]string) *Conf {
	c := &Conf{}
	for _, p := range pairs {
		c.add(p[0], p[1])
	}
	return c
}

func TestGet(t *testing.T) {
	c := buildConf(
		[2]string{"path", "/usr/local/bin"},
		[2]string{"path", "/usr/bin"},
		[2]string{"editor", "vim"},
		[2]string{"pathext", ".sh"},
	)

	t.Run("literal key returns first occurrence", func(t *testing.T) {
		v, ok := c.Get("path")
		require.True(t, ok)
		assert.Equal(t, "/usr/local/bin", v)
	})

	t.Run("literal key is exact, not prefix", func(t *testing.T) {
		v, ok := c.Get("edit")
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("glob pattern matches stored keys", func(t *testing.T) {
		v, ok := c.Get("path*")
		require.True(t, ok)
		// "path" comes before "pathext" in file order
		assert.Equal(t, "/usr/local/bin", v)
	})

	t.Run("question mark pattern", func(t *testing.T) {
		v, ok := c.Get("edito?")
		require.True(t, ok)
		assert.Equal(t, "vim", v)
	})

	t.Run("miss returns not-found", func(t *testing.T) {
		_, ok := c.Get("missing")
		assert.False(t, ok)
	})

	t.Run("empty pattern matches only an empty key", func(t *testing.T) {
		_, ok := c.Get("")
		assert.False(t, ok)

		withEmpty := buildConf([2]string{"", "anon"})
		v, ok := withEmpty.Get("")
		require.True(t, ok)
		assert.Equal(t, "anon", v)
	})
}

func TestGetList(t *testing.T) {
	c := buildConf(
		[2]string{"path", "/usr/local/bin"},
		[2]string{"editor", "vim"},
		[2]string{"path", "/usr/bin"},
		[2]string{"path", "/opt/bin"},
	)

	t.Run("collects all occurrences in file order", func(t *testing.T) {
		assert.Equal(t, []string{"/usr/local/bin", "/usr/bin", "/opt/bin"},
			c.GetList("path"))
	})

	t.Run("single occurrence yields one element", func(t *testing.T) {
		assert.Equal(t, []string{"vim"}, c.GetList("editor"))
	})

	t.Run("star returns every value in file order", func(t *testing.T) {
		assert.Equal(t,
			[]string{"/usr/local/bin", "vim", "/usr/bin", "/opt/bin"},
			c.GetList("*"))
	})

	t.Run("miss returns nil", func(t *testing.T) {
		assert.Nil(t, c.GetList("missing"))
	})
}

func TestValueInList(t *testing.T) {
	c := buildConf(
		[2]string{"ignore", "*.txt"},
		[2]string{"ignore", "build_*"},
		[2]string{"ignore2", "*.md"},
		[2]string{"exact", "literal-value"},
	)

	t.Run("candidate matches a stored pattern", func(t *testing.T) {
		assert.True(t, c.ValueInList("ignore", "readme.txt"))
		assert.True(t, c.ValueInList("ignore", "build_output"))
	})

	t.Run("candidate matches no stored pattern", func(t *testing.T) {
		assert.False(t, c.ValueInList("ignore", "notes.md"))
	})

	t.Run("key side is exact equality, never glob", func(t *testing.T) {
		// "ignor*" would glob-match both ignore keys, but the key
		// argument is a literal here.
		assert.False(t, c.ValueInList("ignor*", "readme.txt"))
		assert.True(t, c.ValueInList("ignore2", "notes.md"))
	})

	t.Run("literal value patterns compare exactly", func(t *testing.T) {
		assert.True(t, c.ValueInList("exact", "literal-value"))
		assert.False(t, c.ValueInList("exact", "literal-values"))
	})

	t.Run("unknown key", func(t *testing.T) {
		assert.False(t, c.ValueInList("nope", "anything"))
	})
}

func TestNilAndEmptyStores(t *testing.T) {
	t.Run("nil receiver", func(t *testing.T) {
		var c *Conf
		_, ok := c.Get("key")
		assert.False(t, ok)
		assert.Nil(t, c.GetList("*"))
		assert.False(t, c.ValueInList("key", "value"))
		assert.Zero(t, c.Len())
		assert.Nil(t, c.Entries())
		assert.Nil(t, c.Keys())
	})

	t.Run("empty store", func(t *testing.T) {
		c := &Conf{}
		_, ok := c.Get("*")
		assert.False(t, ok)
		assert.Nil(t, c.GetList("*"))
		assert.False(t, c.ValueInList("key", "value"))
		assert.Zero(t, c.Len())
	})
}

func TestEntriesAndKeys(t *testing.T) {
	c := buildConf(
		[2]string{"b", "1"},
		[2]string{"a", "2"},
		[2]string{"b", "3"},
	)

	t.Run("entries preserve file order", func(t *testing.T) {
		entries := c.Entries()
		require.Len(t, entries, 3)
		assert.Equal(t, Entry{Key: "b", Value: "1"}, entries[0])
		assert.Equal(t, Entry{Key: "a", Value: "2"}, entries[1])
		assert.Equal(t, Entry{Key: "b", Value: "3"}, entries[2])
	})

	t.Run("entries result does not alias the store", func(t *testing.T) {
		entries := c.Entries()
		entries[0] = Entry{Key: "mutated", Value: "mutated"}
		v, ok := c.Get("b")
		require.True(t, ok)
		assert.Equal(t, "1", v)
	})

	t.Run("keys are distinct in first-appearance order", func(t *testing.T) {
		assert.Equal(t, []string{"b", "a"}, c.Keys())
	})
}

func TestQueriesAreIdempotent(t *testing.T) {
	c := buildConf(
		[2]string{"path", "/usr/local/bin"},
		[2]string{"path", "/usr/bin"},
		[2]string{"ignore", "*.log"},
	)

	for i := 0; i < 3; i++ {
		v, ok := c.Get("path")
		require.True(t, ok)
		assert.Equal(t, "/usr/local/bin", v)
		assert.Equal(t, []string{"/usr/local/bin", "/usr/bin"}, c.GetList("path"))
		assert.True(t, c.ValueInList("ignore", "debug.log"))
	}
}

func TestLargeStoreScan(t *testing.T) {
	c := &Conf{}
	for i := 0; i < 1000; i++ {
		c.add("key"+strings.Repeat("x", i%7), "v")
	}
	c.add("needle", "found")

	v, ok := c.Get("needle")
	require.True(t, ok)
	assert.Equal(t, "found", v)
	assert.Len(t, c.GetList("*"), 1001)
}
