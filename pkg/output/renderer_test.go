// pkg/output/renderer_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test format parsing and rendering of a loaded store

package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/arthur-debert/cupidconf/pkg/conf"
	"github.com/arthur-debert/cupidconf/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleEntries = []conf.Entry{
	{Key: "path", Value: "/usr/local/bin"},
	{Key: "path", Value: "/usr/bin"},
	{Key: "ignore", Value: "*.txt"},
	{Key: "config_dir", Value: "/home/alice/.config/app"},
}

func newTestRenderer() (*Renderer, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewRenderer(&buf, true), &buf
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"text", "json", "toml", "yaml", "xml"} {
		f, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, Format(name), f)
	}

	_, err := ParseFormat("csv")
	require.Error(t, err)
	assert.Equal(t, errors.ErrInvalidInput, errors.GetErrorCode(err))
}

func TestRenderText(t *testing.T) {
	r, buf := newTestRenderer()
	require.NoError(t, r.RenderEntries(sampleEntries, FormatText))

	want := "path = /usr/local/bin\n" +
		"path = /usr/bin\n" +
		"ignore = *.txt\n" +
		"config_dir = /home/alice/.config/app\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderJSON(t *testing.T) {
	r, buf := newTestRenderer()
	require.NoError(t, r.RenderEntries(sampleEntries, FormatJSON))

	var decoded []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 4)
	// Order and duplicates survive the round trip
	assert.Equal(t, "path", decoded[0]["key"])
	assert.Equal(t, "/usr/local/bin", decoded[0]["value"])
	assert.Equal(t, "path", decoded[1]["key"])
	assert.Equal(t, "/usr/bin", decoded[1]["value"])
}

func TestRenderTOML(t *testing.T) {
	r, buf := newTestRenderer()
	require.NoError(t, r.RenderEntries(sampleEntries, FormatTOML))

	out := buf.String()
	// Repeated keys are grouped into arrays
	assert.Contains(t, out, "path = [")
	assert.Contains(t, out, "/usr/local/bin")
	assert.Contains(t, out, "/usr/bin")
	assert.Contains(t, out, "ignore = [")
}

func TestRenderYAML(t *testing.T) {
	r, buf := newTestRenderer()
	require.NoError(t, r.RenderEntries(sampleEntries, FormatYAML))

	out := buf.String()
	// First-appearance order is preserved
	assert.Regexp(t, `(?s)path:.*ignore:.*config_dir:`, out)
	assert.Contains(t, out, "- /usr/local/bin")
	assert.Contains(t, out, "- /usr/bin")
}

func TestRenderXML(t *testing.T) {
	r, buf := newTestRenderer()
	require.NoError(t, r.RenderEntries(sampleEntries, FormatXML))

	out := buf.String()
	assert.Contains(t, out, `<entry key="path">/usr/local/bin</entry>`)
	assert.Contains(t, out, `<entry key="path">/usr/bin</entry>`)
	assert.Contains(t, out, `<entry key="ignore">*.txt</entry>`)
}

func TestRenderValues(t *testing.T) {
	r, buf := newTestRenderer()
	require.NoError(t, r.RenderValues([]string{"/usr/local/bin", "/usr/bin"}))
	assert.Equal(t, "/usr/local/bin\n/usr/bin\n", buf.String())
}

func TestRenderKeys(t *testing.T) {
	r, buf := newTestRenderer()
	require.NoError(t, r.RenderKeys(sampleEntries))
	assert.Equal(t, "path (2)\nignore\nconfig_dir\n", buf.String())
}

func TestRenderEmptyStore(t *testing.T) {
	for _, format := range []Format{FormatText, FormatJSON, FormatTOML, FormatYAML, FormatXML} {
		r, _ := newTestRenderer()
		assert.NoError(t, r.RenderEntries(nil, format), "format %s", format)
	}
}
