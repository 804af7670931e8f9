// Package output renders a loaded config store for terminal consumption.
// It supports styled text plus machine formats: json, toml, yaml, xml.
package output

import (
	"fmt"
	"io"

	"github.com/arthur-debert/cupidconf/pkg/conf"
	"github.com/arthur-debert/cupidconf/pkg/errors"
	"github.com/arthur-debert/cupidconf/pkg/logging"
	"github.com/arthur-debert/cupidconf/pkg/output/styles"
	"github.com/muesli/termenv"
)

// Format selects how a store is rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatXML  Format = "xml"
)

// ParseFormat converts a user-supplied format name into a Format.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatText, FormatJSON, FormatTOML, FormatYAML, FormatXML:
		return Format(name), nil
	}
	return "", errors.Newf(errors.ErrInvalidInput,
		"unknown output format %q (want text, json, toml, yaml, or xml)", name)
}

// Renderer writes store contents to a writer, styling text output when
// the terminal supports it.
type Renderer struct {
	writer io.Writer
	color  bool
}

// NewRenderer creates a Renderer. Color is applied only when noColor is
// false, NO_COLOR is unset, and the terminal reports a color profile.
func NewRenderer(w io.Writer, noColor bool) *Renderer {
	logger := logging.GetLogger("output.renderer")

	color := !noColor && !termenv.EnvNoColor() &&
		termenv.EnvColorProfile() != termenv.Ascii
	logger.Debug().
		Bool("noColor", noColor).
		Bool("colorEnabled", color).
		Msg("Renderer created")

	return &Renderer{writer: w, color: color}
}

// RenderEntries writes every entry in file order using the given format.
func (r *Renderer) RenderEntries(entries []conf.Entry, format Format) error {
	switch format {
	case FormatText:
		return r.renderText(entries)
	case FormatJSON:
		return r.renderJSON(entries)
	case FormatTOML:
		return r.renderTOML(entries)
	case FormatYAML:
		return r.renderYAML(entries)
	case FormatXML:
		return r.renderXML(entries)
	}
	return errors.Newf(errors.ErrInvalidInput, "unknown output format %q", format)
}

// RenderValues writes values one per line, unstyled, for piping.
func (r *Renderer) RenderValues(values []string) error {
	for _, v := range values {
		if _, err := fmt.Fprintln(r.writer, v); err != nil {
			return err
		}
	}
	return nil
}

// RenderKeys writes the distinct keys in first-appearance order, each
// with its occurrence count.
func (r *Renderer) RenderKeys(entries []conf.Entry) error {
	counts := make(map[string]int, len(entries))
	var keys []string
	for _, e := range entries {
		if counts[e.Key] == 0 {
			keys = append(keys, e.Key)
		}
		counts[e.Key]++
	}

	for _, k := range keys {
		count := ""
		if counts[k] > 1 {
			count = fmt.Sprintf(" (%d)", counts[k])
		}
		if r.color {
			count = styles.CountStyle.Render(count)
			k = styles.KeyStyle.Render(k)
		}
		if _, err := fmt.Fprintf(r.writer, "%s%s\n", k, count); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderText(entries []conf.Entry) error {
	for _, e := range entries {
		key, eq, value := e.Key, "=", e.Value
		if r.color {
			key = styles.KeyStyle.Render(key)
			eq = styles.MutedStyle.Render(eq)
			value = styles.ValueStyle.Render(value)
		}
		if _, err := fmt.Fprintf(r.writer, "%s %s %s\n", key, eq, value); err != nil {
			return err
		}
	}
	return nil
}

// groupEntries collapses entries into per-key value lists, keeping keys
// in first-appearance order. Used by the formats that cannot repeat keys.
func groupEntries(entries []conf.Entry) ([]string, map[string][]string) {
	grouped := make(map[string][]string, len(entries))
	var keys []string
	for _, e := range entries {
		if _, seen := grouped[e.Key]; !seen {
			keys = append(keys, e.Key)
		}
		grouped[e.Key] = append(grouped[e.Key], e.Value)
	}
	return keys, grouped
}
