package conf

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/cupidconf/pkg/errors"
	"github.com/arthur-debert/cupidconf/pkg/logging"
	"github.com/arthur-debert/cupidconf/pkg/paths"
)

// Load reads the configuration file at path. Tilde expansion uses the
// ambient home directory; use LoadWithHome to inject one instead.
func Load(path string) (*Conf, error) {
	return LoadWithHome(path, paths.HomeDir())
}

// LoadWithHome reads the configuration file at path, expanding a leading
// "~" in values to home. An empty home disables tilde expansion and
// values pass through unchanged.
//
// On failure no Conf is returned; a partially populated store never
// escapes.
func LoadWithHome(path, home string) (*Conf, error) {
	logger := logging.GetLogger("conf.loader")

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrFileNotFound,
				"config file not found: %s", path)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess,
			"cannot open config file: %s", path)
	}
	defer func() { _ = f.Close() }()

	c, err := Parse(f, home)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad,
			"failed to load %s", path)
	}

	logger.Debug().
		Str("path", path).
		Int("entries", c.Len()).
		Msg("Config loaded")
	return c, nil
}

// Parse reads "key = value" lines from r into a new Conf, applying the
// normalization rules described in the package documentation. home is
// used for tilde expansion of values.
func Parse(r io.Reader, home string) (*Conf, error) {
	logger := logging.GetLogger("conf.parser")

	c := &Conf{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		key, value, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		value = expandTilde(value, home)
		c.add(key, value)
		logger.Trace().
			Int("line", lineNo).
			Str("key", key).
			Str("value", value).
			Msg("entry added")
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse,
			"error reading config stream")
	}
	return c, nil
}

// parseLine normalizes one raw line into a key/value pair. ok is false
// for lines that produce no entry: blanks, comments, and lines with no
// '=' separator.
func parseLine(line string) (key, value string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || trimmed[0] == '#' || trimmed[0] == ';' {
		return "", "", false
	}

	eq := strings.IndexByte(trimmed, '=')
	if eq < 0 {
		return "", "", false
	}

	key = strings.TrimSpace(trimmed[:eq])
	value = strings.TrimSpace(trimmed[eq+1:])

	// The first '#' or ';' inside the value starts an inline comment.
	if i := strings.IndexAny(value, "#;"); i >= 0 {
		value = strings.TrimSpace(value[:i])
	}

	return key, value, true
}

// expandTilde replaces a leading "~" with home when the tilde stands for
// the current user: "~" alone or "~/...". "~username" forms and values
// not starting with "~" pass through unchanged, as does everything when
// home is empty.
func expandTilde(value, home string) string {
	if home == "" || !strings.HasPrefix(value, "~") {
		return value
	}
	if value == "~" {
		return home
	}
	if strings.HasPrefix(value, "~/") {
		return home + value[1:]
	}
	return value
}
