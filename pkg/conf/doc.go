// Package conf reads simple "key = value" configuration files into an
// ordered multi-map and answers wildcard lookups against it.
//
// # File format
//
// The input is a line-oriented text file. Each line is trimmed of
// surrounding whitespace before interpretation. Empty lines and lines
// whose first character is '#' or ';' are skipped. Every other line must
// contain '='; the first '=' splits the line into a key (left, trimmed)
// and a value (right, trimmed). Lines without '=' are silently skipped.
// Inside a value, the first '#' or ';' starts an inline comment and
// truncates the value there — values cannot contain a literal '#' or
// ';', a documented limitation of the format. A value beginning with
// "~/" (or consisting of just "~") has the tilde replaced by the home
// directory; "~username" forms pass through unchanged.
//
// Keys may repeat. Entries keep file order, and "first match" always
// means first in file order.
//
// # Lookups
//
// Get and GetList treat the caller's argument as a glob pattern matched
// against stored keys. ValueInList is the deliberate mirror image: the
// key is compared by exact string equality, and the stored values under
// that key are treated as glob patterns tested against the caller's
// candidate string. Both directions share the same matching primitive
// (pkg/glob).
//
// All queries are total: a nil Conf, an empty store, or a miss yields
// the zero result, never a panic or an error.
//
// # Lifecycle
//
// A Conf is immutable once Load returns; there is no mutation or
// teardown API. Share it freely across goroutines after loading and let
// the garbage collector reclaim it.
package conf
