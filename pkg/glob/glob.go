// Package glob implements the wildcard matching primitive shared by all
// cupidconf lookups. Patterns use shell-style syntax: '*' matches any run
// of characters (including the empty run), '?' matches exactly one
// character, and '[...]' character classes with ranges and '^'/'!'
// negation are supported. A pattern with no wildcard characters matches
// only itself.
package glob

// Match reports whether name matches the wildcard pattern.
//
// Match is total: it never fails, for any pair of strings. Unlike
// filepath.Match, '*' also matches across '/' since config keys and
// value patterns are plain strings, not path segments. A malformed
// class (unterminated '[') is compared literally instead of being
// rejected.
func Match(pattern, name string) bool {
	p := []rune(pattern)
	n := []rune(name)

	var px, nx int
	starPx, starNx := -1, -1

	for nx < len(n) {
		if px < len(p) {
			switch {
			case p[px] == '*':
				// Record the star and try the shortest expansion first;
				// on a later mismatch, back up here and widen it.
				starPx, starNx = px, nx
				px++
				continue
			case p[px] == '?':
				px++
				nx++
				continue
			case p[px] == '[':
				if in, next, ok := matchClass(p, px, n[nx]); ok {
					if in {
						px = next
						nx++
						continue
					}
				} else if n[nx] == '[' {
					// Unterminated class, match the '[' literally.
					px++
					nx++
					continue
				}
			default:
				if p[px] == n[nx] {
					px++
					nx++
					continue
				}
			}
		}

		if starPx >= 0 {
			starNx++
			px = starPx + 1
			nx = starNx
			continue
		}
		return false
	}

	// Only trailing stars may remain in the pattern.
	for px < len(p) && p[px] == '*' {
		px++
	}
	return px == len(p)
}

// matchClass evaluates the character class starting at p[start] (which
// must be '[') against c. It returns whether c is a member, the pattern
// index just past the closing ']', and whether the class was well formed.
func matchClass(p []rune, start int, c rune) (member bool, next int, ok bool) {
	i := start + 1
	negated := false
	if i < len(p) && (p[i] == '^' || p[i] == '!') {
		negated = true
		i++
	}

	found := false
	first := true
	for {
		if i >= len(p) {
			return false, 0, false
		}
		if p[i] == ']' && !first {
			i++
			break
		}
		first = false

		lo, hi := p[i], p[i]
		if i+2 < len(p) && p[i+1] == '-' && p[i+2] != ']' {
			hi = p[i+2]
			i += 3
		} else {
			i++
		}
		if lo <= c && c <= hi {
			found = true
		}
	}
	return found != negated, i, true
}

// ContainsGlobChars checks if a pattern contains glob special characters
func ContainsGlobChars(pattern string) bool {
	for _, char := range pattern {
		switch char {
		case '*', '?', '[', ']':
			return true
		}
	}
	return false
}
