package memory

// globMatch implements the subset of SQLite GLOB used by the search query:
// '*' any run, '?' any single rune, '[...]' a character class ('^' negates).
func globMatch(pattern, s string) bool {
	return match([]rune(pattern), []rune(s))
}

func match(p, s []rune) bool {
	for len(p) > 0 {
		switch p[0] {
		case '*':
			for len(p) > 0 && p[0] == '*' {
				p = p[1:]
			}
			if len(p) == 0 {
				return true
			}
			for i := 0; i <= len(s); i++ {
				if match(p, s[i:]) {
					return true
				}
			}
			return false
		case '?':
			if len(s) == 0 {
				return false
			}
			p, s = p[1:], s[1:]
		case '[':
			if len(s) == 0 {
				return false
			}
			ok, rest, valid := matchClass(p[1:], s[0])
			if !valid {
				// Unterminated class is a literal '['.
				if s[0] != '[' {
					return false
				}
				p, s = p[1:], s[1:]
				continue
			}
			if !ok {
				return false
			}
			p, s = rest, s[1:]
		default:
			if len(s) == 0 || p[0] != s[0] {
				return false
			}
			p, s = p[1:], s[1:]
		}
	}
	return len(s) == 0
}

// matchClass checks c against the class body starting after '['. A ']' right
// after the opening bracket (or after '^') is a literal member.
func matchClass(p []rune, c rune) (matched bool, rest []rune, valid bool) {
	negate := false
	if len(p) > 0 && p[0] == '^' {
		negate = true
		p = p[1:]
	}
	first := true
	for len(p) > 0 {
		if p[0] == ']' && !first {
			return matched != negate, p[1:], true
		}
		first = false
		if len(p) >= 3 && p[1] == '-' && p[2] != ']' {
			if p[0] <= c && c <= p[2] {
				matched = true
			}
			p = p[3:]
			continue
		}
		if p[0] == c {
			matched = true
		}
		p = p[1:]
	}
	return false, nil, false
}
