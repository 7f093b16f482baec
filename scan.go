package mslex

type chunkKind int

const (
	chunkText chunkKind = iota
	chunkSpace
	chunkQuotes
)

// chunk is one lexical unit of a command line: a run of whitespace, a run
// of backslashes immediately followed by a run of quotes, or a stretch of
// ordinary text. Backslashes only mean anything when a quote follows them,
// so backslash runs with no quote after them come back as plain text.
type chunk struct {
	kind    chunkKind
	text    string // chunkText and chunkSpace
	slashes int    // chunkQuotes: backslashes preceding the quote run
	quotes  int    // chunkQuotes: length of the quote run
}

// scanner walks a command-line string and yields chunks. Both runtime
// grammars and the quote escaper consume the same chunk stream. Every
// character that matters is ASCII, so multi-byte runes pass through inside
// text chunks untouched.
type scanner struct {
	s   string
	pos int
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func (sc *scanner) more() bool {
	return sc.pos < len(sc.s)
}

func (sc *scanner) next() chunk {
	s, i := sc.s, sc.pos
	switch c := s[i]; {
	case isSpace(c):
		j := i + 1
		for j < len(s) && isSpace(s[j]) {
			j++
		}
		sc.pos = j
		return chunk{kind: chunkSpace, text: s[i:j]}
	case c == '\\' || c == '"':
		j := i
		for j < len(s) && s[j] == '\\' {
			j++
		}
		if j < len(s) && s[j] == '"' {
			k := j + 1
			for k < len(s) && s[k] == '"' {
				k++
			}
			sc.pos = k
			return chunk{kind: chunkQuotes, slashes: j - i, quotes: k - j}
		}
		// Backslashes with nothing to escape are literal text.
		sc.pos = j
		return chunk{kind: chunkText, text: s[i:j]}
	default:
		j := i + 1
		for j < len(s) && !isSpace(s[j]) && s[j] != '\\' && s[j] != '"' {
			j++
		}
		sc.pos = j
		return chunk{kind: chunkText, text: s[i:j]}
	}
}
