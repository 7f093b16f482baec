package mslex

import "strings"

// Characters cmd.exe assigns meaning to, per position. Inside a quoted
// region only quotes and the %/! substitution characters stay live.
const (
	cmdMeta       = "\"^&|<>()%!"
	cmdMetaQuoted = "%!"
	cmdMetaText   = "&|<>()%!"
)

// StripCarets interprets caret escaping the way cmd.exe does before the
// target program's runtime ever sees the string. Outside a quoted region a
// caret escapes the character after it; inside a quoted region carets are
// literal, except that ^" still closes the region.
//
// With check set, any cmd metacharacter that would be interpreted rather
// than passed through (unquoted & | < > ( ) % !, or % and ! even inside
// quotes) produces an *UnquotedMetaError, since emulating substitution or
// command chaining is beyond a tokenizer.
func StripCarets(s string, check bool) (string, error) {
	var b strings.Builder
	quoteMode := false
	for i := 0; i < len(s); {
		switch c := s[i]; c {
		case '^':
			j := i + 1
			if j < len(s) && s[j] != '\n' {
				j++
			}
			esc := s[i:j]
			if quoteMode {
				b.WriteString(esc)
				if len(esc) > 1 {
					if esc[1] == '"' {
						quoteMode = false
					} else if check && (esc[1] == '%' || esc[1] == '!') {
						return "", &UnquotedMetaError{Input: s}
					}
				}
			} else {
				b.WriteString(esc[1:])
			}
			i = j
		case '"':
			b.WriteByte('"')
			quoteMode = !quoteMode
			i++
		default:
			j := i + 1
			for j < len(s) && s[j] != '^' && s[j] != '"' {
				j++
			}
			text := s[i:j]
			b.WriteString(text)
			if check {
				meta := cmdMetaText
				if quoteMode {
					meta = cmdMetaQuoted
				}
				if strings.ContainsAny(text, meta) {
					return "", &UnquotedMetaError{Input: s}
				}
			}
			i = j
		}
	}
	return b.String(), nil
}

// SplitCmd splits a command line as it would arrive in a program launched
// through cmd.exe: carets are interpreted first, then the result is split
// under rt via Split.
//
// cmd.exe is a shell, so this can only be faithful for strings cmd would
// treat as quoted literals; inputs with active metacharacters (command
// chains, redirections, %VAR% or !VAR! substitution) are rejected with an
// *UnquotedMetaError.
func SplitCmd(s string, rt Runtime) ([]string, error) {
	if strings.ContainsAny(s, cmdMeta) {
		stripped, err := StripCarets(s, true)
		if err != nil {
			return nil, err
		}
		s = stripped
	}
	return Split(s, rt)
}
