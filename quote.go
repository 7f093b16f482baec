package mslex

import (
	"fmt"
	"strings"
)

const spaceChars = " \t\n\r\v\f"

// escapeQuotes backslash-escapes every quote in s. Each backslash run that
// sits in front of a quote run is doubled so the tokenizers halve it back
// to the original count; backslashes elsewhere are left alone.
func escapeQuotes(s string) string {
	sc := &scanner{s: s}
	var b strings.Builder
	for sc.more() {
		c := sc.next()
		if c.kind == chunkQuotes {
			b.WriteString(strings.Repeat(`\`, 2*c.slashes))
			for i := 0; i < c.quotes; i++ {
				b.WriteString(`\"`)
			}
		} else {
			b.WriteString(c.text)
		}
	}
	return b.String()
}

// wrapInQuotes wraps a string whose internal quotes are already escaped.
// A trailing backslash run would otherwise swallow the closing quote, so
// it is doubled.
func wrapInQuotes(s string) string {
	trailing := len(s) - len(strings.TrimRight(s, `\`))
	return `"` + s + strings.Repeat(`\`, trailing) + `"`
}

// Quote quotes one argument for direct consumption by CommandLineToArgvW
// or a program's C runtime, with no cmd.exe in between. The result
// re-tokenizes to the original string under both SplitMSVCRT and
// SplitUCRT.
//
// Arguments without whitespace or quotes come back verbatim; the empty
// string becomes `""`. The only failure is an argument containing NUL,
// which no command line can represent; that returns an error wrapping
// ErrInvalidArgument.
func Quote(s string) (string, error) {
	if strings.IndexByte(s, 0) != -1 {
		return "", fmt.Errorf("cannot quote %q: %w", s, ErrInvalidArgument)
	}
	if s == "" {
		return `""`, nil
	}
	if !strings.ContainsAny(s, spaceChars) {
		return escapeQuotes(s), nil
	}
	return wrapInQuotes(escapeQuotes(s)), nil
}

// quoteForCmd splits s into sections that can be quoted or used verbatim,
// runs of % and ! which must be caret-escaped outside quotes, and quote
// characters, which need a caret for cmd.exe plus a backslash for the
// runtime underneath.
func quoteForCmd(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); {
		switch c := s[i]; c {
		case '%', '!':
			b.WriteByte('^')
			b.WriteByte(c)
			i++
		case '"':
			b.WriteString(`\^"`)
			i++
		default:
			j := i + 1
			for j < len(s) && s[j] != '%' && s[j] != '!' && s[j] != '"' {
				j++
			}
			section := s[i:j]
			// A trailing backslash would combine with a backslash
			// escaping a quote, so such a section must be quoted too.
			if strings.ContainsAny(section, spaceChars+cmdMeta) || strings.HasSuffix(section, `\`) {
				b.WriteString(wrapInQuotes(section))
			} else {
				b.WriteString(section)
			}
			i = j
		}
	}
	return b.String()
}

// caretEscape escapes every cmd metacharacter with a caret, quoting
// nothing. Only sound for strings without whitespace or quotes.
func caretEscape(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(cmdMeta, s[i]) != -1 {
			b.WriteByte('^')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// QuoteCmd quotes one argument so that it survives cmd.exe and then parses
// back to the original string under both runtime grammars. Arguments with
// no whitespace and no cmd metacharacters come back verbatim.
//
// Like Quote, the only failure is an embedded NUL.
func QuoteCmd(s string) (string, error) {
	if strings.IndexByte(s, 0) != -1 {
		return "", fmt.Errorf("cannot quote %q: %w", s, ErrInvalidArgument)
	}
	if s == "" {
		return `""`, nil
	}
	if !strings.ContainsAny(s, spaceChars+cmdMeta) {
		return s, nil
	}
	quoted := quoteForCmd(s)
	if !strings.ContainsAny(s, spaceChars+`"`) {
		// A string like x\! would be quoted as "x\\"^! above, but the
		// all-caret form x\^! is shorter and just as safe.
		if alt := caretEscape(s); len(alt) < len(quoted) {
			return alt, nil
		}
	}
	return quoted, nil
}

// Join quotes each argument with Quote and joins them with single spaces.
// Splitting the result under either runtime yields args again. An empty
// slice joins to the empty string.
func Join(args []string) (string, error) {
	return join(args, Quote)
}

// JoinCmd quotes each argument with QuoteCmd and joins them with single
// spaces, producing a command line safe to hand to cmd.exe.
func JoinCmd(args []string) (string, error) {
	return join(args, QuoteCmd)
}

func join(args []string, quote func(string) (string, error)) (string, error) {
	quoted := make([]string, len(args))
	for i, arg := range args {
		q, err := quote(arg)
		if err != nil {
			return "", err
		}
		quoted[i] = q
	}
	return strings.Join(quoted, " "), nil
}
