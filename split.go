package mslex

import (
	"fmt"
	"slices"
	"strings"
)

// Runtime selects which C runtime's command-line grammar to emulate.
type Runtime int

const (
	// RuntimeUnspecified runs both grammars and requires them to agree.
	RuntimeUnspecified Runtime = iota
	// RuntimeLegacy is the grammar of msvcrt.dll and CommandLineToArgvW.
	RuntimeLegacy
	// RuntimeModern is the grammar of the Universal C Runtime.
	RuntimeModern
)

func (rt Runtime) String() string {
	switch rt {
	case RuntimeUnspecified:
		return "unspecified"
	case RuntimeLegacy:
		return "legacy"
	case RuntimeModern:
		return "modern"
	}
	return fmt.Sprintf("Runtime(%d)", int(rt))
}

// quoteRule resolves one backslash-run/quote-run chunk: it appends the
// literal characters the run produces to b and returns the new quote mode.
// This is the only transition where the two runtimes differ.
type quoteRule func(b *strings.Builder, slashes, quotes int, quoteMode bool) bool

// The msvcrt rule. A run of N backslashes before a quote collapses to
// floor(N/2) literal backslashes; the quotes then resolve through a single
// counter: every full group of three contributes one literal quote, and a
// remainder of one flips quote mode on. Folding the pending quote mode and
// the parity of the backslash run into the same counter is exactly what
// produces the notorious triple-quote behavior.
func msvcrtQuotes(b *strings.Builder, slashes, quotes int, quoteMode bool) bool {
	b.WriteString(strings.Repeat(`\`, slashes/2))
	magic := quotes
	if quoteMode {
		magic++
	}
	if slashes%2 == 1 {
		magic += 2
	}
	b.WriteString(strings.Repeat(`"`, magic/3))
	return magic%3 == 1
}

// The UCRT rule. Backslashes halve the same way, and an odd run still
// escapes the first quote, but inside a quoted region a pair of quotes
// emits one literal quote without closing the region.
func ucrtQuotes(b *strings.Builder, slashes, quotes int, quoteMode bool) bool {
	b.WriteString(strings.Repeat(`\`, slashes/2))
	if slashes%2 == 1 {
		b.WriteByte('"')
		quotes--
	}
	for quotes > 0 {
		if quoteMode && quotes >= 2 {
			b.WriteByte('"')
			quotes -= 2
		} else {
			quoteMode = !quoteMode
			quotes--
		}
	}
	return quoteMode
}

func splitRule(s string, rule quoteRule) []string {
	sc := &scanner{s: strings.TrimLeft(s, spaceChars)}
	var args []string
	for sc.more() {
		args = append(args, scanArg(sc, rule))
	}
	return args
}

// scanArg consumes chunks until unquoted whitespace or end of input and
// returns the argument they spell. The terminating whitespace run is
// consumed with it.
func scanArg(sc *scanner, rule quoteRule) string {
	var b strings.Builder
	quoteMode := false
	for sc.more() {
		c := sc.next()
		switch c.kind {
		case chunkSpace:
			if !quoteMode {
				return b.String()
			}
			b.WriteString(c.text)
		case chunkQuotes:
			quoteMode = rule(&b, c.slashes, c.quotes, quoteMode)
		default:
			b.WriteString(c.text)
		}
	}
	return b.String()
}

// SplitMSVCRT splits a command line the way msvcrt.dll does.
//
// This matches CommandLineToArgvW except that the first word gets no
// special treatment; it computes CommandLineToArgvW("foo.exe "+s)[1:].
// Use SplitArgv when s starts with a program name.
//
// The parse is total: unterminated quoted regions close implicitly at end
// of input, and no input is an error.
func SplitMSVCRT(s string) []string {
	return splitRule(s, msvcrtQuotes)
}

// SplitUCRT splits a command line the way the Universal C Runtime does,
// which is how arguments reach argv in programs built with current
// compilers. Like SplitMSVCRT it does not treat the first word specially,
// and the parse is total.
//
// See https://learn.microsoft.com/en-us/cpp/c-language/parsing-c-command-line-arguments
func SplitUCRT(s string) []string {
	return splitRule(s, ucrtQuotes)
}

// Split splits a command line under the selected runtime's grammar.
//
// With RuntimeUnspecified it runs both grammars, and when they disagree it
// returns an *AmbiguousSplitError carrying both candidate vectors instead
// of silently picking one. Callers that know which runtime will consume the
// string should pass RuntimeLegacy or RuntimeModern.
func Split(s string, rt Runtime) ([]string, error) {
	switch rt {
	case RuntimeLegacy:
		return SplitMSVCRT(s), nil
	case RuntimeModern:
		return SplitUCRT(s), nil
	case RuntimeUnspecified:
		legacy := SplitMSVCRT(s)
		modern := SplitUCRT(s)
		if !slices.Equal(legacy, modern) {
			return nil, &AmbiguousSplitError{Input: s, Legacy: legacy, Modern: modern}
		}
		return modern, nil
	}
	return nil, fmt.Errorf("unknown runtime selector %d", int(rt))
}

// SplitArgv splits a full command line including the program name.
//
// Both runtimes parse argv[0] under a simpler grammar than the rest of the
// line: quotes toggle quoted mode, backslashes are never special, and the
// name ends at the first unquoted whitespace. The remainder is split under
// rt via Split. An empty or all-whitespace line yields no arguments.
func SplitArgv(s string, rt Runtime) ([]string, error) {
	s = strings.TrimLeft(s, spaceChars)
	if s == "" {
		return nil, nil
	}
	name, rest := cutProgramName(s)
	args, err := Split(rest, rt)
	if err != nil {
		return nil, err
	}
	return append([]string{name}, args...), nil
}

func cutProgramName(s string) (name, rest string) {
	var b strings.Builder
	quoteMode := false
	i := 0
	for ; i < len(s); i++ {
		c := s[i]
		if c == '"' {
			quoteMode = !quoteMode
			continue
		}
		if !quoteMode && isSpace(c) {
			break
		}
		b.WriteByte(c)
	}
	return b.String(), s[i:]
}
