package mslex

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument reports an argument that has no representation on a
// Windows command line. The only such case is an embedded NUL character.
var ErrInvalidArgument = errors.New("argument cannot appear on a command line")

// AmbiguousSplitError is returned by Split, SplitCmd and SplitArgv when the
// runtime is unspecified and the legacy and modern grammars tokenize the
// input differently. Both candidate vectors are carried so the caller can
// inspect the divergence and force a Runtime.
type AmbiguousSplitError struct {
	Input  string
	Legacy []string
	Modern []string
}

func (e *AmbiguousSplitError) Error() string {
	return fmt.Sprintf("command line %q is ambiguous: legacy and modern runtimes disagree", e.Input)
}

// UnquotedMetaError reports cmd.exe metacharacters that appear outside
// quotes, where cmd would interpret them instead of passing them through.
type UnquotedMetaError struct {
	Input string
}

func (e *UnquotedMetaError) Error() string {
	return fmt.Sprintf("unquoted cmd metacharacters in %q", e.Input)
}
