package main

import (
	"fmt"
	"os"

	"github.com/smoofra/mslex"
	"github.com/spf13/cobra"
)

var (
	version = "dev" // set at build time via -ldflags "-X main.version=..."

	runtimeName string
	noCmd       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "mslex",
		Short:   "Split and quote command lines the way Windows runtimes do",
		Version: version,
		Run: func(cmd *cobra.Command, args []string) {
			runRepl()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&runtimeName, "runtime", "r", "auto",
		"runtime grammar to emulate (legacy, modern, auto)")
	rootCmd.PersistentFlags().BoolVar(&noCmd, "no-cmd", false,
		"skip cmd.exe caret interpretation and quoting")

	splitCmd := &cobra.Command{
		Use:   "split [file]",
		Short: "Split a command line read from a file or stdin, one argument per line",
		Args:  cobra.MaximumNArgs(1),
		Run:   runSplit,
	}

	quoteCmd := &cobra.Command{
		Use:   "quote [arg]...",
		Short: "Quote arguments into a single command line",
		Run:   runQuote,
	}

	rootCmd.AddCommand(splitCmd, quoteCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func selectedRuntime() (mslex.Runtime, error) {
	switch runtimeName {
	case "", "auto":
		return mslex.RuntimeUnspecified, nil
	case "legacy", "msvcrt":
		return mslex.RuntimeLegacy, nil
	case "modern", "ucrt":
		return mslex.RuntimeModern, nil
	}
	return 0, fmt.Errorf("unknown runtime %q (want legacy, modern, or auto)", runtimeName)
}
