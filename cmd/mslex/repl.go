package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/smoofra/mslex"
)

// runRepl reads command lines interactively and shows how each one
// tokenizes under both runtime grammars, flagging any divergence.
func runRepl() {
	homeDir, _ := os.UserHomeDir()
	historyFile := filepath.Join(homeDir, ".mslex_history")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "mslex> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize readline: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			break
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		report(line)
	}
}

// report prints one line's interpretation: the string after cmd.exe caret
// handling, the argument vector under each runtime, and a canonical
// re-quoting when the two grammars agree.
func report(line string) {
	parsed := line
	if !noCmd {
		stripped, err := mslex.StripCarets(line, true)
		if err != nil {
			color.Yellow("%v", err)
			return
		}
		if stripped != line {
			color.Blue("after cmd.exe: %s", stripped)
		}
		parsed = stripped
	}

	legacy := mslex.SplitMSVCRT(parsed)
	modern := mslex.SplitUCRT(parsed)

	if !slices.Equal(legacy, modern) {
		color.Red("legacy and modern runtimes disagree:")
		printVector("msvcrt", legacy)
		printVector("ucrt", modern)
		return
	}

	for i, arg := range legacy {
		fmt.Printf("%d) %q\n", i+1, arg)
	}

	canonical, err := mslex.JoinCmd(legacy)
	if err != nil {
		color.Red("%v", err)
		return
	}
	color.Green("canonical: %s", canonical)
}
