package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/smoofra/mslex"
	"github.com/spf13/cobra"
)

func runSplit(cmd *cobra.Command, args []string) {
	var r io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			color.Red("Cannot open input: %v", err)
			os.Exit(1)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		color.Red("Read error: %v", err)
		os.Exit(1)
	}

	rt, err := selectedRuntime()
	if err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}

	line := string(data)
	var parts []string
	if noCmd {
		parts, err = mslex.Split(line, rt)
	} else {
		parts, err = mslex.SplitCmd(line, rt)
	}
	if err != nil {
		var amb *mslex.AmbiguousSplitError
		if errors.As(err, &amb) {
			color.Red("Ambiguous command line, force one with --runtime:")
			printVector("msvcrt", amb.Legacy)
			printVector("ucrt", amb.Modern)
			os.Exit(1)
		}
		color.Red("%v", err)
		os.Exit(1)
	}

	for _, p := range parts {
		fmt.Println(p)
	}
}

func runQuote(cmd *cobra.Command, args []string) {
	join := mslex.JoinCmd
	if noCmd {
		join = mslex.Join
	}

	line, err := join(args)
	if err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
	fmt.Println(line)
}

func printVector(label string, args []string) {
	color.Yellow("%s:", label)
	for i, arg := range args {
		fmt.Printf("%d) %q\n", i+1, arg)
	}
}
