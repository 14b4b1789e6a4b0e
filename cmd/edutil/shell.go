// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"
)

func newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run edutil commands interactively",
		Long: `Start an interactive prompt. Each line is split into words with
shell quoting rules and run as an edutil command, for example

	edutil> summary 1 2 3 4
	edutil> tree -a testdata

Type "exit" or press Ctrl-D to leave.`,
		Args:        cobra.NoArgs,
		Annotations: versioned("0.1"),
		RunE: func(cmd *cobra.Command, args []string) error {
			cyan := color.New(color.FgCyan).SprintFunc()
			rl, err := readline.NewEx(&readline.Config{
				Prompt:            cyan("edutil> "),
				HistoryFile:       cfg.HistoryFile,
				InterruptPrompt:   "^C",
				EOFPrompt:         "exit",
				HistorySearchFold: true,
				AutoComplete:      completer(cmd.Root()),
				Stdout:            cmd.OutOrStdout(),
				Stderr:            cmd.ErrOrStderr(),
			})
			if err != nil {
				return fmt.Errorf("failed to create readline: %w", err)
			}
			defer rl.Close()
			return runShell(rl, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

// lineReader is the part of *readline.Instance the shell loop uses.
type lineReader interface {
	Readline() (string, error)
}

func runShell(rl lineReader, stdout, stderr io.Writer) error {
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}
		if err := runLine(line, stdout, stderr); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
	}
}

// runLine runs one shell line as an edutil command.
func runLine(line string, stdout, stderr io.Writer) error {
	words, err := shellquote.Split(line)
	if err != nil {
		return err
	}
	if len(words) > 0 && words[0] == "shell" {
		return errors.New("already in the shell")
	}
	root := newRootCmd()
	root.SetArgs(words)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err = root.Execute()
	var ee exitError
	if errors.As(err, &ee) {
		// Status only; grep-style "no match" is not an error here.
		return nil
	}
	return err
}

// completer offers subcommand names for the first word.
func completer(root *cobra.Command) readline.AutoCompleter {
	var items []readline.PrefixCompleterInterface
	for _, c := range root.Commands() {
		if !c.Hidden {
			items = append(items, readline.PcItem(c.Name()))
		}
	}
	items = append(items, readline.PcItem("exit"))
	return readline.NewPrefixCompleter(items...)
}
