// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command edutil is a collection of small data and shell utilities.
//
// Its centerpiece is the five-number summary:
//
//	$ edutil summary 1 2 3 7 8 8 11 15 17
//	(1, 2.5, 8, 13, 17)
//
// which by default uses the hinge method (the median of each half,
// excluding the overall median when the sample size is odd), and with
// -m interp uses linearly interpolated quantiles instead.
//
// Other subcommands draw charts (hist, bar, pie), stand in for shell
// tools (head, tail, wc, tree, grep, ls, columns), and inspect Go
// packages. "edutil shell" starts an interactive prompt that accepts
// any subcommand.
//
// Settings are read from EDUTIL_* environment variables, which may
// also be given in a .env file in the current directory.
package main

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"sort"

	"github.com/ebujak/edutils/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfg    = &config.Config{Encoding: "utf-8"}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
)

// exitError makes the process exit with a specific status without
// printing anything.
type exitError struct {
	code int
}

func (e exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// versionKey is the annotation holding each command's version.
const versionKey = "version"

func versioned(v string) map[string]string {
	return map[string]string{versionKey: v}
}

// newRootCmd builds a fresh command tree. The shell builds one per
// input line so flag values do not leak between lines.
func newRootCmd() *cobra.Command {
	var (
		flagVerbose  bool
		flagEnvFiles []string
	)
	root := &cobra.Command{
		Use:           "edutil",
		Short:         "Five-number summaries, charts and small shell utilities",
		Annotations:   versioned("0.8"),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(flagEnvFiles...)
			if err != nil {
				return err
			}
			if flagVerbose {
				c.Verbose = true
			}
			cfg = c
			level := slog.LevelWarn
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log progress to stderr")
	root.PersistentFlags().StringSliceVar(&flagEnvFiles, "env-file", []string{".env"}, "read settings from `files` if they exist")

	root.AddCommand(
		newSummaryCmd(),
		newHistCmd(),
		newBarCmd(),
		newPieCmd(),
		newHeadCmd(),
		newTailCmd(),
		newWCCmd(),
		newTreeCmd(),
		newGrepCmd(),
		newLsCmd(),
		newColumnsCmd(),
		newSpeakCmd(),
		newGeoCmd(),
		newPPCmd(),
		newMeminfoCmd(),
		newInspectCmd(),
		newVersionsCmd(),
		newShellCmd(),
	)
	return root
}

// commandVersions returns the version of root and each of its
// subcommands, keyed by command path.
func commandVersions(root *cobra.Command) map[string]string {
	vs := make(map[string]string)
	var walk func(c *cobra.Command)
	walk = func(c *cobra.Command) {
		if v, ok := c.Annotations[versionKey]; ok {
			vs[c.CommandPath()] = v
		}
		for _, sub := range c.Commands() {
			walk(sub)
		}
	}
	walk(root)
	return vs
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func main() {
	log.SetPrefix("edutil: ")
	log.SetFlags(0)

	if err := newRootCmd().Execute(); err != nil {
		var ee exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		log.Print(err)
		os.Exit(1)
	}
}
