// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"os/signal"
	"strings"

	"github.com/ebujak/edutils/shutil"
	"github.com/spf13/cobra"
)

func newSpeakCmd() *cobra.Command {
	var o shutil.SpeakOptions
	cmd := &cobra.Command{
		Use:   "speak text...",
		Short: "Read text aloud with a text-to-speech command",
		Long: `Read text aloud. The synthesis command defaults to EDUTIL_TTS_COMMAND
or "` + shutil.DefaultSpeakCommand + `". In commands, {text} is replaced by
the text and {file} by a temporary audio file; a command that writes
{file} needs a --play command (or EDUTIL_TTS_PLAY) to play it.`,
		Annotations: versioned("0.4"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.Command == "" {
				o.Command = cfg.TTSCommand
			}
			if o.Play == "" {
				o.Play = cfg.TTSPlay
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return shutil.Speak(ctx, strings.Join(args, " "), o)
		},
	}
	cmd.Flags().StringVar(&o.Command, "command", "", "speech synthesis `command` template")
	cmd.Flags().StringVar(&o.Play, "play", "", "audio playback `command` template")
	return cmd
}
