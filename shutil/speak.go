// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/kballard/go-shellquote"
)

// DefaultSpeakCommand speaks its text directly.
const DefaultSpeakCommand = "espeak {text}"

// SpeakOptions control Speak.
//
// Commands are split into words with shell quoting rules. In each
// word, "{text}" is replaced by the text to speak and "{file}" by the
// path of a temporary audio file.
type SpeakOptions struct {
	// Command synthesizes speech. If it mentions {file}, it should
	// write audio there, and Play is run afterwards to play it.
	// Empty means DefaultSpeakCommand.
	Command string

	// Play plays {file}. It is only used if Command mentions {file}.
	Play string

	// Dir is where temporary audio files go. Empty means
	// os.TempDir().
	Dir string

	// Ext is the temporary file's extension, default ".wav".
	Ext string
}

// Speak reads text aloud using external text-to-speech commands. Empty
// text does nothing.
func Speak(ctx context.Context, text string, o SpeakOptions) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	cmdLine := o.Command
	if cmdLine == "" {
		cmdLine = DefaultSpeakCommand
	}
	if !strings.Contains(cmdLine, "{file}") {
		return runTemplate(ctx, cmdLine, text, "")
	}
	if o.Play == "" {
		return errors.New("speech command writes {file} but no play command is set")
	}

	dir, ext := o.Dir, o.Ext
	if dir == "" {
		dir = os.TempDir()
	}
	if ext == "" {
		ext = ".wav"
	}
	file := filepath.Join(dir, "edutil-speak-"+uuid.NewString()+ext)
	defer os.Remove(file)

	if err := runTemplate(ctx, cmdLine, text, file); err != nil {
		return err
	}
	return runTemplate(ctx, o.Play, text, file)
}

func runTemplate(ctx context.Context, cmdLine, text, file string) error {
	words, err := shellquote.Split(cmdLine)
	if err != nil {
		return fmt.Errorf("parsing command %q: %w", cmdLine, err)
	}
	if len(words) == 0 {
		return fmt.Errorf("empty command")
	}
	r := strings.NewReplacer("{text}", text, "{file}", file)
	for i, w := range words {
		words[i] = r.Replace(w)
	}
	cmd := exec.CommandContext(ctx, words[0], words[1:]...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %w\n%s", words[0], err, msg)
		}
		return fmt.Errorf("%s: %w", words[0], err)
	}
	return nil
}
