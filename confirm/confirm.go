// Package confirm gates destructive operations behind a y/N prompt that a
// global --yes flag can skip. Repository operations themselves never
// prompt; only the CLI layer calls into this package.
package confirm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrAborted is returned when the user declines a confirmation.
var ErrAborted = errors.New("aborted by user")

// Prompter asks one question and reports whether the user accepted.
type Prompter func(message string) bool

// StdinPrompter builds the interactive prompter reading y/yes from in.
func StdinPrompter(in io.Reader, out io.Writer) Prompter {
	reader := bufio.NewReader(in)
	return func(message string) bool {
		fmt.Fprintf(out, "%s [y/N]: ", message)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	}
}

// Require returns nil when skip is set or the prompt is accepted, and
// ErrAborted when the user declines.
func Require(skip bool, message string, prompt Prompter) error {
	if skip {
		return nil
	}
	if prompt == nil || !prompt(message) {
		return ErrAborted
	}
	return nil
}
