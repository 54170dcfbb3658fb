package utils

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
)

// Prompt joins args into a single prompt. If stdin is a pipe, its content is
// used in place of every occurrence of stdinReplace, or appended if
// stdinReplace is unset or not found. Returns an empty string if there's
// neither args nor piped input.
func Prompt(stdinReplace string, args []string, stdin *os.File) (string, error) {
	debug := misc.Truthy(os.Getenv("DEBUG"))
	fi, err := stdin.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat stdin: %w", err)
	}
	hasPipe := fi.Mode()&os.ModeNamedPipe != 0
	if !hasPipe {
		return strings.Join(args, " "), nil
	}

	inputData, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	pipeIn := strings.TrimSpace(string(inputData))
	prompt := strings.Join(args, " ")
	if stdinReplace != "" && strings.Contains(prompt, stdinReplace) {
		if debug {
			ancli.PrintOK(fmt.Sprintf("attempting to replace: '%v' with stdin\n", stdinReplace))
		}
		return strings.ReplaceAll(prompt, stdinReplace, pipeIn), nil
	}
	if prompt == "" {
		return pipeIn, nil
	}
	if pipeIn == "" {
		return prompt, nil
	}
	return prompt + " " + pipeIn, nil
}
