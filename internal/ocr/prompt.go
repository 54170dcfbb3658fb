package ocr

import (
	"fmt"
	"os"

	"github.com/baalimago/docr/internal/utils"
	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
)

// SetupPrompts sets Prompt from args and stdin, falling back to the configured
// Instruction if neither has anything to say.
func (c *Configurations) SetupPrompts(args []string) error {
	prompt, err := utils.Prompt(c.StdinReplace, args, os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to setup prompt from stdin: %w", err)
	}
	if prompt == "" {
		prompt = c.Instruction
	}
	if misc.Truthy(os.Getenv("DEBUG")) {
		ancli.PrintOK(fmt.Sprintf("prompt: '%v'\n", prompt))
	}
	c.Prompt = prompt
	return nil
}
