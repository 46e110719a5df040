package trust

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ConfirmationPrompt asks the user a yes/no question. It is an interface
// so operations can be tested without console I/O.
type ConfirmationPrompt interface {
	// Confirm displays prompt and returns true only for an explicit
	// "y" answer (case-insensitive).
	Confirm(prompt string) (bool, error)
}

// TerminalPrompt reads confirmation answers from an input stream,
// normally os.Stdin.
type TerminalPrompt struct {
	In  io.Reader
	Out io.Writer
}

// Confirm prints the prompt and reads one line from the input stream.
func (p *TerminalPrompt) Confirm(prompt string) (bool, error) {
	if _, err := fmt.Fprint(p.Out, prompt); err != nil {
		return false, err
	}
	answer, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && answer == "" {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(answer), "y"), nil
}
