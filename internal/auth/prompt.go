package auth

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// TerminalPrompter collects the one-time authorization code from an
// operator. Streams are injected so tests can substitute buffers; the
// wait on input is unbounded.
type TerminalPrompter struct {
	In  io.Reader
	Out io.Writer
}

// Prompt prints the authorization URL with instructions and blocks
// until the operator supplies a code.
func (p *TerminalPrompter) Prompt(authURL string) (string, error) {
	fmt.Fprintf(p.Out, "Authorize this app by visiting this url:\n\n%v\n\n", authURL)
	fmt.Fprint(p.Out, "Enter the code from that page here: ")

	scanner := bufio.NewScanner(p.In)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read authorization code: %w", err)
		}
		return "", errors.New("no authorization code entered")
	}

	code := strings.TrimSpace(scanner.Text())
	if code == "" {
		return "", errors.New("no authorization code entered")
	}
	return code, nil
}
