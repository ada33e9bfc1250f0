package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter reads operator input line by line. Prompts go straight to
// the output writer rather than the logger so they stay visible no
// matter what log level is configured.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter reading from in and writing prompts to out
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Line writes the prompt and reads one line of input, with the line
// terminator stripped. A final line without a terminator still counts.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}
