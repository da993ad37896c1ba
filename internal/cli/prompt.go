package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Prompter asks for file names on an interactive stream.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter reading from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// ErrNoAnswer is returned when input ends before a usable answer was given.
var ErrNoAnswer = errors.New("no answer")

// AskFile prompts until the answer names a readable file and returns its path.
// An empty answer selects def.
func (p *Prompter) AskFile(label, def string) (string, error) {
	for {
		fmt.Fprintf(p.out, "%s[%s]: ", label, def)
		answer, err := p.in.ReadString('\n')
		answer = strings.TrimSpace(answer)
		if err != nil && (err != io.EOF || answer == "") {
			if err == io.EOF {
				return "", ErrNoAnswer
			}
			return "", err
		}
		if answer == "" {
			answer = def
		}

		f, openErr := os.Open(answer)
		if openErr == nil {
			f.Close()
			return answer, nil
		}
		fmt.Fprintf(p.out, "  file %q could not be opened: %v\n", answer, openErr)
		if err == io.EOF {
			return "", ErrNoAnswer
		}
	}
}
