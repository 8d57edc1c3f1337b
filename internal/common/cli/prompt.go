// Package cli holds the line-oriented prompt helpers behind every numbered
// menu. Reads block on the input stream; when it ends, ok turns false and
// the screens unwind back to the caller.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type Prompter struct {
	sc  *bufio.Scanner
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{sc: bufio.NewScanner(in), out: out}
}

func (p *Prompter) Say(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// ReadLine prints the prompt and returns the next trimmed input line.
// ok is false once the stream is exhausted.
func (p *Prompter) ReadLine(prompt string) (string, bool) {
	fmt.Fprint(p.out, prompt)
	if !p.sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(p.sc.Text()), true
}

// ReadInt keeps prompting until it gets an integer or the stream ends.
func (p *Prompter) ReadInt(prompt string) (int, bool) {
	for {
		raw, ok := p.ReadLine(prompt)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			p.Say("Please enter a whole number.")
			continue
		}
		return n, true
	}
}
