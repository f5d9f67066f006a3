package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"mirrorsort/internal/mirror"
)

type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// ask prints label and reads one line. A blank answer is an error.
func (p *prompter) ask(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read answer: %w", err)
	}
	answer := strings.TrimSpace(line)
	if answer == "" {
		return "", mirror.Wrap(mirror.ErrConfiguration, "prompt", "no folder path entered", nil)
	}
	return answer, nil
}
