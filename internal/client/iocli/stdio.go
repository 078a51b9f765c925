package iocli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// Stdio implements IO on the process terminal. Line input goes through
// one buffered reader so consecutive prompts share the same stream.
type Stdio struct {
	in *bufio.Reader
}

// NewStdio creates terminal-backed IO.
func NewStdio() IO {
	return &Stdio{in: bufio.NewReader(os.Stdin)}
}

func (s *Stdio) Println(a ...any) {
	fmt.Println(a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	fmt.Printf(format, a...)
}

// ReadInput prompts for one line and returns it without surrounding
// whitespace.
func (s *Stdio) ReadInput(prompt string) (string, error) {
	fmt.Print(prompt)

	line, err := s.in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadPassword prompts for a line with terminal echo disabled.
func (s *Stdio) ReadPassword(prompt string) (string, error) {
	fmt.Print(prompt)

	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(pw), nil
}
