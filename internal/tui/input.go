package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"
)

// lineReader reads one line of user input after printing prompt.
// It returns ErrInputClosed once the input is exhausted or interrupted.
type lineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// newLineReader picks an interactive readline editor when in is a terminal
// and a buffered line reader otherwise.
func newLineReader(in *os.File, out io.Writer) (lineReader, error) {
	if !isatty.IsTerminal(in.Fd()) && !isatty.IsCygwinTerminal(in.Fd()) {
		return newBufferedReader(in, out), nil
	}

	rl, err := readline.NewEx(&readline.Config{
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		// PIN codes are typed at these prompts.
		HistoryLimit: -1,
		FuncFilterInputRune: func(r rune) (rune, bool) {
			if r == readline.CharCtrlZ {
				return r, false
			}
			return r, true
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create readline prompt: %w", err)
	}

	return &readlineReader{rl: rl}, nil
}

type readlineReader struct {
	rl *readline.Instance
}

func (r *readlineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)

	line, err := r.rl.Readline()
	if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
		return "", ErrInputClosed
	}
	if err != nil {
		return "", err
	}

	return line, nil
}

func (r *readlineReader) Close() error {
	return r.rl.Close()
}

// bufferedReader reads lines of any length from a non-terminal input.
type bufferedReader struct {
	rd  *bufio.Reader
	out io.Writer
}

func newBufferedReader(in io.Reader, out io.Writer) *bufferedReader {
	return &bufferedReader{rd: bufio.NewReader(in), out: out}
}

func (r *bufferedReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)

	line, err := r.rd.ReadString('\n')
	if errors.Is(err, io.EOF) {
		if line == "" {
			return "", ErrInputClosed
		}
	} else if err != nil {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (r *bufferedReader) Close() error {
	return nil
}

type readResult struct {
	line string
	err  error
}

// contextReader stops waiting for input once ctx is done. The pending read
// of the wrapped reader is left behind and its result dropped.
type contextReader struct {
	ctx context.Context
	in  lineReader
}

func newContextReader(ctx context.Context, in lineReader) *contextReader {
	return &contextReader{ctx: ctx, in: in}
}

func (r *contextReader) ReadLine(prompt string) (string, error) {
	if r.ctx.Err() != nil {
		return "", ErrInputClosed
	}

	done := make(chan readResult, 1)
	go func() {
		line, err := r.in.ReadLine(prompt)
		done <- readResult{line: line, err: err}
	}()

	select {
	case <-r.ctx.Done():
		return "", ErrInputClosed
	case res := <-done:
		return res.line, res.err
	}
}

func (r *contextReader) Close() error {
	return r.in.Close()
}
