// Package repl implements an interactive, assemble-as-you-type shell over a serial terminal,
// adapted from the teacher's terminal console: raw terminal mode and line editing come from
// golang.org/x/term, with golang.org/x/sys/unix consulted for the file descriptor checks that
// term.MakeRaw needs on the underlying tty.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/lc3kit/asm/internal/asm"
	"github.com/lc3kit/asm/internal/log"
	"github.com/lc3kit/asm/internal/vm"
)

// ErrNoTTY is returned if standard input is not a terminal; the shell requires raw mode and
// cannot fall back to line-buffered input.
var ErrNoTTY = errors.New("repl: not a tty")

// defaultOrigin is assumed so a session can start encoding instructions immediately, without
// requiring the user to type a .ORIG line first.
const defaultOrigin = "\t.ORIG x3000\n"

// Shell reads one line of assembly source at a time from a terminal, assembles everything typed
// so far, and echoes the word(s) contributed by the line just entered. A line that fails to
// assemble is reported but does not become part of the session; the user can retype it.
type Shell struct {
	fd    int
	state *term.State
	term  *term.Terminal
	log   *log.Logger

	source strings.Builder
}

type readWriter struct {
	io.Reader
	io.Writer
}

// New creates a Shell reading from sin and writing prompts and output to sout. sin must be a
// terminal device; if it is not, ErrNoTTY is returned.
func New(sin, sout *os.File, logger *log.Logger) (*Shell, error) {
	fd := int(sin.Fd())

	if !term.IsTerminal(fd) {
		return nil, ErrNoTTY
	}

	if _, err := unix.IoctlGetTermios(fd, getTermiosIoctl); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoTTY, err)
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoTTY, err)
	}

	sh := &Shell{
		fd:    fd,
		state: state,
		log:   logger,
	}

	sh.term = term.NewTerminal(readWriter{sin, sout}, "lc3asm> ")
	sh.source.WriteString(defaultOrigin)

	return sh, nil
}

// Restore returns the terminal to its initial state. Callers should defer it immediately after a
// successful call to New.
func (s *Shell) Restore() {
	_ = term.Restore(s.fd, s.state)
}

// Run reads and assembles lines until ctx is cancelled, the terminal reports EOF, or a read
// fails.
func (s *Shell) Run(ctx context.Context) error {
	lastWords := 0

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := s.term.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			return err
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		obj, err := s.tryLine(line)
		if err != nil {
			fmt.Fprintf(s.term, "error: %s\r\n", err)
			continue
		}

		for _, w := range obj.Code[lastWords:] {
			fmt.Fprintf(s.term, "%s\r\n", w)
		}

		lastWords = len(obj.Code)
	}
}

// tryLine assembles everything entered so far plus line. On success, line becomes part of the
// session; on failure, the session is left unchanged so the user can correct and retype it.
func (s *Shell) tryLine(line string) (vm.ObjectCode, error) {
	trial := s.source.String() + line + "\n"

	parser := asm.NewParser(s.log)
	parser.Parse(strings.NewReader(trial))

	if err := parser.Err(); err != nil {
		return vm.ObjectCode{}, err
	}

	gen := asm.NewGenerator(parser.Symbols(), parser.Syntax())

	obj, err := gen.Generate()
	if err != nil {
		return vm.ObjectCode{}, err
	}

	s.source.Reset()
	s.source.WriteString(trial)

	return obj, nil
}
