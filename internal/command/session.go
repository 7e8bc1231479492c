package command

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/jacksmith/todo/internal/cli"
)

// Session is the read-dispatch-print loop around a Dispatcher.
type Session struct {
	Dispatcher *Dispatcher
	In         io.Reader
	Out        io.Writer
	Err        io.Writer

	// Prompt is written before each read. Empty disables it.
	Prompt string
	// Banner prints the welcome text before the first read.
	Banner bool
}

// Run processes lines until exit, end of input, or cancellation of ctx.
// Command failures are reported and the loop continues; only a read error
// or cancellation is returned.
func (s *Session) Run(ctx context.Context) error {
	if s.Banner {
		s.writeLines(s.Out, BannerLines())
	}

	reader := bufio.NewReader(s.In)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if s.Prompt != "" {
			fmt.Fprint(s.Out, s.Prompt)
		}

		// Lines have no length limit; Parse strips the line ending.
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("failed to read input: %w", err)
		}
		if err == io.EOF && line == "" {
			if s.Prompt != "" {
				fmt.Fprintln(s.Out)
			}
			return nil
		}

		if s.dispatch(line) || err == io.EOF {
			return nil
		}
	}
}

// dispatch runs one line and prints its outcome. It reports whether the
// session should stop.
func (s *Session) dispatch(line string) bool {
	res := s.Dispatcher.Dispatch(line)
	s.writeLines(s.Out, res.Lines)
	if res.Err != nil {
		fmt.Fprintln(s.Err, cli.FormatError(res.Err))
	}
	return res.Exit
}

func (s *Session) writeLines(w io.Writer, lines []string) {
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}
