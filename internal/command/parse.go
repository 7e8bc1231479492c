// Package command parses input lines and dispatches them to a task store.
package command

import "strings"

// Input is one parsed line: a command keyword and its argument.
type Input struct {
	Command string
	Arg     string
}

// Empty reports whether the line carried no command. Empty input is ignored.
func (in Input) Empty() bool {
	return in.Command == ""
}

// Parse splits a raw line at its first space. The keyword is the text before
// the space and the argument is everything after it, both trimmed. A line
// without a space is taken whole as the keyword.
func Parse(line string) Input {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	i := strings.IndexByte(line, ' ')
	if i < 0 {
		return Input{Command: line}
	}
	return Input{
		Command: strings.TrimSpace(line[:i]),
		Arg:     strings.TrimSpace(line[i:]),
	}
}
