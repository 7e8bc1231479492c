package command

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jacksmith/todo/internal/ops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSession returns a session reading input and writing both streams to one
// buffer so output order is preserved.
func newSession(input string) (*Session, *bytes.Buffer, *ops.TaskList) {
	store := ops.NewTaskList()
	var out bytes.Buffer
	return &Session{
		Dispatcher: New(store),
		In:         strings.NewReader(input),
		Out:        &out,
		Err:        &out,
	}, &out, store
}

func TestSessionRun(t *testing.T) {
	s, out, store := newSession("new a\nnew b\ndone a\nlist\nexit\nnew never\n")

	require.NoError(t, s.Run(context.Background()))

	expected := strings.Join([]string{
		"Created a new task with name: a",
		"Created a new task with name: b",
		"Marked 'a' as completed",
		"Found 2 task(s)",
		"[✓] a",
		"[✗] b",
		"Terminating todo",
	}, "\n") + "\n"
	assert.Equal(t, expected, out.String())
	assert.Equal(t, 2, store.Len())
}

func TestSessionContinuesAfterFailures(t *testing.T) {
	s, out, store := newSession("bogus\nnew\nremove x\nnew a\nnew a\n\nlist\n")

	require.NoError(t, s.Run(context.Background()))

	expected := strings.Join([]string{
		`error: unknown command "bogus". Type 'help' to see available commands.`,
		"error: missing task name",
		`error: task "x" not found`,
		"Created a new task with name: a",
		`error: task "a" already exists`,
		"Found 1 task(s)",
		"[✗] a",
	}, "\n") + "\n"
	assert.Equal(t, expected, out.String())
	assert.Equal(t, 1, store.Len())
}

func TestSessionSeparateErrorStream(t *testing.T) {
	var out, errOut bytes.Buffer
	s := &Session{
		Dispatcher: New(ops.NewTaskList()),
		In:         strings.NewReader("new a\ndone b\n"),
		Out:        &out,
		Err:        &errOut,
	}

	require.NoError(t, s.Run(context.Background()))
	assert.Equal(t, "Created a new task with name: a\n", out.String())
	assert.Equal(t, "error: task \"b\" not found\n", errOut.String())
}

func TestSessionCRLFInput(t *testing.T) {
	s, out, store := newSession("new a\r\ndone a\r\n")

	require.NoError(t, s.Run(context.Background()))
	assert.Contains(t, out.String(), "Marked 'a' as completed")
	completed, ok := store.Status("a")
	assert.True(t, ok)
	assert.True(t, completed)
}

func TestSessionEOFWithoutNewline(t *testing.T) {
	s, out, store := newSession("new a")

	require.NoError(t, s.Run(context.Background()))
	assert.Equal(t, "Created a new task with name: a\n", out.String())
	assert.Equal(t, 1, store.Len())
}

func TestSessionLongLine(t *testing.T) {
	long := strings.Repeat("x", 2<<20)
	s, out, store := newSession("new " + long + "\nnew b\nlist\n")

	require.NoError(t, s.Run(context.Background()))
	assert.Equal(t, 2, store.Len())

	completed, ok := store.Status(long)
	assert.True(t, ok)
	assert.False(t, completed)
	_, ok = store.Status("b")
	assert.True(t, ok)
	assert.Contains(t, out.String(), "Found 2 task(s)")
}

func TestSessionPromptAndBanner(t *testing.T) {
	s, out, _ := newSession("list\nexit\n")
	s.Prompt = "# "
	s.Banner = true

	require.NoError(t, s.Run(context.Background()))

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "Welcome to todo"))
	assert.Contains(t, text, "example: new learn go")
	assert.Contains(t, text, "# Found 0 task(s)\n# Terminating todo\n")
}

func TestSessionPromptAtEOF(t *testing.T) {
	s, out, _ := newSession("")
	s.Prompt = "# "

	require.NoError(t, s.Run(context.Background()))
	assert.Equal(t, "# \n", out.String())
}

func TestSessionCancelled(t *testing.T) {
	s, out, store := newSession("new a\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
	assert.Equal(t, 0, store.Len())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestSessionReadError(t *testing.T) {
	var out bytes.Buffer
	s := &Session{
		Dispatcher: New(ops.NewTaskList()),
		In:         failingReader{},
		Out:        &out,
		Err:        &out,
	}

	err := s.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read input")
	assert.Contains(t, err.Error(), "disk on fire")
}
