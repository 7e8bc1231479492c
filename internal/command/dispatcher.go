package command

import (
	"fmt"
	"log/slog"

	"github.com/jacksmith/todo/internal/cli"
	"github.com/jacksmith/todo/internal/logging"
	"github.com/jacksmith/todo/internal/ops"
)

// Result is the outcome of one dispatched line. On success Err is nil and
// Lines holds the output; on failure Err describes what went wrong and the
// store is unchanged. Exit is set when the session should stop.
type Result struct {
	Lines []string
	Err   error
	Exit  bool
}

// OK reports whether the command succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

func success(format string, args ...any) Result {
	return Result{Lines: []string{fmt.Sprintf(format, args...)}}
}

func failure(err error) Result {
	return Result{Err: err}
}

// handler runs one command keyword against its argument.
type handler func(arg string) Result

// Dispatcher routes parsed lines to a task store. It holds no state between
// lines apart from the store.
type Dispatcher struct {
	store    ops.Store
	markers  cli.Markers
	logger   *slog.Logger
	handlers map[string]handler
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithMarkers sets the completion markers used by list.
func WithMarkers(m cli.Markers) Option {
	return func(d *Dispatcher) {
		d.markers = m
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = l
	}
}

// New returns a Dispatcher operating on store.
func New(store ops.Store, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		store:   store,
		markers: cli.DefaultMarkers(),
		logger:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(d)
	}

	d.handlers = map[string]handler{
		"new":    d.create,
		"list":   d.list,
		"done":   d.toggle,
		"remove": d.remove,
		"delete": d.remove,
		"clear":  d.clear,
		"reset":  d.reset,
		"help":   d.help,
		"exit":   d.exit,
	}
	return d
}

// Dispatch parses line and executes it.
func (d *Dispatcher) Dispatch(line string) Result {
	return d.Execute(Parse(line))
}

// Execute runs a parsed input. Empty input yields an empty successful result.
func (d *Dispatcher) Execute(in Input) Result {
	if in.Empty() {
		return Result{}
	}

	h, ok := d.handlers[in.Command]
	if !ok {
		d.logger.Debug("unknown command", "command", in.Command)
		return failure(&cli.UnknownCommandError{Command: in.Command})
	}

	res := h(in.Arg)
	d.logger.Debug("dispatch", "command", in.Command, "arg", in.Arg, "ok", res.OK(), "tasks", d.store.Len())
	return res
}

func (d *Dispatcher) create(name string) Result {
	if name == "" {
		return failure(&cli.ValidationError{Message: "missing task name"})
	}
	task, err := d.store.Create(name)
	if err != nil {
		return failure(err)
	}
	return success("Created a new task with name: %s", task.Name)
}

func (d *Dispatcher) list(string) Result {
	return Result{Lines: d.markers.FormatList(d.store.List())}
}

func (d *Dispatcher) toggle(name string) Result {
	task, err := d.store.Toggle(name)
	if err != nil {
		return failure(err)
	}
	return success("Marked '%s' as %s", task.Name, task.State().Describe())
}

func (d *Dispatcher) remove(name string) Result {
	task, err := d.store.Delete(name)
	if err != nil {
		return failure(err)
	}
	return success("Deleted '%s'", task.Name)
}

func (d *Dispatcher) clear(string) Result {
	return success("Cleared %d completed task(s)", d.store.ClearCompleted())
}

func (d *Dispatcher) reset(string) Result {
	d.store.Reset()
	return success("All tasks have been deleted")
}

func (d *Dispatcher) help(string) Result {
	return Result{Lines: HelpLines()}
}

func (d *Dispatcher) exit(string) Result {
	res := success("Terminating todo")
	res.Exit = true
	return res
}
