package main

import (
	"context"

	"github.com/jacksmith/todo/internal/cli"
	"github.com/jacksmith/todo/internal/command"
	"github.com/jacksmith/todo/internal/config"
	"github.com/jacksmith/todo/internal/logging"
	"github.com/jacksmith/todo/internal/ops"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	noColor    bool
	noBanner   bool
	debug      bool
	prompt     string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "todo",
		Short: "todo - an interactive in-memory task list",
		Long: `todo is an interactive task list. It reads one command per line
and keeps tasks in memory for the lifetime of the session.

Commands inside the session:
  new <name>      Create a new task
  list            Show all tasks
  done <name>     Toggle a task between completed and incomplete
  remove <name>   Remove a task (alias: delete)
  clear           Remove all completed tasks
  reset           Remove all tasks
  help            Show available commands
  exit            Leave the session

Settings are read from ~/.todoconfig.yaml (or $TODO_CONFIG).`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "path to config file (default ~/.todoconfig.yaml)")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	cmd.Flags().BoolVar(&opts.noBanner, "no-banner", false, "do not print the welcome banner")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "log diagnostics to stderr")
	cmd.Flags().StringVar(&opts.prompt, "prompt", "", "prompt printed before each command")

	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetVersionTemplate("todo version {{.Version}}\n")
	return cmd
}

func runSession(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()
	interactive := cli.IsInteractive(in)

	cli.SetColorEnabled(!opts.noColor && cfg.ColorEnabled(cli.IsTerminal(out)))

	logger := logging.New(cmd.ErrOrStderr(), opts.debug || logging.DebugEnabled())
	logger.Debug("starting session", "interactive", interactive, "color", cli.ColorEnabled())

	d := command.New(ops.NewTaskList(),
		command.WithMarkers(cli.Markers{Done: cfg.DoneMarker, Open: cfg.OpenMarker}),
		command.WithLogger(logger),
	)

	s := &command.Session{
		Dispatcher: d,
		In:         in,
		Out:        out,
		Err:        cmd.ErrOrStderr(),
		Banner:     cfg.Banner && !opts.noBanner && interactive,
	}
	// Piped input gets no prompt unless one is asked for explicitly.
	if interactive {
		s.Prompt = cfg.Prompt
	}
	if cmd.Flags().Changed("prompt") {
		s.Prompt = opts.prompt
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return s.Run(ctx)
}

func loadConfig(opts *rootOptions) (*config.Config, error) {
	path := opts.configPath
	if path == "" {
		p, err := config.Path()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return config.Load(path)
}
