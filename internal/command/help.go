package command

import "github.com/jacksmith/todo/internal/cli"

// usage describes one command for help and banner output.
type usage struct {
	Syntax      string
	Description string
	Example     string
}

var usages = []usage{
	{"new <name>", "Create new task", "new learn go"},
	{"list", "See all current tasks", ""},
	{"done <name>", "Toggle a task between completed and incomplete", "done learn go"},
	{"remove <name>", "Remove a task (alias: delete)", "remove learn go"},
	{"clear", "Clear all completed tasks", ""},
	{"reset", "Clear all tasks", ""},
	{"help", "Show available commands", ""},
	{"exit", "Exit the app", ""},
}

// HelpLines returns the command reference printed by the help command.
func HelpLines() []string {
	table := cli.NewTable()
	for _, u := range usages {
		table.AddRow(u.Syntax, u.Description)
	}
	return append([]string{"Available commands:"}, table.Lines()...)
}

// BannerLines returns the welcome text printed when a session starts.
func BannerLines() []string {
	table := cli.NewTable()
	for _, u := range usages {
		table.AddRow(u.Syntax, u.Description)
		if u.Example != "" {
			table.AddRow("", cli.Gray("example: "+u.Example))
		}
	}
	return append([]string{"Welcome to todo, run these commands:"}, table.Lines()...)
}
