package project

import (
	"github.com/graelo/milvus-project-helper/internal/cli"
	"github.com/graelo/milvus-project-helper/internal/project"
	"github.com/graelo/milvus-project-helper/internal/terminal"

	"github.com/spf13/pflag"
)

// CommandDrop is the `project drop` command
type CommandDrop struct {
	inputs dropInputs
}

type dropInputs struct {
	projectInputs
	DatabaseName string
}

// Flags is the command flags
func (cmd *CommandDrop) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&cmd.inputs.Project, flagProject, flagProjectShort, "", flagProjectUsage)
	fs.StringVar(&cmd.inputs.DatabaseName, flagDatabaseName, "", flagDatabaseNameUsage)
}

// Inputs is the command inputs
func (cmd *CommandDrop) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandDrop) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	proceed, err := ui.Confirm("Drop all resources of project '%s'?", cmd.inputs.Project)
	if err != nil {
		return err
	}
	if !proceed {
		ui.Print(terminal.NewTextLog("No action taken"))
		return nil
	}

	return project.Drop(ui, clients.Milvus, cmd.inputs.Project, cmd.inputs.DatabaseName)
}
