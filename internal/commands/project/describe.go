package project

import (
	"github.com/graelo/milvus-project-helper/internal/cli"
	"github.com/graelo/milvus-project-helper/internal/project"
	"github.com/graelo/milvus-project-helper/internal/terminal"

	"github.com/spf13/pflag"
)

// CommandDescribe is the `project describe` command
type CommandDescribe struct {
	inputs describeInputs
}

type describeInputs struct {
	projectInputs
	UserName string
}

// Flags is the command flags
func (cmd *CommandDescribe) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&cmd.inputs.Project, flagProject, flagProjectShort, "", flagProjectUsage)
	fs.StringVar(&cmd.inputs.UserName, flagUserName, "", "restrict the report to a single user")
}

// Inputs is the command inputs
func (cmd *CommandDescribe) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandDescribe) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	return project.Describe(ui, clients.Milvus, cmd.inputs.Project, cmd.inputs.UserName)
}
