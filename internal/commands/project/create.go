package project

import (
	"github.com/graelo/milvus-project-helper/internal/cli"
	"github.com/graelo/milvus-project-helper/internal/project"
	"github.com/graelo/milvus-project-helper/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/pflag"
)

// CommandCreate is the `project create` command
type CommandCreate struct {
	inputs createInputs
}

// Flags is the command flags
func (cmd *CommandCreate) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&cmd.inputs.Project, flagProject, flagProjectShort, "", flagProjectUsage)
	fs.StringVar(&cmd.inputs.DatabaseName, flagDatabaseName, "", flagDatabaseNameUsage)
	fs.StringVar(&cmd.inputs.RoleName, flagRoleName, "", flagRoleNameUsage)
	fs.StringVar(&cmd.inputs.UserName, flagUserName, "", flagUserNameUsage)
	fs.StringVar(&cmd.inputs.UserPassword, flagUserPassword, "", flagUserPasswordUsage)
	fs.BoolVar(&cmd.inputs.Recreate, flagRecreate, false, flagRecreateUsage)
}

// Inputs is the command inputs
func (cmd *CommandCreate) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandCreate) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	naming := cmd.inputs.naming()

	ui.Print(terminal.NewListLog(
		"Resolved project resource names:",
		"database: "+naming.DatabaseName,
		"role: "+naming.RoleName,
		"user: "+naming.UserName,
	))

	if !ui.AutoConfirm() {
		proceed := true
		if err := ui.AskOne(&proceed, &survey.Confirm{
			Message: "Please confirm the resource names above",
			Default: true,
		}); err != nil {
			return err
		}
		if !proceed {
			ui.Print(terminal.NewTextLog("No action taken"))
			return nil
		}
	}

	if err := project.Create(ui, clients.Milvus, naming, cmd.inputs.Recreate); err != nil {
		return err
	}

	ui.Print(terminal.NewTextLog("Successfully created project '%s'", naming.ProjectName))
	return nil
}
