package project

import (
	"github.com/graelo/milvus-project-helper/internal/cli"
	"github.com/graelo/milvus-project-helper/internal/project"
	"github.com/graelo/milvus-project-helper/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/pflag"
)

// CommandChangePassword is the `project change-password` command
type CommandChangePassword struct {
	inputs changePasswordInputs
}

type changePasswordInputs struct {
	projectInputs
	UserName    string
	OldPassword string
	NewPassword string
}

func (i *changePasswordInputs) Resolve(profile *cli.Profile, ui terminal.UI) error {
	if err := i.projectInputs.Resolve(profile, ui); err != nil {
		return err
	}

	if i.UserName == "" {
		i.UserName = project.UserName(i.Project)
	}

	if i.OldPassword == "" {
		if err := ui.AskOne(&i.OldPassword, &survey.Password{Message: "Current Password"}); err != nil {
			return err
		}
	}

	if i.NewPassword == "" {
		var password, confirmation string
		if err := ui.AskOne(&password, &survey.Password{Message: "New Password"}); err != nil {
			return err
		}
		if err := ui.AskOne(&confirmation, &survey.Password{Message: "Confirm New Password"}); err != nil {
			return err
		}
		if password != confirmation {
			return errPasswordMismatch
		}
		i.NewPassword = password
	}

	return project.CheckPassword(i.NewPassword)
}

// Flags is the command flags
func (cmd *CommandChangePassword) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&cmd.inputs.Project, flagProject, flagProjectShort, "", flagProjectUsage)
	fs.StringVar(&cmd.inputs.UserName, flagUserName, "", flagUserNameUsage)
	fs.StringVar(&cmd.inputs.OldPassword, flagOldPassword, "", flagOldPasswordUsage)
	fs.StringVar(&cmd.inputs.NewPassword, flagNewPassword, "", flagNewPasswordUsage)
}

// Inputs is the command inputs
func (cmd *CommandChangePassword) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandChangePassword) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	return project.RotatePassword(
		ui,
		clients.Milvus,
		cmd.inputs.Project,
		cmd.inputs.UserName,
		cmd.inputs.OldPassword,
		cmd.inputs.NewPassword,
	)
}
