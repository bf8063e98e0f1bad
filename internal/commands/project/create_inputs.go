package project

import (
	"errors"

	"github.com/graelo/milvus-project-helper/internal/cli"
	"github.com/graelo/milvus-project-helper/internal/project"
	"github.com/graelo/milvus-project-helper/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
)

var errPasswordMismatch = errors.New("passwords do not match")

type createInputs struct {
	projectInputs
	DatabaseName string
	RoleName     string
	UserName     string
	UserPassword string
	Recreate     bool
}

func (i *createInputs) Resolve(profile *cli.Profile, ui terminal.UI) error {
	if err := i.projectInputs.Resolve(profile, ui); err != nil {
		return err
	}

	if i.UserPassword == "" {
		var password, confirmation string
		if err := ui.AskOne(&password, &survey.Password{Message: "New User Password"}); err != nil {
			return err
		}
		if err := ui.AskOne(&confirmation, &survey.Password{Message: "Confirm User Password"}); err != nil {
			return err
		}
		if password != confirmation {
			return errPasswordMismatch
		}
		i.UserPassword = password
	}

	return project.CheckPassword(i.UserPassword)
}

func (i createInputs) naming() project.ResourceNaming {
	return project.NewResourceNaming(i.Project, i.DatabaseName, i.RoleName, i.UserName, i.UserPassword)
}
