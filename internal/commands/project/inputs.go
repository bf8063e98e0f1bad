package project

import (
	"github.com/graelo/milvus-project-helper/internal/cli"
	"github.com/graelo/milvus-project-helper/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
)

// projectInputs are the inputs shared by every `project` sub command
type projectInputs struct {
	Project string
}

func (i *projectInputs) Resolve(profile *cli.Profile, ui terminal.UI) error {
	if i.Project == "" {
		if err := ui.AskOne(&i.Project, &survey.Input{Message: "Project Name"}); err != nil {
			return err
		}
	}
	return nil
}
