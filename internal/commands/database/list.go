package database

import (
	"github.com/graelo/milvus-project-helper/internal/cli"
	"github.com/graelo/milvus-project-helper/internal/cloud/milvus"
	"github.com/graelo/milvus-project-helper/internal/terminal"
)

// CommandList is the `database list` command
type CommandList struct{}

// Handler is the command handler
func (cmd *CommandList) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	databases, err := clients.Milvus.Databases()
	if err != nil {
		return err
	}

	if len(databases) == 0 {
		ui.Print(terminal.NewTextLog("No databases found"))
		return nil
	}

	for _, database := range databases {
		var collections []string
		listErr := milvus.WithActiveDatabase(clients.Milvus, database, func() error {
			var err error
			collections, err = clients.Milvus.Collections()
			return err
		})
		if listErr != nil {
			ui.Print(terminal.NewWarningLog("Database '%s': collections not listed (%s)", database, listErr))
			continue
		}

		if len(collections) == 0 {
			ui.Print(terminal.NewTextLog("Database '%s': no collections", database))
			continue
		}

		items := make([]interface{}, 0, len(collections))
		for _, collection := range collections {
			items = append(items, collection)
		}
		ui.Print(terminal.NewListLog("Database '"+database+"':", items...))
	}
	return nil
}
