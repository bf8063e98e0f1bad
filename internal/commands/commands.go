package commands

import (
	"github.com/graelo/milvus-project-helper/internal/cli"
	"github.com/graelo/milvus-project-helper/internal/commands/database"
	"github.com/graelo/milvus-project-helper/internal/commands/project"
)

// set of commands
var (
	Project = cli.CommandDefinition{
		Use:         "project",
		Aliases:     []string{"projects"},
		Description: "Manage the projects of your Milvus deployment",
		Help: `Manage the projects of your Milvus deployment

	A project is the {database, role, user} triple that isolates a workspace on
	a shared Milvus deployment. The project user owns the fixed set of
	collection privileges through the project role, scoped to the project
	database.`,
		SubCommands: []cli.CommandDefinition{
			{
				Use:         "create",
				Display:     "project create",
				Description: "Create a project's database, role and user",
				Help: `Create a project's database, role and user

	Provisions the project database, then a user and a role inside it. The role
	receives the fixed set of collection privileges and is assigned to the
	user. An existing resource aborts the command unless --recreate is set.`,
				Command: &project.CommandCreate{},
			},
			{
				Use:         "describe",
				Aliases:     []string{"show"},
				Display:     "project describe",
				Description: "Display a project's resources and privileges",
				Help: `Display a project's resources and privileges

	Reports whether the project database and role exist, the collections found
	in the database, and each user's role privileges. The command is read-only.`,
				Command: &project.CommandDescribe{},
			},
			{
				Use:         "drop",
				Aliases:     []string{"delete"},
				Display:     "project drop",
				Description: "Drop a project's database, roles and users",
				Help: `Drop a project's database, roles and users

	Removes every user and role found in the project database, except the
	built-in ones, then drops the database itself.`,
				Command: &project.CommandDrop{},
			},
			{
				Use:         "change-password",
				Display:     "project change-password",
				Description: "Update the password of a project's user",
				Help:        "Update the password of a project's user",
				Command:     &project.CommandChangePassword{},
			},
		},
	}

	Database = cli.CommandDefinition{
		Use:         "database",
		Aliases:     []string{"databases", "db"},
		Description: "Inspect the databases of your Milvus deployment",
		Help:        "Inspect the databases of your Milvus deployment",
		SubCommands: []cli.CommandDefinition{
			{
				Use:         "list",
				Aliases:     []string{"ls"},
				Display:     "database list",
				Description: "List the databases of your Milvus deployment and their collections",
				Help:        "List the databases of your Milvus deployment and their collections",
				Command:     &database.CommandList{},
			},
		},
	}
)
