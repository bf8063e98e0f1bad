package project

import (
	"slices"

	"github.com/graelo/milvus-project-helper/internal/cloud/milvus"
	"github.com/graelo/milvus-project-helper/internal/terminal"
)

// collectionPrivileges is the fixed set granted to every newly created
// project role, each scoped to all collections of the project database
var collectionPrivileges = []string{
	"CreateIndex",
	"Load",
	"Insert",
	"Delete",
	"Search",
	"Query",
	"Flush",
}

// set of built-in names the drop procedure must never remove
const protectedUser = "root"

var protectedRoles = []string{"admin", "public"}

// Create provisions the project's database, user and role, granting the
// fixed collection privileges to a newly created role and assigning it to
// the user. An existing resource aborts the procedure with a
// ResourceExistsError unless recreate is set, in which case it is dropped
// and created anew. Resources created before the abort stay in place.
func Create(ui terminal.UI, client milvus.Client, naming ResourceNaming, recreate bool) error {
	databaseExists, err := client.DatabaseExists(naming.DatabaseName)
	if err != nil {
		return err
	}

	header(ui, naming.ProjectName)
	ui.Print(terminal.NewTextLog(resourceStatus("database", naming.DatabaseName, databaseExists)))

	if databaseExists {
		if !recreate {
			return ResourceExistsError{"database", naming.DatabaseName}
		}
		if err := client.DropDatabase(naming.DatabaseName); err != nil {
			return err
		}
		ui.Print(bullet("Dropped database '%s'", naming.DatabaseName))
	}

	if err := client.CreateDatabase(naming.DatabaseName); err != nil {
		return err
	}
	ui.Print(bullet("Created database"))

	return milvus.WithActiveDatabase(client, naming.DatabaseName, func() error {
		userExists, err := client.UserExists(naming.UserName)
		if err != nil {
			return err
		}
		roleExists, err := client.RoleExists(naming.RoleName)
		if err != nil {
			return err
		}

		ui.Print(
			terminal.NewTextLog(resourceStatus("user", naming.UserName, userExists)),
			terminal.NewTextLog(resourceStatus("role", naming.RoleName, roleExists)),
		)

		if userExists {
			if !recreate {
				return ResourceExistsError{"user", naming.UserName}
			}
			if err := client.DropUser(naming.UserName); err != nil {
				return err
			}
			ui.Print(bullet("Dropped user '%s'", naming.UserName))
		}
		if err := client.CreateUser(naming.UserName, naming.UserPassword); err != nil {
			return err
		}
		ui.Print(bullet("Created user"))

		if roleExists {
			if !recreate {
				return ResourceExistsError{"role", naming.RoleName}
			}
			if err := revokeAllPrivileges(client, naming.RoleName); err != nil {
				return err
			}
			if err := client.DropRole(naming.RoleName); err != nil {
				return err
			}
			ui.Print(bullet("Dropped role '%s'", naming.RoleName))
		}
		if err := client.CreateRole(naming.RoleName); err != nil {
			return err
		}
		ui.Print(bullet("Created role"))

		ui.Print(terminal.NewTextLog("Granting privileges:"))
		for _, privilege := range collectionPrivileges {
			grant := milvus.Privilege{Privilege: privilege, ObjectType: "Collection", ObjectName: "*"}
			if err := client.GrantPrivilege(naming.RoleName, grant); err != nil {
				return err
			}
			ui.Print(bullet("%s on Collection", privilege))
		}

		if err := client.GrantRole(naming.UserName, naming.RoleName); err != nil {
			return err
		}
		ui.Print(terminal.NewTextLog("Assigned role '%s' to user '%s'", naming.RoleName, naming.UserName))
		return nil
	})
}

// Describe reports the project's resources and each user's role privileges.
// It is read-only: calling it twice on an unchanged project yields the same
// report.
func Describe(ui terminal.UI, client milvus.Client, projectName, userName string) error {
	databaseName := DatabaseName(projectName)
	roleName := RoleName(projectName)

	databaseExists, err := client.DatabaseExists(databaseName)
	if err != nil {
		return err
	}

	header(ui, projectName)
	ui.Print(terminal.NewTextLog(resourceStatus("database", databaseName, databaseExists)))

	if !databaseExists {
		ui.Print(terminal.NewTextLog("No additional information (database does not exist)"))
		return nil
	}

	return milvus.WithActiveDatabase(client, databaseName, func() error {
		roleExists, err := client.RoleExists(roleName)
		if err != nil {
			return err
		}
		ui.Print(terminal.NewTextLog(resourceStatus("role", roleName, roleExists)))

		collections, err := client.Collections()
		if err != nil {
			return err
		}
		if len(collections) > 0 {
			ui.Print(terminal.NewListLog("Collections:", asListItems(collections)...))
		} else {
			ui.Print(terminal.NewTextLog("No collections found in database"))
		}

		users, err := client.Users()
		if err != nil {
			return err
		}
		if userName != "" {
			users = []string{userName}
		}

		roles, err := client.Roles()
		if err != nil {
			return err
		}

		for _, user := range users {
			ui.Print(terminal.NewTextLog("User: %s", user))
			for _, role := range roles {
				privileges, err := client.DescribeRole(role)
				if err != nil {
					return err
				}
				if len(privileges) == 0 {
					continue
				}

				rows := make([]map[string]interface{}, 0, len(privileges))
				for _, privilege := range privileges {
					rows = append(rows, map[string]interface{}{
						headerPrivilege:  privilege.Privilege,
						headerObjectType: privilege.ObjectType,
						headerObjectName: privilege.ObjectName,
					})
				}
				ui.Print(terminal.NewTableLog(
					"Role '"+role+"':",
					[]string{headerPrivilege, headerObjectType, headerObjectName},
					rows...,
				))
			}
		}
		return nil
	})
}

const (
	headerPrivilege  = "Privilege"
	headerObjectType = "Object Type"
	headerObjectName = "Object Name"
)

// Drop removes every resource of the project: all users except the
// protected superuser, all roles except the protected built-ins (revoking
// their privileges first), and finally the database itself. The database
// drop happens from outside the project context since a database cannot be
// dropped while it is active.
func Drop(ui terminal.UI, client milvus.Client, projectName, databaseName string) error {
	if databaseName == "" {
		databaseName = DatabaseName(projectName)
	}

	databaseExists, err := client.DatabaseExists(databaseName)
	if err != nil {
		return err
	}

	header(ui, projectName)
	ui.Print(terminal.NewTextLog(resourceStatus("database", databaseName, databaseExists)))

	if !databaseExists {
		ui.Print(terminal.NewTextLog("No resources to drop"))
		return nil
	}

	if err := milvus.WithActiveDatabase(client, databaseName, func() error {
		ui.Print(terminal.NewTextLog("Dropping resources:"))

		users, err := client.Users()
		if err != nil {
			return err
		}
		for _, user := range users {
			if user == protectedUser {
				continue
			}
			if err := client.DropUser(user); err != nil {
				return err
			}
			ui.Print(bullet("Dropped user '%s'", user))
		}

		roles, err := client.Roles()
		if err != nil {
			return err
		}
		for _, role := range roles {
			if slices.Contains(protectedRoles, role) {
				continue
			}
			if err := revokeAllPrivileges(client, role); err != nil {
				return err
			}
			if err := client.DropRole(role); err != nil {
				return err
			}
			ui.Print(bullet("Dropped role '%s'", role))
		}
		return nil
	}); err != nil {
		return err
	}

	if err := client.DropDatabase(databaseName); err != nil {
		return err
	}
	ui.Print(bullet("Dropped database '%s'", databaseName))
	return nil
}

// RotatePassword updates a project user's password. The old password is
// verified by the service itself during the update call.
func RotatePassword(ui terminal.UI, client milvus.Client, projectName, userName, oldPassword, newPassword string) error {
	databaseName := DatabaseName(projectName)

	databaseExists, err := client.DatabaseExists(databaseName)
	if err != nil {
		return err
	}
	if !databaseExists {
		return NotFoundError{"database", databaseName}
	}

	if err := milvus.WithActiveDatabase(client, databaseName, func() error {
		userExists, err := client.UserExists(userName)
		if err != nil {
			return err
		}
		if !userExists {
			return NotFoundError{"user", userName}
		}
		return client.UpdatePassword(userName, oldPassword, newPassword)
	}); err != nil {
		return err
	}

	ui.Print(terminal.NewTextLog("Successfully updated password for user '%s'", userName))
	return nil
}

// revokeAllPrivileges strips a role of its grants; a role with outstanding
// grants cannot be dropped
func revokeAllPrivileges(client milvus.Client, roleName string) error {
	privileges, err := client.DescribeRole(roleName)
	if err != nil {
		return err
	}
	for _, privilege := range privileges {
		if err := client.RevokePrivilege(roleName, privilege); err != nil {
			return err
		}
	}
	return nil
}

func asListItems(values []string) []interface{} {
	items := make([]interface{}, 0, len(values))
	for _, value := range values {
		items = append(items, value)
	}
	return items
}
