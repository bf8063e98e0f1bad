package project

// set of supported `project` command flags
const (
	flagProject      = "project"
	flagProjectShort = "p"
	flagProjectUsage = "the name of the project"

	flagDatabaseName      = "db-name"
	flagDatabaseNameUsage = "override the project's database name (defaults to 'db_<project>')"

	flagRoleName      = "role-name"
	flagRoleNameUsage = "override the project's role name (defaults to 'role_<project>')"

	flagUserName      = "user-name"
	flagUserNameUsage = "override the project's user name (defaults to 'user_<project>')"

	flagUserPassword      = "user-password"
	flagUserPasswordUsage = "specify the project user's password (prompted for when omitted)"

	flagRecreate      = "recreate"
	flagRecreateUsage = "drop and recreate any project resource that already exists"

	flagOldPassword      = "old-password"
	flagOldPasswordUsage = "specify the user's current password (prompted for when omitted)"

	flagNewPassword      = "new-password"
	flagNewPasswordUsage = "specify the user's new password (prompted for when omitted)"
)
