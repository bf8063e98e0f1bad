// Package project manages the lifecycle of a Milvus project: the database,
// role and user triple that backs an isolated workspace on a shared
// deployment.
package project

// ResourceNaming holds the resolved names of a project's resources
//
// UserPassword is write-only: it is passed to the user create call and is
// never echoed back in any status output.
type ResourceNaming struct {
	ProjectName  string
	DatabaseName string
	RoleName     string
	UserName     string
	UserPassword string
}

// NewResourceNaming resolves the resource names for a project, filling any
// blank override with its canonical default
func NewResourceNaming(projectName, databaseName, roleName, userName, userPassword string) ResourceNaming {
	if databaseName == "" {
		databaseName = DatabaseName(projectName)
	}
	if roleName == "" {
		roleName = RoleName(projectName)
	}
	if userName == "" {
		userName = UserName(projectName)
	}

	return ResourceNaming{
		ProjectName:  projectName,
		DatabaseName: databaseName,
		RoleName:     roleName,
		UserName:     userName,
		UserPassword: userPassword,
	}
}

// DatabaseName is the canonical database name for a project
func DatabaseName(projectName string) string {
	return "db_" + projectName
}

// RoleName is the canonical role name for a project
func RoleName(projectName string) string {
	return "role_" + projectName
}

// UserName is the canonical user name for a project
func UserName(projectName string) string {
	return "user_" + projectName
}
