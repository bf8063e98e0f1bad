package mock

import (
	"github.com/graelo/milvus-project-helper/internal/cloud/milvus"
)

// MilvusClient is a mocked Milvus client. Each method calls the mocked
// implementation if provided, otherwise the call falls back to the
// underlying milvus.Client implementation.
// NOTE: this may panic if the underlying milvus.Client is left undefined
type MilvusClient struct {
	milvus.Client

	DatabasesFn      func() ([]string, error)
	CreateDatabaseFn func(name string) error
	DropDatabaseFn   func(name string) error
	DatabaseExistsFn func(name string) (bool, error)
	UseDatabaseFn    func(name string) error
	ActiveDatabaseFn func() string

	UsersFn          func() ([]string, error)
	CreateUserFn     func(name, password string) error
	DropUserFn       func(name string) error
	UserExistsFn     func(name string) (bool, error)
	UpdatePasswordFn func(name, oldPassword, newPassword string) error

	RolesFn           func() ([]string, error)
	CreateRoleFn      func(name string) error
	DropRoleFn        func(name string) error
	RoleExistsFn      func(name string) (bool, error)
	DescribeRoleFn    func(name string) ([]milvus.Privilege, error)
	GrantPrivilegeFn  func(roleName string, privilege milvus.Privilege) error
	RevokePrivilegeFn func(roleName string, privilege milvus.Privilege) error
	GrantRoleFn       func(userName, roleName string) error

	CollectionsFn func() ([]string, error)
}

// Databases calls the mocked Databases implementation if provided
func (mc MilvusClient) Databases() ([]string, error) {
	if mc.DatabasesFn != nil {
		return mc.DatabasesFn()
	}
	return mc.Client.Databases()
}

// CreateDatabase calls the mocked CreateDatabase implementation if provided
func (mc MilvusClient) CreateDatabase(name string) error {
	if mc.CreateDatabaseFn != nil {
		return mc.CreateDatabaseFn(name)
	}
	return mc.Client.CreateDatabase(name)
}

// DropDatabase calls the mocked DropDatabase implementation if provided
func (mc MilvusClient) DropDatabase(name string) error {
	if mc.DropDatabaseFn != nil {
		return mc.DropDatabaseFn(name)
	}
	return mc.Client.DropDatabase(name)
}

// DatabaseExists calls the mocked DatabaseExists implementation if provided
func (mc MilvusClient) DatabaseExists(name string) (bool, error) {
	if mc.DatabaseExistsFn != nil {
		return mc.DatabaseExistsFn(name)
	}
	return mc.Client.DatabaseExists(name)
}

// UseDatabase calls the mocked UseDatabase implementation if provided
func (mc MilvusClient) UseDatabase(name string) error {
	if mc.UseDatabaseFn != nil {
		return mc.UseDatabaseFn(name)
	}
	return mc.Client.UseDatabase(name)
}

// ActiveDatabase calls the mocked ActiveDatabase implementation if provided
func (mc MilvusClient) ActiveDatabase() string {
	if mc.ActiveDatabaseFn != nil {
		return mc.ActiveDatabaseFn()
	}
	return mc.Client.ActiveDatabase()
}

// Users calls the mocked Users implementation if provided
func (mc MilvusClient) Users() ([]string, error) {
	if mc.UsersFn != nil {
		return mc.UsersFn()
	}
	return mc.Client.Users()
}

// CreateUser calls the mocked CreateUser implementation if provided
func (mc MilvusClient) CreateUser(name, password string) error {
	if mc.CreateUserFn != nil {
		return mc.CreateUserFn(name, password)
	}
	return mc.Client.CreateUser(name, password)
}

// DropUser calls the mocked DropUser implementation if provided
func (mc MilvusClient) DropUser(name string) error {
	if mc.DropUserFn != nil {
		return mc.DropUserFn(name)
	}
	return mc.Client.DropUser(name)
}

// UserExists calls the mocked UserExists implementation if provided
func (mc MilvusClient) UserExists(name string) (bool, error) {
	if mc.UserExistsFn != nil {
		return mc.UserExistsFn(name)
	}
	return mc.Client.UserExists(name)
}

// UpdatePassword calls the mocked UpdatePassword implementation if provided
func (mc MilvusClient) UpdatePassword(name, oldPassword, newPassword string) error {
	if mc.UpdatePasswordFn != nil {
		return mc.UpdatePasswordFn(name, oldPassword, newPassword)
	}
	return mc.Client.UpdatePassword(name, oldPassword, newPassword)
}

// Roles calls the mocked Roles implementation if provided
func (mc MilvusClient) Roles() ([]string, error) {
	if mc.RolesFn != nil {
		return mc.RolesFn()
	}
	return mc.Client.Roles()
}

// CreateRole calls the mocked CreateRole implementation if provided
func (mc MilvusClient) CreateRole(name string) error {
	if mc.CreateRoleFn != nil {
		return mc.CreateRoleFn(name)
	}
	return mc.Client.CreateRole(name)
}

// DropRole calls the mocked DropRole implementation if provided
func (mc MilvusClient) DropRole(name string) error {
	if mc.DropRoleFn != nil {
		return mc.DropRoleFn(name)
	}
	return mc.Client.DropRole(name)
}

// RoleExists calls the mocked RoleExists implementation if provided
func (mc MilvusClient) RoleExists(name string) (bool, error) {
	if mc.RoleExistsFn != nil {
		return mc.RoleExistsFn(name)
	}
	return mc.Client.RoleExists(name)
}

// DescribeRole calls the mocked DescribeRole implementation if provided
func (mc MilvusClient) DescribeRole(name string) ([]milvus.Privilege, error) {
	if mc.DescribeRoleFn != nil {
		return mc.DescribeRoleFn(name)
	}
	return mc.Client.DescribeRole(name)
}

// GrantPrivilege calls the mocked GrantPrivilege implementation if provided
func (mc MilvusClient) GrantPrivilege(roleName string, privilege milvus.Privilege) error {
	if mc.GrantPrivilegeFn != nil {
		return mc.GrantPrivilegeFn(roleName, privilege)
	}
	return mc.Client.GrantPrivilege(roleName, privilege)
}

// RevokePrivilege calls the mocked RevokePrivilege implementation if provided
func (mc MilvusClient) RevokePrivilege(roleName string, privilege milvus.Privilege) error {
	if mc.RevokePrivilegeFn != nil {
		return mc.RevokePrivilegeFn(roleName, privilege)
	}
	return mc.Client.RevokePrivilege(roleName, privilege)
}

// GrantRole calls the mocked GrantRole implementation if provided
func (mc MilvusClient) GrantRole(userName, roleName string) error {
	if mc.GrantRoleFn != nil {
		return mc.GrantRoleFn(userName, roleName)
	}
	return mc.Client.GrantRole(userName, roleName)
}

// Collections calls the mocked Collections implementation if provided
func (mc MilvusClient) Collections() ([]string, error) {
	if mc.CollectionsFn != nil {
		return mc.CollectionsFn()
	}
	return mc.Client.Collections()
}
