package milvus

import "slices"

// Privilege is a single grant attached to a role
type Privilege struct {
	Privilege  string `json:"privilege"`
	ObjectType string `json:"objectType"`
	ObjectName string `json:"objectName"`
}

func (c *client) Roles() ([]string, error) {
	payload := struct {
		DBName string `json:"dbName,omitempty"`
	}{c.db}

	var roles []string
	if err := c.do("/roles/list", payload, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

func (c *client) CreateRole(name string) error {
	payload := struct {
		DBName   string `json:"dbName,omitempty"`
		RoleName string `json:"roleName"`
	}{c.db, name}
	return c.do("/roles/create", payload, nil)
}

func (c *client) DropRole(name string) error {
	payload := struct {
		DBName   string `json:"dbName,omitempty"`
		RoleName string `json:"roleName"`
	}{c.db, name}
	return c.do("/roles/drop", payload, nil)
}

func (c *client) RoleExists(name string) (bool, error) {
	roles, err := c.Roles()
	if err != nil {
		return false, err
	}
	return slices.Contains(roles, name), nil
}

func (c *client) DescribeRole(name string) ([]Privilege, error) {
	payload := struct {
		DBName   string `json:"dbName,omitempty"`
		RoleName string `json:"roleName"`
	}{c.db, name}

	var privileges []Privilege
	if err := c.do("/roles/describe", payload, &privileges); err != nil {
		return nil, err
	}
	return privileges, nil
}

func (c *client) GrantPrivilege(roleName string, privilege Privilege) error {
	payload := struct {
		DBName     string `json:"dbName,omitempty"`
		RoleName   string `json:"roleName"`
		ObjectType string `json:"objectType"`
		ObjectName string `json:"objectName"`
		Privilege  string `json:"privilege"`
	}{c.db, roleName, privilege.ObjectType, privilege.ObjectName, privilege.Privilege}
	return c.do("/roles/grant_privilege", payload, nil)
}

func (c *client) RevokePrivilege(roleName string, privilege Privilege) error {
	payload := struct {
		DBName     string `json:"dbName,omitempty"`
		RoleName   string `json:"roleName"`
		ObjectType string `json:"objectType"`
		ObjectName string `json:"objectName"`
		Privilege  string `json:"privilege"`
	}{c.db, roleName, privilege.ObjectType, privilege.ObjectName, privilege.Privilege}
	return c.do("/roles/revoke_privilege", payload, nil)
}

func (c *client) GrantRole(userName, roleName string) error {
	payload := struct {
		DBName   string `json:"dbName,omitempty"`
		UserName string `json:"userName"`
		RoleName string `json:"roleName"`
	}{c.db, userName, roleName}
	return c.do("/users/grant_role", payload, nil)
}
