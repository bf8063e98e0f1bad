package milvus

import "slices"

func (c *client) Users() ([]string, error) {
	payload := struct {
		DBName string `json:"dbName,omitempty"`
	}{c.db}

	var users []string
	if err := c.do("/users/list", payload, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *client) CreateUser(name, password string) error {
	payload := struct {
		DBName   string `json:"dbName,omitempty"`
		UserName string `json:"userName"`
		Password string `json:"password"`
	}{c.db, name, password}
	return c.do("/users/create", payload, nil)
}

func (c *client) DropUser(name string) error {
	payload := struct {
		DBName   string `json:"dbName,omitempty"`
		UserName string `json:"userName"`
	}{c.db, name}
	return c.do("/users/drop", payload, nil)
}

func (c *client) UserExists(name string) (bool, error) {
	users, err := c.Users()
	if err != nil {
		return false, err
	}
	return slices.Contains(users, name), nil
}

func (c *client) UpdatePassword(name, oldPassword, newPassword string) error {
	payload := struct {
		DBName      string `json:"dbName,omitempty"`
		UserName    string `json:"userName"`
		Password    string `json:"password"`
		NewPassword string `json:"newPassword"`
	}{c.db, name, oldPassword, newPassword}
	return c.do("/users/update_password", payload, nil)
}
