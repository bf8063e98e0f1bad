package milvus

import "slices"

func (c *client) Databases() ([]string, error) {
	var databases []string
	if err := c.do("/databases/list", struct{}{}, &databases); err != nil {
		return nil, err
	}
	return databases, nil
}

func (c *client) CreateDatabase(name string) error {
	payload := struct {
		DBName string `json:"dbName"`
	}{name}
	return c.do("/databases/create", payload, nil)
}

func (c *client) DropDatabase(name string) error {
	payload := struct {
		DBName string `json:"dbName"`
	}{name}
	return c.do("/databases/drop", payload, nil)
}

func (c *client) DatabaseExists(name string) (bool, error) {
	databases, err := c.Databases()
	if err != nil {
		return false, err
	}
	return slices.Contains(databases, name), nil
}
