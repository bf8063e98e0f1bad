package milvus

func (c *client) Collections() ([]string, error) {
	payload := struct {
		DBName string `json:"dbName,omitempty"`
	}{c.db}

	var collections []string
	if err := c.do("/collections/list", payload, &collections); err != nil {
		return nil, err
	}
	return collections, nil
}
