package terminal

import (
	"errors"
	"fmt"
	"testing"

	"github.com/graelo/milvus-project-helper/internal/utils/test/assert"

	"github.com/fatih/color"
)

func TestNewTable(t *testing.T) {
	t.Run("should resolve cells positionally and size columns to their widest value", func(t *testing.T) {
		table := newTable(
			"Role 'role_acme':",
			[]string{"Privilege", "Object Type", "Object Name"},
			[]map[string]interface{}{
				{"Privilege": "CreateIndex", "Object Type": "Collection", "Object Name": "*"},
				{},
				{"Privilege": "Load", "Object Type": "Collection", "Object Name": "*", "extra": "discarded"},
			},
		)

		assert.Equal(t, [][]string{
			{"CreateIndex", "Collection", "*"},
			{"Load", "Collection", "*"},
		}, table.rows)
		assert.Equal(t, []int{11, 11, 11}, table.widths)
	})

	t.Run("should stringify non-string cell values", func(t *testing.T) {
		table := newTable(
			"values:",
			[]string{"value"},
			[]map[string]interface{}{
				{"value": 42},
				{"value": errors.New("something bad happened")},
				{"value": nil},
			},
		)
		assert.Equal(t, [][]string{{"42"}, {"something bad happened"}, {""}}, table.rows)
	})
}

func TestTableMessage(t *testing.T) {
	t.Run("should fail without headers", func(t *testing.T) {
		table := newTable("empty", nil, nil)
		_, err := table.Message()
		assert.Equal(t, errTableWithoutHeaders, err)
	})

	t.Run("should render headers, divider and padded rows", func(t *testing.T) {
		table := newTable(
			"Role 'role_acme':",
			[]string{"Privilege", "Object Type", "Object Name"},
			[]map[string]interface{}{
				{"Privilege": "Search", "Object Type": "Collection", "Object Name": "*"},
			},
		)

		bold := color.New(color.Bold).SprintFunc()
		expected := fmt.Sprintf(`Role 'role_acme':
  %s  %s  %s
  ---------  -----------  -----------
  Search     Collection   *          `,
			bold("Privilege"), bold("Object Type"), bold("Object Name"),
		)

		message, err := table.Message()
		assert.Nil(t, err)
		assert.Equal(t, expected, message)
	})
}

func TestTablePayload(t *testing.T) {
	t.Run("should expose rows keyed by header", func(t *testing.T) {
		table := newTable(
			"Role 'role_acme':",
			[]string{"Privilege", "Object Type", "Object Name"},
			[]map[string]interface{}{
				{"Privilege": "Query", "Object Type": "Collection", "Object Name": "*"},
			},
		)

		fields, payload, err := table.Payload()
		assert.Nil(t, err)
		assert.Equal(t, tableFields, fields)
		assert.Equal(t, "Role 'role_acme':", payload[logFieldMessage])
		assert.Equal(t, []map[string]string{
			{"Privilege": "Query", "Object Type": "Collection", "Object Name": "*"},
		}, payload[logFieldData])
	})
}
