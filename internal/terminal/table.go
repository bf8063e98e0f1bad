package terminal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
)

const (
	logFieldHeaders = "headers"
	logFieldData    = "data"
)

// set of exported spacing options
const (
	Indent = "  "
	Gutter = "  "
)

var (
	tableFields = []string{logFieldMessage, logFieldData, logFieldHeaders}

	errTableWithoutHeaders = errors.New("cannot create a table without headers")
)

// table renders rows of cells under a fixed, ordered set of column headers,
// e.g. the privilege grants of a role. Cells are resolved positionally
// against the headers; row entries under unknown keys are discarded and
// empty rows are skipped entirely.
type table struct {
	message string
	headers []string
	rows    [][]string
	widths  []int
}

func newTable(message string, headers []string, data []map[string]interface{}) table {
	t := table{message: message, headers: headers}

	t.widths = make([]int, len(headers))
	for i, header := range headers {
		t.widths[i] = len(header)
	}

	t.rows = make([][]string, 0, len(data))
	for _, item := range data {
		if len(item) == 0 {
			continue
		}
		row := make([]string, len(headers))
		for i, header := range headers {
			cell := parseValue(item[header])
			if len(cell) > t.widths[i] {
				t.widths[i] = len(cell)
			}
			row[i] = cell
		}
		t.rows = append(t.rows, row)
	}
	return t
}

func (t table) Message() (string, error) {
	if len(t.headers) == 0 {
		return "", errTableWithoutHeaders
	}

	bold := color.New(color.Bold).SprintFunc()

	var sb strings.Builder
	sb.WriteString(t.message)

	sb.WriteString("\n" + Indent)
	for i, header := range t.headers {
		if i > 0 {
			sb.WriteString(Gutter)
		}
		sb.WriteString(bold(header))
		sb.WriteString(strings.Repeat(" ", t.widths[i]-len(header)))
	}

	sb.WriteString("\n" + Indent)
	for i := range t.headers {
		if i > 0 {
			sb.WriteString(Gutter)
		}
		sb.WriteString(strings.Repeat("-", t.widths[i]))
	}

	for _, row := range t.rows {
		sb.WriteString("\n" + Indent)
		for i, cell := range row {
			if i > 0 {
				sb.WriteString(Gutter)
			}
			sb.WriteString(cell)
			sb.WriteString(strings.Repeat(" ", t.widths[i]-len(cell)))
		}
	}
	return sb.String(), nil
}

func (t table) Payload() ([]string, map[string]interface{}, error) {
	if len(t.headers) == 0 {
		return nil, nil, errTableWithoutHeaders
	}

	rows := make([]map[string]string, 0, len(t.rows))
	for _, row := range t.rows {
		r := make(map[string]string, len(t.headers))
		for i, header := range t.headers {
			r[header] = row[i]
		}
		rows = append(rows, r)
	}

	return tableFields, map[string]interface{}{
		logFieldMessage: t.message,
		logFieldHeaders: t.headers,
		logFieldData:    rows,
	}, nil
}

func parseValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	}
	return fmt.Sprintf("%+v", value)
}
