package project

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/graelo/milvus-project-helper/internal/terminal"
)

const dividerWidth = 50

// resourceStatus formats a status line for a single resource,
// ✓ (green) when it exists and × (red) when it is absent
func resourceStatus(resourceType, name string, exists bool) string {
	symbol := color.New(color.FgRed).Sprint("×")
	if exists {
		symbol = color.New(color.FgGreen).Sprint("✓")
	}
	return fmt.Sprintf("%s%s %s: %s", terminal.Indent, symbol, resourceType, name)
}

func header(ui terminal.UI, projectName string) {
	ui.Print(
		terminal.NewTextLog("Project resources for '%s':", projectName),
		terminal.NewTextLog(strings.Repeat("─", dividerWidth)),
	)
}

func bullet(format string, args ...interface{}) terminal.Log {
	return terminal.NewTextLog(terminal.Indent+"• "+format, args...)
}
