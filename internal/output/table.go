// Package output renders tool results for the terminal.
package output

import (
	"bytes"
	"io"

	"github.com/olekukonko/tablewriter"
)

// RenderToString renders a table into a string.
func RenderToString(headers []string, rows [][]string) string {
	buf := &bytes.Buffer{}
	RenderToWriter(buf, headers, rows)
	return buf.String()
}

// RenderToWriter renders a table to w.
func RenderToWriter(w io.Writer, headers []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)

	// Apply default styling
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("│")
	table.SetRowSeparator("─")
	table.SetHeaderLine(true)
	table.SetBorder(true)
	table.SetTablePadding(" ")
	table.SetNoWhiteSpace(false)

	table.AppendBulk(rows)
	table.Render()
}
