package main

import (
	"io"
	"strconv"

	"github.com/LambdaTest/coveralls-reporter/pkg/core"
	"github.com/olekukonko/tablewriter"
)

// renderSummary prints the outcome of a run as a two column table
func renderSummary(w io.Writer, summary *core.RunSummary) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Item", "Value"})
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})
	table.Append([]string{"Payload", summary.PayloadPath})
	table.Append([]string{"Source files", strconv.Itoa(summary.FilesWritten)})
	table.Append([]string{"Skipped", strconv.Itoa(summary.FilesSkipped)})
	if summary.Result != nil {
		status := "uploaded"
		if summary.Result.Error {
			status = "failed"
		}
		table.Append([]string{"Upload", status})
		table.Append([]string{"Message", summary.Result.Message})
		if summary.Result.URL != "" {
			table.Append([]string{"URL", summary.Result.URL})
		}
	}
	table.Render()
}
