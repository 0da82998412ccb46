package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"quoraprofiler-backend/services/quora"

	"github.com/jedib0t/go-pretty/v6/table"
)

func printResult(result quora.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"success", "status", "message"})
	t.AppendRow(table.Row{result.Success, result.Status, result.Message})
	t.Render()

	payload := result.Data
	if !result.Success {
		payload = result.Details
	}
	if payload != nil {
		rendered, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(string(rendered))
	}

	if !result.Success {
		os.Exit(1)
	}
}
