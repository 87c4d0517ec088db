package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/exemplar/itemsvc/internal/bench"
)

func printResult(result *bench.Result) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	table.Append([]string{"Total requests", fmt.Sprintf("%d", result.Total)})
	table.Append([]string{"Successful", color.GreenString("%d", result.Success)})
	if result.Failed > 0 {
		table.Append([]string{"Failed", color.RedString("%d", result.Failed)})
	} else {
		table.Append([]string{"Failed", "0"})
	}
	table.Append([]string{"Duration", result.Duration.Round(time.Millisecond).String()})
	table.Append([]string{"Requests/sec", fmt.Sprintf("%.1f", result.RPS)})
	table.Append([]string{"Min latency", formatLatency(result.Min)})
	table.Append([]string{"Mean latency", formatLatency(result.Mean)})
	table.Append([]string{"P50 latency", formatLatency(result.P50)})
	table.Append([]string{"P95 latency", formatLatency(result.P95)})
	table.Append([]string{"P99 latency", formatLatency(result.P99)})
	table.Append([]string{"Max latency", formatLatency(result.Max)})
	table.Render()

	if len(result.Errors) > 0 {
		fmt.Println()
		color.Red("Errors:")
		messages := make([]string, 0, len(result.Errors))
		for msg := range result.Errors {
			messages = append(messages, msg)
		}
		sort.Strings(messages)
		for _, msg := range messages {
			fmt.Printf("  %dx %s\n", result.Errors[msg], msg)
		}
	}
}

func formatLatency(d time.Duration) string {
	return d.Round(10 * time.Microsecond).String()
}
