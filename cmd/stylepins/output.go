package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/olekukonko/tablewriter"
)

type outputFormat string

const (
	formatTable outputFormat = "table"
	formatJSON  outputFormat = "json"
	formatYAML  outputFormat = "yaml"
)

func parseFormat(s string) (outputFormat, error) {
	switch f := outputFormat(s); f {
	case formatTable, formatJSON, formatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (want table, json or yaml)", s)
}

// tableData is what a command prints in table mode. value is what it
// prints in json and yaml mode.
type tableData struct {
	headers []string
	rows    [][]string
}

func (a *app) print(value any, table tableData) error {
	format, err := parseFormat(a.format)
	if err != nil {
		return err
	}
	return render(a.out, format, value, table)
}

func render(w io.Writer, format outputFormat, value any, data tableData) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(value)

	case formatYAML:
		out, err := yaml.MarshalWithOptions(value, yaml.Indent(2), yaml.IndentSequence(false))
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		_, err = w.Write(out)
		return err
	}

	table := tablewriter.NewTable(w)
	headers := make([]any, len(data.headers))
	for i, h := range data.headers {
		headers[i] = h
	}
	table.Header(headers...)
	for _, row := range data.rows {
		cells := make([]any, len(row))
		for i, c := range row {
			cells[i] = c
		}
		if err := table.Append(cells...); err != nil {
			return err
		}
	}
	return table.Render()
}

func itoa(n int) string { return strconv.Itoa(n) }
