// Copyright 2025 The go-ethereum Authors
// This file is part of go-ethereum.
//
// go-ethereum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-ethereum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-ethereum. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/olekukonko/tablewriter"
	"github.com/sunyihoo/abi-decoder/accounts/abi"
	"github.com/sunyihoo/abi-decoder/accounts/abi/decoder"
	"github.com/sunyihoo/abi-decoder/cmd/utils"
	"github.com/urfave/cli/v2"
)

var dumper = spew.ConfigState{Indent: "  ", DisableMethods: true, SortKeys: true}

// render writes v to stdout in the configured output format. The text format
// is produced by the given callback.
func render(ctx *cli.Context, cfg decoderConfig, v interface{}, text func(io.Writer)) error {
	switch {
	case ctx.Bool(utils.DumpFlag.Name):
		dumper.Fdump(stdout, v)
	case cfg.Output == "json":
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		printf("%s\n", out)
	default:
		text(stdout)
	}
	return nil
}

// newTable returns a borderless, left-aligned table writing to out.
func newTable(out io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetColumnSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)
	return table
}

func writeParams(out io.Writer, params []abi.Param) {
	if len(params) == 0 {
		return
	}
	table := newTable(out, "Name", "Type", "Value")
	for _, p := range params {
		name := p.Name
		if name == "" {
			name = "-"
		}
		table.Append([]string{name, p.Type, p.Value.String()})
	}
	table.Render()
}

func writeMethods(out io.Writer, results []methodResult) {
	for _, res := range results {
		switch {
		case res.Method != nil:
			fmt.Fprintf(out, "%s\n", res.Method.Name)
			writeParams(out, res.Method.Params)
		case res.Guessed != "":
			fmt.Fprintf(out, "%s  (signature database)\n", res.Guessed)
		default:
			fmt.Fprintf(out, "%s  %s\n", abbreviate(res.Input), res.Error)
		}
	}
}

func writeLogs(out io.Writer, logs []*decoder.DecodedLog) {
	for _, l := range logs {
		fmt.Fprintf(out, "%s  %s\n", l.Name, l.Address)
		writeParams(out, l.Events)
	}
}

// abbreviate shortens long hex inputs for error lines.
func abbreviate(s string) string {
	if len(s) <= 18 {
		return s
	}
	return s[:10] + "..." + s[len(s)-6:]
}
