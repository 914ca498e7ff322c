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
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sunyihoo/abi-decoder/accounts/abi"
	"github.com/urfave/cli/v2"
)

var (
	allFlag = &cli.BoolFlag{
		Name:  "all",
		Usage: "Also list the entries of the signature database",
	}
	eventFlag = &cli.BoolFlag{
		Name:  "event",
		Usage: "Treat the signature as an event and print its topic",
	}
	saveFlag = &cli.BoolFlag{
		Name:  "save",
		Usage: "Store the function signature in the custom signature database",
	}

	abisCommand = &cli.Command{
		Action: listABIs,
		Name:   "abis",
		Usage:  "List the registered ABI entries and their selectors",
		Flags:  []cli.Flag{allFlag},
	}
	signatureCommand = &cli.Command{
		Action:    signature,
		Name:      "signature",
		Usage:     "Compute the selector or topic of a human readable signature",
		ArgsUsage: "<signature>",
		Flags:     []cli.Flag{eventFlag, saveFlag},
		Description: `
Parses a signature such as "transfer(address,uint256)" and prints its 4 byte
selector, or its 32 byte topic with --event. With --save the signature is added
to the custom signature database given by --signatures.`,
	}
)

type abisResult struct {
	Entries   []string          `json:"entries"`
	MethodIDs map[string]string `json:"methodIDs"`
	Database  []string          `json:"database,omitempty"`
}

func listABIs(ctx *cli.Context) error {
	dec, db, cfg, err := makeDecoder(ctx)
	if err != nil {
		return err
	}
	res := abisResult{MethodIDs: dec.MethodIDs()}
	for _, entry := range dec.ABIs() {
		res.Entries = append(res.Entries, entry.String())
	}
	if ctx.Bool(allFlag.Name) {
		for _, entry := range db.Entries() {
			res.Database = append(res.Database, entry.Key(abi.Keccak256)+" "+entry.Sig())
		}
	}
	return render(ctx, cfg, res, func(out io.Writer) {
		for _, entry := range res.Entries {
			fmt.Fprintln(out, entry)
		}
		keys := make([]string, 0, len(res.MethodIDs))
		for key := range res.MethodIDs {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		table := newTable(out, "ID", "Name")
		for _, key := range keys {
			table.Append([]string{key, res.MethodIDs[key]})
		}
		for _, line := range res.Database {
			table.Append(strings.SplitN(line, " ", 2))
		}
		table.Render()
	})
}

type signatureResult struct {
	Signature string `json:"signature"`
	Kind      string `json:"kind"`
	ID        string `json:"id"`
}

func signature(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("expected a single signature argument")
	}
	kind := abi.Function
	if ctx.Bool(eventFlag.Name) {
		kind = abi.Event
	}
	entry, err := abi.NewEntryFromSignature(ctx.Args().First(), kind)
	if err != nil {
		return err
	}
	_, db, cfg, err := makeDecoder(ctx)
	if err != nil {
		return err
	}
	if ctx.Bool(saveFlag.Name) {
		if kind != abi.Function {
			return errors.New("only function signatures can be saved")
		}
		if err := db.AddSelector(entry.Sig(), entry.Selector(abi.Keccak256)); err != nil {
			return err
		}
	}
	res := signatureResult{Signature: entry.Sig(), Kind: string(kind), ID: "0x" + entry.Key(abi.Keccak256)}
	return render(ctx, cfg, res, func(out io.Writer) {
		fmt.Fprintf(out, "%s\t%s\n", res.ID, res.Signature)
	})
}
