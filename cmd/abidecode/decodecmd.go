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
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sunyihoo/abi-decoder/accounts/abi/decoder"
	"github.com/sunyihoo/abi-decoder/common/hexutil"
	"github.com/sunyihoo/abi-decoder/log"
	"github.com/sunyihoo/abi-decoder/signer/fourbyte"
	"github.com/urfave/cli/v2"
)

var (
	methodCommand = &cli.Command{
		Action:    decodeMethods,
		Name:      "method",
		Usage:     "Decode transaction call data",
		ArgsUsage: "<hex calldata> [<hex calldata>...]",
		Description: `
Decodes each argument as call data: a 4 byte selector followed by the ABI
encoded arguments. Selectors not found in the registered ABIs are looked up in
the signature database.`,
	}
	logsCommand = &cli.Command{
		Action:    decodeLogs,
		Name:      "logs",
		Usage:     "Decode a JSON array of event logs",
		ArgsUsage: "<file|->",
		Description: `
Reads a JSON array of logs ({"address", "topics", "data"}) from the given file,
or from standard input if the file is "-", and decodes every log whose first
topic matches a registered event.`,
	}
)

// makeDecoder creates a decoder with every configured ABI file registered,
// along with the signature database.
func makeDecoder(ctx *cli.Context) (*decoder.Decoder, *fourbyte.Database, decoderConfig, error) {
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return nil, nil, cfg.Decoder, err
	}
	dec := decoder.New()
	for _, file := range cfg.Decoder.ABIFiles {
		blob, err := os.ReadFile(file)
		if err != nil {
			return nil, nil, cfg.Decoder, err
		}
		if err := dec.AddABIJSON(blob); err != nil {
			return nil, nil, cfg.Decoder, fmt.Errorf("%s: %w", file, err)
		}
		log.Debug("Loaded ABI file", "file", file)
	}
	db, err := fourbyte.NewWithFile(cfg.Decoder.SignatureFile)
	if err != nil {
		return nil, nil, cfg.Decoder, err
	}
	embedded, custom := db.Size()
	log.Debug("Loaded signature database", "embedded", embedded, "custom", custom)
	return dec, db, cfg.Decoder, nil
}

// methodResult is the outcome of decoding a single call data argument.
type methodResult struct {
	Input   string                 `json:"input"`
	Method  *decoder.DecodedMethod `json:"method,omitempty"`
	Guessed string                 `json:"guessed,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

func decodeMethods(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return errors.New("no call data given")
	}
	dec, db, cfg, err := makeDecoder(ctx)
	if err != nil {
		return err
	}
	var (
		results = make([]methodResult, 0, ctx.NArg())
		failed  int
	)
	for _, input := range ctx.Args().Slice() {
		res := methodResult{Input: input}
		data, err := hexutil.Decode(input)
		if err != nil {
			res.Error = fmt.Sprintf("invalid call data: %v", err)
			failed++
			results = append(results, res)
			continue
		}
		switch method, err := dec.DecodeMethod(data); {
		case err != nil:
			res.Error = err.Error()
			failed++
		case method != nil:
			res.Method = method
		default:
			// Not in the registered ABIs, try the signature database.
			if guess, err := db.DecodeCallData(data); err == nil {
				res.Guessed = guess
			} else {
				res.Error = fmt.Sprintf("not decoded: %v", err)
				failed++
			}
		}
		results = append(results, res)
	}
	if err := render(ctx, cfg, results, func(w io.Writer) { writeMethods(w, results) }); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs could not be decoded", failed, len(results))
	}
	return nil
}

func decodeLogs(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("expected a single log file argument")
	}
	dec, _, cfg, err := makeDecoder(ctx)
	if err != nil {
		return err
	}
	logs, err := readLogs(ctx.Args().First())
	if err != nil {
		return err
	}
	decoded, decErr := dec.DecodeLogs(logs)
	if err := render(ctx, cfg, decoded, func(w io.Writer) { writeLogs(w, decoded) }); err != nil {
		return err
	}
	if decErr != nil {
		var failures decoder.LogErrors
		if errors.As(decErr, &failures) {
			return fmt.Errorf("%d of %d logs failed to decode: %w", len(failures), len(logs), decErr)
		}
		return decErr
	}
	log.Info("Decoded logs", "logs", len(logs), "decoded", len(decoded))
	return nil
}

// readLogs parses a JSON array of logs from path, or from stdin for "-".
func readLogs(path string) ([]*decoder.Log, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	var logs []*decoder.Log
	if err := json.NewDecoder(r).Decode(&logs); err != nil {
		return nil, fmt.Errorf("invalid log file %s: %w", path, err)
	}
	return logs, nil
}
