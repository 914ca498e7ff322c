// Copyright 2014 The go-ethereum Authors
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

// abidecode decodes Ethereum call data and event logs against registered ABIs.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sunyihoo/abi-decoder/cmd/utils"
	"github.com/sunyihoo/abi-decoder/internal/debug"
	"github.com/sunyihoo/abi-decoder/internal/flags"
	"github.com/urfave/cli/v2"
)

var (
	app = flags.NewApp("Ethereum ABI call data and event log decoder")

	// stdout is where decoded results are written.
	stdout io.Writer = os.Stdout
)

func init() {
	app.Flags = flags.Merge(utils.DecoderFlags, debug.Flags)
	app.Commands = []*cli.Command{
		// See decodecmd.go:
		methodCommand,
		logsCommand,
		// See abiscmd.go:
		abisCommand,
		signatureCommand,
		// See config.go:
		dumpConfigCommand,
	}
	app.Before = func(ctx *cli.Context) error {
		cfg, err := loadBaseConfig(ctx)
		if err != nil {
			return err
		}
		return debug.Setup(ctx, cfg.Log)
	}
	app.After = func(ctx *cli.Context) error {
		debug.Exit()
		return nil
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		utils.Fatalf("%v", err)
	}
}

// printf writes formatted output to stdout.
func printf(format string, args ...interface{}) {
	fmt.Fprintf(stdout, format, args...)
}
