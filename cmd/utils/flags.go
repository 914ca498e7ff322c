// Copyright 2015 The go-ethereum Authors
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

// Package utils contains internal helper functions for abidecode commands.
package utils

import (
	"github.com/sunyihoo/abi-decoder/internal/flags"
	"github.com/urfave/cli/v2"
)

// These are all the command line flags we support.
// If you add to this list, please remember to include the
// flag in the appropriate command definition.
//
// The flags are defined here so their names and help texts
// are the same for all commands.

var (
	// Decoder settings
	ABIFlag = &cli.StringSliceFlag{
		Name:     "abi",
		Usage:    "JSON ABI file to register, may be repeated",
		Category: flags.DecoderCategory,
	}
	SignaturesFlag = &flags.DirectoryFlag{
		Name:     "signatures",
		Usage:    "Custom 4byte signature database (JSON object of selector to signature)",
		Category: flags.DecoderCategory,
	}
	ConfigFileFlag = &cli.StringFlag{
		Name:     "config",
		Usage:    "TOML configuration file",
		Category: flags.DecoderCategory,
	}

	// Output settings
	OutputFlag = &cli.StringFlag{
		Name:     "output",
		Usage:    "Output format (text|json)",
		Value:    "text",
		Category: flags.OutputCategory,
	}
	DumpFlag = &cli.BoolFlag{
		Name:     "dump",
		Usage:    "Dump decoded results with their Go types instead of formatting them",
		Category: flags.OutputCategory,
	}
)

// DecoderFlags is the set of flags every decoding command understands.
var DecoderFlags = []cli.Flag{
	ABIFlag,
	SignaturesFlag,
	ConfigFileFlag,
	OutputFlag,
	DumpFlag,
}
