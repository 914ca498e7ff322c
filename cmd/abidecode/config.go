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
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"
	"unicode"

	"github.com/naoina/toml"
	"github.com/sunyihoo/abi-decoder/cmd/utils"
	"github.com/sunyihoo/abi-decoder/internal/debug"
	"github.com/sunyihoo/abi-decoder/internal/flags"
	"github.com/urfave/cli/v2"
)

var dumpConfigCommand = &cli.Command{
	Action:      dumpConfig,
	Name:        "dumpconfig",
	Usage:       "Export configuration values in a TOML format",
	ArgsUsage:   "<dumpfile (optional)>",
	Description: `Export configuration values in TOML format (to stdout by default).`,
}

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		var link string
		if unicode.IsUpper(rune(rt.Name()[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://godoc.org/%s#%s for available fields", rt.PkgPath(), rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

type decoderConfig struct {
	ABIFiles      []string
	SignatureFile string `toml:",omitempty"`
	Output        string
}

type abidecodeConfig struct {
	Decoder decoderConfig
	Log     debug.Config
}

func defaultConfig() abidecodeConfig {
	return abidecodeConfig{
		Decoder: decoderConfig{Output: utils.OutputFlag.Value},
		Log:     debug.Config{Verbosity: debug.VerbosityFlag.Value, MaxSizeMB: debug.LogMaxSizeMBsFlag.Value},
	}
}

func loadConfig(file string, cfg *abidecodeConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// loadBaseConfig loads the configuration based on the given command line
// parameters and config file.
func loadBaseConfig(ctx *cli.Context) (abidecodeConfig, error) {
	cfg := defaultConfig()

	if file := ctx.String(utils.ConfigFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			return cfg, err
		}
	}
	if err := setDecoderConfig(ctx, &cfg.Decoder); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// setDecoderConfig applies decoder related command line flags to the config.
func setDecoderConfig(ctx *cli.Context, cfg *decoderConfig) error {
	if ctx.IsSet(utils.ABIFlag.Name) {
		cfg.ABIFiles = ctx.StringSlice(utils.ABIFlag.Name)
	}
	cfg.ABIFiles = flags.ExpandPaths(cfg.ABIFiles)

	if ctx.IsSet(utils.SignaturesFlag.Name) {
		cfg.SignatureFile = ctx.String(utils.SignaturesFlag.Name)
	}
	if ctx.IsSet(utils.OutputFlag.Name) {
		cfg.Output = ctx.String(utils.OutputFlag.Name)
	}
	switch cfg.Output {
	case "text", "json":
	default:
		return fmt.Errorf("unknown output format: %q", cfg.Output)
	}
	return nil
}

// dumpConfig is the dumpconfig command.
func dumpConfig(ctx *cli.Context) error {
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return err
	}
	out, err := tomlSettings.Marshal(&cfg)
	if err != nil {
		return err
	}

	dump := stdout
	if ctx.NArg() > 0 {
		f, err := os.OpenFile(ctx.Args().Get(0), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		dump = f
	}
	_, err = dump.Write(out)
	return err
}
