// Copyright 2016 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

// Package debug configures log output from command line flags.
package debug

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/sunyihoo/abi-decoder/internal/flags"
	"github.com/sunyihoo/abi-decoder/log"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	VerbosityFlag = &cli.IntFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity: 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=detail",
		// 日志详细级别：0=静默，1=错误，2=警告，3=信息，4=调试，5=详细。
		Value:    3,
		Category: flags.LoggingCategory,
	}
	LogFormatFlag = &cli.StringFlag{
		Name:     "log.format",
		Usage:    "Log format to use (json|logfmt|terminal)",
		Category: flags.LoggingCategory,
	}
	LogFileFlag = &cli.StringFlag{
		Name:     "log.file",
		Usage:    "Write logs to a file",
		Category: flags.LoggingCategory,
	}
	logRotateFlag = &cli.BoolFlag{
		Name:     "log.rotate",
		Usage:    "Enables log file rotation",
		Category: flags.LoggingCategory,
	}
	LogMaxSizeMBsFlag = &cli.IntFlag{
		Name:     "log.maxsize",
		Usage:    "Maximum size in MBs of a single log file",
		Value:    100,
		Category: flags.LoggingCategory,
	}
	logMaxBackupsFlag = &cli.IntFlag{
		Name:     "log.maxbackups",
		Usage:    "Maximum number of log files to retain",
		Value:    10,
		Category: flags.LoggingCategory,
	}
	logMaxAgeFlag = &cli.IntFlag{
		Name:     "log.maxage",
		Usage:    "Maximum number of days to retain a log file",
		Value:    30,
		Category: flags.LoggingCategory,
	}
	logCompressFlag = &cli.BoolFlag{
		Name:     "log.compress",
		Usage:    "Compress the log files",
		Category: flags.LoggingCategory,
	}
)

// Flags holds all command-line flags required for debugging.
// Flags 包含所有用于日志配置的命令行标志。
var Flags = []cli.Flag{
	VerbosityFlag,
	LogFormatFlag,
	LogFileFlag,
	logRotateFlag,
	LogMaxSizeMBsFlag,
	logMaxBackupsFlag,
	logMaxAgeFlag,
	logCompressFlag,
}

var logOutputFile io.WriteCloser

// Config is the logging configuration resolved from flags and, optionally, a
// config file. Flags always take precedence.
type Config struct {
	Verbosity int
	Format    string
	File      string
	Rotate    bool
	MaxSizeMB int
}

// Setup initializes logging based on the CLI flags. Fields of cfg are used for
// every flag the user did not set explicitly. It should be called as early as
// possible in the program.
//
// Setup 根据 CLI 标志初始化日志记录。应尽可能早地在程序中调用。
func Setup(ctx *cli.Context, cfg Config) error {
	if ctx.IsSet(VerbosityFlag.Name) || cfg.Verbosity == 0 {
		cfg.Verbosity = ctx.Int(VerbosityFlag.Name)
	}
	if ctx.IsSet(LogFormatFlag.Name) || cfg.Format == "" {
		cfg.Format = ctx.String(LogFormatFlag.Name)
	}
	if ctx.IsSet(LogFileFlag.Name) || cfg.File == "" {
		cfg.File = ctx.String(LogFileFlag.Name)
	}
	if ctx.IsSet(logRotateFlag.Name) {
		cfg.Rotate = ctx.Bool(logRotateFlag.Name)
	}
	if ctx.IsSet(LogMaxSizeMBsFlag.Name) || cfg.MaxSizeMB == 0 {
		cfg.MaxSizeMB = ctx.Int(LogMaxSizeMBsFlag.Name)
	}
	var (
		terminalOutput = io.Writer(os.Stderr)
		output         io.Writer
		context        = []interface{}{"rotate", cfg.Rotate}
	)
	if len(cfg.File) > 0 {
		if err := validateLogLocation(filepath.Dir(cfg.File)); err != nil {
			return fmt.Errorf("failed to initialize file logger: %v", err)
		}
	}
	if cfg.Format != "" {
		context = append(context, "format", cfg.Format)
	} else {
		context = append(context, "format", "terminal")
	}
	switch {
	case cfg.Rotate:
		// Lumberjack uses <processname>-lumberjack.log in os.TempDir() if empty.
		// 如果为空，则 Lumberjack 使用 os.TempDir() 中的 <进程名>-lumberjack.log 文件。
		if len(cfg.File) > 0 {
			context = append(context, "location", cfg.File)
		} else {
			context = append(context, "location", filepath.Join(os.TempDir(), "abidecode-lumberjack.log"))
		}
		logOutputFile = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: ctx.Int(logMaxBackupsFlag.Name),
			MaxAge:     ctx.Int(logMaxAgeFlag.Name),
			Compress:   ctx.Bool(logCompressFlag.Name),
		}
		output = io.MultiWriter(terminalOutput, logOutputFile)
	case cfg.File != "":
		var err error
		if logOutputFile, err = os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err != nil {
			return err
		}
		output = io.MultiWriter(logOutputFile, terminalOutput)
		context = append(context, "location", cfg.File)
	default:
		output = terminalOutput
	}

	handler, err := newHandler(cfg.Format, output, log.FromLegacyLevel(cfg.Verbosity))
	if err != nil {
		return err
	}
	log.SetDefault(log.NewLogger(handler))

	if len(cfg.File) > 0 || cfg.Rotate {
		log.Info("Logging configured", context...)
	}
	return nil
}

// newHandler builds the log handler for format, writing records at or above
// level to output.
func newHandler(format string, output io.Writer, level slog.Level) (slog.Handler, error) {
	switch format {
	case "json":
		return log.JSONHandlerWithLevel(output, level), nil
	case "logfmt":
		return log.LogfmtHandlerWithLevel(output, level), nil
	case "", "terminal":
		useColor := (isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())) && os.Getenv("TERM") != "dumb"
		if useColor && output == io.Writer(os.Stderr) {
			output = colorable.NewColorableStderr()
		} else {
			useColor = false
		}
		return log.NewTerminalHandlerWithLevel(output, level, useColor), nil
	default:
		// Unknown log format specified
		return nil, fmt.Errorf("unknown log format: %v", format)
	}
}

// Exit flushes and closes the log file, if any.
// Exit 关闭日志文件。
func Exit() {
	if logOutputFile != nil {
		logOutputFile.Close()
	}
}

// validateLogLocation checks if the log directory is valid and writable.
// validateLogLocation 检查日志目录是否有效且可写。
func validateLogLocation(path string) error {
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		return fmt.Errorf("error creating the directory: %w", err)
	}
	// Check if the path is writable by trying to create a temporary file
	tmp := filepath.Join(path, "tmp")
	if f, err := os.Create(tmp); err != nil {
		return err
	} else {
		f.Close()
	}
	return os.Remove(tmp)
}
