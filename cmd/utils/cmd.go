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

package utils

import (
	"fmt"
	"io"
	"os"
)

// errorOutput receives fatal messages.
var errorOutput io.Writer = os.Stderr

// exit terminates the process; tests replace it.
var exit = os.Exit

// Fatalf prints a message prefixed with "Fatal: " to standard error and exits
// with status 1. Decoded output on standard output is left untouched so that
// piped results stay parseable.
func Fatalf(format string, args ...interface{}) {
	fmt.Fprintf(errorOutput, "Fatal: "+format+"\n", args...)
	exit(1)
}
