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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFatalf(t *testing.T) {
	var (
		out  bytes.Buffer
		code = -1
	)
	prevOut, prevExit := errorOutput, exit
	defer func() { errorOutput, exit = prevOut, prevExit }()
	errorOutput, exit = &out, func(c int) { code = c }
	Fatalf("%d of %d inputs could not be decoded", 1, 2)

	assert.Equal(t, "Fatal: 1 of 2 inputs could not be decoded\n", out.String())
	assert.Equal(t, 1, code)
}
