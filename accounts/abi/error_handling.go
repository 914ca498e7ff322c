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

package abi

import (
	"errors"
)

var (
	errShortBuffer    = errors.New("buffer too short")
	errOffsetRange    = errors.New("offset out of range")
	errLengthRange    = errors.New("length exceeds remaining buffer")
	errCountRange     = errors.New("element count exceeds remaining buffer")
	errBudgetExceeded = errors.New("encoding expands beyond its buffer")
	errEmptyData      = errors.New("attempting to unmarshal an empty string while arguments are expected")
	errTopicCount     = errors.New("topic count does not match indexed arguments")
)
