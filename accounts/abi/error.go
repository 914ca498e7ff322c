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
	"fmt"
)

// TypeParseError is returned when an ABI type string cannot be parsed.
// TypeParseError 在无法解析 ABI 类型字符串时返回。
type TypeParseError struct {
	Type   string // offending type string
	Reason string
}

func (e *TypeParseError) Error() string {
	return fmt.Sprintf("abi: invalid type %q: %s", e.Type, e.Reason)
}

// MalformedEncodingError is returned when an encoded buffer does not match the
// layout its types prescribe: truncated words, offsets or lengths pointing
// outside the buffer, dirty padding, or aliasing offsets that expand beyond the
// decoding budget.
// MalformedEncodingError 在编码数据与类型规定的布局不一致时返回。
type MalformedEncodingError struct {
	Type   string // canonical type being decoded
	Offset int    // byte offset into the decoded buffer
	Reason string

	err error
}

func (e *MalformedEncodingError) Error() string {
	return fmt.Sprintf("abi: malformed %s at offset %d: %s", e.Type, e.Offset, e.Reason)
}

// ErrMalformed matches every error returned by the decoder for a bad buffer.
var ErrMalformed = errors.New("abi: malformed encoding")

// Is reports whether target is ErrMalformed.
func (e *MalformedEncodingError) Is(target error) bool {
	return target == ErrMalformed
}

// Unwrap returns the sentinel error classifying the failure, if any.
func (e *MalformedEncodingError) Unwrap() error {
	return e.err
}

func malformed(t *Type, offset int, err error) *MalformedEncodingError {
	return &MalformedEncodingError{Type: t.String(), Offset: offset, Reason: err.Error(), err: err}
}
