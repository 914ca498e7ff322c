// Copyright 2025 The go-ethereum Authors
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

/*
Package hexutil implements hex encoding with 0x prefix.

Decoding accepts input with or without the 0x prefix, in either case.
Encoding always produces lowercase output with the prefix.

	hexutil.Encode([]byte{0xde, 0xad}) == "0xdead"
	hexutil.Decode("DEAD")             == []byte{0xde, 0xad}
*/
package hexutil

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"reflect"
)

// Errors
var (
	ErrSyntax    = &decError{"invalid hex string"}
	ErrOddLength = &decError{"hex string of odd length"}
	errNonString = &decError{"cannot unmarshal non-string as hex data"}
)

var bytesT = reflect.TypeOf(Bytes(nil))

type decError struct{ msg string }

func (err decError) Error() string { return err.msg }

// Decode decodes a hex string. The 0x prefix is optional.
// Decode 解码十六进制字符串，0x 前缀是可选的。
func Decode(input string) ([]byte, error) {
	raw := trimPrefix(input)
	if len(raw)%2 == 1 {
		return nil, ErrOddLength
	}
	b, err := hex.DecodeString(raw)
	if err != nil {
		return nil, ErrSyntax
	}
	return b, nil
}

// MustDecode decodes a hex string. It panics for invalid input.
func MustDecode(input string) []byte {
	dec, err := Decode(input)
	if err != nil {
		panic(err)
	}
	return dec
}

// Encode encodes b as a hex string with 0x prefix.
// Encode 将 b 编码为带 0x 前缀的十六进制字符串。
func Encode(b []byte) string {
	enc := make([]byte, len(b)*2+2)
	copy(enc, "0x")
	hex.Encode(enc[2:], b)
	return string(enc)
}

// Has0xPrefix reports whether the input starts with 0x or 0X.
func Has0xPrefix(input string) bool {
	return len(input) >= 2 && input[0] == '0' && (input[1] == 'x' || input[1] == 'X')
}

func trimPrefix(input string) string {
	if Has0xPrefix(input) {
		return input[2:]
	}
	return input
}

// Bytes marshals/unmarshals as a JSON string with 0x prefix.
// The empty slice marshals as "0x".
type Bytes []byte

// MarshalText implements encoding.TextMarshaler
func (b Bytes) MarshalText() ([]byte, error) {
	return []byte(Encode(b)), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *Bytes) UnmarshalJSON(input []byte) error {
	if !isString(input) {
		return &json.UnmarshalTypeError{Value: "non-string", Type: bytesT}
	}
	return wrapTypeError(b.UnmarshalText(input[1:len(input)-1]), bytesT)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Bytes) UnmarshalText(input []byte) error {
	dec, err := Decode(string(input))
	if err != nil {
		return err
	}
	*b = dec
	return nil
}

// String returns the hex encoding of b.
func (b Bytes) String() string {
	return Encode(b)
}

// UnmarshalFixedText decodes the input as a string with optional 0x prefix. The
// length of out determines the required input length. This function is commonly
// used to implement the UnmarshalText method for fixed-size types.
func UnmarshalFixedText(typname string, input, out []byte) error {
	raw := trimPrefix(string(input))
	if len(raw)/2 != len(out) {
		return fmt.Errorf("hex string has length %d, want %d for %s", len(raw), len(out)*2, typname)
	}
	if len(raw)%2 == 1 {
		return ErrOddLength
	}
	if _, err := hex.Decode(out, []byte(raw)); err != nil {
		return ErrSyntax
	}
	return nil
}

// UnmarshalFixedJSON decodes the input as a string with optional 0x prefix. The
// length of out determines the required input length.
func UnmarshalFixedJSON(typ reflect.Type, input, out []byte) error {
	if !isString(input) {
		return errNonString
	}
	return wrapTypeError(UnmarshalFixedText(typ.String(), input[1:len(input)-1], out), typ)
}

func isString(input []byte) bool {
	return len(input) >= 2 && input[0] == '"' && input[len(input)-1] == '"'
}

func wrapTypeError(err error, typ reflect.Type) error {
	if _, ok := err.(*decError); ok {
		return &json.UnmarshalTypeError{Value: err.Error(), Type: typ}
	}
	return err
}
