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

package hexutil

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var decodeTests = []struct {
	input   string
	want    []byte
	wantErr error
}{
	{input: "", want: []byte{}},
	{input: "0x", want: []byte{}},
	{input: "0x02", want: []byte{0x02}},
	{input: "0X02", want: []byte{0x02}},
	{input: "ffFFfF", want: []byte{0xff, 0xff, 0xff}},
	{input: "0xDeadBeef", want: []byte{0xde, 0xad, 0xbe, 0xef}},
	{input: "0x0", wantErr: ErrOddLength},
	{input: "0xzz", wantErr: ErrSyntax},
	{input: "0x01zz", wantErr: ErrSyntax},
}

func TestDecode(t *testing.T) {
	for _, test := range decodeTests {
		dec, err := Decode(test.input)
		if test.wantErr != nil {
			if !errors.Is(err, test.wantErr) {
				t.Errorf("input %s: got error %v, want %v", test.input, err, test.wantErr)
			}
			continue
		}
		require.NoError(t, err, "input %s", test.input)
		require.Equal(t, test.want, dec, "input %s", test.input)
	}
}

func TestEncode(t *testing.T) {
	require.Equal(t, "0x", Encode(nil))
	require.Equal(t, "0xdeadbeef", Encode([]byte{0xde, 0xad, 0xbe, 0xef}))
}

func TestBytesJSON(t *testing.T) {
	var b Bytes
	require.NoError(t, json.Unmarshal([]byte(`"0xABcd"`), &b))
	require.Equal(t, Bytes{0xab, 0xcd}, b)

	require.NoError(t, json.Unmarshal([]byte(`"abcd"`), &b))
	require.Equal(t, Bytes{0xab, 0xcd}, b)

	out, err := json.Marshal(b)
	require.NoError(t, err)
	require.Equal(t, `"0xabcd"`, string(out))

	err = json.Unmarshal([]byte(`12`), &b)
	var typeErr *json.UnmarshalTypeError
	require.ErrorAs(t, err, &typeErr)
}

func TestUnmarshalFixedText(t *testing.T) {
	var out [2]byte
	require.NoError(t, UnmarshalFixedText("x", []byte("0x0102"), out[:]))
	require.Equal(t, [2]byte{1, 2}, out)
	require.NoError(t, UnmarshalFixedText("x", []byte("0304"), out[:]))
	require.Equal(t, [2]byte{3, 4}, out)
	require.Error(t, UnmarshalFixedText("x", []byte("0x010203"), out[:]))
}
