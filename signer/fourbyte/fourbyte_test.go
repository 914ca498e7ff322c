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

package fourbyte

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunyihoo/abi-decoder/accounts/abi"
	"github.com/sunyihoo/abi-decoder/common"
	"github.com/sunyihoo/abi-decoder/crypto"
)

// Tests that all the selectors contained in the 4byte database are valid.
func TestEmbeddedDatabase(t *testing.T) {
	db, err := New()
	require.NoError(t, err)
	embedded, custom := db.Size()
	assert.NotZero(t, embedded)
	assert.Zero(t, custom)

	for id, selector := range db.embedded {
		entry, err := abi.NewEntryFromSignature(selector, abi.Function)
		require.NoError(t, err, "failed to parse selector %q", selector)
		assert.Equal(t, id, hex.EncodeToString(crypto.Selector(entry.Sig())), "selector %q", selector)
	}
	assert.Len(t, db.Entries(), embedded)
}

// Tests that custom 4byte datasets can be handled too.
func TestCustomDatabase(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "4byte_custom.json")

	db, err := NewWithFile(filename)
	require.NoError(t, err)
	embedded, custom := db.Size()
	require.Zero(t, custom)

	// Ensure that an unknown selector is not found, then inject it and check
	// it both in memory and after a reload.
	calldata := common.FromHex("0xa52c101e0000000000000000000000000000000000000000000000000000000000000012")
	_, err = db.Selector(calldata)
	require.Error(t, err)

	require.NoError(t, db.AddSelector("send(uint256)", calldata))
	_, custom = db.Size()
	assert.Equal(t, 1, custom)

	sig, err := db.Selector(calldata)
	require.NoError(t, err)
	assert.Equal(t, "send(uint256)", sig)

	reloaded, err := NewWithFile(filename)
	require.NoError(t, err)
	reEmbedded, reCustom := reloaded.Size()
	assert.Equal(t, embedded, reEmbedded)
	assert.Equal(t, 1, reCustom)

	// Known selectors are not duplicated into the custom set.
	require.NoError(t, reloaded.AddSelector("transfer(address,uint256)", common.FromHex("0xa9059cbb")))
	_, reCustom = reloaded.Size()
	assert.Equal(t, 1, reCustom)
}

func TestNewFromFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"a9059cbb": "transfer(address,uint256)"}`), 0600))

	db, err := NewFromFile(good)
	require.NoError(t, err)
	embedded, custom := db.Size()
	assert.Equal(t, 1, embedded)
	assert.Zero(t, custom)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`["a9059cbb"]`), 0600))
	_, err = NewFromFile(bad)
	assert.Error(t, err)

	_, err = NewFromFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestEntriesSkipsInvalid(t *testing.T) {
	db := newEmpty()
	db.embedded["a9059cbb"] = "transfer(address,uint256)"
	db.embedded["deadbeef"] = "transfer(address,uint256)" // hash mismatch
	db.embedded["00000001"] = "broken(uint7)"
	db.custom["53d9d910"] = "create(address[],uint256,uint256)"

	entries := db.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "create(address[],uint256,uint256)", entries[0].Sig())
	assert.Equal(t, "transfer(address,uint256)", entries[1].Sig())
	assert.Equal(t, "arg0", entries[1].Inputs[0].Name)
}

func TestDecodeCallData(t *testing.T) {
	db, err := New()
	require.NoError(t, err)

	transfer := "0xa9059cbb" +
		"000000000000000000000000ea0e2dc7d65a50e77fc7e84bff3fd2a9e781ff5c" +
		"00000000000000000000000000000000000000000000000000000000000003e8"
	have, err := db.DecodeCallData(common.FromHex(transfer))
	require.NoError(t, err)
	assert.Equal(t, "transfer(address: 0xea0e2dc7d65a50e77fc7e84bff3fd2a9e781ff5c,uint256: 1000)", have)

	for _, tt := range []struct {
		input string
		want  string
	}{
		{"0xa905", "expected 4-byte id"},
		{"0x12345678", "not found"},
		{transfer + "00", "multiple of 32 bytes"},
		// The bool word may only be 0 or 1.
		{"0xa22cb465" +
			"000000000000000000000000ea0e2dc7d65a50e77fc7e84bff3fd2a9e781ff5c" +
			"0000000000000000000000000000000000000000000000000000000000000002", "arguments mismatch"},
	} {
		_, err := db.DecodeCallData(common.FromHex(tt.input))
		require.Error(t, err, "input %s", tt.input)
		assert.True(t, strings.Contains(err.Error(), tt.want), "input %s: %v", tt.input, err)
	}
}

func TestVerifySelector(t *testing.T) {
	data := common.FromHex("0xa9059cbb" +
		"000000000000000000000000ea0e2dc7d65a50e77fc7e84bff3fd2a9e781ff5c" +
		"00000000000000000000000000000000000000000000000000000000000003e8")

	decoded, err := verifySelector("transfer(address,uint256)", data)
	require.NoError(t, err)
	assert.Equal(t, "transfer(address: 0xea0e2dc7d65a50e77fc7e84bff3fd2a9e781ff5c,uint256: 1000)", decoded.String())
	assert.Equal(t, "transfer", decoded.name)
	require.Len(t, decoded.inputs, 2)

	_, err = verifySelector("approve(address,uint256)", data)
	assert.ErrorContains(t, err, "has selector 095ea7b3")

	_, err = verifySelector("transfer(address,uint256", data)
	assert.ErrorContains(t, err, "failed to parse selector")
}
