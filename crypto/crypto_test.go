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

package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sunyihoo/abi-decoder/common"
	"github.com/sunyihoo/abi-decoder/common/hexutil"
)

func TestKeccak256Hash(t *testing.T) {
	msg := []byte("abc")
	exp := hexutil.MustDecode("0x4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45")
	require.Equal(t, exp, Keccak256(msg))
	require.Equal(t, common.BytesToHash(exp), Keccak256Hash(msg))
}

func TestKeccak256Empty(t *testing.T) {
	exp := hexutil.MustDecode("0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470")
	require.Equal(t, exp, Keccak256())
	require.Equal(t, common.BytesToHash(exp), HashData(NewKeccakState(), nil))
}

func TestSelector(t *testing.T) {
	// ERC-20 transfer
	require.Equal(t, "0xa9059cbb", hexutil.Encode(Selector("transfer(address,uint256)")))
	require.Equal(t, "0x53d9d910", hexutil.Encode(Selector("create(address[],uint256,uint256)")))
}

func TestTransferTopic(t *testing.T) {
	require.Equal(t,
		"0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef",
		Keccak256Hash([]byte("Transfer(address,address,uint256)")).Hex())
}
