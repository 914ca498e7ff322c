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

package abi

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const walletFactoryABI = `[
	{"inputs": [{"type": "address", "name": ""}], "constant": true, "name": "isInstantiation", "payable": false, "outputs": [{"type": "bool", "name": ""}], "type": "function"},
	{"inputs": [{"type": "address[]", "name": "_owners"}, {"type": "uint256", "name": "_required"}, {"type": "uint256", "name": "_dailyLimit"}], "constant": false, "name": "create", "payable": false, "outputs": [{"type": "address", "name": "wallet"}], "type": "function"},
	{"inputs": [{"type": "address", "name": ""}, {"type": "uint256", "name": ""}], "constant": true, "name": "instantiations", "payable": false, "outputs": [{"type": "address", "name": ""}], "type": "function"},
	{"inputs": [{"type": "address", "name": "creator"}], "constant": true, "name": "getInstantiationCount", "payable": false, "outputs": [{"type": "uint256", "name": ""}], "type": "function"},
	{"inputs": [{"indexed": false, "type": "address", "name": "sender"}, {"indexed": false, "type": "address", "name": "instantiation"}], "type": "event", "name": "ContractInstantiation", "anonymous": false}
]`

const relayHubABI = `[{"constant":false,"inputs":[{"components":[{"components":[{"internalType":"address","name":"target","type":"address"},{"internalType":"uint256","name":"gasLimit","type":"uint256"},{"internalType":"uint256","name":"gasPrice","type":"uint256"},{"internalType":"bytes","name":"encodedFunction","type":"bytes"}],"internalType":"struct EIP712Sig.CallData","name":"callData","type":"tuple"},{"components":[{"internalType":"address","name":"senderAccount","type":"address"},{"internalType":"uint256","name":"senderNonce","type":"uint256"},{"internalType":"address","name":"relayAddress","type":"address"},{"internalType":"uint256","name":"pctRelayFee","type":"uint256"}],"internalType":"struct EIP712Sig.RelayData","name":"relayData","type":"tuple"}],"internalType":"struct EIP712Sig.RelayRequest","name":"relayRequest","type":"tuple"},{"internalType":"bytes","name":"signature","type":"bytes"},{"internalType":"bytes","name":"approvalData","type":"bytes"}],"name":"relayCall","outputs":[],"payable":false,"stateMutability":"nonpayable","type":"function"}]`

func TestParseABI(t *testing.T) {
	entries, err := ParseABI([]byte(walletFactoryABI))
	require.NoError(t, err)
	require.Len(t, entries, 5)

	create := entries[1]
	assert.Equal(t, Function, create.Type)
	assert.Equal(t, "create", create.Name)
	assert.Equal(t, "create(address[],uint256,uint256)", create.Sig())
	assert.Equal(t, "53d9d910", create.Key(Keccak256))
	assert.Len(t, create.Outputs, 1)
	assert.False(t, create.Constant)

	event := entries[4]
	assert.Equal(t, Event, event.Type)
	assert.Equal(t, "ContractInstantiation(address,address)", event.Sig())
	assert.Equal(t, "4fb057ad4a26ed17a57957fa69c306f11987596069b89521c511fc9a894e6161", event.Key(Keccak256))
}

func TestParseABITuples(t *testing.T) {
	entries, err := JSON(strings.NewReader(relayHubABI))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	relay := entries[0]
	assert.Equal(t, "relayCall(((address,uint256,uint256,bytes),(address,uint256,address,uint256)),bytes,bytes)", relay.Sig())
	assert.Equal(t, "d4f8f131", relay.Key(Keccak256))
	assert.Equal(t, []byte{0xd4, 0xf8, 0xf1, 0x31}, relay.Selector(Keccak256))
	assert.Equal(t, "tuple", relay.Inputs[0].Type.Declared())
	assert.Equal(t, "EIP712SigRelayRequest", relay.Inputs[0].Type.TupleRawName)
	assert.Equal(t, "nonpayable", relay.StateMutability)
}

func TestEventTopics(t *testing.T) {
	for _, tt := range []struct{ blob, key string }{
		{`[{"anonymous":false,"inputs":[{"indexed":true,"name":"voter","type":"address"},{"indexed":true,"name":"pollId","type":"uint256"},{"indexed":true,"name":"optionId","type":"uint256"}],"name":"Voted","type":"event"}]`,
			"ea66f58e474bc09f580000e81f31b334d171db387d0c6098ba47bd897741679b"},
		{`[{"inputs":[{"indexed":true,"type":"address","name":"sender"},{"indexed":false,"type":"uint256","name":"value"}],"type":"event","name":"Deposit","anonymous":false}]`,
			"e1fffcc4923d04b559f4d29a8bfc6cda04eb5b0d3c460751c2402c5c5cc9109c"},
		{`[{"anonymous":false,"inputs":[{"components":[{"internalType":"uint256","name":"id","type":"uint256"},{"internalType":"string","name":"name","type":"string"}],"indexed":false,"internalType":"struct TestEvent.EventInfo","name":"eventInfo","type":"tuple"}],"name":"Event","type":"event"}]`,
			"e70874d47996054618fb5fc961c81a9ad9dfdfd01119e36286ef1a9720935598"},
	} {
		entries, err := ParseABI([]byte(tt.blob))
		require.NoError(t, err)
		assert.Equal(t, tt.key, entries[0].Key(Keccak256), entries[0].Sig())
	}
}

func TestParseABIDefaultsAndKinds(t *testing.T) {
	blob := `[
		{"name": "legacy", "inputs": [{"name": "x", "type": "uint"}]},
		{"type": "constructor", "inputs": [{"name": "owners", "type": "address[]"}]},
		{"type": "fallback", "payable": true},
		{"type": "receive", "stateMutability": "payable"},
		{"type": "error", "name": "Unauthorized", "inputs": [{"name": "who", "type": "address"}]},
		{"type": "event", "name": "Ping", "anonymous": true, "inputs": []}
	]`
	entries, err := ParseABI([]byte(blob))
	require.NoError(t, err)
	require.Len(t, entries, 6)

	assert.Equal(t, Function, entries[0].Type)
	assert.Equal(t, "legacy(uint256)", entries[0].Sig())
	assert.Equal(t, "uint", entries[0].Inputs[0].Type.Declared())
	assert.True(t, entries[0].Indexable())

	for _, e := range entries[1:5] {
		assert.False(t, e.Indexable(), e.Type)
		assert.Empty(t, e.Key(Keccak256), e.Type)
	}
	assert.True(t, entries[2].Payable)
	assert.Equal(t, CustomError, entries[4].Type)
	assert.True(t, entries[5].Anonymous)
	assert.False(t, entries[5].Indexable())
	assert.Empty(t, entries[5].Key(Keccak256))
}

func TestParseABIFailsWholeBatch(t *testing.T) {
	blob := `[
		{"type": "function", "name": "fine", "inputs": [{"name": "a", "type": "uint256"}]},
		{"type": "function", "name": "broken", "inputs": [{"name": "a", "type": "uint257"}]}
	]`
	entries, err := ParseABI([]byte(blob))
	assert.Nil(t, entries)
	var perr *TypeParseError
	require.True(t, errors.As(err, &perr), "got %v", err)
	assert.Equal(t, "uint257", perr.Type)

	_, err = ParseABI([]byte(`[{"type": "modifier", "name": "onlyOwner"}]`))
	assert.EqualError(t, err, "abi: could not recognize type modifier of field onlyOwner")

	_, err = ParseABI([]byte(`{"type": "function"}`))
	assert.Error(t, err)
}

func TestEntryJSONRoundTrip(t *testing.T) {
	entries, err := ParseABI([]byte(relayHubABI))
	require.NoError(t, err)
	blob, err := json.Marshal(entries)
	require.NoError(t, err)

	again, err := ParseABI(blob)
	require.NoError(t, err)
	require.Len(t, again, 1)
	assert.Equal(t, entries[0].Sig(), again[0].Sig())
	assert.Equal(t, entries[0].Inputs[0].Type.TupleRawNames, again[0].Inputs[0].Type.TupleRawNames)
	assert.Equal(t, "struct EIP712Sig.RelayRequest", again[0].Inputs[0].Type.InternalType())
}

func TestEntryString(t *testing.T) {
	entries, err := ParseABI([]byte(`[{"type":"event","name":"Deposit","anonymous":true,"inputs":[{"indexed":true,"type":"address","name":"sender"},{"type":"uint","name":""}]}]`))
	require.NoError(t, err)
	assert.Equal(t, "event Deposit(address indexed sender, uint256) anonymous", entries[0].String())
}
