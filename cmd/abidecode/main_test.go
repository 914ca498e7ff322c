// Copyright 2025 The go-ethereum Authors
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

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	walletFactoryABI = "../../accounts/abi/decoder/testdata/wallet_factory.json"
	votedABI         = `[{"anonymous":false,"inputs":[{"indexed":true,"name":"voter","type":"address"},{"indexed":true,"name":"pollId","type":"uint256"},{"indexed":true,"name":"optionId","type":"uint256"}],"name":"Voted","type":"event"}]`

	createWalletData = "0x53d9d910" +
		"0000000000000000000000000000000000000000000000000000000000000060" +
		"0000000000000000000000000000000000000000000000000000000000000001" +
		"0000000000000000000000000000000000000000000000000000000000000000" +
		"0000000000000000000000000000000000000000000000000000000000000002" +
		"000000000000000000000000a6d9c5f7d4de3cef51ad3b7235d79ccc95114de5" +
		"000000000000000000000000a6d9c5f7d4de3cef51ad3b7235d79ccc95114daa"

	transferData = "0xa9059cbb" +
		"000000000000000000000000ea0e2dc7d65a50e77fc7e84bff3fd2a9e781ff5c" +
		"00000000000000000000000000000000000000000000000000000000000003e8"
)

// runApp runs abidecode in-process with logging silenced and returns what it
// wrote to stdout.
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := new(bytes.Buffer)
	stdout = out
	t.Cleanup(func() { stdout = os.Stdout })

	err := app.Run(append([]string{"abidecode", "--verbosity", "0"}, args...))
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestMethodJSON(t *testing.T) {
	out, err := runApp(t, "--abi", walletFactoryABI, "--output", "json", "method", createWalletData)
	require.NoError(t, err)

	var results []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)

	method := results[0]["method"].(map[string]interface{})
	assert.Equal(t, "create", method["name"])
	params := method["params"].([]interface{})
	require.Len(t, params, 3)
	assert.Equal(t, map[string]interface{}{
		"name":  "_owners",
		"type":  "address[]",
		"value": []interface{}{"0xa6d9c5f7d4de3cef51ad3b7235d79ccc95114de5", "0xa6d9c5f7d4de3cef51ad3b7235d79ccc95114daa"},
	}, params[0])
	assert.Equal(t, "1", params[1].(map[string]interface{})["value"])
}

func TestMethodText(t *testing.T) {
	out, err := runApp(t, "--abi", walletFactoryABI, "method", createWalletData)
	require.NoError(t, err)
	assert.Contains(t, out, "create\n")
	assert.Contains(t, out, "_required")
	assert.Contains(t, out, "[0xa6d9c5f7d4de3cef51ad3b7235d79ccc95114de5,0xa6d9c5f7d4de3cef51ad3b7235d79ccc95114daa]")
}

func TestMethodSignatureFallback(t *testing.T) {
	out, err := runApp(t, "method", transferData)
	require.NoError(t, err)
	assert.Contains(t, out, "transfer(address: 0xea0e2dc7d65a50e77fc7e84bff3fd2a9e781ff5c,uint256: 1000)")
	assert.Contains(t, out, "(signature database)")
}

func TestMethodNotDecoded(t *testing.T) {
	out, err := runApp(t, "method", "0xdeadbeef", "0xzz")
	assert.ErrorContains(t, err, "2 of 2 inputs could not be decoded")
	assert.Contains(t, out, "not decoded")
	assert.Contains(t, out, "invalid call data")
}

func TestMethodDump(t *testing.T) {
	out, err := runApp(t, "--abi", walletFactoryABI, "--dump", "method", createWalletData)
	require.NoError(t, err)
	assert.Contains(t, out, "main.methodResult")
	assert.Contains(t, out, `Name: (string) (len=6) "create"`)
}

func TestLogs(t *testing.T) {
	abiFile := writeFile(t, "voted.json", votedABI)
	logFile := writeFile(t, "logs.json", `[
		{"address": "0xF9be8F0945acDdeeDaA64DFCA5Fe9629D0CF8E5D", "data": "0x", "topics": [
			"0xea66f58e474bc09f580000e81f31b334d171db387d0c6098ba47bd897741679b",
			"0x00000000000000000000000014341f81df14ca86e1420ec9e6abd343fb1c5bfc",
			"0x0000000000000000000000000000000000000000000000000000000000000022",
			"0x00000000000000000000000000000000000000000000000000000000000000f1"]},
		{"address": "0x01", "data": "0x", "topics": []}
	]`)
	out, err := runApp(t, "--abi", abiFile, "logs", logFile)
	require.NoError(t, err)
	assert.Contains(t, out, "Voted")
	assert.Contains(t, out, "0xF9be8F0945acDdeeDaA64DFCA5Fe9629D0CF8E5D")
	assert.Contains(t, out, "pollId")
	assert.Contains(t, out, "241")

	broken := writeFile(t, "broken.json", `[{"address": "0x02", "data": "0x", "topics": [
		"0xea66f58e474bc09f580000e81f31b334d171db387d0c6098ba47bd897741679b"]}]`)
	_, err = runApp(t, "--abi", abiFile, "logs", broken)
	assert.ErrorContains(t, err, "1 of 1 logs failed to decode")

	_, err = runApp(t, "--abi", abiFile, "logs", writeFile(t, "bad.json", `{"address": "0x"}`))
	assert.ErrorContains(t, err, "invalid log file")
}

func TestSignature(t *testing.T) {
	out, err := runApp(t, "signature", "transfer(address,uint256)")
	require.NoError(t, err)
	assert.Equal(t, "0xa9059cbb\ttransfer(address,uint256)\n", out)

	out, err = runApp(t, "signature", "--event", "Transfer(address,address,uint256)")
	require.NoError(t, err)
	assert.Equal(t, "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef\tTransfer(address,address,uint256)\n", out)

	_, err = runApp(t, "signature", "transfer(address,uint256")
	assert.Error(t, err)
}

func TestSignatureSave(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "4byte.json")
	config := writeFile(t, "config.toml", "[Decoder]\nSignatureFile = \""+dbFile+"\"\nOutput = \"text\"\n")

	_, err := runApp(t, "--config", config, "signature", "--save", "send(uint256)")
	require.NoError(t, err)

	blob, err := os.ReadFile(dbFile)
	require.NoError(t, err)
	assert.Contains(t, string(blob), `"a52c101e": "send(uint256)"`)

	out, err := runApp(t, "--config", config, "abis", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "a52c101e")
	assert.Contains(t, out, "send(uint256)")
}

func TestABIs(t *testing.T) {
	out, err := runApp(t, "--abi", walletFactoryABI, "--output", "json", "abis")
	require.NoError(t, err)

	var res abisResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Len(t, res.Entries, 5)
	assert.Len(t, res.MethodIDs, 5)
	assert.Equal(t, "create", res.MethodIDs["53d9d910"])
	assert.Empty(t, res.Database)
}

func TestConfig(t *testing.T) {
	out, err := runApp(t, "--abi", walletFactoryABI, "--output", "json", "dumpconfig")
	require.NoError(t, err)
	assert.Contains(t, out, "[Decoder]")
	assert.Contains(t, out, `Output = "json"`)
	assert.Contains(t, out, "wallet_factory.json")

	bad := writeFile(t, "bad.toml", "[Decoder]\nABIFile = []\n")
	_, err = runApp(t, "--config", bad, "abis")
	assert.ErrorContains(t, err, "field 'ABIFile' is not defined")

	_, err = runApp(t, "--output", "yaml", "abis")
	assert.ErrorContains(t, err, "unknown output format")
}
