// Copyright 2019 The go-ethereum Authors
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

// Package fourbyte contains the 4byte database.
package fourbyte

import (
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/gofrs/flock"
	"github.com/sunyihoo/abi-decoder/accounts/abi"
	"github.com/sunyihoo/abi-decoder/log"
)

//go:embed 4byte.json
var embeddedJSON []byte

// Database is a 4byte database with the possibility of maintaining an immutable
// set (embedded) into the process and a mutable set (loaded and written to file).
//
// Database 是一个 4byte 数据库，可以维护一个嵌入进程的不可变集合（embedded）
// 和一个可变集合（加载并写入文件）。
type Database struct {
	embedded   map[string]string // 嵌入进程的不可变签名集合，键为 8 位十六进制选择器
	custom     map[string]string // 可从文件加载或写入的自定义签名集合
	customPath string            // 自定义集合的持久化路径，为空时不写盘
}

// newEmpty exists for testing purposes.
func newEmpty() *Database {
	return &Database{
		embedded: make(map[string]string),
		custom:   make(map[string]string),
	}
}

// New loads the standard signature database embedded in the package.
// New 加载包中嵌入的标准签名数据库。
func New() (*Database, error) {
	return NewWithFile("")
}

// NewFromFile loads signature database from file, and errors if the file is not
// valid JSON. The constructor does no other validation of contents. This method
// does not load the embedded 4byte database.
//
// NewFromFile 从文件中加载签名数据库，此方法不会加载嵌入的 4byte 数据库。
func NewFromFile(path string) (*Database, error) {
	raw, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer raw.Close()

	db := newEmpty()
	if err := json.NewDecoder(raw).Decode(&db.embedded); err != nil {
		return nil, fmt.Errorf("invalid signature database %s: %w", path, err)
	}
	return db, nil
}

// NewWithFile loads both the standard signature database (embedded resource
// file) as well as a custom database. The latter will be used to write new
// values into if they are added with AddSelector.
//
// NewWithFile 加载嵌入的标准签名数据库以及自定义数据库，后者用于写入新增的签名。
func NewWithFile(path string) (*Database, error) {
	db := newEmpty()
	db.customPath = path

	if err := json.Unmarshal(embeddedJSON, &db.embedded); err != nil {
		return nil, err
	}
	if path == "" {
		return db, nil
	}
	// Custom file may not exist. Will be created during save, if needed.
	// 自定义文件可能不存在。如果需要，将在保存时创建。
	blob, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		return db, nil
	case err != nil:
		return nil, err
	}
	if err := json.Unmarshal(blob, &db.custom); err != nil {
		return nil, fmt.Errorf("invalid signature database %s: %w", path, err)
	}
	return db, nil
}

// Size returns the number of 4byte entries in the embedded and custom datasets.
// Size 返回嵌入和自定义数据集中 4byte 条目的数量。
func (db *Database) Size() (int, int) {
	return len(db.embedded), len(db.custom)
}

// Selector checks the given 4byte ID against the known ABI methods.
//
// This method does not validate the match, it's assumed the caller will do.
//
// Selector 检查给定的 4byte ID 是否存在于已知的 ABI 方法中，不对匹配进行验证。
func (db *Database) Selector(id []byte) (string, error) {
	if len(id) < 4 {
		return "", fmt.Errorf("expected 4-byte id, got %d", len(id))
	}
	sig := hex.EncodeToString(id[:4])
	if selector, exists := db.embedded[sig]; exists {
		return selector, nil
	}
	if selector, exists := db.custom[sig]; exists {
		return selector, nil
	}
	return "", fmt.Errorf("signature %v not found", sig)
}

// AddSelector inserts a new 4byte entry into the database. If custom database
// saving is enabled, the new dataset is also persisted to disk while holding a
// lock next to the file.
//
// Note, this method does _not_ validate the correctness of the data. It assumes
// the caller has already done so.
//
// AddSelector 将一个新的 4byte 条目插入数据库，并在持有文件锁时持久化到磁盘。
func (db *Database) AddSelector(selector string, data []byte) error {
	// If the selector is already known, skip duplicating it
	if len(data) < 4 {
		return nil
	}
	if _, err := db.Selector(data[:4]); err == nil {
		return nil
	}
	db.custom[hex.EncodeToString(data[:4])] = selector
	if db.customPath == "" {
		return nil
	}
	lock := flock.New(db.customPath + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock signature database: %w", err)
	}
	defer lock.Unlock()

	blob, err := json.MarshalIndent(db.custom, "", " ")
	if err != nil {
		return err
	}
	return os.WriteFile(db.customPath, blob, 0600)
}

// Entries converts every known signature into a function entry that can be
// registered with a decoder. Signatures that fail to parse, or whose selector
// does not hash to their key, are skipped. Entries are ordered by selector and
// custom signatures shadow embedded ones with the same key.
//
// Entries 将所有已知签名转换为函数条目。无法解析或哈希不匹配的签名会被跳过。
func (db *Database) Entries() []abi.Entry {
	merged := make(map[string]string, len(db.embedded)+len(db.custom))
	for key, sig := range db.embedded {
		merged[key] = sig
	}
	for key, sig := range db.custom {
		merged[key] = sig
	}
	keys := make([]string, 0, len(merged))
	for key := range merged {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	entries := make([]abi.Entry, 0, len(keys))
	for _, key := range keys {
		entry, err := abi.NewEntryFromSignature(merged[key], abi.Function)
		if err != nil {
			log.Debug("Skipping unparsable signature", "selector", key, "signature", merged[key], "err", err)
			continue
		}
		if have := entry.Key(abi.Keccak256); have != key {
			log.Debug("Skipping mismatched signature", "selector", key, "signature", merged[key], "have", have)
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}
