// Copyright 2018 The go-ethereum Authors
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

	"github.com/sunyihoo/abi-decoder/common"
)

// UnpackTopics converts the indexed arguments of an event into values, one
// topic word per argument.
//
// Note, dynamic and composite types cannot be reconstructed since they get
// mapped to Keccak256 hashes as the topic value! They are returned as a
// HashValue holding the raw topic.
// UnpackTopics 将事件的索引参数从主题中还原。
//
// 注意：动态类型和复合类型无法重建，因为它们被映射为主题值的 Keccak256 哈希！
func (arguments Arguments) UnpackTopics(topics []common.Hash) ([]Value, error) {
	indexed := arguments.Indexed()
	if len(indexed) != len(topics) {
		return nil, &MalformedEncodingError{
			Type:   "topics",
			Reason: fmt.Sprintf("%v: have %d, want %d", errTopicCount, len(topics), len(indexed)),
			err:    errTopicCount,
		}
	}
	values := make([]Value, len(indexed))
	for i, arg := range indexed {
		v, err := unpackTopic(&indexed[i].Type, topics[i])
		if err != nil {
			var merr *MalformedEncodingError
			if errors.As(err, &merr) {
				merr.Offset = i * common.HashLength
			}
			return nil, fmt.Errorf("topic %d (%s): %w", i, arg.Name, err)
		}
		values[i] = v
	}
	return values, nil
}

// unpackTopic decodes a single topic word with the single-word rules.
func unpackTopic(t *Type, topic common.Hash) (Value, error) {
	switch t.T {
	case StringTy, BytesTy, SliceTy, ArrayTy, TupleTy:
		// Array types (including strings and bytes) have their keccak256 hashes
		// stored in the topic, so the best we can do is retrieve that hash.
		// 数组类型（包括字符串和字节数组）的主题存储的是其 Keccak256 哈希值。
		return Value{Kind: HashValue, Hash: topic}, nil
	default:
		v, err := readWord(t, topic[:])
		if err != nil {
			return Value{}, malformed(t, 0, err)
		}
		return v, nil
	}
}
