// Copyright 2015 The go-ethereum Authors
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

// Package abi implements decoding of the Ethereum ABI (Application Binary
// Interface).
//
// Types are parsed from their JSON ABI form into a Type tree whose dynamic
// flag and head size are computed once. Call data and log data are decoded
// with the head/tail layout: static values sit inline in the head, dynamic
// values are referenced by an offset word and stored in the tail. Decoded
// values are returned as Value trees whose integers are arbitrary precision
// and whose addresses render as lowercase hex.
//
// abi 包实现了以太坊 ABI（应用二进制接口）的解码。
//
// 类型从 JSON ABI 解析为 Type 树，静态值位于头部，动态值通过偏移量引用并存放于尾部。
package abi
