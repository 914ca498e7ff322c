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
	"encoding/json"
	"fmt"
	"strings"
)

// EntryType is the kind of an ABI entry.
type EntryType string

const (
	Function    EntryType = "function"
	Event       EntryType = "event"
	Constructor EntryType = "constructor"
	Fallback    EntryType = "fallback"
	Receive     EntryType = "receive"
	CustomError EntryType = "error"
)

// Entry is a single element of a contract ABI: a function, an event, the
// constructor, a fallback/receive function or a custom error. Only named
// functions and events can be looked up by selector or topic; the other kinds
// are carried for listing.
// Entry 是合约 ABI 中的一个元素。只有具名的函数和事件可以通过选择器或主题查找。
type Entry struct {
	Type    EntryType `json:"type"`
	Name    string    `json:"name,omitempty"`
	Inputs  Arguments `json:"inputs"`
	Outputs Arguments `json:"outputs,omitempty"`

	// Event relevant indicator represents the event is
	// declared as anonymous.
	// 与事件相关的指示器，表示事件被声明为匿名的。
	Anonymous bool `json:"anonymous,omitempty"`

	// Status indicator which can be: "pure", "view",
	// "nonpayable" or "payable".
	StateMutability string `json:"stateMutability,omitempty"`

	// Deprecated Status indicators, but removed in v0.6.0.
	Constant bool `json:"constant,omitempty"`
	Payable  bool `json:"payable,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler interface. A missing type
// defaults to "function", matching legacy solc output.
func (e *Entry) UnmarshalJSON(data []byte) error {
	type entry Entry
	var raw entry
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.Type {
	case "":
		raw.Type = Function
	case Function, Event, Constructor, Fallback, Receive, CustomError:
	default:
		return fmt.Errorf("abi: could not recognize type %v of field %v", raw.Type, raw.Name)
	}
	*e = Entry(raw)
	return nil
}

// Indexable reports whether the entry gets a selector or topic key. Anonymous
// events emit no signature topic and are therefore never keyed.
func (e Entry) Indexable() bool {
	if e.Name == "" {
		return false
	}
	return e.Type == Function || (e.Type == Event && !e.Anonymous)
}

// Sig returns the canonical signature hashed into selectors and topics, e.g.
// event foo(uint32 a, int b) = "foo(uint32,int256)". Tuples are expanded to
// their member types.
// Sig 返回根据 ABI 规范生成的字符串签名。
func (e Entry) Sig() string {
	return fmt.Sprintf("%v(%v)", e.Name, strings.Join(e.Inputs.Types(), ","))
}

// ID returns the full hash of the canonical signature. For events this is the
// first topic of every non-anonymous log.
func (e Entry) ID(hash HashFunc) []byte {
	return hash([]byte(e.Sig()))
}

// Selector returns the 4 byte method identifier of a function.
func (e Entry) Selector(hash HashFunc) []byte {
	return e.ID(hash)[:4]
}

// Key returns the lowercase hex registry key of the entry without a 0x
// prefix: 8 characters for functions, 64 for events. Entries that cannot be
// indexed return the empty string.
func (e Entry) Key(hash HashFunc) string {
	switch {
	case !e.Indexable():
		return ""
	case e.Type == Function:
		return fmt.Sprintf("%x", e.Selector(hash))
	default:
		return fmt.Sprintf("%x", e.ID(hash))
	}
}

// String returns a human readable description of the entry.
// String 返回条目的字符串表示形式。
func (e Entry) String() string {
	names := make([]string, len(e.Inputs))
	for i, input := range e.Inputs {
		names[i] = input.Type.String()
		if input.Indexed {
			names[i] += " indexed"
		}
		if input.Name != "" {
			names[i] += " " + input.Name
		}
	}
	str := fmt.Sprintf("%v %v(%v)", e.Type, e.Name, strings.Join(names, ", "))
	if e.Type == Event && e.Anonymous {
		str += " anonymous"
	}
	return str
}
