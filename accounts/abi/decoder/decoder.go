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

// Package decoder keeps a registry of ABI entries keyed by method selector and
// event topic, and decodes call data and event logs against it.
package decoder

import (
	"encoding/hex"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/sunyihoo/abi-decoder/accounts/abi"
	"github.com/sunyihoo/abi-decoder/common/hexutil"
	"github.com/sunyihoo/abi-decoder/log"
)

// Option configures a Decoder.
type Option func(*Decoder)

// WithLogger sets the logger registry changes and dropped logs are reported to.
func WithLogger(logger log.Logger) Option {
	return func(d *Decoder) {
		d.log = logger
	}
}

// WithHasher replaces the Keccak256 hash used to derive selectors and topics.
func WithHasher(hash abi.HashFunc) Option {
	return func(d *Decoder) {
		d.hash = hash
	}
}

// Decoder is a registry of ABI entries. Reads may run concurrently, but
// AddABI and RemoveABI must not run concurrently with anything else; the
// caller provides that synchronisation.
//
// Decoder 是 ABI 条目的注册表。读取可以并发进行，但修改需要调用者同步。
type Decoder struct {
	hash abi.HashFunc
	log  log.Logger

	entries []abi.Entry          // every registered entry, in registration order
	methods map[string]abi.Entry // 4 byte selector (8 hex chars) -> function
	events  map[string]abi.Entry // 32 byte topic (64 hex chars) -> event
}

// New creates an empty decoder.
func New(opts ...Option) *Decoder {
	d := &Decoder{
		hash:    abi.Keccak256,
		log:     log.Root(),
		methods: make(map[string]abi.Entry),
		events:  make(map[string]abi.Entry),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// AddABI registers entries. Named functions are indexed by selector and named
// events by topic; other entries are only listed. A key that is already taken
// is overwritten by the later entry.
func (d *Decoder) AddABI(entries []abi.Entry) {
	var functions, events int
	for _, entry := range entries {
		d.entries = append(d.entries, entry)

		key := entry.Key(d.hash)
		if key == "" {
			continue
		}
		index := d.index(entry.Type)
		if prev, ok := index[key]; ok && prev.Sig() != entry.Sig() {
			d.log.Debug("Overwriting ABI entry", "key", key, "old", prev.Sig(), "new", entry.Sig())
		}
		index[key] = entry
		if entry.Type == abi.Function {
			functions++
		} else {
			events++
		}
	}
	d.log.Debug("Registered ABI entries", "entries", len(entries), "functions", functions, "events", events)
}

// AddABIJSON parses a JSON ABI document and registers its entries. Nothing is
// registered if any entry fails to parse.
func (d *Decoder) AddABIJSON(blob []byte) error {
	entries, err := abi.ParseABI(blob)
	if err != nil {
		return err
	}
	d.AddABI(entries)
	return nil
}

// RemoveABI deletes the selector and topic keys derived from entries, and
// drops listed entries of the same kind and signature. Keys that are not
// registered are ignored.
func (d *Decoder) RemoveABI(entries []abi.Entry) {
	removed := mapset.NewThreadUnsafeSet[string]()
	for _, entry := range entries {
		removed.Add(identity(entry))
		if key := entry.Key(d.hash); key != "" {
			delete(d.index(entry.Type), key)
		}
	}
	kept := d.entries[:0]
	for _, entry := range d.entries {
		if !removed.Contains(identity(entry)) {
			kept = append(kept, entry)
		}
	}
	d.log.Debug("Removed ABI entries", "entries", len(entries), "unlisted", len(d.entries)-len(kept))
	d.entries = kept
}

// ABIs returns the registered entries in registration order. Entries added
// more than once are listed once per AddABI call.
func (d *Decoder) ABIs() []abi.Entry {
	return append([]abi.Entry(nil), d.entries...)
}

// MethodIDs returns every registry key with the name of its entry. Function
// selectors are 8 hex characters long, event topics 64.
func (d *Decoder) MethodIDs() map[string]string {
	ids := make(map[string]string, len(d.methods)+len(d.events))
	for key, entry := range d.methods {
		ids[key] = entry.Name
	}
	for key, entry := range d.events {
		ids[key] = entry.Name
	}
	return ids
}

// Method returns the function registered for the first 4 bytes of id.
func (d *Decoder) Method(id []byte) (abi.Entry, bool) {
	if len(id) < 4 {
		return abi.Entry{}, false
	}
	entry, ok := d.methods[hex.EncodeToString(id[:4])]
	return entry, ok
}

// Event returns the event registered for a topic.
func (d *Decoder) Event(topic []byte) (abi.Entry, bool) {
	entry, ok := d.events[hex.EncodeToString(topic)]
	return entry, ok
}

func (d *Decoder) index(kind abi.EntryType) map[string]abi.Entry {
	if kind == abi.Function {
		return d.methods
	}
	return d.events
}

func identity(entry abi.Entry) string {
	return string(entry.Type) + " " + entry.Sig()
}

// DecodedMethod is decoded call data.
type DecodedMethod struct {
	Name   string      `json:"name"`
	Params []abi.Param `json:"params"`
}

// Map indexes the params by name.
func (m *DecodedMethod) Map() map[string]abi.Value {
	return abi.ParamMap(m.Params)
}

// DecodeMethod decodes call data: a 4 byte selector followed by the encoded
// arguments. Data shorter than a selector, or with an unregistered selector,
// is not decoded and yields nil without an error.
//
// DecodeMethod 解码调用数据。未知的选择器不是错误，返回 nil。
func (d *Decoder) DecodeMethod(data []byte) (*DecodedMethod, error) {
	method, ok := d.Method(data)
	if !ok {
		return nil, nil
	}
	params, err := method.Inputs.UnpackParams(data[4:])
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", method.Sig(), err)
	}
	return &DecodedMethod{Name: method.Name, Params: params}, nil
}

// DecodeMethodHex is DecodeMethod for hex input, with or without 0x prefix.
func (d *Decoder) DecodeMethodHex(input string) (*DecodedMethod, error) {
	data, err := hexutil.Decode(input)
	if err != nil {
		return nil, fmt.Errorf("invalid call data: %w", err)
	}
	return d.DecodeMethod(data)
}
