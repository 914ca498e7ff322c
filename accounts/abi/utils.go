// Copyright 2022 The go-ethereum Authors
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

import "fmt"

// ResolveNameConflict returns the next available name for a given thing.
// Name conflicts are resolved by adding a number suffix. e.g. if "send" and
// "send0" are taken, ResolveNameConflict returns "send1" for input "send".
// ResolveNameConflict 返回给定名称的下一个可用名称。
func ResolveNameConflict(rawName string, used func(string) bool) string {
	name := rawName
	ok := used(name)
	for idx := 0; ok; idx++ {
		name = fmt.Sprintf("%s%d", rawName, idx)
		ok = used(name)
	}
	return name
}

// ParamMap indexes decoded params by name. Unnamed params are keyed "arg"
// and repeated names get a numeric suffix, so no value is lost.
func ParamMap(params []Param) map[string]Value {
	out := make(map[string]Value, len(params))
	for _, p := range params {
		name := p.Name
		if name == "" {
			name = "arg"
		}
		name = ResolveNameConflict(name, func(s string) bool { _, ok := out[s]; return ok })
		out[name] = p.Value
	}
	return out
}
