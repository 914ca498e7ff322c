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

package abi

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/sunyihoo/abi-decoder/common/lru"
)

// Type enumerator
const (
	IntTy byte = iota
	UintTy
	BoolTy
	StringTy
	SliceTy
	ArrayTy
	TupleTy
	AddressTy
	FixedBytesTy
	BytesTy
	FunctionTy
)

// Type is the reflection of the supported argument type.
// Type 是对支持的参数类型的描述。
type Type struct {
	Elem *Type // 嵌套类型（如数组或切片的元素类型）
	Size int   // 类型的大小（例如 uint256 的 256，bytes4 的 4，[3]T 的 3）
	T    byte  // Our own type checking

	stringKind   string // canonical form used when deriving signatures
	declared     string // type string as it appeared in the ABI
	internalType string

	// Tuple relative fields
	TupleRawName  string   // Raw struct name defined in source code, may be empty.
	TupleElems    []*Type  // Type information of all tuple fields
	TupleRawNames []string // Raw field name of all tuple fields

	dynamic  bool // computed once in NewType
	headSize int  // bytes occupied in the head of an enclosing sequence
}

var (
	// typeRegex parses the abi base types
	// typeRegex 解析 ABI 基础类型
	typeRegex = regexp.MustCompile(`^([a-zA-Z]+)([0-9]*)$`)

	// typeCache memoises parsed types that carry no components.
	typeCache = lru.NewCache[typeCacheKey, Type](512)
)

type typeCacheKey struct {
	t, internalType string
}

// NewType creates a new reflection type of abi type given in t.
// NewType 根据给定的 t 创建一个新的 ABI 类型描述。
func NewType(t string, internalType string, components []ArgumentMarshaling) (Type, error) {
	if len(components) == 0 {
		key := typeCacheKey{t, internalType}
		if typ, ok := typeCache.Get(key); ok {
			return typ, nil
		}
		typ, err := newType(t, internalType, nil)
		if err != nil {
			return Type{}, err
		}
		typeCache.Add(key, typ)
		return typ, nil
	}
	return newType(t, internalType, components)
}

func newType(t string, internalType string, components []ArgumentMarshaling) (typ Type, err error) {
	if t == "" {
		return Type{}, &TypeParseError{Type: t, Reason: "empty type"}
	}
	typ.declared = t
	typ.internalType = internalType

	// Array suffixes are peeled right-to-left: uint256[2][] is a slice of uint256[2].
	// 数组后缀从右向左解析
	if strings.HasSuffix(t, "]") {
		i := strings.LastIndex(t, "[")
		if i <= 0 {
			return Type{}, &TypeParseError{Type: t, Reason: "unbalanced array brackets"}
		}
		subInternal := internalType
		if j := strings.LastIndex(internalType, "["); j != -1 {
			subInternal = subInternal[:j]
		}
		embeddedType, err := NewType(t[:i], subInternal, components)
		if err != nil {
			return Type{}, err
		}
		typ.Elem = &embeddedType
		if inner := t[i+1 : len(t)-1]; inner == "" {
			typ.T = SliceTy
			typ.stringKind = embeddedType.stringKind + "[]"
		} else {
			size, err := parseSize(inner)
			if err != nil || size == 0 {
				return Type{}, &TypeParseError{Type: t, Reason: fmt.Sprintf("invalid array length %q", inner)}
			}
			typ.T = ArrayTy
			typ.Size = size
			typ.stringKind = embeddedType.stringKind + "[" + strconv.Itoa(size) + "]"
		}
		typ.finalize()
		return typ, nil
	}
	if strings.ContainsAny(t, "[]") {
		return Type{}, &TypeParseError{Type: t, Reason: "unbalanced array brackets"}
	}

	matches := typeRegex.FindStringSubmatch(t)
	if matches == nil {
		return Type{}, &TypeParseError{Type: t, Reason: "unrecognised type"}
	}
	base, sizeStr := matches[1], matches[2]
	var varSize int
	if sizeStr != "" {
		if varSize, err = parseSize(sizeStr); err != nil {
			return Type{}, &TypeParseError{Type: t, Reason: err.Error()}
		}
	}
	noSize := func() error {
		if sizeStr != "" {
			return &TypeParseError{Type: t, Reason: "unexpected size suffix"}
		}
		return nil
	}
	switch base {
	case "int", "uint":
		if sizeStr == "" {
			varSize = 256
		}
		if varSize == 0 || varSize > 256 || varSize%8 != 0 {
			return Type{}, &TypeParseError{Type: t, Reason: "integer width must be a multiple of 8 in [8, 256]"}
		}
		typ.Size = varSize
		typ.T = IntTy
		if base == "uint" {
			typ.T = UintTy
		}
		typ.stringKind = base + strconv.Itoa(varSize)
	case "bool":
		if err := noSize(); err != nil {
			return Type{}, err
		}
		typ.T = BoolTy
		typ.stringKind = base
	case "address":
		if err := noSize(); err != nil {
			return Type{}, err
		}
		typ.Size = 20
		typ.T = AddressTy
		typ.stringKind = base
	case "string":
		if err := noSize(); err != nil {
			return Type{}, err
		}
		typ.T = StringTy
		typ.stringKind = base
	case "byte":
		if err := noSize(); err != nil {
			return Type{}, err
		}
		typ.T = FixedBytesTy
		typ.Size = 1
		typ.stringKind = "bytes1"
	case "bytes":
		switch {
		case sizeStr == "":
			typ.T = BytesTy
		case varSize >= 1 && varSize <= 32:
			typ.T = FixedBytesTy
			typ.Size = varSize
		default:
			return Type{}, &TypeParseError{Type: t, Reason: "fixed bytes width must be in [1, 32]"}
		}
		typ.stringKind = base + sizeStr
	case "function":
		if err := noSize(); err != nil {
			return Type{}, err
		}
		typ.T = FunctionTy
		typ.Size = 24
		typ.stringKind = base
	case "tuple":
		if err := noSize(); err != nil {
			return Type{}, err
		}
		var (
			elems []*Type
			names []string
			parts []string
		)
		for _, c := range components {
			cType, err := NewType(c.Type, c.InternalType, c.Components)
			if err != nil {
				return Type{}, err
			}
			elems = append(elems, &cType)
			names = append(names, c.Name)
			parts = append(parts, cType.stringKind)
		}
		typ.T = TupleTy
		typ.TupleElems = elems
		typ.TupleRawNames = names
		typ.stringKind = "(" + strings.Join(parts, ",") + ")"

		const structPrefix = "struct "
		// 从中我们可以获取用户在源代码中定义的结构体名称。
		if strings.HasPrefix(internalType, structPrefix) {
			typ.TupleRawName = strings.ReplaceAll(internalType[len(structPrefix):], ".", "")
		}
	default:
		// Older compilers emit the contract name itself as the type.
		if strings.HasPrefix(internalType, "contract ") {
			typ.Size = 20
			typ.T = AddressTy
			typ.stringKind = "address"
		} else {
			return Type{}, &TypeParseError{Type: t, Reason: "unsupported type"}
		}
	}
	typ.finalize()
	return typ, nil
}

// parseSize parses a decimal width or array length written without sign or
// leading zeros, so that every accepted type string has one canonical form.
func parseSize(s string) (int, error) {
	if s == "" || s[0] < '0' || s[0] > '9' || (len(s) > 1 && s[0] == '0') {
		return 0, fmt.Errorf("non-canonical size %q", s)
	}
	return strconv.Atoi(s)
}

// finalize caches the dynamic flag and head size once the children are known.
func (t *Type) finalize() {
	switch t.T {
	case StringTy, BytesTy, SliceTy:
		t.dynamic = true
	case ArrayTy:
		t.dynamic = t.Elem.dynamic
	case TupleTy:
		for _, elem := range t.TupleElems {
			if elem.dynamic {
				t.dynamic = true
				break
			}
		}
	}
	switch {
	case t.dynamic:
		t.headSize = 32
	case t.T == ArrayTy:
		t.headSize = t.Size * t.Elem.headSize
	case t.T == TupleTy:
		for _, elem := range t.TupleElems {
			t.headSize += elem.headSize
		}
	default:
		t.headSize = 32
	}
}

// String returns the canonical type name used in signatures, e.g. "uint256"
// for "uint" and "(address,uint256)[]" for a tuple slice.
func (t Type) String() (out string) {
	return t.stringKind
}

// Declared returns the type string as written in the ABI ("tuple", "uint").
func (t Type) Declared() string {
	return t.declared
}

// InternalType returns the compiler-provided internalType annotation, if any.
func (t Type) InternalType() string {
	return t.internalType
}

// IsDynamic reports whether values of t are stored in the tail of an encoding.
func (t Type) IsDynamic() bool {
	return t.dynamic
}

// HeadSize returns the number of bytes t occupies in the head of a sequence.
func (t Type) HeadSize() int {
	return t.headSize
}

// depth returns the nesting depth of t; scalars have depth 1.
func (t Type) depth() int {
	switch t.T {
	case SliceTy, ArrayTy:
		return 1 + t.Elem.depth()
	case TupleTy:
		deepest := 0
		for _, elem := range t.TupleElems {
			if d := elem.depth(); d > deepest {
				deepest = d
			}
		}
		return 1 + deepest
	}
	return 1
}

// components rebuilds the JSON components list of a tuple (or tuple array) type.
func (t Type) components() []ArgumentMarshaling {
	base := &t
	for base.T == SliceTy || base.T == ArrayTy {
		base = base.Elem
	}
	if base.T != TupleTy {
		return nil
	}
	out := make([]ArgumentMarshaling, len(base.TupleElems))
	for i, elem := range base.TupleElems {
		out[i] = ArgumentMarshaling{
			Name:         base.TupleRawNames[i],
			Type:         elem.declared,
			InternalType: elem.internalType,
			Components:   elem.components(),
		}
	}
	return out
}
