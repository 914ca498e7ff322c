// Copyright 2017 The go-ethereum Authors
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
	"math/big"

	"github.com/holiman/uint256"
	"github.com/sunyihoo/abi-decoder/common"
)

var (
	// MaxUint256 is the maximum value that can be represented by a uint256.
	// MaxUint256 是 uint256 可以表示的最大值。
	MaxUint256 = new(big.Int).Sub(new(big.Int).Lsh(common.Big1, 256), common.Big1)
	// MaxInt256 is the maximum value that can be represented by a int256.
	// MaxInt256 是 int256 可以表示的最大值。
	MaxInt256 = new(big.Int).Sub(new(big.Int).Lsh(common.Big1, 255), common.Big1)
)

// decoder walks a head/tail encoded buffer. Every decoded value is charged
// against budget so that offsets aliasing the same region cannot make the
// output grow faster than the input.
type decoder struct {
	budget    int
	zeroWidth int // remaining zero-width values, which read no bytes
}

func newDecoder(data []byte, types []*Type) *decoder {
	depth := 0
	for _, t := range types {
		if d := t.depth(); d > depth {
			depth = d
		}
	}
	return &decoder{
		budget:    (len(data)/32 + 1) * (depth + 1),
		zeroWidth: maxZeroWidthElems,
	}
}

// UnpackValues decodes a head/tail encoded sequence of the given types.
// UnpackValues 按照 ABI 规范解码给定类型序列的数据。
func UnpackValues(types []Type, data []byte) ([]Value, error) {
	ptrs := make([]*Type, len(types))
	for i := range types {
		ptrs[i] = &types[i]
	}
	return newDecoder(data, ptrs).sequence(ptrs, data, 0)
}

// sequence decodes types laid out head/tail in buf; base is the absolute
// position of buf in the outermost buffer and is only used for error reports.
func (d *decoder) sequence(types []*Type, buf []byte, base int) ([]Value, error) {
	out := make([]Value, 0, len(types))
	head := 0
	for _, t := range types {
		v, err := d.at(t, buf, base, head)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
		head += t.headSize
	}
	return out, nil
}

// repeat decodes count consecutive elements of t laid out head/tail in buf.
func (d *decoder) repeat(t *Type, count int, buf []byte, base int) ([]Value, error) {
	out := make([]Value, 0, count)
	for i := 0; i < count; i++ {
		v, err := d.at(t, buf, base, i*t.headSize)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// at decodes the value of type t whose head slot starts at pos in buf.
func (d *decoder) at(t *Type, buf []byte, base, pos int) (Value, error) {
	budget := &d.budget
	if t.headSize == 0 {
		budget = &d.zeroWidth
	}
	if *budget--; *budget < 0 {
		return Value{}, malformed(t, base+pos, errBudgetExceeded)
	}
	if pos+t.headSize > len(buf) {
		return Value{}, malformed(t, base+pos, errShortBuffer)
	}
	if !t.dynamic {
		return d.static(t, buf[pos:pos+t.headSize], base+pos)
	}
	offset, err := readSize(buf[pos : pos+32])
	if err != nil || offset > len(buf) {
		return Value{}, malformed(t, base+pos, errOffsetRange)
	}
	payload, pbase := buf[offset:], base+offset

	switch t.T {
	case StringTy, BytesTy:
		if len(payload) < 32 {
			return Value{}, malformed(t, pbase, errShortBuffer)
		}
		length, err := readSize(payload[:32])
		if err != nil || length > len(payload)-32 {
			return Value{}, malformed(t, pbase, errLengthRange)
		}
		content := payload[32 : 32+length]
		if t.T == StringTy {
			return Value{Kind: StringValue, Str: string(content)}, nil
		}
		return Value{Kind: BytesValue, Bytes: common.CopyBytes(content)}, nil

	case SliceTy:
		if len(payload) < 32 {
			return Value{}, malformed(t, pbase, errShortBuffer)
		}
		count, err := readSize(payload[:32])
		if err != nil || count > d.maxElems(t.Elem, len(payload)-32) {
			return Value{}, malformed(t, pbase, errCountRange)
		}
		elems, err := d.repeat(t.Elem, count, payload[32:], pbase+32)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: ListValue, List: elems}, nil

	case ArrayTy:
		elems, err := d.repeat(t.Elem, t.Size, payload, pbase)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: ListValue, List: elems}, nil

	case TupleTy:
		members, err := d.sequence(t.TupleElems, payload, pbase)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: ListValue, List: members}, nil

	default:
		return Value{}, fmt.Errorf("abi: unknown dynamic type %v", t.T)
	}
}

// static decodes a value of static type t occupying exactly buf.
func (d *decoder) static(t *Type, buf []byte, base int) (Value, error) {
	switch t.T {
	case ArrayTy:
		elems, err := d.repeat(t.Elem, t.Size, buf, base)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: ListValue, List: elems}, nil
	case TupleTy:
		members, err := d.sequence(t.TupleElems, buf, base)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: ListValue, List: members}, nil
	default:
		v, err := readWord(t, buf)
		if err != nil {
			return Value{}, malformed(t, base, err)
		}
		return v, nil
	}
}

// readWord decodes a single-word elementary value.
func readWord(t *Type, word []byte) (Value, error) {
	switch t.T {
	case IntTy, UintTy:
		return Value{Kind: IntValue, Int: ReadInteger(*t, word)}, nil
	case BoolTy:
		return Value{Kind: BoolValue, Bool: readBool(word)}, nil
	case AddressTy:
		return Value{Kind: AddressValue, Address: common.BytesToAddress(word[12:32])}, nil
	case FixedBytesTy:
		return Value{Kind: BytesValue, Bytes: common.CopyBytes(word[:t.Size])}, nil
	case FunctionTy:
		fn := readFunctionType(word)
		return Value{Kind: BytesValue, Bytes: fn[:]}, nil
	default:
		return Value{}, fmt.Errorf("abi: unknown type %v", t.T)
	}
}

// ReadInteger reads the integer based on its kind and width. Bits above the
// width are ignored: unsigned values are masked to it and signed values are
// sign extended from it.
// ReadInteger 根据整数类型读取整数并返回适当的值。
func ReadInteger(typ Type, b []byte) *big.Int {
	var word uint256.Int
	word.SetBytes32(b)

	if typ.Size < 256 {
		if typ.T == UintTy {
			var mask uint256.Int
			mask.Lsh(uint256.NewInt(1), uint(typ.Size))
			mask.SubUint64(&mask, 1)
			word.And(&word, &mask)
		} else {
			word.ExtendSign(&word, uint256.NewInt(uint64(typ.Size/8-1)))
		}
	}
	if typ.T == UintTy {
		return word.ToBig()
	}
	// On EVM, a word with bit 255 set is negative.
	if word.Sign() < 0 {
		var abs uint256.Int
		abs.Neg(&word)
		return new(big.Int).Neg(abs.ToBig())
	}
	return word.ToBig()
}

// readBool reads a bool. Any non-zero word is true.
// readBool 读取布尔值。
func readBool(word []byte) bool {
	for _, b := range word {
		if b != 0 {
			return true
		}
	}
	return false
}

// A function type is simply the address with the function selection signature
// at the end, presented as a 24-byte array. The padding is not inspected.
// 函数类型仅仅是地址后面跟有函数选择签名。
func readFunctionType(word []byte) (funcTy [24]byte) {
	copy(funcTy[:], word[0:24])
	return funcTy
}

// readSize interprets a word as an offset, length or count that must fit in an int.
func readSize(word []byte) (int, error) {
	var n uint256.Int
	n.SetBytes32(word)
	if !n.IsUint64() || n.Uint64() > uint64(maxSize) {
		return 0, errOffsetRange
	}
	return int(n.Uint64()), nil
}

// maxElems returns the largest element count of elem that fits in n bytes.
// Zero-width elements occupy no space and draw on their own allowance.
func (d *decoder) maxElems(elem *Type, n int) int {
	if elem.headSize == 0 {
		return d.zeroWidth
	}
	return n / elem.headSize
}

// maxZeroWidthElems bounds the number of zero-width values in one decode.
const maxZeroWidthElems = 1 << 16

// maxSize bounds offsets and lengths well below int overflow on 32-bit platforms.
const maxSize = 1<<31 - 1
