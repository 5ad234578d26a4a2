package abi

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

var bigIntType = reflect.TypeOf((*big.Int)(nil))

// IntType handles two's complement int<M> values.
type IntType struct {
	bits int
}

var _ Type = (*IntType)(nil)

// NewInt returns the handler for int<bits>. It panics if bits is not a
// valid integer width.
func NewInt(bits int) *IntType {
	if !validIntBits(bits) {
		panic(fmt.Sprintf("invalid int width %d", bits))
	}
	return &IntType{
		bits: bits,
	}
}

func (i *IntType) Name() string {
	return fmt.Sprintf("int%d", i.bits)
}

func (i *IntType) IsDynamic() bool {
	return false
}

func (i *IntType) Kind() Kind {
	return KindInt
}

func (i *IntType) NativeType() reflect.Type {
	return bigIntType
}

func (i *IntType) Width(packed bool) int {
	if packed {
		return i.bits / 8
	}
	return WordSize
}

func (i *IntType) Decode(data []byte, position int, packed bool) (interface{}, int, error) {
	width := i.Width(packed)
	buf, err := readBytes(data, position, width)
	if err != nil {
		return nil, position, err
	}

	var word [WordSize]byte
	if buf[0]&0x80 != 0 {
		for j := 0; j < WordSize-width; j++ {
			word[j] = 0xff
		}
	}
	copy(word[WordSize-width:], buf)

	val := new(uint256.Int).SetBytes(word[:])
	var out *big.Int
	if word[0]&0x80 != 0 {
		out = new(big.Int).Neg(new(uint256.Int).Neg(val).ToBig())
	} else {
		out = val.ToBig()
	}
	if !fitsSigned(out, i.bits) {
		return nil, position, errors.Wrapf(ErrValueOutOfRange, "%s at position %d", i.Name(), position)
	}
	return out, position + width, nil
}

func (i *IntType) Encode(value interface{}, packed bool) ([]byte, error) {
	val, err := toBigInt(value)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot encode %T as %s", value, i.Name())
	}
	if !fitsSigned(val, i.bits) {
		return nil, errors.Wrapf(ErrValueOutOfRange, "%s does not fit %s", val.String(), i.Name())
	}

	abs, _ := uint256.FromBig(new(big.Int).Abs(val))
	if val.Sign() < 0 {
		abs.Neg(abs)
	}
	word := abs.Bytes32()
	out := make([]byte, i.Width(packed))
	copy(out, word[WordSize-len(out):])
	return out, nil
}

// fitsSigned reports whether -2^(bits-1) <= v < 2^(bits-1).
func fitsSigned(v *big.Int, bits int) bool {
	if v.Sign() >= 0 {
		return v.BitLen() <= bits-1
	}
	// -v-1 is non-negative for negative v
	mag := new(big.Int).Neg(v)
	mag.Sub(mag, big.NewInt(1))
	return mag.BitLen() <= bits-1
}

func toBigInt(value interface{}) (*big.Int, error) {
	switch v := value.(type) {
	case *big.Int:
		if v == nil {
			return nil, ErrEncodingShape
		}
		return v, nil
	case big.Int:
		return &v, nil
	case *uint256.Int:
		if v == nil {
			return nil, ErrEncodingShape
		}
		return v.ToBig(), nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return big.NewInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return new(big.Int).SetUint64(rv.Uint()), nil
	default:
		return nil, ErrEncodingShape
	}
}
