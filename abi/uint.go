package abi

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

var uint256Type = reflect.TypeOf((*uint256.Int)(nil))

// UInt256 is the shared unsigned integer codec. It encodes array and
// byte-string length words.
var UInt256 = NewUInt(256)

// UIntType handles uint<M> values, 8 <= M <= 256 and M % 8 == 0.
type UIntType struct {
	bits int
}

var _ Type = (*UIntType)(nil)

// NewUInt returns the handler for uint<bits>. It panics if bits is not a
// valid integer width; use Registry.Parse to validate untrusted names.
func NewUInt(bits int) *UIntType {
	if !validIntBits(bits) {
		panic(fmt.Sprintf("invalid uint width %d", bits))
	}
	return &UIntType{
		bits: bits,
	}
}

func (u *UIntType) Name() string {
	return fmt.Sprintf("uint%d", u.bits)
}

func (u *UIntType) IsDynamic() bool {
	return false
}

func (u *UIntType) Kind() Kind {
	return KindUInt
}

func (u *UIntType) NativeType() reflect.Type {
	return uint256Type
}

// Bits returns the declared width of the type.
func (u *UIntType) Bits() int {
	return u.bits
}

// Width returns the number of bytes an encoded value occupies.
func (u *UIntType) Width(packed bool) int {
	if packed {
		return u.bits / 8
	}
	return WordSize
}

func (u *UIntType) Decode(data []byte, position int, packed bool) (interface{}, int, error) {
	return u.DecodeUInt(data, position, packed)
}

func (u *UIntType) Encode(value interface{}, packed bool) ([]byte, error) {
	val, err := toUint256(value)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot encode %T as %s", value, u.Name())
	}
	return u.EncodeUInt(val, packed)
}

// DecodeUInt reads an unsigned integer starting at position.
func (u *UIntType) DecodeUInt(data []byte, position int, packed bool) (*uint256.Int, int, error) {
	width := u.Width(packed)
	buf, err := readBytes(data, position, width)
	if err != nil {
		return nil, position, err
	}
	val := new(uint256.Int).SetBytes(buf)
	if val.BitLen() > u.bits {
		return nil, position, errors.Wrapf(ErrValueOutOfRange, "%s at position %d", u.Name(), position)
	}
	return val, position + width, nil
}

// EncodeUInt returns the big-endian encoding of val, left-padded to a full
// word unless packed.
func (u *UIntType) EncodeUInt(val *uint256.Int, packed bool) ([]byte, error) {
	if val == nil {
		return nil, errors.Wrapf(ErrEncodingShape, "nil value for %s", u.Name())
	}
	if val.BitLen() > u.bits {
		return nil, errors.Wrapf(ErrValueOutOfRange, "%s does not fit %s", val.ToBig().String(), u.Name())
	}
	word := val.Bytes32()
	out := make([]byte, u.Width(packed))
	copy(out, word[WordSize-len(out):])
	return out, nil
}

// DecodeUInt reads a uint256 word using the shared codec.
func DecodeUInt(data []byte, position int, packed bool) (*uint256.Int, int, error) {
	return UInt256.DecodeUInt(data, position, packed)
}

// EncodeUInt encodes val as a uint256 word using the shared codec.
func EncodeUInt(val *uint256.Int, packed bool) ([]byte, error) {
	return UInt256.EncodeUInt(val, packed)
}

func validIntBits(bits int) bool {
	return bits >= 8 && bits <= 256 && bits%8 == 0
}

// toUint256 converts the Go unsigned shapes accepted by UIntType.Encode.
func toUint256(value interface{}) (*uint256.Int, error) {
	switch v := value.(type) {
	case *uint256.Int:
		if v == nil {
			return nil, ErrEncodingShape
		}
		return v, nil
	case uint256.Int:
		return &v, nil
	case *big.Int:
		if v == nil {
			return nil, ErrEncodingShape
		}
		if v.Sign() < 0 {
			return nil, ErrValueOutOfRange
		}
		out, overflow := uint256.FromBig(v)
		if overflow {
			return nil, ErrValueOutOfRange
		}
		return out, nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return uint256.NewInt(rv.Uint()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if rv.Int() < 0 {
			return nil, ErrValueOutOfRange
		}
		return uint256.NewInt(uint64(rv.Int())), nil
	default:
		return nil, ErrEncodingShape
	}
}
