package abi

import (
	"encoding/hex"
	"reflect"
	"strings"

	"abicodec/util"

	"github.com/pkg/errors"
)

const AddressLength = 20

// Address is a 20-byte account address.
type Address [AddressLength]byte

// HexToAddress parses a hex address, with or without a 0x prefix.
func HexToAddress(s string) (Address, error) {
	var a Address
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return a, errors.Wrap(err, "invalid address hex")
	}
	if len(b) != AddressLength {
		return a, errors.Errorf("invalid address length %d", len(b))
	}
	copy(a[:], b)
	return a, nil
}

func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// AddressType handles address values.
type AddressType struct{}

var _ Type = (*AddressType)(nil)

// AddressT is the address handler.
var AddressT = &AddressType{}

func (a *AddressType) Name() string {
	return "address"
}

func (a *AddressType) IsDynamic() bool {
	return false
}

func (a *AddressType) Kind() Kind {
	return KindAddress
}

func (a *AddressType) NativeType() reflect.Type {
	return addressType
}

func (a *AddressType) Decode(data []byte, position int, packed bool) (interface{}, int, error) {
	width := AddressLength
	if !packed {
		width = WordSize
	}
	buf, err := readBytes(data, position, width)
	if err != nil {
		return nil, position, err
	}
	for _, b := range buf[:width-AddressLength] {
		if b != 0 {
			return nil, position, errors.Errorf("invalid address padding at position %d", position)
		}
	}
	var out Address
	copy(out[:], buf[width-AddressLength:])
	return out, position + width, nil
}

func (a *AddressType) Encode(value interface{}, packed bool) ([]byte, error) {
	var addr Address
	switch v := value.(type) {
	case Address:
		addr = v
	case *Address:
		if v == nil {
			return nil, wrapShape(value, a)
		}
		addr = *v
	case [AddressLength]byte:
		addr = v
	case []byte:
		if len(v) != AddressLength {
			return nil, wrapShape(value, a)
		}
		copy(addr[:], v)
	default:
		return nil, wrapShape(value, a)
	}

	out := make([]byte, AddressLength)
	copy(out, addr[:])
	if packed {
		return out, nil
	}
	return util.PadLeft(out, WordSize), nil
}
