package abi

import (
	"fmt"
	"reflect"
)

// WordSize is the width in bytes of an unpacked ABI word.
const WordSize = 32

// Kind enumerates the value kinds an ABI type can decode to.
type Kind int

const (
	KindBool Kind = iota
	KindUInt
	KindInt
	KindAddress
	KindFixedBytes
	KindBytes
	KindString
	KindArray
	KindTuple
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindUInt:
		return "uint"
	case KindInt:
		return "int"
	case KindAddress:
		return "address"
	case KindFixedBytes:
		return "fixed_bytes"
	case KindBytes:
		return "bytes"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindTuple:
		return "tuple"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Type is the capability shared by every ABI type handler.
type Type interface {
	// Name returns the canonical ABI name of the type, e.g. uint256[].
	Name() string

	// IsDynamic reports whether the encoded length of the type depends on
	// the value being encoded.
	IsDynamic() bool

	// Kind returns the kind of value the type decodes to.
	Kind() Kind

	// NativeType returns the Go type of values returned by Decode.
	NativeType() reflect.Type

	// Decode reads a value starting at position in data. It returns the
	// value and the position immediately after the consumed bytes.
	Decode(data []byte, position int, packed bool) (interface{}, int, error)

	// Encode returns the encoding of value.
	Encode(value interface{}, packed bool) ([]byte, error)
}

var (
	boolType       = reflect.TypeOf(false)
	bytesType      = reflect.TypeOf([]byte(nil))
	stringType     = reflect.TypeOf("")
	addressType    = reflect.TypeOf(Address{})
	interfacesType = reflect.TypeOf([]interface{}(nil))
)

// readBytes returns the n bytes starting at position in data.
func readBytes(data []byte, position int, n int) ([]byte, error) {
	if position < 0 || n < 0 || position > len(data) || len(data)-position < n {
		return nil, wrapTruncated(len(data), position, n)
	}
	return data[position : position+n], nil
}
