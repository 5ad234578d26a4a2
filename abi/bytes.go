package abi

import (
	"reflect"

	"abicodec/util"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// BytesType handles dynamic bytes values.
type BytesType struct{}

// StringType handles UTF-8 string values. It shares the bytes wire format.
type StringType struct{}

var (
	_ Type = (*BytesType)(nil)
	_ Type = (*StringType)(nil)
)

var (
	// Bytes is the dynamic bytes handler.
	Bytes = &BytesType{}

	// String is the string handler.
	String = &StringType{}
)

func (b *BytesType) Name() string {
	return "bytes"
}

func (b *BytesType) IsDynamic() bool {
	return true
}

func (b *BytesType) Kind() Kind {
	return KindBytes
}

func (b *BytesType) NativeType() reflect.Type {
	return bytesType
}

func (b *BytesType) Decode(data []byte, position int, packed bool) (interface{}, int, error) {
	buf, next, err := decodeByteString(data, position, packed)
	if err != nil {
		return nil, position, err
	}
	out := make([]byte, len(buf))
	copy(out, buf)
	return out, next, nil
}

func (b *BytesType) Encode(value interface{}, packed bool) ([]byte, error) {
	v, ok := value.([]byte)
	if !ok {
		return nil, wrapShape(value, b)
	}
	return encodeByteString(v, packed)
}

func (s *StringType) Name() string {
	return "string"
}

func (s *StringType) IsDynamic() bool {
	return true
}

func (s *StringType) Kind() Kind {
	return KindString
}

func (s *StringType) NativeType() reflect.Type {
	return stringType
}

func (s *StringType) Decode(data []byte, position int, packed bool) (interface{}, int, error) {
	buf, next, err := decodeByteString(data, position, packed)
	if err != nil {
		return nil, position, err
	}
	return string(buf), next, nil
}

func (s *StringType) Encode(value interface{}, packed bool) ([]byte, error) {
	v, ok := value.(string)
	if !ok {
		return nil, wrapShape(value, s)
	}
	return encodeByteString([]byte(v), packed)
}

func decodeByteString(data []byte, position int, packed bool) ([]byte, int, error) {
	l, next, err := DecodeUInt(data, position, packed)
	if err != nil {
		return nil, position, errors.Wrap(err, "failed to decode length")
	}
	if !l.IsUint64() || l.Uint64() > uint64(len(data)) {
		return nil, position, errors.Wrapf(ErrTruncated, "byte string length %s exceeds buffer", l.ToBig().String())
	}
	n := int(l.Uint64())
	width := n
	if !packed {
		width = (n + WordSize - 1) / WordSize * WordSize
	}
	buf, err := readBytes(data, next, width)
	if err != nil {
		return nil, position, err
	}
	return buf[:n], next + width, nil
}

func encodeByteString(v []byte, packed bool) ([]byte, error) {
	l, err := EncodeUInt(uint256.NewInt(uint64(len(v))), packed)
	if err != nil {
		return nil, err
	}
	if packed {
		return util.Concat(l, v), nil
	}
	return util.Concat(l, util.PadRight(v, WordSize)), nil
}
