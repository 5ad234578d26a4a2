package abi

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// FixedBytesType handles bytes<N> values, 1 <= N <= 32.
type FixedBytesType struct {
	size int
}

var _ Type = (*FixedBytesType)(nil)

// NewFixedBytes returns the handler for bytes<size>. It panics if size is
// out of range.
func NewFixedBytes(size int) *FixedBytesType {
	if size < 1 || size > WordSize {
		panic(fmt.Sprintf("invalid fixed bytes size %d", size))
	}
	return &FixedBytesType{
		size: size,
	}
}

func (f *FixedBytesType) Name() string {
	return fmt.Sprintf("bytes%d", f.size)
}

func (f *FixedBytesType) IsDynamic() bool {
	return false
}

func (f *FixedBytesType) Kind() Kind {
	return KindFixedBytes
}

func (f *FixedBytesType) NativeType() reflect.Type {
	return bytesType
}

func (f *FixedBytesType) Size() int {
	return f.size
}

func (f *FixedBytesType) Decode(data []byte, position int, packed bool) (interface{}, int, error) {
	width := f.size
	if !packed {
		width = WordSize
	}
	buf, err := readBytes(data, position, width)
	if err != nil {
		return nil, position, err
	}
	out := make([]byte, f.size)
	copy(out, buf)
	return out, position + width, nil
}

func (f *FixedBytesType) Encode(value interface{}, packed bool) ([]byte, error) {
	var in []byte
	switch v := value.(type) {
	case []byte:
		in = v
	default:
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Array || rv.Type().Elem().Kind() != reflect.Uint8 {
			return nil, wrapShape(value, f)
		}
		in = make([]byte, rv.Len())
		reflect.Copy(reflect.ValueOf(in), rv)
	}
	if len(in) != f.size {
		return nil, errors.Wrapf(ErrEncodingShape, "expected %d bytes for %s, got %d", f.size, f.Name(), len(in))
	}

	width := f.size
	if !packed {
		width = WordSize
	}
	out := make([]byte, width)
	copy(out, in)
	return out, nil
}
