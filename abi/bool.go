package abi

import (
	"reflect"

	"github.com/pkg/errors"
)

// BoolType handles bool values. Booleans share the uint8 wire format.
type BoolType struct{}

var _ Type = (*BoolType)(nil)

// Bool is the bool handler.
var Bool = &BoolType{}

var boolWord = NewUInt(8)

func (b *BoolType) Name() string {
	return "bool"
}

func (b *BoolType) IsDynamic() bool {
	return false
}

func (b *BoolType) Kind() Kind {
	return KindBool
}

func (b *BoolType) NativeType() reflect.Type {
	return boolType
}

func (b *BoolType) Decode(data []byte, position int, packed bool) (interface{}, int, error) {
	val, next, err := boolWord.DecodeUInt(data, position, packed)
	if err != nil {
		return nil, position, errors.Wrap(err, "failed to decode bool")
	}
	if !val.IsUint64() || val.Uint64() > 1 {
		return nil, position, errors.Errorf("invalid boolean value: %s", val.Hex())
	}
	return val.Uint64() == 1, next, nil
}

func (b *BoolType) Encode(value interface{}, packed bool) ([]byte, error) {
	v, ok := value.(bool)
	if !ok {
		return nil, wrapShape(value, b)
	}
	var n uint64
	if v {
		n = 1
	}
	return boolWord.Encode(n, packed)
}
