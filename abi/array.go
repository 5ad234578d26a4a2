package abi

import (
	"fmt"
	"math/big"
	"reflect"

	"abicodec/log"
	"abicodec/util"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

const DefaultMaxArrayLen = 64 * 1024

// ArrayConfig tunes how an ArrayType decodes.
type ArrayConfig struct {
	// MaxLen is the maximum array length Decode will accept before
	// stopping early. Values <= 0 select DefaultMaxArrayLen.
	MaxLen int

	// LenientBool enables legacy element placement. A decoded element
	// whose Go type does not match the slot is converted if possible.
	// Failing that, integers placed into bool slots store value != 0 and
	// anything else placed into a bool slot stores false without an
	// error. Placement failures into non-bool slots are always fatal.
	LenientBool bool
}

var DefaultArrayConfig = ArrayConfig{
	MaxLen: DefaultMaxArrayLen,
}

// ArrayType handles dynamic T[] values. It owns its element type.
type ArrayType struct {
	elem   Type
	target reflect.Type
	cfg    ArrayConfig
	lgr    log.Logger
}

var _ Type = (*ArrayType)(nil)

// NewArray returns the handler for elem[] using DefaultArrayConfig.
func NewArray(elem Type) *ArrayType {
	return NewConfiguredArray(elem, DefaultArrayConfig)
}

// NewConfiguredArray returns the handler for elem[] using cfg.
func NewConfiguredArray(elem Type, cfg ArrayConfig) *ArrayType {
	if elem == nil {
		panic("array element type cannot be nil")
	}
	if cfg.MaxLen <= 0 {
		cfg.MaxLen = DefaultMaxArrayLen
	}

	// bool slots hold a plain bool regardless of the element's declared
	// native type
	target := elem.NativeType()
	if elem.Kind() == KindBool {
		target = boolType
	}

	return &ArrayType{
		elem:   elem,
		target: target,
		cfg:    cfg,
		lgr:    log.WithModule("abi-array"),
	}
}

func (a *ArrayType) Name() string {
	return a.elem.Name() + "[]"
}

func (a *ArrayType) IsDynamic() bool {
	return true
}

func (a *ArrayType) Kind() Kind {
	return KindArray
}

func (a *ArrayType) NativeType() reflect.Type {
	return reflect.SliceOf(a.target)
}

// Elem returns the element type.
func (a *ArrayType) Elem() Type {
	return a.elem
}

func (a *ArrayType) Decode(data []byte, position int, packed bool) (interface{}, int, error) {
	start := position
	length, position, err := DecodeUInt(data, position, packed)
	if err != nil {
		return nil, start, errors.Wrapf(err, "failed to decode %s length", a.Name())
	}
	if !length.IsUint64() || length.Uint64() > uint64(a.cfg.MaxLen) {
		return nil, start, errors.Wrapf(ErrArrayTooLong, "%s length %s exceeds maximum %d", a.Name(), length.ToBig().String(), a.cfg.MaxLen)
	}

	n := int(length.Uint64())
	out := reflect.MakeSlice(reflect.SliceOf(a.target), n, n)
	for i := 0; i < n; i++ {
		var elem interface{}
		elem, position, err = a.elem.Decode(data, position, packed)
		if err != nil {
			return nil, start, errors.Wrapf(err, "failed to decode element %d of %s", i, a.Name())
		}
		if err := a.place(out.Index(i), elem, i); err != nil {
			return nil, start, err
		}
	}

	if log.GetLevel() <= log.LevelTrace {
		a.lgr.Trace("decoded array", "type", a.Name(), "len", n, "consumed", position-start)
	}
	return out.Interface(), position, nil
}

func (a *ArrayType) Encode(value interface{}, packed bool) ([]byte, error) {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, wrapShape(value, a)
	}

	n := rv.Len()
	chunks := make([][]byte, 0, n+1)
	lenWord, err := EncodeUInt(uint256.NewInt(uint64(n)), packed)
	if err != nil {
		return nil, err
	}
	chunks = append(chunks, lenWord)
	for i := 0; i < n; i++ {
		enc, err := a.elem.Encode(rv.Index(i).Interface(), packed)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to encode element %d of %s", i, a.Name())
		}
		chunks = append(chunks, enc)
	}
	return util.Concat(chunks...), nil
}

func (a *ArrayType) place(slot reflect.Value, elem interface{}, i int) error {
	if elem != nil {
		v := reflect.ValueOf(elem)
		if v.Type().AssignableTo(a.target) {
			slot.Set(v)
			return nil
		}
	}
	if !a.cfg.LenientBool {
		return a.mismatch(elem, i)
	}

	if elem != nil {
		v := reflect.ValueOf(elem)
		if convertible(v, a.target) {
			slot.Set(v.Convert(a.target))
			return nil
		}
	}
	if a.target.Kind() != reflect.Bool {
		return a.mismatch(elem, i)
	}
	if n, ok := integerValue(elem); ok {
		slot.SetBool(n.Sign() != 0)
		return nil
	}

	a.lgr.Warn("storing false for undecodable bool element", "type", a.Name(), "index", i, "got", fmt.Sprintf("%T", elem))
	slot.SetBool(false)
	return nil
}

func (a *ArrayType) mismatch(elem interface{}, i int) error {
	return errors.Wrapf(ErrElementMismatch, "element %d of %s: got %T, want %s", i, a.Name(), elem, a.target)
}

// convertible reports whether v can be converted to the to type without
// panicking or reinterpreting its value. Slice to array conversions must
// match in length, and integers never convert to strings as runes.
func convertible(v reflect.Value, to reflect.Type) bool {
	if !v.Type().ConvertibleTo(to) {
		return false
	}
	if v.Kind() == reflect.Slice {
		switch to.Kind() {
		case reflect.Ptr:
			return false
		case reflect.Array:
			return v.Len() == to.Len()
		}
	}
	if to.Kind() == reflect.String {
		switch v.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return false
		}
	}
	return true
}

// integerValue interprets v as an integer the way legacy bool placement
// does: Go integer kinds, big and uint256 integers, and decimal or 0x
// prefixed strings.
func integerValue(v interface{}) (*big.Int, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case *big.Int:
		if t == nil {
			return nil, false
		}
		return t, true
	case *uint256.Int:
		if t == nil {
			return nil, false
		}
		return t.ToBig(), true
	case string:
		return new(big.Int).SetString(t, 0)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return big.NewInt(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return new(big.Int).SetUint64(rv.Uint()), true
	default:
		return nil, false
	}
}
