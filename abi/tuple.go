package abi

import (
	"reflect"
	"strings"

	"abicodec/util"

	"github.com/pkg/errors"
)

// TupleType handles (T1,...,Tn) values. Members are encoded back to back
// in declaration order.
type TupleType struct {
	members []Type
}

var _ Type = (*TupleType)(nil)

func NewTuple(members ...Type) *TupleType {
	for _, m := range members {
		if m == nil {
			panic("tuple member type cannot be nil")
		}
	}
	cp := make([]Type, len(members))
	copy(cp, members)
	return &TupleType{
		members: cp,
	}
}

func (t *TupleType) Name() string {
	names := make([]string, len(t.members))
	for i, m := range t.members {
		names[i] = m.Name()
	}
	return "(" + strings.Join(names, ",") + ")"
}

func (t *TupleType) IsDynamic() bool {
	for _, m := range t.members {
		if m.IsDynamic() {
			return true
		}
	}
	return false
}

func (t *TupleType) Kind() Kind {
	return KindTuple
}

func (t *TupleType) NativeType() reflect.Type {
	return interfacesType
}

// Members returns a copy of the tuple's member types.
func (t *TupleType) Members() []Type {
	cp := make([]Type, len(t.members))
	copy(cp, t.members)
	return cp
}

func (t *TupleType) Decode(data []byte, position int, packed bool) (interface{}, int, error) {
	start := position
	out := make([]interface{}, len(t.members))
	for i, m := range t.members {
		var err error
		out[i], position, err = m.Decode(data, position, packed)
		if err != nil {
			return nil, start, errors.Wrapf(err, "failed to decode member %d of %s", i, t.Name())
		}
	}
	return out, position, nil
}

func (t *TupleType) Encode(value interface{}, packed bool) ([]byte, error) {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, wrapShape(value, t)
	}
	if rv.Len() != len(t.members) {
		return nil, errors.Wrapf(ErrEncodingShape, "%s has %d members, got %d values", t.Name(), len(t.members), rv.Len())
	}

	chunks := make([][]byte, len(t.members))
	for i, m := range t.members {
		enc, err := m.Encode(rv.Index(i).Interface(), packed)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to encode member %d of %s", i, t.Name())
		}
		chunks[i] = enc
	}
	return util.Concat(chunks...), nil
}
