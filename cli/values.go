package cli

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"strings"

	"abicodec/abi"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// ParseJSON decodes raw JSON into a value with the native shape typ
// expects. Integers may be JSON numbers or decimal or 0x strings. Byte
// strings and addresses are 0x hex strings.
func ParseJSON(typ abi.Type, raw string) (interface{}, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, errors.Wrap(err, "invalid JSON value")
	}
	return FromJSON(typ, v)
}

// FromJSON converts a value produced by encoding/json into the native
// shape of typ.
func FromJSON(typ abi.Type, v interface{}) (interface{}, error) {
	switch typ.Kind() {
	case abi.KindBool:
		b, ok := v.(bool)
		if !ok {
			return nil, jsonShapeErr(typ, v)
		}
		return b, nil
	case abi.KindUInt:
		n, err := jsonInteger(typ, v)
		if err != nil {
			return nil, err
		}
		if n.Sign() < 0 {
			return nil, errors.Wrapf(abi.ErrValueOutOfRange, "negative value for %s", typ.Name())
		}
		out, overflow := uint256.FromBig(n)
		if overflow {
			return nil, errors.Wrapf(abi.ErrValueOutOfRange, "value too large for %s", typ.Name())
		}
		return out, nil
	case abi.KindInt:
		n, err := jsonInteger(typ, v)
		if err != nil {
			return nil, err
		}
		return n, nil
	case abi.KindAddress:
		s, ok := v.(string)
		if !ok {
			return nil, jsonShapeErr(typ, v)
		}
		return abi.HexToAddress(s)
	case abi.KindFixedBytes, abi.KindBytes:
		s, ok := v.(string)
		if !ok {
			return nil, jsonShapeErr(typ, v)
		}
		return ParseHex(s)
	case abi.KindString:
		s, ok := v.(string)
		if !ok {
			return nil, jsonShapeErr(typ, v)
		}
		return s, nil
	case abi.KindArray:
		arr, ok := typ.(*abi.ArrayType)
		if !ok {
			return nil, errors.Errorf("cannot convert JSON for custom array type %s", typ.Name())
		}
		items, ok := v.([]interface{})
		if !ok {
			return nil, jsonShapeErr(typ, v)
		}
		out := make([]interface{}, len(items))
		for i, item := range items {
			conv, err := FromJSON(arr.Elem(), item)
			if err != nil {
				return nil, errors.Wrapf(err, "element %d", i)
			}
			out[i] = conv
		}
		return out, nil
	case abi.KindTuple:
		tup, ok := typ.(*abi.TupleType)
		if !ok {
			return nil, errors.Errorf("cannot convert JSON for custom tuple type %s", typ.Name())
		}
		items, ok := v.([]interface{})
		members := tup.Members()
		if !ok || len(items) != len(members) {
			return nil, jsonShapeErr(typ, v)
		}
		out := make([]interface{}, len(items))
		for i, m := range members {
			conv, err := FromJSON(m, items[i])
			if err != nil {
				return nil, errors.Wrapf(err, "member %d", i)
			}
			out[i] = conv
		}
		return out, nil
	default:
		return nil, errors.Errorf("unsupported kind %s", typ.Kind())
	}
}

// ToJSON converts a decoded native value into a shape encoding/json can
// render losslessly.
func ToJSON(v interface{}) interface{} {
	switch t := v.(type) {
	case nil:
		return nil
	case bool, string:
		return t
	case *uint256.Int:
		return t.ToBig().String()
	case *big.Int:
		return t.String()
	case abi.Address:
		return t.String()
	case []byte:
		return "0x" + hex.EncodeToString(t)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		out := make([]interface{}, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = ToJSON(rv.Index(i).Interface())
		}
		return out
	}
	return fmt.Sprint(v)
}

// FormatValue renders a decoded value as compact JSON.
func FormatValue(v interface{}) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(ToJSON(v)); err != nil {
		return fmt.Sprint(v)
	}
	return strings.TrimSpace(buf.String())
}

// ParseHex decodes a hex string with an optional 0x prefix.
func ParseHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "invalid hex")
	}
	return b, nil
}

func jsonInteger(typ abi.Type, v interface{}) (*big.Int, error) {
	var s string
	switch t := v.(type) {
	case json.Number:
		s = t.String()
	case string:
		s = t
	default:
		return nil, jsonShapeErr(typ, v)
	}
	n, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, errors.Errorf("invalid integer %q for %s", s, typ.Name())
	}
	return n, nil
}

func jsonShapeErr(typ abi.Type, v interface{}) error {
	return errors.Wrapf(abi.ErrEncodingShape, "cannot use JSON %T as %s", v, typ.Name())
}
