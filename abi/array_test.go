package abi

import (
	"bytes"
	"math/big"
	"reflect"
	"os"
	"testing"

	"abicodec/log"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

type flag bool

func TestArrayType_Properties(t *testing.T) {
	arr := NewArray(UInt256)
	require.Equal(t, "uint256[]", arr.Name())
	require.True(t, arr.IsDynamic())
	require.Equal(t, KindArray, arr.Kind())
	require.Equal(t, reflect.TypeOf([]*uint256.Int{}), arr.NativeType())
	require.Equal(t, UInt256, arr.Elem())

	nested := NewArray(arr)
	require.Equal(t, "uint256[][]", nested.Name())
	require.Equal(t, reflect.TypeOf([][]*uint256.Int{}), nested.NativeType())

	require.Equal(t, reflect.TypeOf([]bool{}), NewArray(Bool).NativeType())
	require.Equal(t, "(uint8,bool)[]", NewArray(NewTuple(NewUInt(8), Bool)).Name())

	require.Panics(t, func() {
		NewArray(nil)
	})
}

func TestArrayType_RoundTrip(t *testing.T) {
	a1, err := HexToAddress("0x00112233445566778899aabbccddeeff00112233")
	require.NoError(t, err)
	a2, err := HexToAddress("0xffeeddccbbaa99887766554433221100ffeeddcc")
	require.NoError(t, err)

	tests := []struct {
		name  string
		typ   Type
		value interface{}
	}{
		{
			"uint256",
			NewArray(UInt256),
			[]*uint256.Int{
				uint256.NewInt(1),
				uint256.NewInt(0),
				new(uint256.Int).Lsh(uint256.NewInt(1), 200),
			},
		},
		{
			"uint8",
			NewArray(NewUInt(8)),
			[]*uint256.Int{
				uint256.NewInt(7),
				uint256.NewInt(255),
			},
		},
		{
			"int16",
			NewArray(NewInt(16)),
			[]*big.Int{
				big.NewInt(-300),
				big.NewInt(300),
			},
		},
		{
			"bool",
			NewArray(Bool),
			[]bool{true, false, true},
		},
		{
			"address",
			NewArray(AddressT),
			[]Address{a1, a2},
		},
		{
			"bytes4",
			NewArray(NewFixedBytes(4)),
			[][]byte{
				{0x01, 0x02, 0x03, 0x04},
				{0xff, 0x00, 0xff, 0x00},
			},
		},
		{
			"bytes",
			NewArray(Bytes),
			[][]byte{
				{},
				{0x01, 0x02, 0x03},
			},
		},
		{
			"string",
			NewArray(String),
			[]string{"", "hello", "a string that is longer than a single word"},
		},
		{
			"tuple",
			NewArray(NewTuple(UInt256, Bool)),
			[][]interface{}{
				{uint256.NewInt(1), true},
				{uint256.NewInt(2), false},
			},
		},
		{
			"nested",
			NewArray(NewArray(UInt256)),
			[][]*uint256.Int{
				{uint256.NewInt(1), uint256.NewInt(2)},
				{uint256.NewInt(3)},
			},
		},
	}
	for _, tt := range tests {
		for _, packed := range []bool{false, true} {
			enc, err := tt.typ.Encode(tt.value, packed)
			require.NoError(t, err, tt.name)

			dec, pos, err := tt.typ.Decode(enc, 0, packed)
			require.NoError(t, err, tt.name)
			require.Equal(t, tt.value, dec, tt.name)
			require.Equal(t, len(enc), pos, tt.name)

			reenc, err := tt.typ.Encode(dec, packed)
			require.NoError(t, err, tt.name)
			require.Equal(t, enc, reenc, tt.name)
		}

		unpacked, err := tt.typ.Encode(tt.value, false)
		require.NoError(t, err)
		packed, err := tt.typ.Encode(tt.value, true)
		require.NoError(t, err)
		require.True(t, len(packed) <= len(unpacked), tt.name)
	}
}

func TestArrayType_Empty(t *testing.T) {
	arr := NewArray(UInt256)
	for _, packed := range []bool{false, true} {
		enc, err := arr.Encode([]*uint256.Int{}, packed)
		require.NoError(t, err)
		require.Equal(t, make([]byte, WordSize), enc)

		dec, pos, err := arr.Decode(enc, 0, packed)
		require.NoError(t, err)
		require.Equal(t, []*uint256.Int{}, dec)
		require.Equal(t, WordSize, pos)
	}

	enc, err := arr.Encode(nil, false)
	require.Nil(t, enc)
	requireCause(t, ErrEncodingShape, err)
}

func TestArrayType_Nested(t *testing.T) {
	arr := NewArray(NewArray(UInt256))
	value := [][]uint64{{1, 2}, {3}}

	enc, err := arr.Encode(value, false)
	require.NoError(t, err)
	exp := bytes.Join([][]byte{
		word(t, 2),
		word(t, 2), word(t, 1), word(t, 2),
		word(t, 1), word(t, 3),
	}, nil)
	require.Equal(t, exp, enc)

	dec, pos, err := arr.Decode(enc, 0, false)
	require.NoError(t, err)
	require.Equal(t, len(exp), pos)
	require.Equal(t, [][]*uint256.Int{
		{uint256.NewInt(1), uint256.NewInt(2)},
		{uint256.NewInt(3)},
	}, dec)
}

func TestArrayType_CursorDiscipline(t *testing.T) {
	prefix := []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01, 0x02}
	tests := []struct {
		typ   Type
		value interface{}
		width func(packed bool) int
	}{
		{NewUInt(32), []uint32{1, 2, 3}, NewUInt(32).Width},
		{NewInt(64), []int64{-1, 2, -3}, NewInt(64).Width},
		{Bool, []bool{true, false}, func(packed bool) int {
			if packed {
				return 1
			}
			return WordSize
		}},
		{AddressT, []Address{{0x01}, {0x02}}, func(packed bool) int {
			if packed {
				return AddressLength
			}
			return WordSize
		}},
	}
	for _, tt := range tests {
		arr := NewArray(tt.typ)
		n := reflect.ValueOf(tt.value).Len()
		for _, packed := range []bool{false, true} {
			enc, err := arr.Encode(tt.value, packed)
			require.NoError(t, err)
			data := append(append([]byte{}, prefix...), enc...)
			data = append(data, 0xff, 0xff)

			_, pos, err := arr.Decode(data, len(prefix), packed)
			require.NoError(t, err)
			require.Equal(t, WordSize+n*tt.width(packed), pos-len(prefix), arr.Name())
		}
	}
}

func TestArrayType_EncodeShape(t *testing.T) {
	arr := NewArray(UInt256)
	for _, v := range []interface{}{
		nil,
		uint256.NewInt(1),
		1,
		"1",
		map[int]int{0: 1},
		struct{}{},
	} {
		_, err := arr.Encode(v, false)
		requireCause(t, ErrEncodingShape, err)
		_, err = arr.Encode(v, true)
		requireCause(t, ErrEncodingShape, err)
	}

	// fixed-size Go arrays are ordered sequences too
	enc, err := arr.Encode([2]uint64{1, 2}, false)
	require.NoError(t, err)
	require.Len(t, enc, 3*WordSize)
}

func TestArrayType_ElementEncodeError(t *testing.T) {
	arr := NewArray(NewUInt(8))
	_, err := arr.Encode([]int{1, 300}, false)
	requireCause(t, ErrValueOutOfRange, err)
	require.Contains(t, err.Error(), "element 1")

	_, err = arr.Encode([]interface{}{uint256.NewInt(1), "2"}, false)
	requireCause(t, ErrEncodingShape, err)
}

func TestArrayType_DecodeErrors(t *testing.T) {
	arr := NewArray(UInt256)
	enc, err := arr.Encode([]uint64{1, 2}, false)
	require.NoError(t, err)

	val, pos, err := arr.Decode(enc[:len(enc)-1], 0, false)
	requireCause(t, ErrTruncated, err)
	require.Nil(t, val)
	require.Equal(t, 0, pos)

	_, _, err = arr.Decode(enc[:10], 0, false)
	requireCause(t, ErrTruncated, err)

	_, _, err = arr.Decode(bytes.Repeat([]byte{0xff}, WordSize), 0, false)
	requireCause(t, ErrArrayTooLong, err)

	short := NewConfiguredArray(UInt256, ArrayConfig{MaxLen: 1})
	_, _, err = short.Decode(enc, 0, false)
	requireCause(t, ErrArrayTooLong, err)

	_, _, err = NewArray(Bool).Decode(append(word(t, 1), word(t, 2)...), 0, false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid boolean value")
}

func TestArrayType_StrictPlacement(t *testing.T) {
	loose := &stubType{
		name:   "loosebool",
		kind:   KindBool,
		native: reflect.TypeOf(uint64(0)),
		values: map[byte]interface{}{
			0x00: uint64(0),
			0x01: true,
		},
	}
	arr := NewArray(loose)
	require.Equal(t, reflect.TypeOf([]bool{}), arr.NativeType())

	val, pos, err := arr.Decode(append(word(t, 1), 0x01), 0, false)
	require.NoError(t, err)
	require.Equal(t, []bool{true}, val)
	require.Equal(t, WordSize+1, pos)

	val, _, err = arr.Decode(append(word(t, 2), 0x01, 0x00), 0, false)
	requireCause(t, ErrElementMismatch, err)
	require.Nil(t, val)

	str := &stubType{
		name:   "loosestring",
		kind:   KindString,
		native: stringType,
		values: map[byte]interface{}{
			0x00: []byte("hi"),
		},
	}
	_, _, err = NewArray(str).Decode(append(word(t, 1), 0x00), 0, false)
	requireCause(t, ErrElementMismatch, err)
}

func TestArrayType_LenientBoolPlacement(t *testing.T) {
	loose := &stubType{
		name:   "loosebool",
		kind:   KindBool,
		native: reflect.TypeOf(uint64(0)),
		values: map[byte]interface{}{
			0x00: uint64(0),
			0x01: uint64(7),
			0x02: "not a number",
			0x03: nil,
			0x04: big.NewInt(5),
			0x05: uint256.NewInt(0),
			0x06: flag(true),
			0x07: "12",
			0x08: -1,
		},
	}
	arr := NewConfiguredArray(loose, ArrayConfig{LenientBool: true})

	data := append(word(t, 9), 0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08)
	val, pos, err := arr.Decode(data, 0, false)
	require.NoError(t, err)
	require.Equal(t, []bool{false, true, false, false, true, false, true, true, true}, val)
	require.Equal(t, len(data), pos)
}

func TestArrayType_LenientNonBoolPlacement(t *testing.T) {
	str := &stubType{
		name:   "loosestring",
		kind:   KindString,
		native: stringType,
		values: map[byte]interface{}{
			0x00: []byte("hi"),
			0x01: struct{}{},
			0x02: 65,
		},
	}
	arr := NewConfiguredArray(str, ArrayConfig{LenientBool: true})

	val, _, err := arr.Decode(append(word(t, 1), 0x00), 0, false)
	require.NoError(t, err)
	require.Equal(t, []string{"hi"}, val)

	val, _, err = arr.Decode(append(word(t, 2), 0x00, 0x01), 0, false)
	requireCause(t, ErrElementMismatch, err)
	require.Nil(t, val)

	num := &stubType{
		name:   "looseuint",
		kind:   KindUInt,
		native: uint256Type,
		values: map[byte]interface{}{
			0x00: "abc",
		},
	}
	_, _, err = NewConfiguredArray(num, ArrayConfig{LenientBool: true}).Decode(append(word(t, 1), 0x00), 0, false)
	requireCause(t, ErrElementMismatch, err)

	// integers are not reinterpreted as runes
	_, _, err = arr.Decode(append(word(t, 1), 0x02), 0, false)
	requireCause(t, ErrElementMismatch, err)

	addr := &stubType{
		name:   "looseaddress",
		kind:   KindAddress,
		native: addressType,
		values: map[byte]interface{}{
			0x00: []byte{1, 2, 3},
		},
	}
	addrArr := NewConfiguredArray(addr, ArrayConfig{LenientBool: true})
	require.NotPanics(t, func() {
		_, _, err = addrArr.Decode(append(word(t, 1), 0x00), 0, false)
	})
	requireCause(t, ErrElementMismatch, err)
}

func TestArrayType_LenientBoolWarning(t *testing.T) {
	prevLevel := log.GetLevel()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	log.SetLevel(log.LevelWarn)
	defer func() {
		log.SetOutput(os.Stderr)
		log.SetLevel(prevLevel)
	}()

	loose := &stubType{
		name:   "loosebool",
		kind:   KindBool,
		native: reflect.TypeOf(uint64(0)),
		values: map[byte]interface{}{
			0x00: uint64(1),
			0x01: "not a number",
		},
	}
	arr := NewConfiguredArray(loose, ArrayConfig{LenientBool: true})

	val, _, err := arr.Decode(append(word(t, 1), 0x00), 0, false)
	require.NoError(t, err)
	require.Equal(t, []bool{true}, val)
	require.Empty(t, buf.String())

	val, _, err = arr.Decode(append(word(t, 2), 0x00, 0x01), 0, false)
	require.NoError(t, err)
	require.Equal(t, []bool{true, false}, val)
	out := buf.String()
	require.Contains(t, out, "storing false for undecodable bool element")
	require.Contains(t, out, "index=1")
	require.Contains(t, out, "module=abi-array")
	require.NotContains(t, out, "decoded array")
}

func TestArrayType_ConcurrentUse(t *testing.T) {
	arr := NewArray(NewArray(NewUInt(64)))
	value := [][]uint64{{1, 2, 3}, {}, {4}}
	exp, err := arr.Encode(value, false)
	require.NoError(t, err)

	var g errgroup.Group
	for i := 0; i < 16; i++ {
		packed := i%2 == 0
		g.Go(func() error {
			enc, err := arr.Encode(value, packed)
			if err != nil {
				return err
			}
			dec, pos, err := arr.Decode(enc, 0, packed)
			if err != nil {
				return err
			}
			if pos != len(enc) {
				return errors.New("cursor mismatch")
			}
			reenc, err := arr.Encode(dec, packed)
			if err != nil {
				return err
			}
			if !bytes.Equal(enc, reenc) {
				return errors.New("round trip mismatch")
			}
			if !packed && !bytes.Equal(exp, enc) {
				return errors.New("encoding mismatch")
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
