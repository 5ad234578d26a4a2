package abi

import (
	"encoding/hex"
	"reflect"
	"strings"
	"testing"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// stubType reads a single byte per value and returns the mapped value,
// regardless of what it declares.
type stubType struct {
	name   string
	kind   Kind
	native reflect.Type
	values map[byte]interface{}
}

var _ Type = (*stubType)(nil)

func (s *stubType) Name() string {
	return s.name
}

func (s *stubType) IsDynamic() bool {
	return false
}

func (s *stubType) Kind() Kind {
	return s.kind
}

func (s *stubType) NativeType() reflect.Type {
	return s.native
}

func (s *stubType) Decode(data []byte, position int, packed bool) (interface{}, int, error) {
	buf, err := readBytes(data, position, 1)
	if err != nil {
		return nil, position, err
	}
	return s.values[buf[0]], position + 1, nil
}

func (s *stubType) Encode(value interface{}, packed bool) ([]byte, error) {
	return nil, errors.New("stub types cannot encode")
}

func word(t *testing.T, n uint64) []byte {
	enc, err := EncodeUInt(uint256.NewInt(n), false)
	require.NoError(t, err)
	return enc
}

func mustHex(t *testing.T, s string) []byte {
	b, err := hex.DecodeString(strings.Replace(s, " ", "", -1))
	require.NoError(t, err)
	return b
}

func requireCause(t *testing.T, expected error, err error) {
	require.Error(t, err)
	require.Equal(t, expected, errors.Cause(err), err.Error())
}
