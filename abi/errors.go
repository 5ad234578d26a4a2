package abi

import (
	"github.com/pkg/errors"
)

var (
	// ErrEncodingShape is returned when Encode is given a value whose Go
	// shape does not match the type.
	ErrEncodingShape = errors.New("value shape does not match type")

	// ErrTruncated is returned when a buffer ends before a value is fully
	// decoded.
	ErrTruncated = errors.New("buffer too short")

	// ErrElementMismatch is returned when a decoded array element cannot
	// be placed into a slot of the array's element type.
	ErrElementMismatch = errors.New("decoded element does not match element type")

	// ErrArrayTooLong is returned when an array length word exceeds the
	// configured maximum.
	ErrArrayTooLong = errors.New("array length too large to decode")

	// ErrValueOutOfRange is returned when an integer does not fit the
	// width of its type.
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrUnknownType is returned when a type name cannot be resolved.
	ErrUnknownType = errors.New("unknown type")
)

func wrapTruncated(have int, position int, want int) error {
	return errors.Wrapf(ErrTruncated, "need %d bytes at position %d, have %d", want, position, have)
}

func wrapShape(value interface{}, t Type) error {
	return errors.Wrapf(ErrEncodingShape, "cannot encode %T as %s", value, t.Name())
}
