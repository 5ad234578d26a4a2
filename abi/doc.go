/*
Package abi implements the Ethereum contract ABI encoding scheme for a closed
set of value kinds.

Every ABI type is represented by a value implementing the Type interface.
Types are immutable once constructed and may be shared freely between
goroutines.

Fundamental types and their native Go shapes:

	- bool: bool. Encoded as a 32-byte word holding 0 or 1, or a single
	  byte when packed.
	- uint<M>: *uint256.Int. Encoded as a 32-byte big-endian word, or M/8
	  bytes when packed.
	- int<M>: *big.Int. Encoded as a 32-byte two's complement word, or M/8
	  bytes when packed.
	- address: Address. Encoded left-padded to 32 bytes, or 20 bytes when
	  packed.
	- bytes<N>: []byte of length N. Encoded right-padded to 32 bytes, or N
	  bytes when packed.
	- bytes, string: a uint256 length word followed by the data, right-padded
	  to a multiple of 32 bytes unless packed.
	- T[]: a uint256 length word followed by the concatenation of the
	  encoding of each T. Decodes to a typed slice of T's native shape.
	- (T1,...,Tn): the concatenation of the encoding of each member. Decodes
	  to []interface{}.

The easiest way to obtain a type is to parse its canonical name:

	typ, err := abi.DefaultRegistry.Parse("uint256[][]")
	enc, err := typ.Encode([][]*uint256.Int{{uint256.NewInt(1)}}, false)
	val, pos, err := typ.Decode(enc, 0, false)

Decoding returns the value together with the cursor position following the
consumed bytes, so that multiple values can be read from the same buffer.
*/
package abi
