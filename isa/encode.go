package isa

import (
	"encoding/binary"
)

var encodeBase = map[Op]uint16{
	OP_NOP:    0x0000,
	OP_CLRA:   0x0004,
	OP_CLRWDT: 0x0008,
	OP_SLEEPX: 0x000C,
	OP_WAITB:  0x0010,
	OP_PUSHA:  0x0020,
	OP_POPA:   0x0024,
	OP_PUSHA2: 0x0028,
	OP_POPA2:  0x002C,
	OP_RET:    0x0030,
	OP_RETZ:   0x0034,
	OP_RETIE:  0x0038,
}

// Encodable returns true if Encode has a word for op.
func Encodable(op Op) (ok bool) {
	_, ok = encodeBase[op]
	return
}

// Encode an instruction into its word.
//
// Only the operand-free control instructions, SLEEPX and WAITB have an
// encoding, everything else returns an *ErrEncode wrapping ErrUnsupported.
func Encode(in Instruction) (word uint16, err error) {
	base, ok := encodeBase[in.Op]
	if !ok {
		err = &ErrEncode{Op: in.Op, Err: ErrUnsupported}
		return
	}

	if !in.Canonical() {
		err = &ErrEncode{Op: in.Op, Err: ErrOperand}
		return
	}

	word = base
	switch in.Op.Shape() {
	case SHAPE_K2:
		word |= uint16(in.K2)
	case SHAPE_WAIT:
		word |= uint16(in.B)
	}

	return
}

// EncodeBytes encodes an instruction into little-endian bytes.
func EncodeBytes(in Instruction) (data [2]byte, err error) {
	word, err := Encode(in)
	if err != nil {
		return
	}

	binary.LittleEndian.PutUint16(data[:], word)
	return
}
