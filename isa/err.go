package isa

import (
	"errors"

	"github.com/ezrec/pioc/translate"
)

var f = translate.From

var (
	ErrDecode      = errors.New(f("decode"))
	ErrUnsupported = errors.New(f("unsupported"))
	ErrOperand     = errors.New(f("operand invalid"))
)

// ErrOpcode is a word that no decode rule matches.
type ErrOpcode uint16

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%04X (%016b)", uint16(eo), uint16(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	if err == ErrDecode {
		return true
	}
	_, ok = err.(ErrOpcode)
	return
}

// ErrUnimplemented is a word whose rule is known but not implemented.
type ErrUnimplemented struct {
	Word     uint16
	Mnemonic string
}

func (err *ErrUnimplemented) Error() string {
	return f("opcode 0x%04X %v unimplemented", err.Word, err.Mnemonic)
}

func (err *ErrUnimplemented) Unwrap() error {
	return ErrDecode
}

// ErrEncode is an instruction that cannot be encoded.
type ErrEncode struct {
	Op  Op
	Err error
}

func (err *ErrEncode) Error() string {
	return f("encode %v: %v", err.Op.String(), err.Err)
}

func (err *ErrEncode) Unwrap() error {
	return err.Err
}

// ErrRender is an instruction that has no assembly text.
type ErrRender struct {
	Word uint16
}

func (err *ErrRender) Error() string {
	return f("render 0x%04X: %v", err.Word, ErrUnsupported)
}

func (err *ErrRender) Unwrap() error {
	return ErrUnsupported
}
