package asm

import (
	"errors"
	"strconv"

	"github.com/ezrec/pioc/translate"
)

var f = translate.From

var (
	// Line parser errors
	ErrEmptyLine     = errors.New(f("empty line"))
	ErrOpcodeInvalid = errors.New(f("opcode invalid"))
	ErrOperandCount  = errors.New(f("operand count"))

	// Assembler errors
	ErrEquateSyntax     = errors.New(f(".equ syntax"))
	ErrEquateDuplicate  = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate   = errors.New(f("label duplicated"))
	ErrOrgBackward      = errors.New(f(".org before current address"))
	ErrDirectiveInvalid = errors.New(f("directive invalid"))
)

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseRegister string

func (err ErrParseRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

type ErrParseDest string

func (err ErrParseDest) Error() string {
	return f("'%v' is not a destination", string(err))
}

type ErrParseOperand string

func (err ErrParseOperand) Error() string {
	return f("'%v' is not a valid operand", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrFieldWidth is a number too wide for its operand field.
type ErrFieldWidth struct {
	Value uint64
	Width uint
}

func (err *ErrFieldWidth) Error() string {
	return f("%s does not fit in %s bits",
		strconv.FormatUint(err.Value, 10), strconv.FormatUint(uint64(err.Width), 10))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %s '%v' %v", strconv.Itoa(err.LineNo), err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
