package isa

import (
	"fmt"
)

// Op is an instruction operation, one per mnemonic and operand shape.
type Op int

//go:generate go tool stringer -linecomment -type=Op,Dest
const (
	OP_NOP     = Op(0)  // NOP
	OP_CLRWDT  = Op(1)  // CLRWDT
	OP_SLEEPX  = Op(2)  // SLEEPX
	OP_WAITB   = Op(3)  // WAITB
	OP_RCODE   = Op(4)  // RCODE
	OP_PUSHA   = Op(5)  // PUSHA
	OP_POPA    = Op(6)  // POPA
	OP_PUSHA2  = Op(7)  // PUSHA2
	OP_POPA2   = Op(8)  // POPA2
	OP_RET     = Op(9)  // RET
	OP_RETZ    = Op(10) // RETZ
	OP_RETIE   = Op(11) // RETIE
	OP_RETL    = Op(12) // RETL
	OP_RETLN   = Op(13) // RETLN
	OP_CLRA    = Op(14) // CLRA
	OP_CLR     = Op(15) // CLR
	OP_MOVA    = Op(16) // MOVA
	OP_MOV     = Op(17) // MOV
	OP_INC     = Op(18) // INC
	OP_DEC     = Op(19) // DEC
	OP_INCSZ   = Op(20) // INCSZ
	OP_DECSZ   = Op(21) // DECSZ
	OP_SWAP    = Op(22) // SWAP
	OP_AND     = Op(23) // AND
	OP_IOR     = Op(24) // IOR
	OP_XOR     = Op(25) // XOR
	OP_ADD     = Op(26) // ADD
	OP_SUB     = Op(27) // SUB
	OP_RCL     = Op(28) // RCL
	OP_RCR     = Op(29) // RCR
	OP_MOVIP   = Op(30) // MOVIP
	OP_MOVIA   = Op(31) // MOVIA
	OP_MOVA1F  = Op(32) // MOVA1F
	OP_MOVA2F  = Op(33) // MOVA2F
	OP_MOVA1P  = Op(34) // MOVA1P
	OP_MOVA2P  = Op(35) // MOVA2P
	OP_MOVL    = Op(36) // MOVL
	OP_ANDL    = Op(37) // ANDL
	OP_IORL    = Op(38) // IORL
	OP_XORL    = Op(39) // XORL
	OP_ADDL    = Op(40) // ADDL
	OP_SUBL    = Op(41) // SUBL
	OP_CMPLN   = Op(42) // CMPLN
	OP_CMPL    = Op(43) // CMPL
	OP_BC      = Op(44) // BC
	OP_BS      = Op(45) // BS
	OP_BTSC    = Op(46) // BTSC
	OP_BTSS    = Op(47) // BTSS
	OP_BCTC    = Op(48) // BCTC
	OP_BP1F    = Op(49) // BP1F
	OP_BP2F    = Op(50) // BP2F
	OP_BG1F    = Op(51) // BG1F
	OP_BG2F    = Op(52) // BG2F
	OP_JMP     = Op(53) // JMP
	OP_CALL    = Op(54) // CALL
	OP_JNZ     = Op(55) // JNZ
	OP_JZ      = Op(56) // JZ
	OP_JNC     = Op(57) // JNC
	OP_JC      = Op(58) // JC
	OP_CMPZ    = Op(59) // CMPZ
	OP_UNKNOWN = Op(60) // UNKNOWN
)

// Shape is the operand layout of an operation.
type Shape int

const (
	SHAPE_NONE  = Shape(0)  // no operands
	SHAPE_K2    = Shape(1)  // k2
	SHAPE_WAIT  = Shape(2)  // wait condition b
	SHAPE_BITC  = Shape(3)  // carry source
	SHAPE_ROUTE = Shape(4)  // bit route, bit index
	SHAPE_F     = Shape(5)  // f
	SHAPE_FX    = Shape(6)  // F
	SHAPE_FX_D  = Shape(7)  // F, d
	SHAPE_F_D   = Shape(8)  // f, d
	SHAPE_K     = Shape(9)  // k
	SHAPE_K9    = Shape(10) // k9
	SHAPE_K10   = Shape(11) // k10
	SHAPE_F_B   = Shape(12) // f, b
	SHAPE_L12   = Shape(13) // 12-bit label
	SHAPE_L10   = Shape(14) // 10-bit label
	SHAPE_K7_L8 = Shape(15) // k7, 8-bit label
	SHAPE_RAW   = Shape(16) // raw word
)

var shapeNames = [...]string{
	"none", "k2", "wait", "bitc", "route", "f", "F", "F,d", "f,d",
	"k", "k9", "k10", "f,b", "l12", "l10", "k7,l8", "raw",
}

func (shape Shape) String() string {
	if shape < 0 || int(shape) >= len(shapeNames) {
		return fmt.Sprintf("Shape(%d)", int(shape))
	}
	return shapeNames[shape]
}

type opDef struct {
	name  string // Variant name, for debug output.
	shape Shape
}

var opDefs = [...]opDef{
	OP_NOP:     {"Nop", SHAPE_NONE},
	OP_CLRWDT:  {"ClearWatchDog", SHAPE_NONE},
	OP_SLEEPX:  {"Sleep", SHAPE_K2},
	OP_WAITB:   {"WaitB", SHAPE_WAIT},
	OP_RCODE:   {"ReadCode", SHAPE_K2},
	OP_PUSHA:   {"PushA", SHAPE_NONE},
	OP_POPA:    {"PopA", SHAPE_NONE},
	OP_PUSHA2:  {"PushIndirAddr2", SHAPE_NONE},
	OP_POPA2:   {"PopIndirAddr2", SHAPE_NONE},
	OP_RET:     {"Return", SHAPE_NONE},
	OP_RETZ:    {"ReturnOk", SHAPE_NONE},
	OP_RETIE:   {"ReturnInt", SHAPE_NONE},
	OP_RETL:    {"ReturnImm", SHAPE_K},
	OP_RETLN:   {"ReturnErrImm", SHAPE_K},
	OP_CLRA:    {"ClearA", SHAPE_NONE},
	OP_CLR:     {"Clear", SHAPE_F},
	OP_MOVA:    {"MoveA", SHAPE_FX},
	OP_MOV:     {"Move", SHAPE_FX_D},
	OP_INC:     {"Inc", SHAPE_F_D},
	OP_DEC:     {"Dec", SHAPE_F_D},
	OP_INCSZ:   {"IncAndSkipIfZero", SHAPE_F_D},
	OP_DECSZ:   {"DecAndSkipIfZero", SHAPE_F_D},
	OP_SWAP:    {"SwapHalfBytes", SHAPE_F_D},
	OP_AND:     {"And", SHAPE_F_D},
	OP_IOR:     {"Or", SHAPE_F_D},
	OP_XOR:     {"Xor", SHAPE_F_D},
	OP_ADD:     {"Add", SHAPE_F_D},
	OP_SUB:     {"Sub", SHAPE_F_D},
	OP_RCL:     {"RotateLeftWithCarry", SHAPE_F_D},
	OP_RCR:     {"RotateRightWithCarry", SHAPE_F_D},
	OP_MOVIP:   {"MoveImmToIndirAddr1", SHAPE_K9},
	OP_MOVIA:   {"MoveImmToIndirAddr2", SHAPE_K10},
	OP_MOVA1F:  {"MoveImmToPortDir", SHAPE_K},
	OP_MOVA2F:  {"MoveImmToPortIo", SHAPE_K},
	OP_MOVA1P:  {"MoveImmToP1", SHAPE_K},
	OP_MOVA2P:  {"MoveImmToP2", SHAPE_K},
	OP_MOVL:    {"MoveImm", SHAPE_K},
	OP_ANDL:    {"AndImm", SHAPE_K},
	OP_IORL:    {"OrImm", SHAPE_K},
	OP_XORL:    {"XorImm", SHAPE_K},
	OP_ADDL:    {"AddImm", SHAPE_K},
	OP_SUBL:    {"SubImm", SHAPE_K},
	OP_CMPLN:   {"CompareImmNegate", SHAPE_K},
	OP_CMPL:    {"CompareImm", SHAPE_K},
	OP_BC:      {"BitClear", SHAPE_F_B},
	OP_BS:      {"BitSet", SHAPE_F_B},
	OP_BTSC:    {"BitTestSkipIfClear", SHAPE_F_B},
	OP_BTSS:    {"BitTestSkipIfSet", SHAPE_F_B},
	OP_BCTC:    {"BitToC", SHAPE_BITC},
	OP_BP1F:    {"BitOut1", SHAPE_ROUTE},
	OP_BP2F:    {"BitOut2", SHAPE_ROUTE},
	OP_BG1F:    {"BitIn1", SHAPE_ROUTE},
	OP_BG2F:    {"BitIn2", SHAPE_ROUTE},
	OP_JMP:     {"Jump", SHAPE_L12},
	OP_CALL:    {"Call", SHAPE_L12},
	OP_JNZ:     {"JumpIfNotZero", SHAPE_L10},
	OP_JZ:      {"JumpIfZero", SHAPE_L10},
	OP_JNC:     {"JumpIfNotCarry", SHAPE_L10},
	OP_JC:      {"JumpIfCarry", SHAPE_L10},
	OP_CMPZ:    {"JumpIfEqual", SHAPE_K7_L8},
	OP_UNKNOWN: {"Unknown", SHAPE_RAW},
}

// OP_COUNT is the number of operations.
const OP_COUNT = int(OP_UNKNOWN) + 1

// Valid returns true if op is a defined operation.
func (op Op) Valid() bool {
	return op >= 0 && int(op) < OP_COUNT
}

// Name returns the variant name of the operation.
func (op Op) Name() string {
	if !op.Valid() {
		return op.String()
	}
	return opDefs[op].name
}

// Shape returns the operand layout of the operation.
func (op Op) Shape() Shape {
	if !op.Valid() {
		return SHAPE_RAW
	}
	return opDefs[op].shape
}

// LabelWidth returns the bit width of the control transfer target, or 0.
func (op Op) LabelWidth() uint {
	switch op.Shape() {
	case SHAPE_L12:
		return 12
	case SHAPE_L10:
		return 10
	case SHAPE_K7_L8:
		return 8
	}
	return 0
}

// Ops returns all of the defined operations, OP_UNKNOWN excluded.
func Ops() (ops []Op) {
	for n := range OP_UNKNOWN {
		ops = append(ops, n)
	}
	return
}
