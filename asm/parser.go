package asm

import (
	"strconv"
	"strings"

	"github.com/ezrec/pioc/bits"
	"github.com/ezrec/pioc/isa"
	"github.com/ezrec/pioc/sfr"
)

// lineParser builds an instruction from the operand words of a line.
type lineParser func(args []string) (isa.Instruction, error)

// parsers maps upper case mnemonics to their operand parsers.
var parsers = map[string]lineParser{}

func init() {
	for _, op := range isa.Ops() {
		parsers[op.String()] = shapeParser(op)
	}
}

// stripComment removes a trailing ';' comment.
func stripComment(line string) string {
	line, _, _ = strings.Cut(line, ";")
	return line
}

// fields splits a line on whitespace and commas.
func fields(line string) []string {
	return strings.Fields(strings.ReplaceAll(line, ",", " "))
}

// ParseLine parses a single line of assembly text into an instruction.
func ParseLine(line string) (in isa.Instruction, err error) {
	return parseWords(fields(stripComment(line)))
}

func parseWords(words []string) (in isa.Instruction, err error) {
	if len(words) == 0 {
		err = ErrEmptyLine
		return
	}

	parser, ok := parsers[strings.ToUpper(words[0])]
	if !ok {
		err = ErrOpcodeInvalid
		return
	}

	return parser(words[1:])
}

// number parses an unsigned integer in Go literal syntax.
func number(text string) (value uint64, err error) {
	value, err = strconv.ParseUint(text, 0, 32)
	if err != nil {
		err = ErrParseNumber(text)
	}
	return
}

// field parses a number that must fit field F.
func field[F bits.Field](text string) (v F, err error) {
	raw, err := number(text)
	if err != nil {
		return
	}

	v, ok := bits.New[F](raw)
	if !ok {
		err = &ErrFieldWidth{Value: raw, Width: bits.WidthOf[F]()}
	}
	return
}

// register parses a register name, vendor name or address of width bits.
func register(text string, width uint) (code uint16, err error) {
	if reg, ok := sfr.Parse(text); ok {
		return uint16(reg.Code()), nil
	}

	if reg, ok := sfr.ParseVendor(text); ok {
		return uint16(reg.Code()), nil
	}

	raw, err := strconv.ParseUint(text, 0, 32)
	if err != nil {
		err = ErrParseRegister(text)
		return
	}

	if !bits.Fits(raw, width) {
		err = &ErrFieldWidth{Value: raw, Width: width}
		return
	}

	code = uint16(raw)
	return
}

// dest parses a destination selector, F when omitted.
func dest(args []string) (d isa.Dest, err error) {
	if len(args) == 0 {
		return isa.DEST_F, nil
	}

	switch strings.ToUpper(args[0]) {
	case "A", "0":
		d = isa.DEST_A
	case "F", "1":
		d = isa.DEST_F
	default:
		err = ErrParseDest(args[0])
	}
	return
}

// label parses a '.L<n>' label or a number of width bits.
func label(text string, width uint) (l uint16, err error) {
	target, ok := isa.ParseLabel(text)
	raw := uint64(target)
	if !ok {
		raw, err = number(text)
		if err != nil {
			return
		}
	}

	if !bits.Fits(raw, width) {
		err = &ErrFieldWidth{Value: raw, Width: width}
		return
	}

	l = uint16(raw)
	return
}

// named parses a symbol with lookup, or a number that fits field F.
func named[F bits.Field, T ~uint8](text string, lookup func(string) (T, bool)) (v F, err error) {
	if sym, ok := lookup(text); ok {
		return F(sym), nil
	}

	v, err = field[F](text)
	if _, isNumber := err.(ErrParseNumber); isNumber {
		err = ErrParseOperand(text)
	}
	return
}

func count(args []string, low, high int) error {
	if len(args) < low || len(args) > high {
		return ErrOperandCount
	}
	return nil
}

// shapeParser returns the operand parser for op.
func shapeParser(op isa.Op) lineParser {
	switch op.Shape() {
	case isa.SHAPE_NONE:
		return func(args []string) (in isa.Instruction, err error) {
			if err = count(args, 0, 0); err != nil {
				return
			}
			return isa.Make(op), nil
		}
	case isa.SHAPE_K2:
		return func(args []string) (in isa.Instruction, err error) {
			if err = count(args, 1, 1); err != nil {
				return
			}
			k2, err := field[bits.U2](args[0])
			if err != nil {
				return
			}
			return isa.MakeK2(op, k2), nil
		}
	case isa.SHAPE_BITC:
		return func(args []string) (in isa.Instruction, err error) {
			if err = count(args, 1, 1); err != nil {
				return
			}
			sel, err := named[bits.U2](args[0], isa.ParseBitInC)
			if err != nil {
				return
			}
			return isa.MakeK2(op, sel), nil
		}
	case isa.SHAPE_WAIT:
		return func(args []string) (in isa.Instruction, err error) {
			if err = count(args, 1, 1); err != nil {
				return
			}
			b, err := named[bits.U3](args[0], isa.ParseWaitBit)
			if err != nil {
				return
			}
			return isa.MakeWait(op, b), nil
		}
	case isa.SHAPE_ROUTE:
		return func(args []string) (in isa.Instruction, err error) {
			if err = count(args, 2, 2); err != nil {
				return
			}
			var sel bits.U2
			if op == isa.OP_BP1F || op == isa.OP_BP2F {
				sel, err = named[bits.U2](args[0], isa.ParseBitOut)
			} else {
				sel, err = named[bits.U2](args[0], isa.ParseBitIn)
			}
			if err != nil {
				return
			}
			b, err := field[bits.U3](args[1])
			if err != nil {
				return
			}
			return isa.MakeRoute(op, sel, b), nil
		}
	case isa.SHAPE_F:
		return func(args []string) (in isa.Instruction, err error) {
			if err = count(args, 1, 1); err != nil {
				return
			}
			reg, err := register(args[0], 8)
			if err != nil {
				return
			}
			return isa.MakeF(op, isa.Reg(reg)), nil
		}
	case isa.SHAPE_FX:
		return func(args []string) (in isa.Instruction, err error) {
			if err = count(args, 1, 1); err != nil {
				return
			}
			reg, err := register(args[0], 9)
			if err != nil {
				return
			}
			return isa.MakeFX(op, isa.RegExt(reg)), nil
		}
	case isa.SHAPE_FX_D:
		return func(args []string) (in isa.Instruction, err error) {
			if err = count(args, 1, 2); err != nil {
				return
			}
			reg, err := register(args[0], 9)
			if err != nil {
				return
			}
			d, err := dest(args[1:])
			if err != nil {
				return
			}
			return isa.MakeFXD(op, isa.RegExt(reg), d), nil
		}
	case isa.SHAPE_F_D:
		return func(args []string) (in isa.Instruction, err error) {
			if err = count(args, 1, 2); err != nil {
				return
			}
			reg, err := register(args[0], 8)
			if err != nil {
				return
			}
			d, err := dest(args[1:])
			if err != nil {
				return
			}
			return isa.MakeFD(op, isa.Reg(reg), d), nil
		}
	case isa.SHAPE_K:
		return func(args []string) (in isa.Instruction, err error) {
			if err = count(args, 1, 1); err != nil {
				return
			}
			k, err := field[bits.U8](args[0])
			if err != nil {
				return
			}
			return isa.MakeK(op, k), nil
		}
	case isa.SHAPE_K9:
		return func(args []string) (in isa.Instruction, err error) {
			if err = count(args, 1, 1); err != nil {
				return
			}
			k9, err := field[bits.U9](args[0])
			if err != nil {
				return
			}
			return isa.MakeK9(op, k9), nil
		}
	case isa.SHAPE_K10:
		return func(args []string) (in isa.Instruction, err error) {
			if err = count(args, 1, 1); err != nil {
				return
			}
			k10, err := field[bits.U10](args[0])
			if err != nil {
				return
			}
			return isa.MakeK10(op, k10), nil
		}
	case isa.SHAPE_F_B:
		return func(args []string) (in isa.Instruction, err error) {
			if err = count(args, 2, 2); err != nil {
				return
			}
			reg, err := register(args[0], 8)
			if err != nil {
				return
			}
			b, err := field[bits.U3](args[1])
			if err != nil {
				return
			}
			return isa.MakeFB(op, isa.Reg(reg), b), nil
		}
	case isa.SHAPE_L12, isa.SHAPE_L10:
		return func(args []string) (in isa.Instruction, err error) {
			if err = count(args, 1, 1); err != nil {
				return
			}
			target, err := label(args[0], op.LabelWidth())
			if err != nil {
				return
			}
			return isa.MakeJump(op, target), nil
		}
	case isa.SHAPE_K7_L8:
		return func(args []string) (in isa.Instruction, err error) {
			if err = count(args, 2, 2); err != nil {
				return
			}
			k7, err := field[bits.U7](args[0])
			if err != nil {
				return
			}
			target, err := label(args[1], 8)
			if err != nil {
				return
			}
			return isa.MakeCmpz(k7, bits.U8(target)), nil
		}
	}

	return func([]string) (in isa.Instruction, err error) {
		err = ErrOpcodeInvalid
		return
	}
}
