package isa

import (
	"fmt"
	"strings"

	"github.com/ezrec/pioc/bits"
)

// Instruction is a decoded instruction word.
//
// Only the fields used by the shape of Op are set, the rest are zero, so
// two instructions compare equal with == exactly when they are the same
// operation with the same operands.
type Instruction struct {
	Op Op

	F   Reg      // Direct register.
	FX  RegExt   // Extended register.
	D   Dest     // Result destination.
	B   bits.U3  // Bit index, wait condition or route bit index.
	K2  bits.U2  // 2-bit immediate, route or carry source selector.
	K   bits.U8  // Byte immediate.
	K7  bits.U7  // CMPZ compare value.
	K9  bits.U9  // MOVIP immediate.
	K10 bits.U10 // MOVIA immediate.
	L   Label    // Control transfer target.

	Word uint16 // Raw word of OP_UNKNOWN.
}

func mustShape(op Op, shapes ...Shape) {
	shape := op.Shape()
	for _, s := range shapes {
		if s == shape {
			return
		}
	}
	panic(fmt.Sprintf("isa: %v has shape %v, not %v", op.String(), shape, shapes))
}

// Make returns an instruction with no operands.
func Make(op Op) Instruction {
	mustShape(op, SHAPE_NONE)
	return Instruction{Op: op}
}

// MakeK2 returns an instruction with a 2-bit immediate or carry source.
func MakeK2(op Op, k2 bits.U2) Instruction {
	mustShape(op, SHAPE_K2, SHAPE_BITC)
	return Instruction{Op: op, K2: bits.Trunc[bits.U2](k2)}
}

// MakeWait returns a wait instruction.
func MakeWait(op Op, b bits.U3) Instruction {
	mustShape(op, SHAPE_WAIT)
	return Instruction{Op: op, B: bits.Trunc[bits.U3](b)}
}

// MakeF returns an instruction on a direct register.
func MakeF(op Op, f Reg) Instruction {
	mustShape(op, SHAPE_F)
	return Instruction{Op: op, F: f}
}

// MakeFX returns an instruction on an extended register.
func MakeFX(op Op, fx RegExt) Instruction {
	mustShape(op, SHAPE_FX)
	return Instruction{Op: op, FX: RegExt(bits.Trunc[bits.U9](fx))}
}

// MakeFXD returns an instruction on an extended register with a destination.
func MakeFXD(op Op, fx RegExt, d Dest) Instruction {
	mustShape(op, SHAPE_FX_D)
	return Instruction{Op: op, FX: RegExt(bits.Trunc[bits.U9](fx)), D: DestOf(d.Bool())}
}

// MakeFD returns an instruction on a direct register with a destination.
func MakeFD(op Op, f Reg, d Dest) Instruction {
	mustShape(op, SHAPE_F_D)
	return Instruction{Op: op, F: f, D: DestOf(d.Bool())}
}

// MakeK returns an instruction with a byte immediate.
func MakeK(op Op, k bits.U8) Instruction {
	mustShape(op, SHAPE_K)
	return Instruction{Op: op, K: k}
}

// MakeK9 returns an instruction with a 9-bit immediate.
func MakeK9(op Op, k9 bits.U9) Instruction {
	mustShape(op, SHAPE_K9)
	return Instruction{Op: op, K9: bits.Trunc[bits.U9](k9)}
}

// MakeK10 returns an instruction with a 10-bit immediate.
func MakeK10(op Op, k10 bits.U10) Instruction {
	mustShape(op, SHAPE_K10)
	return Instruction{Op: op, K10: bits.Trunc[bits.U10](k10)}
}

// MakeFB returns a bit instruction on a direct register.
func MakeFB(op Op, f Reg, b bits.U3) Instruction {
	mustShape(op, SHAPE_F_B)
	return Instruction{Op: op, F: f, B: bits.Trunc[bits.U3](b)}
}

// MakeRoute returns a bit route instruction.
func MakeRoute(op Op, sel bits.U2, b bits.U3) Instruction {
	mustShape(op, SHAPE_ROUTE)
	return Instruction{Op: op, K2: bits.Trunc[bits.U2](sel), B: bits.Trunc[bits.U3](b)}
}

// MakeJump returns a control transfer to target, truncated to the label
// width of the op.
func MakeJump(op Op, target uint16) Instruction {
	mustShape(op, SHAPE_L12, SHAPE_L10)
	return Instruction{Op: op, L: Label(uint64(target) & bits.Mask(op.LabelWidth()))}
}

// MakeCmpz returns a compare and jump instruction.
func MakeCmpz(k7 bits.U7, l8 bits.U8) Instruction {
	return Instruction{Op: OP_CMPZ, K7: bits.Trunc[bits.U7](k7), L: Label(l8)}
}

// MakeUnknown returns the placeholder for an undecodable word.
func MakeUnknown(word uint16) Instruction {
	return Instruction{Op: OP_UNKNOWN, Word: word}
}

// Out returns the route selector as a bit source.
func (in Instruction) Out() BitOut { return BitOut(in.K2) }

// In returns the route selector as a bit destination.
func (in Instruction) In() BitIn { return BitIn(in.K2) }

// InC returns the carry source.
func (in Instruction) InC() BitInC { return BitInC(in.K2) }

// Wait returns the wait condition.
func (in Instruction) Wait() WaitBit { return WaitBit(in.B) }

// Canonical returns true if the instruction could have been built by one of
// the Make constructors.
func (in Instruction) Canonical() bool {
	if !in.Op.Valid() {
		return false
	}

	var want Instruction
	want.Op = in.Op

	switch in.Op.Shape() {
	case SHAPE_NONE:
	case SHAPE_K2, SHAPE_BITC:
		want.K2 = in.K2
	case SHAPE_WAIT:
		want.B = in.B
	case SHAPE_ROUTE:
		want.K2, want.B = in.K2, in.B
	case SHAPE_F:
		want.F = in.F
	case SHAPE_FX:
		want.FX = in.FX
	case SHAPE_FX_D:
		want.FX, want.D = in.FX, in.D
	case SHAPE_F_D:
		want.F, want.D = in.F, in.D
	case SHAPE_K:
		want.K = in.K
	case SHAPE_K9:
		want.K9 = in.K9
	case SHAPE_K10:
		want.K10 = in.K10
	case SHAPE_F_B:
		want.F, want.B = in.F, in.B
	case SHAPE_L12, SHAPE_L10:
		want.L = in.L
	case SHAPE_K7_L8:
		want.K7, want.L = in.K7, in.L
	case SHAPE_RAW:
		want.Word = in.Word
	}

	if want != in {
		return false
	}

	switch {
	case !bits.Fits(in.K2, 2), !bits.Fits(in.B, 3), !bits.Fits(in.K7, 7):
		return false
	case !bits.Fits(in.K9, 9), !bits.Fits(in.K10, 10), !bits.Fits(in.FX, 9):
		return false
	case in.D != DEST_A && in.D != DEST_F:
		return false
	}

	if width := in.Op.LabelWidth(); width != 0 && !bits.Fits(in.L, width) {
		return false
	}

	return true
}

// String returns the debug form of the instruction, Name(operand, ...).
func (in Instruction) String() string {
	var args []string

	switch in.Op.Shape() {
	case SHAPE_NONE:
	case SHAPE_K2:
		args = append(args, in.K2.GoString())
	case SHAPE_BITC:
		args = append(args, in.InC().String())
	case SHAPE_WAIT:
		args = append(args, in.Wait().String())
	case SHAPE_ROUTE:
		if in.Op == OP_BP1F || in.Op == OP_BP2F {
			args = append(args, in.Out().String())
		} else {
			args = append(args, in.In().String())
		}
		args = append(args, in.B.GoString())
	case SHAPE_F:
		args = append(args, in.F.String())
	case SHAPE_FX:
		args = append(args, in.FX.String())
	case SHAPE_FX_D:
		args = append(args, in.FX.String(), in.D.String())
	case SHAPE_F_D:
		args = append(args, in.F.String(), in.D.String())
	case SHAPE_K:
		args = append(args, in.K.GoString())
	case SHAPE_K9:
		args = append(args, in.K9.GoString())
	case SHAPE_K10:
		args = append(args, in.K10.GoString())
	case SHAPE_F_B:
		args = append(args, in.F.String(), in.B.GoString())
	case SHAPE_L12, SHAPE_L10:
		args = append(args, in.L.String())
	case SHAPE_K7_L8:
		args = append(args, in.K7.GoString(), in.L.String())
	case SHAPE_RAW:
		args = append(args, fmt.Sprintf("0x%04X", in.Word))
	}

	if len(args) == 0 {
		return in.Op.Name()
	}

	return in.Op.Name() + "(" + strings.Join(args, ", ") + ")"
}
