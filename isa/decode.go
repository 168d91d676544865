package isa

import (
	"github.com/ezrec/pioc/bits"
)

// Rule is one entry of the decode table: a word matches when
// word&Mask == Value.
type Rule struct {
	Mask     uint16
	Value    uint16
	Op       Op
	Mnemonic string
}

type rule struct {
	Rule
	build func(word uint16) (Instruction, error)
}

func low(word uint16) bits.U8 {
	return bits.Trunc[bits.U8](word)
}

func dest(word uint16) Dest {
	return DestOf(word&0x1000 != 0)
}

func ruleOp(mask, value uint16, op Op, build func(word uint16) Instruction) rule {
	return rule{
		Rule: Rule{Mask: mask, Value: value, Op: op, Mnemonic: op.String()},
		build: func(word uint16) (Instruction, error) {
			return build(word), nil
		},
	}
}

func ruleNone(value uint16, op Op) rule {
	return ruleOp(0xFFFC, value, op, func(uint16) Instruction {
		return Make(op)
	})
}

func ruleK2(value uint16, op Op) rule {
	return ruleOp(0xFFFC, value, op, func(word uint16) Instruction {
		return MakeK2(op, bits.Trunc[bits.U2](word))
	})
}

func ruleRoute(value uint16, op Op) rule {
	return ruleOp(0xFFE0, value, op, func(word uint16) Instruction {
		return MakeRoute(op, bits.Trunc[bits.U2](word>>3), bits.Trunc[bits.U3](word))
	})
}

func ruleK(value uint16, op Op) rule {
	return ruleOp(0xFF00, value, op, func(word uint16) Instruction {
		return MakeK(op, low(word))
	})
}

func ruleFD(value uint16, op Op) rule {
	return ruleOp(0xEF00, value, op, func(word uint16) Instruction {
		return MakeFD(op, Reg(low(word)), dest(word))
	})
}

func ruleJump(mask, value uint16, op Op) rule {
	return ruleOp(mask, value, op, func(word uint16) Instruction {
		return MakeJump(op, word)
	})
}

func ruleFB(value uint16, op Op) rule {
	return ruleOp(0xF800, value, op, func(word uint16) Instruction {
		return MakeFB(op, Reg(low(word)), bits.Trunc[bits.U3](word>>8))
	})
}

func ruleUnimplemented(mask, value uint16, mnemonic string) rule {
	return rule{
		Rule: Rule{Mask: mask, Value: value, Op: OP_UNKNOWN, Mnemonic: mnemonic},
		build: func(word uint16) (Instruction, error) {
			return MakeUnknown(word), &ErrUnimplemented{Word: word, Mnemonic: mnemonic}
		},
	}
}

// rules is evaluated in order, the first match wins. Several masks overlap,
// so the order is part of the encoding.
var rules = []rule{
	ruleNone(0x0000, OP_NOP),
	ruleNone(0x0008, OP_CLRWDT),
	ruleK2(0x000C, OP_SLEEPX),
	ruleNone(0x0020, OP_PUSHA),
	ruleNone(0x0024, OP_POPA),
	ruleNone(0x0028, OP_PUSHA2),
	ruleNone(0x002C, OP_POPA2),
	ruleNone(0x0030, OP_RET),
	ruleNone(0x0034, OP_RETZ),
	ruleNone(0x0038, OP_RETIE),
	ruleOp(0xFFF8, 0x0010, OP_WAITB, func(word uint16) Instruction {
		return MakeWait(OP_WAITB, bits.Trunc[bits.U3](word))
	}),
	ruleNone(0x0004, OP_CLRA),
	ruleK2(0x001C, OP_BCTC),
	ruleRoute(0x0080, OP_BP1F),
	ruleRoute(0x00A0, OP_BP2F),
	ruleRoute(0x00C0, OP_BG1F),
	ruleRoute(0x00E0, OP_BG2F),
	ruleK2(0x0018, OP_RCODE),
	// Never reached, WAITB owns 0x0010..0x0017.
	ruleUnimplemented(0xFFFF, 0x0014, "WAITWR"),

	ruleOp(0xFF00, 0x0100, OP_CLR, func(word uint16) Instruction {
		return MakeF(OP_CLR, Reg(low(word)))
	}),

	ruleK(0x2800, OP_MOVL),
	ruleK(0x2900, OP_ANDL),
	ruleK(0x2A00, OP_IORL),
	ruleK(0x2B00, OP_XORL),
	ruleK(0x2C00, OP_ADDL),
	ruleK(0x2D00, OP_SUBL),
	ruleK(0x2E00, OP_CMPLN),
	ruleK(0x2F00, OP_CMPL),

	ruleK(0x2000, OP_RETL),
	ruleK(0x2100, OP_RETLN),

	ruleK(0x2300, OP_MOVA1F),
	ruleK(0x2500, OP_MOVA2F),
	ruleK(0x2600, OP_MOVA2P),
	// 0x27 decodes as MOVA2P as well, leaving MOVA1P without a word.
	ruleK(0x2700, OP_MOVA2P),

	ruleOp(0xFE00, 0x2200, OP_MOVIP, func(word uint16) Instruction {
		return MakeK9(OP_MOVIP, bits.Trunc[bits.U9](word))
	}),
	ruleOp(0xFC00, 0x2400, OP_MOVIA, func(word uint16) Instruction {
		return MakeK10(OP_MOVIA, bits.Trunc[bits.U10](word))
	}),

	ruleOp(0xFE00, 0x1000, OP_MOVA, func(word uint16) Instruction {
		return MakeFX(OP_MOVA, RegExt(bits.Trunc[bits.U9](word)))
	}),
	ruleOp(0xEE00, 0x0200, OP_MOV, func(word uint16) Instruction {
		return MakeFXD(OP_MOV, RegExt(bits.Trunc[bits.U9](word)), dest(word))
	}),

	ruleFD(0x0400, OP_INC),
	ruleFD(0x0500, OP_DEC),
	ruleFD(0x0600, OP_INCSZ),
	ruleFD(0x0700, OP_DECSZ),
	ruleFD(0x0800, OP_SWAP),
	ruleFD(0x0900, OP_AND),
	ruleFD(0x0A00, OP_IOR),
	ruleFD(0x0B00, OP_XOR),
	ruleFD(0x0C00, OP_ADD),
	ruleFD(0x0D00, OP_SUB),
	ruleFD(0x0E00, OP_RCL),
	ruleFD(0x0F00, OP_RCR),

	ruleJump(0xF000, 0x6000, OP_JMP),
	ruleJump(0xF000, 0x7000, OP_CALL),
	ruleJump(0xFC00, 0x3000, OP_JZ),
	ruleJump(0xFC00, 0x3400, OP_JNZ),
	ruleJump(0xFC00, 0x3800, OP_JC),
	ruleJump(0xFC00, 0x3C00, OP_JNC),

	ruleOp(0x8000, 0x8000, OP_CMPZ, func(word uint16) Instruction {
		return MakeCmpz(bits.Trunc[bits.U7](word>>8), low(word))
	}),

	ruleFB(0x4000, OP_BC),
	ruleFB(0x4800, OP_BS),
	ruleFB(0x5000, OP_BTSC),
	ruleFB(0x5800, OP_BTSS),
}

// Rules returns the decode table in evaluation order.
func Rules() (list []Rule) {
	list = make([]Rule, len(rules))
	for n, r := range rules {
		list[n] = r.Rule
	}
	return
}

// Decode a word into an instruction.
//
// Words matched by no rule return ErrOpcode. Both ErrOpcode and
// ErrUnimplemented satisfy errors.Is(err, ErrDecode).
func Decode(word uint16) (in Instruction, err error) {
	for _, r := range rules {
		if word&r.Mask == r.Value {
			return r.build(word)
		}
	}

	err = ErrOpcode(word)
	return
}

// DecodeOrUnknown decodes a word, substituting OP_UNKNOWN on error.
func DecodeOrUnknown(word uint16) (in Instruction) {
	in, err := Decode(word)
	if err != nil {
		in = MakeUnknown(word)
	}
	return
}
