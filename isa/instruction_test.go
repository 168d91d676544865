package isa

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/pioc/sfr"
)

func TestDest(t *testing.T) {
	assert := assert.New(t)

	for _, b := range []bool{false, true} {
		assert.Equal(b, DestOf(b).Bool())
	}
	assert.Equal(DEST_A, DestOf(false))
	assert.Equal("A", DEST_A.String())
	assert.Equal("F", DEST_F.String())
}

func TestOps(t *testing.T) {
	assert := assert.New(t)

	ops := Ops()
	assert.Equal(OP_COUNT-1, len(ops))

	seen := map[string]bool{}
	for _, op := range ops {
		assert.True(op.Valid())
		assert.False(seen[op.String()], op.String())
		seen[op.String()] = true
		assert.NotEqual(SHAPE_RAW, op.Shape())
	}

	assert.Equal("Op(99)", Op(99).String())
	assert.False(Op(-1).Valid())
	assert.Equal(uint(12), OP_CALL.LabelWidth())
	assert.Equal(uint(10), OP_JC.LabelWidth())
	assert.Equal(uint(8), OP_CMPZ.LabelWidth())
	assert.Equal(uint(0), OP_MOVL.LabelWidth())
}

func TestMakeShapeMismatch(t *testing.T) {
	assert := assert.New(t)

	assert.Panics(func() { Make(OP_MOVL) })
	assert.Panics(func() { MakeK(OP_NOP, 1) })
	assert.Panics(func() { MakeJump(OP_CMPZ, 1) })
	assert.NotPanics(func() { MakeK2(OP_BCTC, 1) })
}

func TestMakeTruncates(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Label(0x234), MakeJump(OP_JZ, 0x1234).L)
	assert.Equal(Label(0x234), MakeJump(OP_JMP, 0x1234).L)
	assert.True(MakeJump(OP_JZ, 0xFFFF).Canonical())
}

func TestCanonical(t *testing.T) {
	assert := assert.New(t)

	in := Make(OP_NOP)
	assert.True(in.Canonical())

	in.K = 1
	assert.False(in.Canonical())

	in = MakeWait(OP_WAITB, 1)
	in.B = 8
	assert.False(in.Canonical())

	in = MakeFD(OP_INC, 1, DEST_F)
	in.D = 2
	assert.False(in.Canonical())

	in = MakeJump(OP_JNZ, 1)
	in.L = 0x400
	assert.False(in.Canonical())

	assert.False(Instruction{Op: Op(100)}.Canonical())
}

func TestRegister(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(sfr.SFR_PRG_COUNT, Reg(0x02).SFR())
	assert.Equal(sfr.SFR_ERROR, Reg(0x40).SFR())
	assert.Equal(Reg(0x02), RegExt(0x102).Normalize())
	assert.Equal("$PC", RegExt(0x102).String())
}

func TestOperandNames(t *testing.T) {
	assert := assert.New(t)

	for n := range 4 {
		b, ok := ParseBitOut(BitOut(n).String())
		assert.True(ok)
		assert.Equal(BitOut(n), b)

		c, ok := ParseBitIn(BitIn(n).String())
		assert.True(ok)
		assert.Equal(BitIn(n), c)

		d, ok := ParseBitInC(BitInC(n).String())
		assert.True(ok)
		assert.Equal(BitInC(n), d)
	}

	for n := range 8 {
		w, ok := ParseWaitBit(WaitBit(n).String())
		assert.True(ok)
		assert.Equal(WaitBit(n), w)
	}

	_, ok := ParseWaitBit("WB_NONE")
	assert.False(ok)

	l, ok := ParseLabel(".L12")
	assert.True(ok)
	assert.Equal(Label(12), l)
	_, ok = ParseLabel(".Lx")
	assert.False(ok)
	_, ok = ParseLabel("12")
	assert.False(ok)
}
