package isa

import (
	"fmt"
	"strings"
)

// Syntax selects how registers are spelled in assembly text.
type Syntax int

const (
	SYNTAX_SHORT  = Syntax(0) // $PC, $D0
	SYNTAX_VENDOR = Syntax(1) // SFR_PRG_COUNT, SFR_DATA_REG0
)

// comments are data-flow notes, formatted with the rendered operands.
var comments = map[Op]string{
	OP_CLR:    "0x00->%[1]s, 1->Z",
	OP_MOVA:   "A->%[1]s",
	OP_MOV:    "%[1]s->%[2]s",
	OP_INC:    "%[1]s+1->%[2]s",
	OP_DEC:    "%[1]s-1->%[2]s",
	OP_INCSZ:  "%[1]s+1->%[2]s, skip if Z",
	OP_DECSZ:  "%[1]s-1->%[2]s, skip if Z",
	OP_SWAP:   "%[1]s[3:0]<=>%[1]s[7:4] -> %[2]s",
	OP_AND:    "%[1]s&A->%[2]s",
	OP_IOR:    "%[1]s|A->%[2]s",
	OP_XOR:    "%[1]s^A->%[2]s",
	OP_ADD:    "%[1]s+A->%[2]s",
	OP_SUB:    "%[1]s-A->%[2]s",
	OP_RCL:    "{%[1]s,C}<<1->%[2]s,%[1]s[7]->C",
	OP_RCR:    "{C,%[1]s}>>1->%[2]s,%[1]s[0]->C",
	OP_MOVIP:  "%[1]s->SFR_INDIR_ADDR",
	OP_MOVIA:  "%[1]s->SFR_INDIR_ADDR2",
	OP_MOVA1F: "%[1]s->SFR_PORT_DIR",
	OP_MOVA2F: "%[1]s->SFR_PORT_IO",
	OP_MOVA1P: "%[1]s->@SFR_INDIR_ADDR",
	OP_MOVA2P: "%[1]s->@SFR_INDIR_ADDR2",
	OP_MOVL:   "%[1]s->A",
	OP_ANDL:   "%[1]s&A->A",
	OP_IORL:   "%[1]s|A->A",
	OP_XORL:   "%[1]s^A->A",
	OP_ADDL:   "%[1]s+A->A",
	OP_SUBL:   "A-%[1]s->A",
	OP_CMPLN:  "%[1]s+A -> Z,C",
	OP_CMPL:   "%[1]s-A -> Z,C",
	OP_BC:     "0->%[1]s[%[2]s]",
	OP_BS:     "1->%[1]s[%[2]s]",
	OP_BTSC:   "skip if %[1]s[%[2]s]==0",
	OP_BTSS:   "skip if %[1]s[%[2]s]==1",
	OP_BCTC:   "%[1]s->C",
	OP_BP1F:   "SFR_INDIR_ADDR[%[2]s]-> %[1]s",
	OP_BP2F:   "SFR_DATA_EXCH[%[2]s]->%[1]s",
	OP_BG1F:   "%[1]s->SFR_INDIR_ADDR[%[2]s]",
	OP_BG2F:   "%[1]s->SFR_DATA_EXCH[%[2]s]",
	OP_CMPZ:   "%[2]s->PC[7:0] if A==%[1]s",
}

func (syntax Syntax) reg(r Reg) string {
	if syntax == SYNTAX_VENDOR {
		return r.SFR().Vendor()
	}
	return r.SFR().String()
}

// Operands returns the rendered operands of an instruction.
func (syntax Syntax) Operands(in Instruction) (args []string, err error) {
	switch in.Op.Shape() {
	case SHAPE_NONE:
	case SHAPE_K2:
		args = append(args, in.K2.String())
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
		args = append(args, in.B.String())
	case SHAPE_F:
		args = append(args, syntax.reg(in.F))
	case SHAPE_FX:
		args = append(args, syntax.reg(in.FX.Normalize()))
	case SHAPE_FX_D:
		args = append(args, syntax.reg(in.FX.Normalize()), in.D.String())
	case SHAPE_F_D:
		args = append(args, syntax.reg(in.F), in.D.String())
	case SHAPE_K:
		args = append(args, in.K.String())
	case SHAPE_K9:
		args = append(args, in.K9.String())
	case SHAPE_K10:
		args = append(args, in.K10.String())
	case SHAPE_F_B:
		args = append(args, syntax.reg(in.F), in.B.String())
	case SHAPE_L12, SHAPE_L10:
		args = append(args, in.L.String())
	case SHAPE_K7_L8:
		args = append(args, in.K7.String(), in.L.String())
	default:
		err = &ErrRender{Word: in.Word}
	}

	return
}

// Render an instruction as an assembly line.
func (syntax Syntax) Render(in Instruction) (text string, err error) {
	args, err := syntax.Operands(in)
	if err != nil {
		return
	}

	text = in.Op.String()
	if len(args) > 0 {
		text += " " + strings.Join(args, ", ")
	}

	if comment, ok := comments[in.Op]; ok {
		values := make([]any, len(args))
		for n, arg := range args {
			values[n] = arg
		}
		text += "\t; " + fmt.Sprintf(comment, values...)
	}

	return
}

// Render an instruction as an assembly line with short register names.
func Render(in Instruction) (string, error) {
	return SYNTAX_SHORT.Render(in)
}
