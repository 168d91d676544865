package isa

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ezrec/pioc/bits"
	"github.com/ezrec/pioc/sfr"
)

// Dest selects where a register operation stores its result.
type Dest int

const (
	DEST_A = Dest(0) // A
	DEST_F = Dest(1) // F
)

// DestOf returns DEST_F for true, DEST_A for false.
func DestOf(toF bool) Dest {
	if toF {
		return DEST_F
	}
	return DEST_A
}

// Bool returns true for DEST_F.
func (d Dest) Bool() bool {
	return d == DEST_F
}

// Reg is a direct 8-bit register address.
type Reg uint8

// SFR returns the register identity of the address.
func (r Reg) SFR() sfr.SFR {
	return sfr.Lookup(uint8(r))
}

func (r Reg) String() string {
	return r.SFR().String()
}

// RegExt is a 9-bit register address.
type RegExt bits.U9

// Normalize drops the page bit.
func (r RegExt) Normalize() Reg {
	return Reg(uint16(r) & 0xFF)
}

// SFR returns the register identity of the normalized address.
func (r RegExt) SFR() sfr.SFR {
	return r.Normalize().SFR()
}

func (r RegExt) String() string {
	return r.Normalize().String()
}

// Label is a control transfer target, a raw word address.
type Label uint16

func (l Label) String() string {
	return fmt.Sprintf(".L%d", uint16(l))
}

// ParseLabel parses the '.L<n>' form of a label.
func ParseLabel(text string) (l Label, ok bool) {
	if len(text) < 3 || !strings.EqualFold(text[:2], ".L") {
		return
	}
	n, err := strconv.ParseUint(text[2:], 10, 16)
	if err != nil {
		return
	}
	return Label(n), true
}

var (
	bitOutNames  = [4]string{"Status[FLAG_C]", "BitCycle[TX_O0]", "PortIO[OUT0]", "PortIO[OUT1]"}
	bitInNames   = [4]string{"Status[FLAG_C]", "BitCycle[RX_I0]", "PortIO[IN0]", "PortIO[IN1]"}
	bitInCNames  = [4]string{"XOR_IN0", "BitCycle[RX_I0]", "PortIO[IN0]", "PortIO[IN1]"}
	waitBitNames = [8]string{
		"WB_DATA_SW_MR_0",
		"WB_BIT_CYC_TAIL_1",
		"WB_PORT_I0_FALL",
		"WB_PORT_I0_RISE",
		"WB_DATA_MW_SR_1",
		"WB_PORT_XOR1_1",
		"WB_PORT_XOR0_0",
		"WB_PORT_XOR0_1",
	}
)

// BitOut is the bit source of a BP1F or BP2F route.
type BitOut bits.U2

func (b BitOut) String() string { return bitOutNames[b&3] }

// BitIn is the bit destination of a BG1F or BG2F route.
type BitIn bits.U2

func (b BitIn) String() string { return bitInNames[b&3] }

// BitInC is the carry source of BCTC.
type BitInC bits.U2

func (b BitInC) String() string { return bitInCNames[b&3] }

// WaitBit is the wait condition of WAITB.
type WaitBit bits.U3

func (b WaitBit) String() string { return waitBitNames[b&7] }

func lookupName(names []string, text string) (n int, ok bool) {
	for i, name := range names {
		if strings.EqualFold(name, text) {
			return i, true
		}
	}
	return
}

// ParseBitOut parses a bit source name.
func ParseBitOut(text string) (b BitOut, ok bool) {
	n, ok := lookupName(bitOutNames[:], text)
	return BitOut(n), ok
}

// ParseBitIn parses a bit destination name.
func ParseBitIn(text string) (b BitIn, ok bool) {
	n, ok := lookupName(bitInNames[:], text)
	return BitIn(n), ok
}

// ParseBitInC parses a carry source name.
func ParseBitInC(text string) (b BitInC, ok bool) {
	n, ok := lookupName(bitInCNames[:], text)
	return BitInC(n), ok
}

// ParseWaitBit parses a wait condition name.
func ParseWaitBit(text string) (b WaitBit, ok bool) {
	n, ok := lookupName(waitBitNames[:], text)
	return WaitBit(n), ok
}
