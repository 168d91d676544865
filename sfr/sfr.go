// Package sfr names the special function registers of the RISC8B core.
//
// Registers occupy addresses 0x00 to 0x3F of the register file. Each has a
// short assembler name (PC, SR, D0) and the name used by the vendor headers
// (SFR_PRG_COUNT, SFR_STATUS_REG, SFR_DATA_REG0).
package sfr

import (
	"strconv"
	"strings"
)

// SFR is a special function register identity.
type SFR uint8

const (
	SFR_INDIR_PORT  = SFR(0x00) // Indirect port 1, @SFR_INDIR_ADDR
	SFR_INDIR_PORT2 = SFR(0x01) // Indirect port 2, @SFR_INDIR_ADDR2
	SFR_PRG_COUNT   = SFR(0x02) // Program counter
	SFR_STATUS_REG  = SFR(0x03) // Status register
	SFR_INDIR_ADDR  = SFR(0x04) // Indirect address 1, aka. F1
	SFR_TMR0_COUNT  = SFR(0x05) // Timer 0 count
	SFR_TIMER_CTRL  = SFR(0x06) // Timer control
	SFR_TMR0_INIT   = SFR(0x07) // Timer 0 reload
	SFR_BIT_CYCLE   = SFR(0x08) // Encoding bit period, host accessible
	SFR_INDIR_ADDR2 = SFR(0x09) // Indirect address 2, post-incremented
	SFR_PORT_DIR    = SFR(0x0A) // Port direction and mode
	SFR_PORT_IO     = SFR(0x0B) // Port input/output
	SFR_BIT_CONFIG  = SFR(0x0C) // Bit coder configuration
	SFR_SYS_CFG     = SFR(0x1C) // System configuration
	SFR_CTRL_RD     = SFR(0x1D) // Host control, read side
	SFR_CTRL_WR     = SFR(0x1E) // Host control, write side
	SFR_DATA_EXCH   = SFR(0x1F) // Data exchange, aka. F2
	SFR_DATA_REG0   = SFR(0x20)
	SFR_DATA_REG1   = SFR(0x21)
	SFR_DATA_REG2   = SFR(0x22)
	SFR_DATA_REG3   = SFR(0x23)
	SFR_DATA_REG4   = SFR(0x24)
	SFR_DATA_REG5   = SFR(0x25)
	SFR_DATA_REG6   = SFR(0x26)
	SFR_DATA_REG7   = SFR(0x27)
	SFR_DATA_REG8   = SFR(0x28)
	SFR_DATA_REG9   = SFR(0x29)
	SFR_DATA_REG10  = SFR(0x2A)
	SFR_DATA_REG11  = SFR(0x2B)
	SFR_DATA_REG12  = SFR(0x2C)
	SFR_DATA_REG13  = SFR(0x2D)
	SFR_DATA_REG14  = SFR(0x2E)
	SFR_DATA_REG15  = SFR(0x2F)
	SFR_DATA_REG16  = SFR(0x30)
	SFR_DATA_REG17  = SFR(0x31)
	SFR_DATA_REG18  = SFR(0x32)
	SFR_DATA_REG19  = SFR(0x33)
	SFR_DATA_REG20  = SFR(0x34)
	SFR_DATA_REG21  = SFR(0x35)
	SFR_DATA_REG22  = SFR(0x36)
	SFR_DATA_REG23  = SFR(0x37)
	SFR_DATA_REG24  = SFR(0x38)
	SFR_DATA_REG25  = SFR(0x39)
	SFR_DATA_REG26  = SFR(0x3A)
	SFR_DATA_REG27  = SFR(0x3B)
	SFR_DATA_REG28  = SFR(0x3C)
	SFR_DATA_REG29  = SFR(0x3D)
	SFR_DATA_REG30  = SFR(0x3E)
	SFR_DATA_REG31  = SFR(0x3F)

	SFR_ERROR = SFR(0xFF) // No register at the address
)

const (
	SFR_LAST      = 0x3F // Highest register file address with a register.
	DATA_REG_BASE = 0x20 // Address of D0.
	DATA_REG_LAST = 31   // Highest data register number.
)

type names struct {
	short  string
	vendor string
}

// named lists the control registers. Data registers are computed.
var named = map[SFR]names{
	SFR_INDIR_PORT:  {"IP1", "SFR_INDIR_PORT"},
	SFR_INDIR_PORT2: {"IP2", "SFR_INDIR_PORT2"},
	SFR_PRG_COUNT:   {"PC", "SFR_PRG_COUNT"},
	SFR_STATUS_REG:  {"SR", "SFR_STATUS_REG"},
	SFR_INDIR_ADDR:  {"IA1", "SFR_INDIR_ADDR"},
	SFR_TMR0_COUNT:  {"TMRCNT", "SFR_TMR0_COUNT"},
	SFR_TIMER_CTRL:  {"TMRCTL", "SFR_TIMER_CTRL"},
	SFR_TMR0_INIT:   {"TMRINIT", "SFR_TMR0_INIT"},
	SFR_BIT_CYCLE:   {"BITCYC", "SFR_BIT_CYCLE"},
	SFR_INDIR_ADDR2: {"IA2", "SFR_INDIR_ADDR2"},
	SFR_PORT_DIR:    {"PDIR", "SFR_PORT_DIR"},
	SFR_PORT_IO:     {"PIO", "SFR_PORT_IO"},
	SFR_BIT_CONFIG:  {"BITCFG", "SFR_BIT_CONFIG"},
	SFR_SYS_CFG:     {"SYSCFG", "SFR_SYS_CFG"},
	SFR_CTRL_RD:     {"CTLRD", "SFR_CTRL_RD"},
	SFR_CTRL_WR:     {"CTLWR", "SFR_CTRL_WR"},
	SFR_DATA_EXCH:   {"DEXCH", "SFR_DATA_EXCH"},
}

// table maps every register file address to its identity.
var table [256]SFR

// byShort and byVendor are the reverse name maps for the control registers.
var (
	byShort  = map[string]SFR{}
	byVendor = map[string]SFR{}
)

func init() {
	for code := range table {
		table[code] = SFR_ERROR
	}
	for reg, name := range named {
		table[reg] = reg
		byShort[name.short] = reg
		byVendor[name.vendor] = reg
	}
	for n := range DATA_REG_LAST + 1 {
		reg := SFR(DATA_REG_BASE + n)
		table[reg] = reg
		byVendor[reg.Vendor()] = reg
	}
}

// Lookup returns the register at a register file address.
// Addresses without a register return SFR_ERROR.
func Lookup(code uint8) SFR {
	return table[code]
}

// Valid returns true if the identity names a register.
func (reg SFR) Valid() bool {
	return reg != SFR_ERROR && table[reg] == reg
}

// Code returns the register file address of the register.
func (reg SFR) Code() uint8 {
	return uint8(reg)
}

// IsData returns true for the general data registers D0..D31.
func (reg SFR) IsData() bool {
	return reg >= SFR_DATA_REG0 && reg <= SFR_DATA_REG31
}

// Short returns the short assembler name.
func (reg SFR) Short() string {
	switch {
	case !reg.Valid():
		return "ERR"
	case reg.IsData():
		return "D" + strconv.Itoa(int(reg-SFR_DATA_REG0))
	}
	return named[reg].short
}

// Vendor returns the vendor header name.
func (reg SFR) Vendor() string {
	switch {
	case !reg.Valid():
		return "!!SFR_ERROR!!"
	case reg.IsData():
		return "SFR_DATA_REG" + strconv.Itoa(int(reg-SFR_DATA_REG0))
	}
	return named[reg].vendor
}

// String returns the short name with its '$' sigil.
func (reg SFR) String() string {
	return "$" + reg.Short()
}

// Parse returns the register for a short name, with or without its '$' sigil.
// Data registers are recognized by number, D0 to D31.
func Parse(name string) (reg SFR, ok bool) {
	name = strings.ToUpper(strings.TrimPrefix(name, "$"))

	if reg, ok = byShort[name]; ok {
		return
	}

	if name == "ERR" {
		return SFR_ERROR, true
	}

	if num, found := strings.CutPrefix(name, "D"); found {
		n, err := strconv.ParseUint(num, 10, 8)
		if err != nil || n > DATA_REG_LAST {
			return
		}
		return SFR_DATA_REG0 + SFR(n), true
	}

	return
}

// ParseVendor returns the register for a vendor header name.
func ParseVendor(name string) (reg SFR, ok bool) {
	reg, ok = byVendor[strings.ToUpper(name)]
	return
}

// All returns every named register in address order.
func All() (regs []SFR) {
	for code := range SFR_LAST + 1 {
		if reg := table[code]; reg != SFR_ERROR {
			regs = append(regs, reg)
		}
	}
	return
}
