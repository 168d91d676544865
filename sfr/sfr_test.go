package sfr

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupTotal(t *testing.T) {
	assert := assert.New(t)

	for code := range 256 {
		reg := Lookup(uint8(code))
		if code > SFR_LAST {
			assert.Equal(SFR_ERROR, reg, "code 0x%02x", code)
			continue
		}
		if reg != SFR_ERROR {
			assert.Equal(uint8(code), reg.Code())
		}
	}
}

func TestLookupGaps(t *testing.T) {
	assert := assert.New(t)

	for code := 0x0D; code <= 0x1B; code++ {
		assert.Equal(SFR_ERROR, Lookup(uint8(code)), "code 0x%02x", code)
	}
}

func TestDataRegisters(t *testing.T) {
	assert := assert.New(t)

	for code := 0x20; code <= 0x3F; code++ {
		reg := Lookup(uint8(code))
		assert.True(reg.IsData())
		assert.Equal(fmt.Sprintf("D%d", code-0x20), reg.Short())
		assert.Equal(fmt.Sprintf("SFR_DATA_REG%d", code-0x20), reg.Vendor())
	}
}

func TestNames(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("PC", SFR_PRG_COUNT.Short())
	assert.Equal("SR", SFR_STATUS_REG.Short())
	assert.Equal("DEXCH", SFR_DATA_EXCH.Short())
	assert.Equal("SFR_PRG_COUNT", SFR_PRG_COUNT.Vendor())
	assert.Equal("SFR_DATA_REG0", SFR_DATA_REG0.Vendor())
	assert.Equal("$PC", SFR_PRG_COUNT.String())

	assert.Equal("ERR", SFR_ERROR.Short())
	assert.Equal("!!SFR_ERROR!!", SFR_ERROR.Vendor())
	assert.Equal("$ERR", Lookup(0x40).String())
	assert.False(SFR_ERROR.Valid())
	assert.False(SFR(0x10).Valid())
}

func TestAll(t *testing.T) {
	assert := assert.New(t)

	regs := All()
	assert.Equal(49, len(regs))
	assert.Equal(SFR_INDIR_PORT, regs[0])
	assert.Equal(SFR_DATA_REG31, regs[len(regs)-1])
}

func TestNamesInjective(t *testing.T) {
	assert := assert.New(t)

	shorts := map[string]SFR{}
	vendors := map[string]SFR{}
	for _, reg := range All() {
		_, dup := shorts[reg.Short()]
		assert.False(dup, reg.Short())
		shorts[reg.Short()] = reg

		_, dup = vendors[reg.Vendor()]
		assert.False(dup, reg.Vendor())
		vendors[reg.Vendor()] = reg
	}
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	for _, reg := range All() {
		got, ok := Parse(reg.Short())
		assert.True(ok, reg.Short())
		assert.Equal(reg, got)

		got, ok = Parse(reg.String())
		assert.True(ok, reg.String())
		assert.Equal(reg, got)

		got, ok = ParseVendor(reg.Vendor())
		assert.True(ok, reg.Vendor())
		assert.Equal(reg, got)
	}

	reg, ok := Parse("d7")
	assert.True(ok)
	assert.Equal(SFR_DATA_REG7, reg)

	reg, ok = Parse("err")
	assert.True(ok)
	assert.Equal(SFR_ERROR, reg)

	for _, bad := range []string{"", "D", "D32", "D-1", "DX", "R0", "D256", "SFR_PRG_COUNT"} {
		_, ok = Parse(bad)
		assert.False(ok, bad)
	}

	_, ok = ParseVendor("PC")
	assert.False(ok)
}
