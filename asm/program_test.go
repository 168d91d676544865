package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Lines: []Line{
			{LineNo: 1, Addr: 0, Words: []string{"nop"}, Code: []uint16{0x0000}},
			{LineNo: 2, Addr: 1, Words: []string{".org", "4"}, Code: []uint16{0, 0, 0}},
			{LineNo: 3, Addr: 4, Words: []string{"ret"}, Code: []uint16{0x0030}},
		},
	}

	dbg := prog.Debug(0)
	assert.NotNil(dbg.Line)
	assert.Equal(1, dbg.LineNo)
	assert.Equal(0, dbg.Index)

	dbg = prog.Debug(3)
	assert.NotNil(dbg.Line)
	assert.Equal(2, dbg.LineNo)
	assert.Equal(2, dbg.Index)

	dbg = prog.Debug(4)
	assert.NotNil(dbg.Line)
	assert.Equal(3, dbg.LineNo)
	assert.Equal(0, dbg.Index)
}

func TestProgram_Debug_NotFound(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{}
	assert.Nil(prog.Debug(0).Line)

	prog.Lines = []Line{{LineNo: 1, Addr: 0, Code: []uint16{0x0008}}}
	assert.Nil(prog.Debug(1).Line)
}

func TestProgram_Codes(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Lines: []Line{
			{Addr: 0, Code: []uint16{0x0008, 0x000C}},
			{Addr: 2, Code: []uint16{0x0030}},
		},
	}

	var addrs []uint16
	for addr := range prog.Codes() {
		addrs = append(addrs, addr)
		if addr == 1 {
			break
		}
	}
	assert.Equal([]uint16{0, 1}, addrs)

	assert.Equal([]byte{0x08, 0x00, 0x0C, 0x00, 0x30, 0x00}, prog.Binary())
}
