package listing

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"

	"github.com/ezrec/pioc/asm"
	"github.com/ezrec/pioc/isa"
)

func TestWords(t *testing.T) {
	assert := assert.New(t)

	words, err := Words([]byte{0x0C, 0x00, 0x05, 0x21})
	assert.NoError(err)
	assert.Equal([]uint16{0x000C, 0x2105}, words)

	words, err = Words([]byte{0x0C, 0x00, 0x05})
	assert.ErrorIs(err, ErrOddLength)
	assert.Nil(words)

	words, err = Words(nil)
	assert.NoError(err)
	assert.Empty(words)
}

func TestListing(t *testing.T) {
	assert := assert.New(t)

	logger, hook := test.NewNullLogger()
	ls := &Listing{Log: logger}

	data := []byte{
		0x0F, 0x00, // SLEEPX 3
		0x02, 0x01, // CLR $PC
		0x3C, 0x00, // no rule
		0x05, 0x60, // JMP .L5
	}

	entries, err := ls.Decode(data)
	assert.NoError(err)
	if !assert.Equal(4, len(entries)) {
		return
	}

	assert.Equal(isa.MakeK2(isa.OP_SLEEPX, 3), entries[0].Instruction)
	assert.Equal(isa.MakeUnknown(0x003C), entries[2].Instruction)
	assert.ErrorIs(entries[2].Err, isa.ErrDecode)
	assert.Equal(2, entries[2].Index)

	if assert.Equal(1, len(hook.Entries)) {
		assert.Equal(logrus.WarnLevel, hook.LastEntry().Level)
		assert.Equal(2, hook.LastEntry().Data["index"])
		assert.Equal("0x003C", hook.LastEntry().Data["word"])
	}

	var dump bytes.Buffer
	assert.NoError(ls.Dump(&dump, entries))
	assert.Equal(strings.Join([]string{
		"0: 0x000F Sleep(3_u2)",
		"1: 0x0102 Clear($PC)",
		"2: 0x003C Unknown(0x003C)",
		"3: 0x6005 Jump(.L5)",
		"",
	}, "\n"), dump.String())

	var text bytes.Buffer
	assert.NoError(ls.Disassemble(&text, entries))
	lines := strings.Split(text.String(), "\n")
	assert.Equal(".L0\t\tSLEEPX 3", lines[0])
	assert.Equal(".L1\t\tCLR $PC\t; 0x00->$PC, 1->Z", lines[1])
	assert.True(strings.HasPrefix(lines[2], ".L2\t\t.dw 0x003C\t; "), lines[2])
	assert.Equal(".L3\t\tJMP .L5", lines[3])
}

func TestListingVendor(t *testing.T) {
	assert := assert.New(t)

	logger, _ := test.NewNullLogger()
	ls := &Listing{Log: logger, Syntax: isa.SYNTAX_VENDOR, Verbose: true}

	var out bytes.Buffer
	assert.NoError(ls.Write(&out, []byte{0x02, 0x01}))
	assert.Equal("0: 0x0102 Clear($PC)\n.L0\t\tCLR SFR_PRG_COUNT\t; 0x00->SFR_PRG_COUNT, 1->Z\n", out.String())
}

func TestListingStrict(t *testing.T) {
	assert := assert.New(t)

	ls := &Listing{Strict: true}

	entries, err := ls.Decode([]byte{0x00, 0x00, 0x40, 0x00})
	assert.ErrorIs(err, isa.ErrDecode)
	assert.Nil(entries)

	var ew *ErrWord
	if assert.ErrorAs(err, &ew) {
		assert.Equal(1, ew.Index)
	}

	err = ls.Write(io.Discard, []byte{0x00})
	assert.ErrorIs(err, ErrOddLength)
}

func TestListingStrictIndex(t *testing.T) {
	assert := assert.New(t)

	image := make([]byte, 1235*2)
	image[1234*2] = 0x3C

	ls := &Listing{Strict: true}
	_, err := ls.Decode(image)
	if assert.Error(err) {
		assert.True(strings.HasPrefix(err.Error(), ".L1234: "), err.Error())
	}
}

func TestListingAssembles(t *testing.T) {
	assert := assert.New(t)

	image := []byte{0x08, 0x00, 0x0E, 0x00, 0x13, 0x00, 0x30, 0x00}

	logger, _ := test.NewNullLogger()
	ls := &Listing{Log: logger}
	entries, err := ls.Decode(image)
	assert.NoError(err)

	var text bytes.Buffer
	assert.NoError(ls.Disassemble(&text, entries))

	prog, err := asm.Assemble(text.String())
	if assert.NoError(err) {
		assert.Equal(image, prog.Binary())
	}
}
