package asm

import (
	"iter"

	"github.com/ezrec/pioc/internal"
)

// Line is the assembled output of one source line.
type Line struct {
	LineNo int      // Source line number.
	Addr   uint16   // Word address of the first code word.
	Words  []string // Source words after substitution.
	Code   []uint16 // Assembled words.
	Link   string   // Label linked into the last code word.
}

type Program struct {
	Lines []Line
}

type Debug struct {
	*Line
	Index int
}

// Debug finds the source line of a word address.
func (prog *Program) Debug(addr uint16) (dbg Debug) {
	for n, ln := range prog.Lines {
		if addr >= ln.Addr && int(addr) < int(ln.Addr)+len(ln.Code) {
			dbg = Debug{
				Line:  &prog.Lines[n],
				Index: int(addr - ln.Addr),
			}
			break
		}
	}

	return
}

// Binary returns the program as little-endian bytes.
func (prog *Program) Binary() (data []byte) {
	return internal.AppendWords(data, prog.Codes())
}

// Codes iterates the program words with their addresses.
func (prog *Program) Codes() iter.Seq2[uint16, uint16] {
	return func(yield func(addr uint16, code uint16) bool) {
		for _, ln := range prog.Lines {
			for n, code := range ln.Code {
				if !yield(ln.Addr+uint16(n), code) {
					return
				}
			}
		}
	}
}
