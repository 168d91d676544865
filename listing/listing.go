// Package listing disassembles RISC8B program images.
package listing

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/ezrec/pioc/internal"
	"github.com/ezrec/pioc/isa"
	"github.com/ezrec/pioc/translate"
)

var f = translate.From

var ErrOddLength = errors.New(f("image length is odd"))

// ErrWord is a decode failure at a word index.
type ErrWord struct {
	Index int
	Err   error
}

func (err *ErrWord) Error() string {
	return f(".L%s: %v", strconv.Itoa(err.Index), err.Err)
}

func (err *ErrWord) Unwrap() error {
	return err.Err
}

// Words splits a program image into little-endian words.
func Words(data []byte) (words []uint16, err error) {
	if len(data)%2 != 0 {
		err = ErrOddLength
		return
	}

	words = make([]uint16, 0, len(data)/2)
	for _, word := range internal.Words(data) {
		words = append(words, word)
	}

	return
}

// Entry is one decoded program word.
type Entry struct {
	Index       int
	Word        uint16
	Instruction isa.Instruction
	Err         error // Decode error, Instruction is OP_UNKNOWN.
}

// Listing decodes and prints program images.
type Listing struct {
	Verbose bool       // If set, logs every decoded word.
	Syntax  isa.Syntax // Register spelling of the listing.
	Strict  bool       // If set, stop at the first undecodable word.

	Log *logrus.Logger // Defaults to the logrus standard logger.
}

func (ls *Listing) log() *logrus.Logger {
	if ls.Log == nil {
		return logrus.StandardLogger()
	}
	return ls.Log
}

// Decode every word of a program image, in order.
func (ls *Listing) Decode(data []byte) (entries []Entry, err error) {
	words, err := Words(data)
	if err != nil {
		return
	}

	entries = make([]Entry, 0, len(words))
	for index, word := range words {
		fields := logrus.Fields{
			"index": index,
			"word":  fmt.Sprintf("0x%04X", word),
		}

		in, derr := isa.Decode(word)
		if derr != nil {
			if ls.Strict {
				entries, err = nil, &ErrWord{Index: index, Err: derr}
				return
			}
			ls.log().WithFields(fields).WithError(derr).Warn("undecodable word")
			in = isa.MakeUnknown(word)
		} else if ls.Verbose {
			ls.log().WithFields(fields).Debug(in.String())
		}

		entries = append(entries, Entry{Index: index, Word: word, Instruction: in, Err: derr})
	}

	return
}

// Dump prints the index, word and debug form of every entry.
func (ls *Listing) Dump(w io.Writer, entries []Entry) (err error) {
	for _, entry := range entries {
		_, err = fmt.Fprintf(w, "%d: 0x%04X %v\n", entry.Index, entry.Word, entry.Instruction)
		if err != nil {
			return
		}
	}

	return
}

// Disassemble prints every entry as a labelled assembly line.
//
// Words without assembly text are written as .dw with the decode error.
func (ls *Listing) Disassemble(w io.Writer, entries []Entry) (err error) {
	for _, entry := range entries {
		text, rerr := ls.Syntax.Render(entry.Instruction)
		if rerr != nil {
			why := entry.Err
			if why == nil {
				why = rerr
			}
			text = fmt.Sprintf(".dw 0x%04X\t; %v", entry.Word, why)
		}

		_, err = fmt.Fprintf(w, ".L%d\t\t%s\n", entry.Index, text)
		if err != nil {
			return
		}
	}

	return
}

// Write decodes a program image, then dumps and disassembles it.
func (ls *Listing) Write(w io.Writer, data []byte) (err error) {
	entries, err := ls.Decode(data)
	if err != nil {
		return
	}

	err = ls.Dump(w, entries)
	if err != nil {
		return
	}

	return ls.Disassemble(w, entries)
}
