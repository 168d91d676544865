// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"io"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/pioc/isa"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

var parenExpr = regexp.MustCompile(`\$\([^\$]*\)`)

// Assembler is a single pass assembler for RISC8B source text.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	predefine map[string]string // Predefines
	Label     map[string]uint16 // Map of labels to word addresses.
	Equate    map[string]string // Map of equates.

	lines []Line
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the integer value of an equate, if it has one.
func valueOf(word string) (value int64, ok bool) {
	value, err := strconv.ParseInt(word, 0, 64)
	return value, err == nil
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value uint64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		// Non-integer equates may be registers or mnemonics.
		if v, ok := valueOf(str); ok {
			pred[key] = starlark.MakeInt64(v)
		}
	}
	for key, addr := range asm.Label {
		pred[key] = starlark.MakeInt(int(addr))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Uint64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// currentAddr gets the address of the next word, which may be one past 0xFFFF.
func (asm *Assembler) currentAddr() int {
	if len(asm.lines) == 0 {
		return 0
	}

	last := asm.lines[len(asm.lines)-1]

	return int(last.Addr) + len(last.Code)
}

// emit appends code at the current address. The last word must fit at 0xFFFF.
func (asm *Assembler) emit(lineno int, words []string, code ...uint16) (ln *Line, err error) {
	addr := asm.currentAddr()
	if end := addr + len(code) - 1; len(code) > 0 && end > 0xFFFF {
		err = &ErrFieldWidth{Value: uint64(end), Width: 16}
		return
	}

	asm.lines = append(asm.lines, Line{
		LineNo: lineno,
		Addr:   uint16(addr),
		Words:  words,
		Code:   code,
	})
	ln = &asm.lines[len(asm.lines)-1]
	return
}

// parseLine assembles a single line, returning true at '.end'.
func (asm *Assembler) parseLine(line string, lineno int) (done bool, err error) {
	// Set line number.
	asm.Equate["LINENO"] = strconv.Itoa(lineno)

	// Do $() evaluations
	line = parenExpr.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return strconv.FormatUint(value, 10)
	})
	if err != nil {
		return
	}

	words := fields(line)
	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if strings.EqualFold(words[0], ".equ") {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		return
	}

	for n, word := range words {
		// Check for equate next
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	// A listing address column, .L<n>, is a label too.
	if _, ok := isa.ParseLabel(words[0]); ok && len(words) > 1 {
		words[0] += ":"
	}

	for strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		addr := asm.currentAddr()
		if addr > 0xFFFF {
			err = &ErrFieldWidth{Value: uint64(addr), Width: 16}
			return
		}
		asm.Label[label] = uint16(addr)
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	// Resolve known labels in operands.
	for n, word := range words[1:] {
		addr, ok := asm.Label[word]
		if ok {
			words[1+n] = strconv.Itoa(int(addr))
		}
	}

	if strings.HasPrefix(words[0], ".") {
		return asm.parseDirective(words, lineno)
	}

	in, err := parseWords(words)
	if err != nil {
		return
	}

	code, err := isa.Encode(in)
	if err != nil {
		return
	}

	if asm.Verbose {
		logrus.WithFields(logrus.Fields{
			"line": lineno,
			"addr": asm.currentAddr(),
		}).Infof("0x%04X %v", code, in)
	}

	_, err = asm.emit(lineno, words, code)

	return
}

// parseDirective handles .org, .dw and .end.
func (asm *Assembler) parseDirective(words []string, lineno int) (done bool, err error) {
	switch strings.ToLower(words[0]) {
	case ".end":
		if len(words) != 1 {
			err = ErrOperandCount
			return
		}
		done = true
	case ".org":
		if len(words) != 2 {
			err = ErrOperandCount
			return
		}
		var addr uint64
		addr, err = number(words[1])
		if err != nil {
			return
		}
		here := uint64(asm.currentAddr())
		if addr < here {
			err = ErrOrgBackward
			return
		}
		if addr > 0xFFFF {
			err = &ErrFieldWidth{Value: addr, Width: 16}
			return
		}
		nop, _ := isa.Encode(isa.Make(isa.OP_NOP))
		_, err = asm.emit(lineno, words, slices.Repeat([]uint16{nop}, int(addr-here))...)
	case ".dw":
		if len(words) != 2 {
			err = ErrOperandCount
			return
		}
		value, perr := number(words[1])
		if perr != nil {
			// Labels defined later are linked at the end.
			var ln *Line
			ln, err = asm.emit(lineno, words, 0)
			if err == nil {
				ln.Link = words[1]
			}
			return
		}
		if value > 0xFFFF {
			err = &ErrFieldWidth{Value: value, Width: 16}
			return
		}
		_, err = asm.emit(lineno, words, uint16(value))
	default:
		err = ErrDirectiveInvalid
	}

	return
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {

	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Label = make(map[string]uint16, 16)
	asm.lines = asm.lines[:0]
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			logrus.Infof("%v: %v", lineno, text)
		}

		line = strings.TrimSpace(stripComment(text))

		var done bool
		done, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}
		if done {
			break
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	// Final linking of labels.
	for n := range asm.lines {
		ln := &asm.lines[n]

		if len(ln.Link) == 0 {
			continue
		}
		addr, ok := asm.Label[ln.Link]
		if !ok {
			lineno, line = ln.LineNo, strings.Join(ln.Words, " ")
			err = ErrLabelMissing(ln.Link)
			return
		}
		ln.Code[len(ln.Code)-1] = addr
	}

	prog = &Program{
		Lines: slices.Clone(asm.lines),
	}

	return
}

// Assemble parses source text with a fresh Assembler.
func Assemble(source string) (prog *Program, err error) {
	asm := &Assembler{}
	return asm.Parse(strings.NewReader(source))
}
