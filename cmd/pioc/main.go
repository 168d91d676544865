// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ezrec/pioc/asm"
	"github.com/ezrec/pioc/isa"
	"github.com/ezrec/pioc/listing"
)

func main() {
	var compile string
	var output string
	var vendor bool
	var strict bool
	var verbose bool

	flag.StringVar(&compile, "c", "", ".asm file to assemble")
	flag.StringVar(&output, "o", "-", "Output file")
	flag.BoolVar(&vendor, "vendor", false, "List registers by vendor header name")
	flag.BoolVar(&strict, "strict", false, "Stop listing at the first undecodable word")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	var ouf io.Writer = os.Stdout
	if output != "-" {
		file, err := os.Create(output)
		if err != nil {
			logrus.Fatalf("%v: %v", output, err)
		}
		defer file.Close()
		ouf = file
	}

	// Assemble a source file into a program image.
	if len(compile) != 0 {
		if flag.NArg() != 0 {
			logrus.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
		}

		inf, err := os.Open(compile)
		if err != nil {
			logrus.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		assembler := &asm.Assembler{Verbose: verbose}
		prog, err := assembler.Parse(inf)
		if err != nil {
			logrus.Fatalf("%v: %v", compile, err)
		}

		_, err = ouf.Write(prog.Binary())
		if err != nil {
			logrus.Fatalf("%v: %v", output, err)
		}
		return
	}

	if flag.NArg() != 1 {
		logrus.Fatalf("usage: %v [-vendor] [-strict] [-v] [-o out] file.bin | -c file.asm", os.Args[0])
	}

	input := flag.Arg(0)
	data, err := os.ReadFile(input)
	if err != nil {
		logrus.Fatalf("%v: %v", input, err)
	}

	ls := &listing.Listing{
		Verbose: verbose,
		Strict:  strict,
	}
	if vendor {
		ls.Syntax = isa.SYNTAX_VENDOR
	}

	err = ls.Write(ouf, data)
	if err != nil {
		logrus.Fatalf("%v: %v", input, err)
	}
}
