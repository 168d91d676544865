// Package isa implements the RISC8B instruction set of the WCH PIOC core.
//
// Every 16-bit program word decodes to an Instruction through an ordered
// rule table, first match wins. Instructions render to assembly text with a
// data-flow comment, and a subset of them encode back to words.
package isa
