// Package asm implements a two-pass assembler for the LC-3 instruction set. Source text is
// lexed, parsed into a flat table of statements, scanned once to build a symbol table, and
// scanned a second time to encode each statement into object code.
//
// # Grammar
//
//	program    = { line } ;
//	line       = [ label ] [ statement ] [ comment ] ;
//	label      = identifier ':' | identifier ;
//	statement  = directive | instruction ;
//	directive  = '.ORIG' hex
//	           | '.END'
//	           | '.FILL' ( number | hex | identifier )
//	           | '.BLKW' ( number | hex )
//	           | '.STRINGZ' string ;
//	instruction = opcode { operand } ;
//	operand    = register | immediate | identifier ;
//	comment    = ';' { any character } ;
//
// See token.go for the lexical grammar and ops.go for the per-mnemonic operand shapes.
package asm
