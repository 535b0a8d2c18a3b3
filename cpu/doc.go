// Package cpu implements the execution engine and assembler for the vmma
// virtual machine.
//
// The machine has a 4096 byte memory holding both the loaded program (from
// offset 0) and a single downward-growing stack (from the top of memory),
// a program counter (Pc) and a stack pointer (Sp). Every instruction is a
// 32-bit little-endian word whose top nibble selects the instruction class;
// the remaining bits are class-specific fields described by Field values.
//
// The assembler provides a small macro assembly language for the instruction
// set, supporting labels, equates, macros, and compile-time expression
// evaluation.
package cpu
