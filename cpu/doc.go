// Package cpu implements the Intcode machine.
//
// The machine consists of an instruction pointer (Ip), a relative base for
// relative-mode addressing, a sparse zero-default memory, a queue of pending
// inputs with an optional interactive console, and an append-only output log.
//
// Instructions are decimal words: the low two digits are the opcode, and the
// three digits above them are the addressing modes of the first, second and
// third operand. Each machine runs synchronously on the calling goroutine;
// independent machines (including clones) may be driven concurrently by the
// caller.
package cpu
