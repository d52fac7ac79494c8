// Package machine implements the register machine and assembler for the
// tandem interpreter.
//
// A machine consists of a program counter, 26 signed 64-bit registers named
// 'a' through 'z', and a pair of FIFO message queues. Programs are assembled
// from a seven-instruction assembly language (snd, set, add, mul, mod, rcv,
// jgz) into a flat, immutable instruction sequence that any number of
// machines may execute against.
//
// The assembler supports ';' comments, '.equ' equates, and compile-time
// $( ... ) constant expressions.
package machine
