// Package encoder assembles a flat nibble stream into note records according to a
// field-order pattern and derives a start/end event pair per complete record.
//
// # Assembly
//
// Each call to Encoder.Assemble pops whole cycles, one pattern length at a time,
// from the front of the queue. Cycle k contributes to record k; record numbering
// restarts at 0 on every call. Within a cycle, position i feeds the field kind at
// pattern position i. The first nibble of a kind creates the field and every
// further nibble of the same kind is merged in as
//
//	value = value<<4 | nibble
//
// so a pattern that repeats a symbol yields a wider field.
//
// # Finalization
//
// A record is complete when it holds all five kinds. Complete records become
// event pairs in record order: channel is saturated at 15, note and velocity at
// 127, timing is the start time and length selects the end time from the
// duration table. Incomplete records are discarded without an error and without
// a trace in the remainder; WithDropObserver and Result.Stats make them visible.
//
// # Remainder
//
// Nibbles left after the last whole cycle are returned as a Remainder holding
// their bit string and a pattern position. Nothing is carried between calls;
// callers wanting continuity pass the remainder to Encoder.Resume.
//
// # Concurrency
//
// An Encoder is immutable after New and may be shared by goroutines, provided
// each call uses its own nibble.Queue.
package encoder
