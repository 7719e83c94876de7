// Package nibmidi turns a flat stream of 4-bit nibbles into note events.
//
// A pattern over the symbols c (channel), n (note), v (velocity), t (timing) and
// l (length) describes how consecutive nibbles map onto the fields of a record.
// Every whole pattern-length cycle of nibbles builds one record; every complete
// record yields a note-on/note-off event pair.
//
// # Basic Usage
//
//	enc, err := nibmidi.NewDefaultEncoder()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	q := nibble.NewQueueFromBytes(data)
//	pairs, rem, err := enc.Assemble(q)
//	for _, p := range pairs {
//	    fmt.Println(p.Start)
//	    fmt.Println(p.End)
//	}
//	if rem != nil {
//	    fmt.Println(rem)
//	}
//
// Repeating a symbol widens its field: with "cnnvvtl" the note and velocity
// are each built from two nibbles, high nibble first.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the encoder
// package. For options such as logging or drop observation, use the encoder
// package directly.
package nibmidi

import (
	"github.com/arloliu/nibmidi/encoder"
	"github.com/arloliu/nibmidi/event"
	"github.com/arloliu/nibmidi/nibble"
)

// DefaultPattern assigns one nibble to each field kind.
const DefaultPattern = "cnvtl"

// NewEncoder creates an encoder for the given pattern with custom options.
//
// Available options:
//   - encoder.WithLogger(*slog.Logger)
//   - encoder.WithDropObserver(func(encoder.DroppedRecord))
//   - encoder.WithStrictCoverage(true|false)
//
// Returns an error wrapping errs.ErrInvalidPattern if the pattern is empty or
// contains a symbol outside c, n, v, t, l.
func NewEncoder(pattern string, opts ...encoder.Option) (*encoder.Encoder, error) {
	return encoder.New(pattern, opts...)
}

// NewDefaultEncoder creates an encoder for DefaultPattern.
func NewDefaultEncoder() (*encoder.Encoder, error) {
	return encoder.New(DefaultPattern)
}

// Assemble is a one-shot helper that builds an encoder for pattern and
// assembles nibbles with it.
func Assemble(pattern string, nibbles []nibble.Nibble) ([]event.Pair, *encoder.Remainder, error) {
	enc, err := encoder.New(pattern)
	if err != nil {
		return nil, nil, err
	}

	return enc.Assemble(nibble.NewQueue(nibbles...))
}

// AssembleBytes splits data into nibbles, upper nibble first, and assembles
// them with pattern.
func AssembleBytes(pattern string, data []byte) ([]event.Pair, *encoder.Remainder, error) {
	return Assemble(pattern, nibble.FromBytes(data))
}
