package encoder

import (
	"fmt"

	"github.com/arloliu/nibmidi/errs"
	"github.com/arloliu/nibmidi/event"
	"github.com/arloliu/nibmidi/internal/options"
	"github.com/arloliu/nibmidi/nibble"
	"github.com/arloliu/nibmidi/pattern"
)

// Encoder assembles nibble streams into event pairs using a fixed pattern.
//
// An Encoder holds no per-call state, so it is safe for concurrent use as long
// as every call gets its own queue.
type Encoder struct {
	pattern pattern.Pattern
	cfg     *config
}

// Stats summarizes one assembly call.
type Stats struct {
	Cycles     int // whole cycles consumed, equal to the number of records built
	Components int // distinct (record, kind) components created
	Pairs      int // event pairs emitted
	Dropped    int // incomplete records discarded
	Leftover   int // nibbles returned in the remainder
	Saturated  int // components too wide for 64 bits, pinned at format.MaxValue
}

// Result is the full outcome of an assembly call.
type Result struct {
	Pairs     []event.Pair
	Remainder *Remainder // nil when no nibbles were left over
	Stats     Stats
}

// New creates an encoder for the given pattern symbols.
//
// It returns an error wrapping errs.ErrInvalidPattern if the pattern is empty or
// contains a symbol outside c, n, v, t, l.
func New(symbols string, opts ...Option) (*Encoder, error) {
	p, err := pattern.Parse(symbols)
	if err != nil {
		return nil, err
	}

	return NewWithPattern(p, opts...)
}

// NewWithPattern creates an encoder from an already parsed pattern.
func NewWithPattern(p pattern.Pattern, opts ...Option) (*Encoder, error) {
	if p.IsZero() {
		return nil, errs.ErrEmptyPattern
	}

	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if !p.Complete() {
		missing := p.Missing()
		if cfg.strictCoverage {
			return nil, fmt.Errorf("%w: %q lacks %v", errs.ErrIncompletePattern, p.String(), missing)
		}
		cfg.logger.Warn("pattern can never form a complete record",
			"pattern", p.String(), "missing", missing)
	}

	return &Encoder{pattern: p, cfg: cfg}, nil
}

// Pattern returns the encoder's pattern.
func (e *Encoder) Pattern() pattern.Pattern {
	return e.pattern
}

// Assemble consumes whole cycles from the front of q and returns the event pairs
// of every complete record built, plus the leftover nibbles as a Remainder.
//
// q is drained: whole cycles are consumed and the leftover is moved into the
// remainder. It returns errs.ErrNoNibbles if q is nil or empty.
func (e *Encoder) Assemble(q *nibble.Queue) ([]event.Pair, *Remainder, error) {
	res, err := e.AssembleResult(q)
	if err != nil {
		return nil, nil, err
	}

	return res.Pairs, res.Remainder, nil
}

// AssembleResult is like Assemble and also reports call statistics.
func (e *Encoder) AssembleResult(q *nibble.Queue) (Result, error) {
	if q == nil || q.Empty() {
		return Result{}, errs.ErrNoNibbles
	}

	patternLen := e.pattern.Len()
	records, cleanup := recordPool.Get(q.Len() / patternLen)
	defer cleanup()

	components, saturated := 0, 0
	for q.Len() >= patternLen {
		records = append(records, record{})
		rec := &records[len(records)-1]
		components += rec.accumulate(e.pattern, q.PopN(patternLen))
		saturated += rec.saturatedCount()
	}

	pairs, dropped := e.finalize(records)
	leftover := q.Drain()

	res := Result{
		Pairs:     pairs,
		Remainder: newRemainder(leftover, components, patternLen, e.pattern.ID()),
		Stats: Stats{
			Cycles:     len(records),
			Components: components,
			Pairs:      len(pairs),
			Dropped:    dropped,
			Leftover:   len(leftover),
			Saturated:  saturated,
		},
	}

	e.cfg.logger.Debug("assembled nibbles",
		"pattern", e.pattern.String(),
		"cycles", res.Stats.Cycles,
		"components", res.Stats.Components,
		"pairs", res.Stats.Pairs,
		"dropped", res.Stats.Dropped,
		"leftover", res.Stats.Leftover,
		"saturated", res.Stats.Saturated,
	)

	return res, nil
}

// Resume prepends the nibbles of rem to q and assembles the result.
//
// A nil rem behaves like AssembleResult. A remainder produced under another
// pattern is rejected with errs.ErrPatternMismatch.
func (e *Encoder) Resume(rem *Remainder, q *nibble.Queue) (Result, error) {
	if rem == nil {
		return e.AssembleResult(q)
	}
	if rem.PatternID != e.pattern.ID() {
		return Result{}, fmt.Errorf("%w: remainder pattern 0x%016x, encoder pattern %q",
			errs.ErrPatternMismatch, rem.PatternID, e.pattern.String())
	}

	leftover, err := rem.Nibbles()
	if err != nil {
		return Result{}, err
	}
	if q == nil {
		q = nibble.NewQueue()
	}
	q.PushFront(leftover...)

	return e.AssembleResult(q)
}
