// Package event defines the note events derived from assembled records.
package event

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2"

	"github.com/arloliu/nibmidi/duration"
	"github.com/arloliu/nibmidi/format"
)

// Type is the MIDI status nibble of an event.
type Type uint8

const (
	NoteOn  Type = 0x90
	NoteOff Type = 0x80
)

func (t Type) String() string {
	switch t {
	case NoteOn:
		return "NoteOn"
	case NoteOff:
		return "NoteOff"
	default:
		return "Unknown"
	}
}

// Event is a single note event.
type Event struct {
	Type     Type
	Channel  uint8   // 0..15
	Note     uint8   // 0..127
	Velocity uint8   // 0..127, always 0 for the end event of a pair
	// Time is the raw timing value for a start event and the note duration in
	// quarter notes for an end event. A timing value above 2^53 is rounded to
	// the nearest float64; Pair.Timing keeps it exact.
	Time float64
}

// Pair is the start and end event derived from one complete record.
type Pair struct {
	Start Event
	End   Event
	// Timing is the exact timing value behind Start.Time. It is
	// format.MaxValue when the field was too wide for 64 bits.
	Timing uint64
}

// NewPair builds the event pair for a record's final field values.
//
// Channel is saturated at 15, note and velocity at 127. Timing is used as the
// start time unchanged and length is resolved through duration.Lookup, so a
// saturated length falls back to duration.Default.
func NewPair(channel, note, velocity, timing, length uint64) Pair {
	ch := Clamp(channel, format.MaxChannel)
	key := Clamp(note, format.MaxNote)

	return Pair{
		Start: Event{
			Type:     NoteOn,
			Channel:  ch,
			Note:     key,
			Velocity: Clamp(velocity, format.MaxVelocity),
			Time:     float64(timing),
		},
		End: Event{
			Type:    NoteOff,
			Channel: ch,
			Note:    key,
			Time:    duration.Lookup(length),
		},
		Timing: timing,
	}
}

// Clamp saturates v at upper.
func Clamp(v uint64, upper uint8) uint8 {
	if v > uint64(upper) {
		return upper
	}

	return uint8(v)
}

// Message converts the event into a MIDI channel message.
// The time is not part of the message; schedule it separately.
func (e Event) Message() midi.Message {
	if e.Type == NoteOff {
		return midi.NoteOff(e.Channel, e.Note)
	}

	return midi.NoteOn(e.Channel, e.Note, e.Velocity)
}

// Messages returns the start and end MIDI messages of the pair.
func (p Pair) Messages() [2]midi.Message {
	return [2]midi.Message{p.Start.Message(), p.End.Message()}
}

// sounding reports whether the event starts a note. A note-on with zero
// velocity is a note-off by MIDI convention.
func (e Event) sounding() bool {
	return e.Type == NoteOn && e.Velocity > 0
}

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteName returns the scientific pitch name of a MIDI note, 60 being "C4".
func NoteName(note uint8) string {
	return fmt.Sprintf("%s%d", noteNames[note%12], int(note)/12-1)
}

// String renders the event as "note-on C4 : velocity 64 : delta t 4.00".
func (e Event) String() string {
	kind := "note-off"
	if e.sounding() {
		kind = "note-on"
	}

	return fmt.Sprintf("%s %s : velocity %d : delta t %.2f", kind, NoteName(e.Note), e.Velocity, e.Time)
}
