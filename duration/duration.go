// Package duration maps 4-bit length codes to note durations in quarter notes.
//
// Codes alternate between straight and dotted/triplet subdivisions, each pair
// halving the previous one: code 0 is a quarter note (1.0), code 2 an eighth
// note (0.5), code 15 a triplet 512th note.
package duration

// Default is the duration for codes outside the table.
const Default = 1.0

// Table holds the duration of every length code 0 through 15.
var Table = [16]float64{
	1,           // quarter
	0.75,        // dotted eighth
	0.5,         // eighth
	0.375,       // dotted sixteenth
	0.25,        // sixteenth
	0.1875,      // triplet sixteenth
	0.125,       // thirty-second
	0.09375,     // triplet thirty-second
	0.0625,      // sixty-fourth
	0.046875,    // triplet sixty-fourth
	0.03125,     // 128th
	0.0234375,   // triplet 128th
	0.015625,    // 256th
	0.01171875,  // triplet 256th
	0.0078125,   // 512th
	0.005859375, // triplet 512th
}

// Lookup returns the duration for a length code.
//
// A code above 15 can only come from a pattern that repeats the length symbol;
// it falls back to Default.
func Lookup(code uint64) float64 {
	if code >= uint64(len(Table)) {
		return Default
	}

	return Table[code]
}
