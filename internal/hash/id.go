// Package hash derives stable 64-bit identities with xxHash64.
package hash

import "github.com/cespare/xxhash/v2"

const patternDomain = "nibmidi/pattern:"

// PatternID computes the xxHash64 identity of a pattern's symbol string.
//
// The symbols are hashed under a fixed domain prefix so a pattern identity never
// equals the plain hash of the same text.
func PatternID(symbols string) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(patternDomain)
	_, _ = d.WriteString(symbols)

	return d.Sum64()
}
