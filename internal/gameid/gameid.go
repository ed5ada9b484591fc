// Package gameid generates identifiers for completed games.
//
// IDs are UUIDv7 values: the leading 48 bits hold the completion time in
// milliseconds, so IDs sort by the time the game finished.
package gameid

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/coder/quartz"
	"github.com/google/uuid"
)

// Generator builds time-ordered IDs from an injected clock and entropy source.
type Generator struct {
	clock   quartz.Clock
	entropy io.Reader
}

// NewGenerator creates a generator. A nil clock uses the real clock and a nil
// entropy source uses crypto/rand.
func NewGenerator(clock quartz.Clock, entropy io.Reader) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	if entropy == nil {
		entropy = rand.Reader
	}
	return &Generator{clock: clock, entropy: entropy}
}

// Generate creates a new ID in canonical UUID form.
func (g *Generator) Generate() string {
	var id uuid.UUID

	ms := g.clock.Now("gameid", "Generate").UnixMilli()
	id[0] = byte(ms >> 40)
	id[1] = byte(ms >> 32)
	id[2] = byte(ms >> 24)
	id[3] = byte(ms >> 16)
	id[4] = byte(ms >> 8)
	id[5] = byte(ms)

	if _, err := io.ReadFull(g.entropy, id[6:]); err != nil {
		panic("gameid: failed to read random bytes: " + err.Error())
	}

	// version 7, RFC 4122 variant
	id[6] = (id[6] & 0x0f) | 0x70
	id[8] = (id[8] & 0x3f) | 0x80

	return id.String()
}

// Validate checks that id is a version 7 UUID.
func Validate(id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("game ID %q: %w", id, err)
	}
	if parsed.Version() != 7 {
		return fmt.Errorf("game ID %q: expected version 7, got %d", id, parsed.Version())
	}
	if parsed.Variant() != uuid.RFC4122 {
		return fmt.Errorf("game ID %q: unexpected variant %s", id, parsed.Variant())
	}
	return nil
}
