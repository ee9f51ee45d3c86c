// Package runid generates sortable identifiers for survey runs.
package runid

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"
)

// Crockford's base32, lower case
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length of an encoded ID
const Length = 26

// RandSource supplies the random bits of an ID. Tests pass a seeded source.
type RandSource interface {
	IntN(n int) int
}

// New returns a UUIDv7 stamped with at and encoded as 26 base32 characters.
// IDs from later instants sort after earlier ones. A nil src uses crypto/rand.
func New(at time.Time, src RandSource) string {
	return encode(uuidV7(at, src))
}

func uuidV7(at time.Time, src RandSource) [16]byte {
	var id [16]byte

	ms := uint64(at.UnixMilli())
	for i := 0; i < 6; i++ {
		id[i] = byte(ms >> (40 - 8*i))
	}

	if src != nil {
		for i := 6; i < 16; i++ {
			id[i] = byte(src.IntN(256))
		}
	} else if _, err := rand.Read(id[6:]); err != nil {
		panic("runid: reading random bytes: " + err.Error())
	}

	id[6] = (id[6] & 0x0f) | 0x70 // version 7
	id[8] = (id[8] & 0x3f) | 0x80 // variant 10
	return id
}

// encode writes the 128 bits as 26 five-bit groups, the last one padded with
// two zero bits.
func encode(id [16]byte) string {
	var sb strings.Builder
	sb.Grow(Length)

	var acc uint16
	bits := 0
	for _, b := range id {
		acc = acc<<8 | uint16(b)
		bits += 8
		for bits >= 5 {
			bits -= 5
			sb.WriteByte(alphabet[(acc>>bits)&0x1f])
		}
	}
	sb.WriteByte(alphabet[(acc<<(5-bits))&0x1f])
	return sb.String()
}

// Validate checks id is a well formed run ID
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("run ID must be exactly %d characters, got %d", Length, len(id))
	}
	for i, c := range id {
		if !strings.ContainsRune(alphabet, c) {
			return fmt.Errorf("invalid character %c at position %d", c, i)
		}
	}
	return nil
}
