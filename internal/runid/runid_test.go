package runid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/patience/internal/randutil"
)

func TestNew(t *testing.T) {
	id := New(time.Now(), nil)
	assert.Len(t, id, Length)
	require.NoError(t, Validate(id))
}

func TestNewDeterministic(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	a := New(at, randutil.New(42))
	b := New(at, randutil.New(42))
	c := New(at, randutil.New(43))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestNewSortsByTime(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rng := randutil.New(1)

	prev := New(at, rng)
	for i := 1; i <= 20; i++ {
		next := New(at.Add(time.Duration(i)*time.Millisecond), rng)
		assert.Less(t, prev, next)
		prev = next
	}
}

func TestEncode(t *testing.T) {
	var zero [16]byte
	assert.Equal(t, "00000000000000000000000000", encode(zero))

	var ones [16]byte
	for i := range ones {
		ones[i] = 0xff
	}
	// 25 full groups then three set bits padded with two zeros
	assert.Equal(t, "zzzzzzzzzzzzzzzzzzzzzzzzzw", encode(ones))

	id := uuidV7(time.UnixMilli(0), randutil.New(5))
	assert.Equal(t, byte(0x70), id[6]&0xf0, "version nibble")
	assert.Equal(t, byte(0x80), id[8]&0xc0, "variant bits")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid", "01h5n0et5q6mt3v7ms1234abcd", false},
		{"too short", "01h5n0et5q6mt3v7ms123", true},
		{"too long", "01h5n0et5q6mt3v7ms1234abcdef", true},
		{"excluded letter", "01h5n0et5q6mt3v7ms1234abci", true},
		{"upper case", "01H5N0ET5Q6MT3V7MS1234ABCD", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.id)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
