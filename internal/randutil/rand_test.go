package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministic(t *testing.T) {
	a, b := New(99), New(99)
	for i := 0; i < 16; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
	assert.NotEqual(t, New(1).Uint64(), New(2).Uint64())
}

func TestShuffleIsPermutation(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	shuffled := append([]int(nil), items...)
	Shuffle(New(5), shuffled)

	assert.ElementsMatch(t, items, shuffled)
	assert.NotEqual(t, items, shuffled)

	again := append([]int(nil), items...)
	Shuffle(New(5), again)
	assert.Equal(t, shuffled, again)

	Shuffle(New(5), []int{})
}
