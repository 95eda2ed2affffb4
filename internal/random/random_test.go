package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCryptoRandomInRange(t *testing.T) {
	r := New()
	for i := 0; i < 200; i++ {
		v := r.Intn(7)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 7)
	}
	assert.Equal(t, 0, r.Intn(0))
	assert.Equal(t, 0, r.Intn(-3))
}

func TestMockRandomQueue(t *testing.T) {
	r := NewMockRandom(1, 4)
	r.QueueIntn(9)

	assert.Equal(t, 1, r.Intn(5))
	assert.Equal(t, 4, r.Intn(5))
	assert.Equal(t, 4, r.Intn(5)) // 9 wraps into [0,5)
	assert.Equal(t, 0, r.Intn(5)) // drained
}
