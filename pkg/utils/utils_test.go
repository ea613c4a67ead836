package utils

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-03-15")
	require.NoError(t, err)
	require.NotNil(t, date)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), *date)

	date, err = ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, date)

	_, err = ParseDate("15/03/2024")
	assert.Error(t, err)
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 2.5, RoundWithTwoDecimalPlace(2.499999))
	assert.Equal(t, 0.33, RoundWithTwoDecimalPlace(1.0/3.0))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
}

func TestForEachBounded(t *testing.T) {
	var running, maxRunning int32
	var mu sync.Mutex
	visited := make(map[int]bool)

	ForEachBounded(20, 3, func(i int) {
		current := atomic.AddInt32(&running, 1)
		for {
			prev := atomic.LoadInt32(&maxRunning)
			if current <= prev || atomic.CompareAndSwapInt32(&maxRunning, prev, current) {
				break
			}
		}
		time.Sleep(2 * time.Millisecond)
		atomic.AddInt32(&running, -1)

		mu.Lock()
		visited[i] = true
		mu.Unlock()
	})

	assert.Len(t, visited, 20)
	assert.LessOrEqual(t, maxRunning, int32(3))
}

func TestGenerateNonce(t *testing.T) {
	a, err := GenerateNonce()
	require.NoError(t, err)
	b, err := GenerateNonce()
	require.NoError(t, err)

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
	assert.Len(t, GenerateID(), 36)
}
