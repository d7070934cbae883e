package memo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/aoc2023/memo"
)

func TestCache_GetPut(t *testing.T) {
	c := memo.New[string, int]()
	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Put("a", 1)
	c.Put("a", 2)
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 1, c.Hits())
}

// TestCache_DoFibonacci memoizes a recursive computation: each key is
// computed exactly once.
func TestCache_DoFibonacci(t *testing.T) {
	c := memo.New[int, int64]()
	calls := 0
	var fib func(n int) int64
	fib = func(n int) int64 {
		return c.Do(n, func() int64 {
			calls++
			if n < 2 {
				return int64(n)
			}
			return fib(n-1) + fib(n-2)
		})
	}

	assert.Equal(t, int64(12586269025), fib(50))
	assert.Equal(t, 51, calls)
	assert.Equal(t, 51, c.Len())
}

// TestCache_Scoped shows two caches never share entries.
func TestCache_Scoped(t *testing.T) {
	a, b := memo.New[int, int](), memo.New[int, int]()
	a.Put(1, 10)
	_, ok := b.Get(1)
	assert.False(t, ok)
}
