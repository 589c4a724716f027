package set

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_SortedSet_01(t *testing.T) {
	s := FromArray[uint](3, 1, 2, 3, 1)
	assert.Equal(t, SortedSet[uint]{1, 2, 3}, s)
	assert.True(t, s.Contains(2))
	assert.False(t, s.Contains(4))
}

func Test_SortedSet_02(t *testing.T) {
	assert.Nil(t, FromArray[uint]())
	//
	var s SortedSet[uint]
	//
	_, ok := s.Max()
	assert.False(t, ok)
	assert.False(t, s.Contains(0))
	assert.True(t, s.Equals(SortedSet[uint]{}))
}

func Test_SortedSet_03(t *testing.T) {
	for i := 0; i < 100; i++ {
		checkInsert(t, 20, 32)
	}
}

func Test_SortedSet_04(t *testing.T) {
	s := FromArray[uint](0, 1, 2).Union(FromArray[uint](4, 2, 5))
	assert.Equal(t, SortedSet[uint]{0, 1, 2, 4, 5}, s)
	//
	m, ok := s.Max()
	assert.True(t, ok)
	assert.Equal(t, uint(5), m)
}

func Test_SortedSet_05(t *testing.T) {
	var empty SortedSet[uint]
	//
	assert.Nil(t, empty.Union(nil))
	assert.Equal(t, SortedSet[uint]{7}, empty.Union(FromArray[uint](7)))
	assert.Equal(t, SortedSet[uint]{7}, FromArray[uint](7).Union(empty))
}

func checkInsert(t *testing.T, n uint, m uint) {
	var (
		items = make([]uint, n)
		s     SortedSet[uint]
	)
	//
	for i := range items {
		items[i] = rand.UintN(m)
		s.Insert(items[i])
	}
	// Same as constructing directly
	assert.Equal(t, FromArray(items...), s)
	// Union agrees with insertion
	assert.Equal(t, s, FromArray(items[:n/2]...).Union(FromArray(items[n/2:]...)))
	//
	for _, item := range items {
		assert.True(t, s.Contains(item))
	}
}
