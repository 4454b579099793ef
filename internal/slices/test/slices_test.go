package test

import (
	"reflect"
	"strconv"
	"sync"
	"testing"

	"github.com/miruken-go/proxy/internal/slices"
	"github.com/stretchr/testify/suite"
)

type SlicesTestSuite struct {
	suite.Suite
}

func (suite *SlicesTestSuite) TestHelpers() {
	suite.Run("Map", func() {
		suite.Nil(slices.Map[int, string](nil, strconv.Itoa))
		suite.Equal([]string{"1", "2"}, slices.Map[int, string]([]int{1, 2}, strconv.Itoa))
		suite.Equal([]string{"0:a", "1:b"}, slices.Map[string, string](
			[]string{"a", "b"}, func(i int, s string) string {
				return strconv.Itoa(i) + ":" + s
			}))
	})

	suite.Run("Distinct", func() {
		items, dups := slices.Distinct([]string{"a", "b", "a", "c", "b"})
		suite.Equal([]string{"a", "b", "c"}, items)
		suite.Equal([]int{2, 4}, dups)

		r, w := reflect.TypeFor[int](), reflect.TypeFor[string]()
		types, dups := slices.Distinct([]reflect.Type{w, r, w})
		suite.Equal([]reflect.Type{w, r}, types)
		suite.Equal([]int{2}, dups)
	})

	suite.Run("SameSet", func() {
		suite.True(slices.SameSet([]int{1, 2, 3}, []int{3, 1, 2}))
		suite.True(slices.SameSet[int](nil, []int{}))
		suite.False(slices.SameSet([]int{1, 2}, []int{1, 2, 3}))
		suite.False(slices.SameSet([]int{1, 2}, []int{1, 3}))
	})
}

func (suite *SlicesTestSuite) TestSafe() {
	suite.Run("Empty", func() {
		var s slices.Safe[int]
		suite.Nil(s.Items())
	})

	suite.Run("Snapshot", func() {
		var s slices.Safe[int]
		s.Upsert(1, never[int])
		before := s.Items()
		s.Upsert(2, never[int])
		suite.Equal([]int{1}, before)
		suite.Equal([]int{1, 2}, s.Items())
	})

	suite.Run("Upsert", func() {
		var s slices.Safe[string]
		s.Upsert("red", never[string]).Upsert("green", never[string])
		s.Upsert("GREEN", func(v string) bool { return v == "green" })
		s.Upsert("blue", func(v string) bool { return v == "blue" })
		suite.Equal([]string{"red", "GREEN", "blue"}, s.Items())
		suite.Panics(func() { s.Upsert("x", nil) })
	})

	suite.Run("Concurrent", func() {
		var (
			s  slices.Safe[int]
			wg sync.WaitGroup
		)
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				s.Upsert(i, never[int])
				_ = s.Items()
			}(i)
		}
		wg.Wait()
		suite.Len(s.Items(), 50)
	})
}

func never[T any](T) bool {
	return false
}

func TestSlicesTestSuite(t *testing.T) {
	suite.Run(t, new(SlicesTestSuite))
}
