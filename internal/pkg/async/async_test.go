package async

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForEachVisitsAll(t *testing.T) {
	var visited atomic.Int32
	err := ForEach([]int{1, 2, 3, 4, 5}, 2, func(int) error {
		visited.Add(1)
		return nil
	})
	assert.NoError(t, err)
	assert.EqualValues(t, 5, visited.Load())
}

func TestForEachCollectsErrors(t *testing.T) {
	var visited atomic.Int32
	err := ForEach([]string{"a", "b", "c"}, 0, func(s string) error {
		visited.Add(1)
		if s == "b" {
			return errors.New("b failed")
		}
		return nil
	})
	assert.EqualError(t, err, "b failed")
	assert.EqualValues(t, 3, visited.Load())
}

func TestForEachEmpty(t *testing.T) {
	assert.NoError(t, ForEach[int](nil, 4, func(int) error { return errors.New("unreachable") }))
}
