package util

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWaitForImmediateSuccess(t *testing.T) {
	// GIVEN
	calls := 0
	condition := func() (bool, error) {
		calls++
		return true, nil
	}

	// WHEN
	ok, err := WaitFor(condition, 1*time.Second)

	// THEN
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, calls)
}

func TestWaitForEventualSuccess(t *testing.T) {
	// GIVEN
	calls := 0
	condition := func() (bool, error) {
		calls++
		return calls >= 5, nil
	}

	// WHEN
	ok, err := WaitFor(condition, 1*time.Second)

	// THEN
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 5, calls)
}

func TestWaitForTimeout(t *testing.T) {
	// GIVEN
	condition := func() (bool, error) {
		return false, nil
	}

	// WHEN
	start := time.Now()
	ok, err := WaitFor(condition, 10*time.Millisecond)

	// THEN
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestWaitForConditionError(t *testing.T) {
	// GIVEN
	expected := errors.New("probe failed")
	condition := func() (bool, error) {
		return false, expected
	}

	// WHEN
	ok, err := WaitFor(condition, 1*time.Second)

	// THEN
	assert.False(t, ok)
	assert.Equal(t, expected, err)
}
