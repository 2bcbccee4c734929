package schedule

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterRuns(t *testing.T) {
	s := New()
	var ran atomic.Int32
	require.True(t, s.After("k", 5*time.Millisecond, func() { ran.Add(1) }))

	require.Eventually(t, func() bool { return ran.Load() == 1 }, time.Second, time.Millisecond)
	assert.Equal(t, 0, s.Pending())
}

func TestAfterReplacesPendingCall(t *testing.T) {
	s := New()
	var first, second atomic.Int32
	s.After("k", 20*time.Millisecond, func() { first.Add(1) })
	s.After("k", 5*time.Millisecond, func() { second.Add(1) })

	require.Eventually(t, func() bool { return second.Load() == 1 }, time.Second, time.Millisecond)
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, int32(0), first.Load())
}

func TestCancel(t *testing.T) {
	s := New()
	var ran atomic.Int32
	s.After("k", 10*time.Millisecond, func() { ran.Add(1) })

	assert.True(t, s.Cancel("k"))
	assert.False(t, s.Cancel("k"))
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(0), ran.Load())
}

func TestStaleFireIsDropped(t *testing.T) {
	s := New()
	var ran atomic.Int32
	s.After("k", time.Hour, func() { ran.Add(1) })
	gen := s.tasks["k"].gen

	s.Cancel("k")
	s.fire("k", gen)
	assert.Equal(t, int32(0), ran.Load())
}

func TestFlushRunsImmediately(t *testing.T) {
	s := New()
	var ran atomic.Int32
	s.After("k", time.Hour, func() { ran.Add(1) })

	assert.True(t, s.Flush("k"))
	assert.Equal(t, int32(1), ran.Load())
	assert.False(t, s.Flush("k"))
}

func TestCloseRejectsNewWork(t *testing.T) {
	s := New()
	var ran atomic.Int32
	s.After("a", 10*time.Millisecond, func() { ran.Add(1) })
	s.After("b", 10*time.Millisecond, func() { ran.Add(1) })
	require.Equal(t, 2, s.Pending())

	s.Close()
	assert.Equal(t, 0, s.Pending())
	assert.False(t, s.After("c", time.Millisecond, func() { ran.Add(1) }))

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(0), ran.Load())
}
