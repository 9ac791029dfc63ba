package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachineLifecycle(t *testing.T) {
	var transitions [][2]string
	m := NewMachine(func(from, to string) {
		transitions = append(transitions, [2]string{from, to})
	})

	assert.Equal(t, StateEmpty, m.Current())
	assert.True(t, m.CanTransition(EventAttach))
	assert.False(t, m.CanTransition(EventComplete))

	require.NoError(t, m.Trigger(EventAttach))
	assert.Equal(t, StatePartial, m.Current())

	require.NoError(t, m.Trigger(EventComplete))
	assert.Equal(t, StateReady, m.Current())

	require.NoError(t, m.Trigger(EventReset))
	assert.Equal(t, StateEmpty, m.Current())

	assert.Equal(t, [][2]string{
		{StateEmpty, StatePartial},
		{StatePartial, StateReady},
		{StateReady, StateEmpty},
	}, transitions)
}

func TestMachineInvalidTransition(t *testing.T) {
	m := NewMachine(nil)

	// 空工作区不能直接进入 ready
	err := m.Trigger(EventComplete)
	require.Error(t, err)
	assert.Equal(t, StateEmpty, m.Current())
}
