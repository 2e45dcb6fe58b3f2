package interaction_test

import (
	"testing"

	"github.com/delaneyj/animparty/interaction"
	"github.com/stretchr/testify/assert"
)

// handles are unique and tracked until cleared
func TestCreateAndClearHandles(t *testing.T) {
	m := interaction.NewManager()
	assert.True(t, m.IsIdle())

	a := m.CreateHandle()
	b := m.CreateHandle()
	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, m.Pending())

	m.ClearHandle(a)
	assert.Equal(t, 1, m.Pending())
	m.ClearHandle(a)
	assert.Equal(t, 1, m.Pending())

	m.ClearHandle(b)
	assert.True(t, m.IsIdle())
}

// idle work waits for every outstanding handle
func TestRunAfterInteractions(t *testing.T) {
	m := interaction.NewManager()
	order := []string{}

	m.RunAfterInteractions(func() {
		order = append(order, "immediate")
	})
	assert.Equal(t, []string{"immediate"}, order)

	h1 := m.CreateHandle()
	h2 := m.CreateHandle()
	m.RunAfterInteractions(func() {
		order = append(order, "first")
	})
	m.RunAfterInteractions(func() {
		order = append(order, "second")
	})

	m.ClearHandle(h1)
	assert.Equal(t, []string{"immediate"}, order)

	m.ClearHandle(h2)
	assert.Equal(t, []string{"immediate", "first", "second"}, order)
}

// idle work that starts a new interaction pauses the queue
func TestRunAfterInteractionsReentrant(t *testing.T) {
	m := interaction.NewManager()
	ran := []int{}

	h := m.CreateHandle()
	var inner interaction.Handle
	m.RunAfterInteractions(func() {
		ran = append(ran, 1)
		inner = m.CreateHandle()
	})
	m.RunAfterInteractions(func() {
		ran = append(ran, 2)
	})

	m.ClearHandle(h)
	assert.Equal(t, []int{1}, ran)

	m.ClearHandle(inner)
	assert.Equal(t, []int{1, 2}, ran)
}
