// SPDX-License-Identifier: MIT
package sparse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTryAccumulate(t *testing.T) {
	m := newMatrix(2, 2, 0, defaultOptions())
	m.push(0, 1, 4)

	require.True(t, m.tryAccumulate(0, 1, 3))
	require.Equal(t, 7, m.valueOf(0, 1))

	require.False(t, m.tryAccumulate(1, 1, 3))
	require.Equal(t, 1, m.Len(), "a miss must not append")
	require.Equal(t, 0, m.valueOf(1, 1))
}

func TestValueOfFirstMatchWins(t *testing.T) {
	m := newMatrix(1, 1, 0, defaultOptions())
	m.push(0, 0, 1)
	m.push(0, 0, 2)

	require.Equal(t, 1, m.valueOf(0, 0))
	require.True(t, m.tryAccumulate(0, 0, 10))
	require.Equal(t, []Entry[int]{{0, 0, 11}, {0, 0, 2}}, m.entries)
	require.Equal(t, [][]int{{11}}, m.Materialize().ToRows())
}

func TestEntryAccumulate(t *testing.T) {
	x := NewEntry(1, 2, 3.5)
	x.accumulate(-1)
	require.Equal(t, 2.5, x.Value())
	require.Equal(t, 1, x.Row())
	require.Equal(t, 2, x.Col())
}

func TestResolveWorkers(t *testing.T) {
	o := defaultOptions()
	require.Equal(t, 5, o.resolveWorkers(5))
	require.GreaterOrEqual(t, o.resolveWorkers(0), 1)

	WithWorkers(3)(&o)
	require.Equal(t, 3, o.resolveWorkers(0))
	require.Equal(t, 2, o.resolveWorkers(2))
}

func TestRowTasksGroupByFirstAppearance(t *testing.T) {
	m := newMatrix(3, 3, 0, defaultOptions())
	m.push(2, 0, 1)
	m.push(0, 1, 1)
	m.push(2, 2, 1)

	tasks := m.rowTasks()
	require.Equal(t, []rowTask{{row: 2, idx: []int{0, 2}}, {row: 0, idx: []int{1}}}, tasks)
}
