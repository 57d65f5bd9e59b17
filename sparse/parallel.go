// SPDX-License-Identifier: MIT
// Package sparse: row-partitioned product.
//
// Writes to one output cell must stay sequential, so the only safe split is by
// output row: every entry of m with row r contributes to row r of the result
// only. Each worker owns the cells of its rows; the merge restores the exact
// creation order of the sequential kernel.

package sparse

import (
	"cmp"
	"context"
	"slices"

	"golang.org/x/sync/errgroup"
)

// rowTask lists, in order, the indices of m's entries sharing one row.
type rowTask struct {
	row int
	idx []int
}

// rowCell is a result cell tagged with the sequential creation key
// (index of the originating entry of m, destination column).
type rowCell[T Number] struct {
	origin int
	entry  Entry[T]
}

// MultiplyParallel returns m × other computed by up to workers goroutines.
//
// Implementation:
//   - Stage 1: same validation as Multiply.
//   - Stage 2: group m's entries by row (first-appearance order) and run each group
//     through the sequential kernel against a row-local cell list.
//   - Stage 3: concatenate the groups and sort by (origin entry, column), which is the
//     order Multiply creates cells in.
//
// Behavior highlights:
//   - Output is entry-for-entry identical to Multiply, values included: every cell
//     receives its contributions in the same order.
//   - Operands are only read; each goroutine writes to its own slot.
//
// Inputs:
//   - ctx: cancellation; checked before each row group.
//   - workers: fan-out; ≤ 0 falls back to WithWorkers, then GOMAXPROCS.
//
// Errors:
//   - Validation sentinels as Multiply; ctx.Err() when cancelled (wrapped).
//
// Complexity:
//   - Same work as Multiply plus O(n_result log n_result) for the merge.
func (m *Matrix[T]) MultiplyParallel(ctx context.Context, other *Matrix[T], workers int) (*Matrix[T], error) {
	if err := validateMulOperands(m, other); err != nil {
		return nil, sparseErrorf(opMultiplyParallel, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, sparseErrorf(opMultiplyParallel, err)
	}

	tasks := m.rowTasks()
	n := m.opts.resolveWorkers(workers)
	m.opts.logger.Debug("parallel multiply", "rows", len(tasks), "workers", n)

	partials := make([][]rowCell[T], len(tasks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(n)
	for t := range tasks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			partials[t] = m.multiplyRow(other, tasks[t])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, sparseErrorf(opMultiplyParallel, err)
	}

	total := 0
	for _, p := range partials {
		total += len(p)
	}
	merged := make([]rowCell[T], 0, total)
	for _, p := range partials {
		merged = append(merged, p...)
	}
	slices.SortFunc(merged, func(a, b rowCell[T]) int {
		if c := cmp.Compare(a.origin, b.origin); c != 0 {
			return c
		}
		return cmp.Compare(a.entry.col, b.entry.col)
	})

	var zero T
	res := newMatrix(m.rows, other.cols, zero, m.opts)
	// An empty product keeps a nil entry list, as Multiply leaves it.
	if len(merged) > 0 {
		res.entries = make([]Entry[T], len(merged))
		for i, c := range merged {
			res.entries[i] = c.entry
		}
	}

	return res, nil
}

// rowTasks groups entry indices by row, rows in first-appearance order.
func (m *Matrix[T]) rowTasks() []rowTask {
	pos := make(map[int]int)
	var tasks []rowTask
	for i, e := range m.entries {
		k, ok := pos[e.row]
		if !ok {
			k = len(tasks)
			pos[e.row] = k
			tasks = append(tasks, rowTask{row: e.row})
		}
		tasks[k].idx = append(tasks[k].idx, i)
	}

	return tasks
}

// multiplyRow runs the sequential kernel for one output row.
// All cells share task.row, so matching by column is enough.
func (m *Matrix[T]) multiplyRow(other *Matrix[T], task rowTask) []rowCell[T] {
	var (
		cells []rowCell[T]
		zero  T
		p     T
		j     int
	)
	for _, i := range task.idx {
		e := m.entries[i]
		for j = 0; j < other.cols; j++ {
			p = e.value * other.valueOf(e.col, j)
			if accumulateRowCell(cells, j, p) || p == zero {
				continue
			}
			cells = append(cells, rowCell[T]{origin: i, entry: Entry[T]{row: task.row, col: j, value: p}})
		}
	}

	return cells
}

// accumulateRowCell is tryAccumulate over a row-local cell list.
func accumulateRowCell[T Number](cells []rowCell[T], col int, delta T) bool {
	for i := range cells {
		if cells[i].entry.col == col {
			cells[i].entry.accumulate(delta)
			return true
		}
	}

	return false
}
