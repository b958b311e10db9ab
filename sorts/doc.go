// Package sorts provides two classic comparison sorts, bubble sort and
// insertion sort, over slices of numeric values.
//
// Both algorithms sort in place and return the slice they were given, so the
// return value and the argument always share the same backing array.
//
// # Algorithms
//
//   - BubbleSort repeats left-to-right passes that swap adjacent
//     out-of-order pairs, stopping after the first pass without a swap.
//   - InsertionSort grows a sorted prefix one element at a time, shifting
//     larger elements right to open a slot for each new element.
//
// Both are stable, O(n²) in the worst and average case, and O(n) on input
// that is already sorted.
//
// # Supported Types
//
// Any type whose underlying type is an integer or floating point kind, see
// Number. Slices containing NaN have no defined order.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-simplesort/sorts"
//
//	func Process(data []int64) {
//	    sorts.InsertionSort(data) // in-place ascending sort
//	}
//
//	func Inspect(data []float64) sorts.Stats {
//	    _, st := sorts.BubbleSortStats(data)
//	    return st
//	}
//
// # Concurrency
//
// The functions do not synchronize. Callers must not touch the slice from
// another goroutine while a sort is running.
package sorts
