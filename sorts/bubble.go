// Copyright 2025 go-simplesort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sorts

// BubbleSort sorts data in-place in ascending order and returns it.
//
// Each pass compares every adjacent pair and swaps those that are out of
// order. Sorting stops after the first pass that performs no swap, so
// already sorted input costs a single pass.
func BubbleSort[T Number](data []T) []T {
	bubbleSort(data, greater[T], nil)
	return data
}

// BubbleSortStats is BubbleSort that also reports the work it did.
func BubbleSortStats[T Number](data []T) ([]T, Stats) {
	var st Stats
	bubbleSort(data, greater[T], &st)
	return data, st
}

// bubbleSort is the element-agnostic core shared by the exported variants.
// st may be nil.
func bubbleSort[E any](data []E, gt func(a, b E) bool, st *Stats) {
	n := len(data)
	var passes, comparisons, swaps int

	for swapped := true; swapped; {
		swapped = false
		passes++
		for i := 0; i < n-1; i++ {
			comparisons++
			if gt(data[i], data[i+1]) {
				data[i], data[i+1] = data[i+1], data[i]
				swaps++
				swapped = true
			}
		}
	}

	if st != nil {
		*st = Stats{Passes: passes, Comparisons: comparisons, Swaps: swaps}
	}
}
