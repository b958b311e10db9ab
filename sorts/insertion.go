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

// InsertionSort sorts data in-place in ascending order and returns it.
//
// It grows a sorted prefix from the left. Each new element is held aside
// while strictly larger prefix elements shift one slot right, then it is
// stored in the gap. Nearly sorted input needs very few shifts.
func InsertionSort[T Number](data []T) []T {
	insertionSort(data, greater[T], nil)
	return data
}

// InsertionSortStats is InsertionSort that also reports the work it did.
func InsertionSortStats[T Number](data []T) ([]T, Stats) {
	var st Stats
	insertionSort(data, greater[T], &st)
	return data, st
}

// insertionSort is the element-agnostic core shared by the exported variants.
// st may be nil.
func insertionSort[E any](data []E, gt func(a, b E) bool, st *Stats) {
	var passes, comparisons, shifts int

	for i := 1; i < len(data); i++ {
		key := data[i]
		passes++
		j := i - 1
		// j >= 0 must be checked before data[j] is read.
		for ; j >= 0; j-- {
			comparisons++
			if !gt(data[j], key) {
				break
			}
			data[j+1] = data[j]
			shifts++
		}
		data[j+1] = key
	}

	if st != nil {
		*st = Stats{Passes: passes, Comparisons: comparisons, Shifts: shifts}
	}
}
